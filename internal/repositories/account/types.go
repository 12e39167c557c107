package account

import "github.com/Talha3818/gaming-site-sub001/internal/models"

// SaveAccountInput contains parameters for saving an account
type SaveAccountInput struct {
	Account *models.Account
}

// GetAccountInput contains parameters for retrieving an account
type GetAccountInput struct {
	AccountID string
}

// DebitInput contains parameters for debiting a balance
type DebitInput struct {
	AccountID string
	Amount    int64
}

// DebitOutput contains the balance after a successful debit
type DebitOutput struct {
	Balance int64
}

// CreditInput contains parameters for crediting a balance
type CreditInput struct {
	AccountID string
	Amount    int64
}

// CreditOutput contains the balance after a credit
type CreditOutput struct {
	Balance int64
}

// IncrementWinInput contains parameters for recording a win
type IncrementWinInput struct {
	AccountID string
	Earnings  int64
}

// IncrementLossInput contains parameters for recording a loss
type IncrementLossInput struct {
	AccountID string
}
