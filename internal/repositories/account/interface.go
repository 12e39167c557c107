package account

import (
	"context"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Talha3818/gaming-site-sub001/internal/repositories/account Repository

// Repository defines the interface for the account ledger. All balance and
// counter mutations are atomic with respect to concurrent callers.
type Repository interface {
	// SaveAccount persists a new account record
	SaveAccount(ctx context.Context, input *SaveAccountInput) error

	// GetAccount retrieves an account by user ID
	GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error)

	// Debit atomically subtracts amount from a balance, failing the whole
	// operation when funds are insufficient
	Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error)

	// Credit atomically adds amount to a balance
	Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error)

	// IncrementWin atomically bumps the win count and earnings total
	IncrementWin(ctx context.Context, input *IncrementWinInput) error

	// IncrementLoss atomically bumps the loss count
	IncrementLoss(ctx context.Context, input *IncrementLossInput) error
}
