package models

import (
	"time"
)

// Account represents a player's ledger record
type Account struct {
	// ID is the user ID the account belongs to
	ID string `json:"id"`

	// Name is the display name of the account holder
	Name string `json:"name"`

	// Balance is the spendable balance in whole currency units; never negative
	Balance int64 `json:"balance"`

	// Wins is the number of settled matches won
	Wins int64 `json:"wins"`

	// Losses is the number of settled matches lost
	Losses int64 `json:"losses"`

	// TotalEarnings is the cumulative bet amount won across settlements
	TotalEarnings int64 `json:"total_earnings"`

	// CreatedAt is when the account was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the account was last modified
	UpdatedAt time.Time `json:"updated_at"`
}

// WinRate returns the fraction of settled matches won, 0 when none played
func (a *Account) WinRate() float64 {
	played := a.Wins + a.Losses
	if played == 0 {
		return 0
	}
	return float64(a.Wins) / float64(played)
}
