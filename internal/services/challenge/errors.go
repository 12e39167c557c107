package challenge

import (
	"errors"
	"fmt"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilChallengeRepo = errors.New("challenge repository cannot be nil")
	ErrNilAccountRepo   = errors.New("account repository cannot be nil")
	ErrNilScheduler     = errors.New("scheduler cannot be nil")
	ErrNilNotifier      = errors.New("notifier cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")

	ErrChallengeNotFound = errors.New("challenge not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrInvalidGame       = errors.New("unsupported game title")
	ErrInvalidBetAmount  = errors.New("bet amount is out of bounds")
	ErrInvalidMatchTime  = errors.New("scheduled match time is too soon")
	ErrInvalidDuration   = errors.New("match duration is out of bounds")
	ErrInvalidExtension  = errors.New("expiry extension is out of bounds")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidState      = errors.New("challenge is not in a valid state for this action")
	ErrNotParticipant    = errors.New("user is not a participant of this challenge")
	ErrSelfAccept        = errors.New("challenger cannot accept their own challenge")
	ErrChallengeExpired  = errors.New("challenge has expired")
)

// ConflictError reports scheduling collisions, keyed by participant, so
// callers can show the user which bookings are in the way
type ConflictError struct {
	Conflicts map[string][]*models.Challenge
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	total := 0
	for _, matches := range e.Conflicts {
		total += len(matches)
	}
	return fmt.Sprintf("scheduling conflict with %d existing booking(s)", total)
}
