package settlement

import "errors"

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilChallengeRepo = errors.New("challenge repository cannot be nil")
	ErrNilAccountRepo   = errors.New("account repository cannot be nil")
	ErrNilNotifier      = errors.New("notifier cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")

	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidState       = errors.New("challenge is not in progress")
	ErrNotParticipant     = errors.New("winner is not a participant of this challenge")
	ErrMissingParticipant = errors.New("challenge has no accepter")
	ErrInvalidDecision    = errors.New("admin decision must be challenger, accepter or refund")
)
