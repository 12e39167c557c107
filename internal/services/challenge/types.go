package challenge

import (
	"time"

	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	"github.com/Talha3818/gaming-site-sub001/internal/common/uuid"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
	"github.com/Talha3818/gaming-site-sub001/internal/notify"
	accountRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/account"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
	"github.com/Talha3818/gaming-site-sub001/internal/services/scheduler"
)

// Config holds configuration and dependencies for the challenge service
type Config struct {
	ChallengeRepo challengeRepo.Repository
	AccountRepo   accountRepo.Repository
	Scheduler     scheduler.Service
	Notifier      notify.Notifier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// MinBet and MaxBet bound the wager, in whole currency units;
	// default 10 and 10000
	MinBet int64
	MaxBet int64

	// MinDurationMinutes and MaxDurationMinutes bound the booked match
	// length; default 15 and 120
	MinDurationMinutes int
	MaxDurationMinutes int

	// MinLeadTime is how far in the future a match must be scheduled;
	// default 30 minutes
	MinLeadTime time.Duration

	// DefaultExpiry is how long an unaccepted challenge stays open;
	// default 24 hours
	DefaultExpiry time.Duration

	// MinExtendHours and MaxExtendHours bound expiry extensions;
	// default 1 and 72
	MinExtendHours int
	MaxExtendHours int
}

// CreateChallengeInput contains the terms of a new challenge
type CreateChallengeInput struct {
	ChallengerID       string
	Game               models.GameTitle
	BetAmount          int64
	ScheduledMatchTime time.Time
	DurationMinutes    int
}

// CreateChallengeOutput contains the created challenge and the challenger's
// balance after escrow
type CreateChallengeOutput struct {
	Challenge *models.Challenge
	Balance   int64
}

// AcceptChallengeInput contains parameters for accepting a challenge
type AcceptChallengeInput struct {
	ChallengeID string
	AccepterID  string
}

// AcceptChallengeOutput contains the accepted challenge and the accepter's
// balance after escrow
type AcceptChallengeOutput struct {
	Challenge *models.Challenge
	Balance   int64
}

// StartMatchInput contains the room codes that start a match
type StartMatchInput struct {
	ChallengeID   string
	ActorID       string
	RoomCode      string
	AdminRoomCode string

	// Admin marks the actor as an administrator, allowed to start matches
	// they do not play in
	Admin bool
}

// StartMatchOutput contains the started challenge
type StartMatchOutput struct {
	Challenge *models.Challenge
}

// CancelChallengeInput contains parameters for cancelling a challenge
type CancelChallengeInput struct {
	ChallengeID string
	ActorID     string
}

// CancelChallengeOutput contains the cancelled challenge, the refunded amount
// and the challenger's balance after the refund
type CancelChallengeOutput struct {
	Challenge *models.Challenge
	Refunded  int64
	Balance   int64
}

// ExtendExpiryInput contains parameters for extending a challenge's expiry
type ExtendExpiryInput struct {
	ChallengeID string
	ActorID     string
	Hours       int
}

// ExtendExpiryOutput contains the challenge with its new expiry
type ExtendExpiryOutput struct {
	Challenge *models.Challenge
}

// DisputeChallengeInput contains parameters for disputing a settled challenge
type DisputeChallengeInput struct {
	ChallengeID string
	ActorID     string
	Reason      string
}

// DisputeChallengeOutput contains the disputed challenge
type DisputeChallengeOutput struct {
	Challenge *models.Challenge
}

// ExpireOverdueInput bounds a single expiry sweep
type ExpireOverdueInput struct {
	Limit int64
}

// ExpireOverdueOutput reports how many challenges the sweep expired
type ExpireOverdueOutput struct {
	Expired int
}

// GetChallengeInput contains parameters for retrieving a challenge
type GetChallengeInput struct {
	ChallengeID string
}

// ListChallengesForUserInput contains parameters for listing a user's challenges
type ListChallengesForUserInput struct {
	UserID string
}

// ListChallengesForUserOutput contains a user's challenges
type ListChallengesForUserOutput struct {
	Challenges []*models.Challenge
}
