package scheduler

import (
	"time"

	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

// Config holds configuration and dependencies for the scheduler service
type Config struct {
	// ChallengeRepo provides read access to persisted challenges
	ChallengeRepo challengeRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// Buffer is the margin added to each side of a match window when
	// checking for collisions; defaults to 30 minutes
	Buffer time.Duration

	// SlotInterval is the alignment of suggested slots; defaults to 30 minutes
	SlotInterval time.Duration

	// MaxSlotProbes bounds the search in SuggestNextSlot; defaults to 336
	// (one week of 30-minute slots)
	MaxSlotProbes int
}

// CheckConflictInput describes a candidate match window
type CheckConflictInput struct {
	// UserIDs are the participants to check; each is checked independently
	UserIDs []string

	// Start is the proposed match start time
	Start time.Time

	// DurationMinutes is the proposed match length
	DurationMinutes int

	// ExcludeChallengeID is skipped during the check, so a challenge can be
	// re-validated against everything but itself
	ExcludeChallengeID string
}

// CheckConflictOutput reports collisions per participant
type CheckConflictOutput struct {
	HasConflict bool

	// Conflicts maps each user ID to the bookings that collide with the
	// candidate window
	Conflicts map[string][]*models.Challenge
}

// SuggestNextSlotInput describes the slot search parameters
type SuggestNextSlotInput struct {
	UserIDs         []string
	DurationMinutes int
}

// SuggestNextSlotOutput contains the first conflict-free slot found
type SuggestNextSlotOutput struct {
	Start time.Time
}
