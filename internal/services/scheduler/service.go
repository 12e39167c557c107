package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

// Define errors
var (
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilChallengeRepo = errors.New("challenge repository cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNoFreeSlot       = errors.New("no free slot within the search horizon")
)

const (
	defaultBuffer        = 30 * time.Minute
	defaultSlotInterval  = 30 * time.Minute
	defaultMaxSlotProbes = 336
)

// service implements the Service interface
type service struct {
	challengeRepo challengeRepo.Repository
	clock         clock.Clock
	buffer        time.Duration
	slotInterval  time.Duration
	maxSlotProbes int
}

// New creates a new scheduler service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChallengeRepo == nil {
		return nil, ErrNilChallengeRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	// Set default values if not provided
	buffer := cfg.Buffer
	if buffer == 0 {
		buffer = defaultBuffer
	}

	slotInterval := cfg.SlotInterval
	if slotInterval == 0 {
		slotInterval = defaultSlotInterval
	}

	maxSlotProbes := cfg.MaxSlotProbes
	if maxSlotProbes == 0 {
		maxSlotProbes = defaultMaxSlotProbes
	}

	return &service{
		challengeRepo: cfg.ChallengeRepo,
		clock:         cfg.Clock,
		buffer:        buffer,
		slotInterval:  slotInterval,
		maxSlotProbes: maxSlotProbes,
	}, nil
}

// CheckConflict reports whether a proposed match window collides with any
// participant's accepted or in-progress bookings
func (s *service) CheckConflict(ctx context.Context, input *CheckConflictInput) (*CheckConflictOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.UserIDs) == 0 {
		return nil, errors.New("at least one user ID is required")
	}

	if input.DurationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}

	// Expand the candidate window by the buffer on each side
	candidate := models.Window{
		Start: input.Start.Add(-s.buffer),
		End:   input.Start.Add(time.Duration(input.DurationMinutes) * time.Minute).Add(s.buffer),
	}

	conflicts := make(map[string][]*models.Challenge)

	for _, userID := range input.UserIDs {
		active, err := s.challengeRepo.ListActiveForUser(ctx, &challengeRepo.ListActiveForUserInput{
			UserID: userID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list active challenges for %s: %w", userID, err)
		}

		for _, ch := range active.Challenges {
			if ch.ID == input.ExcludeChallengeID {
				continue
			}

			if ch.MatchWindow().Overlaps(candidate) {
				conflicts[userID] = append(conflicts[userID], ch)
			}
		}
	}

	return &CheckConflictOutput{
		HasConflict: len(conflicts) > 0,
		Conflicts:   conflicts,
	}, nil
}

// SuggestNextSlot probes consecutive aligned slots starting 30 minutes from
// now and returns the first one free for every participant. The search is
// greedy and bounded; it never looks past MaxSlotProbes slots.
func (s *service) SuggestNextSlot(ctx context.Context, input *SuggestNextSlotInput) (*SuggestNextSlotOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.UserIDs) == 0 {
		return nil, errors.New("at least one user ID is required")
	}

	if input.DurationMinutes <= 0 {
		return nil, errors.New("duration must be positive")
	}

	base := alignUp(s.clock.Now().Add(s.slotInterval), s.slotInterval)

	for i := 0; i < s.maxSlotProbes; i++ {
		slot := base.Add(time.Duration(i) * s.slotInterval)

		result, err := s.CheckConflict(ctx, &CheckConflictInput{
			UserIDs:         input.UserIDs,
			Start:           slot,
			DurationMinutes: input.DurationMinutes,
		})
		if err != nil {
			return nil, err
		}

		if !result.HasConflict {
			return &SuggestNextSlotOutput{Start: slot}, nil
		}
	}

	return nil, ErrNoFreeSlot
}

// alignUp rounds t up to the next interval boundary
func alignUp(t time.Time, interval time.Duration) time.Time {
	rounded := t.Truncate(interval)
	if rounded.Before(t) {
		rounded = rounded.Add(interval)
	}
	return rounded
}
