package scheduler

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Talha3818/gaming-site-sub001/internal/services/scheduler Service

// Service defines the interface for match scheduling checks
type Service interface {
	// CheckConflict reports whether a proposed match window collides with any
	// participant's existing bookings
	CheckConflict(ctx context.Context, input *CheckConflictInput) (*CheckConflictOutput, error)

	// SuggestNextSlot finds the first conflict-free slot for the participants
	SuggestNextSlot(ctx context.Context, input *SuggestNextSlotInput) (*SuggestNextSlotOutput, error)
}
