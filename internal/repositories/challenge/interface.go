package challenge

import (
	"context"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge Repository

// Repository defines the interface for challenge persistence
type Repository interface {
	// SaveChallenge persists a challenge
	SaveChallenge(ctx context.Context, input *SaveChallengeInput) error

	// GetChallenge retrieves a challenge by ID
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error)

	// ListChallengesForUser retrieves all challenges a user participates in
	ListChallengesForUser(ctx context.Context, input *ListChallengesForUserInput) (*ListChallengesForUserOutput, error)

	// ListActiveForUser retrieves a user's accepted and in-progress challenges
	ListActiveForUser(ctx context.Context, input *ListActiveForUserInput) (*ListActiveForUserOutput, error)

	// ListExpiredPending retrieves pending challenges whose expiry has passed
	ListExpiredPending(ctx context.Context, input *ListExpiredPendingInput) (*ListExpiredPendingOutput, error)

	// UpdateChallengeStatus conditionally replaces a challenge only when its
	// persisted status still matches the expected one
	UpdateChallengeStatus(ctx context.Context, input *UpdateChallengeStatusInput) (*UpdateChallengeStatusOutput, error)
}
