package challenge

import (
	"context"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/Talha3818/gaming-site-sub001/internal/services/challenge Service

// Service defines the interface for challenge lifecycle operations
type Service interface {
	// CreateChallenge validates terms, escrows the challenger's bet and opens
	// a pending challenge
	CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error)

	// AcceptChallenge escrows the accepter's bet and moves a pending
	// challenge to accepted
	AcceptChallenge(ctx context.Context, input *AcceptChallengeInput) (*AcceptChallengeOutput, error)

	// StartMatch records the room codes and moves an accepted challenge to
	// in-progress
	StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error)

	// CancelChallenge cancels a pending challenge and refunds the challenger
	CancelChallenge(ctx context.Context, input *CancelChallengeInput) (*CancelChallengeOutput, error)

	// ExtendExpiry pushes out the expiry of a pending challenge
	ExtendExpiry(ctx context.Context, input *ExtendExpiryInput) (*ExtendExpiryOutput, error)

	// DisputeChallenge flags a completed challenge as contested
	DisputeChallenge(ctx context.Context, input *DisputeChallengeInput) (*DisputeChallengeOutput, error)

	// ExpireOverdue cancels and refunds pending challenges past their expiry
	ExpireOverdue(ctx context.Context, input *ExpireOverdueInput) (*ExpireOverdueOutput, error)

	// GetChallenge retrieves a challenge by ID
	GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error)

	// ListChallengesForUser retrieves all challenges a user participates in
	ListChallengesForUser(ctx context.Context, input *ListChallengesForUserInput) (*ListChallengesForUserOutput, error)
}
