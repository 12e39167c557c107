package challenge

import (
	"time"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
)

// SaveChallengeInput contains parameters for saving a challenge
type SaveChallengeInput struct {
	Challenge *models.Challenge
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

// ListActiveForUserInput contains parameters for listing active challenges
type ListActiveForUserInput struct {
	UserID string
}

// ListActiveForUserOutput contains a user's accepted and in-progress challenges
type ListActiveForUserOutput struct {
	Challenges []*models.Challenge
}

// ListExpiredPendingInput contains parameters for listing expired pending challenges
type ListExpiredPendingInput struct {
	Now   time.Time
	Limit int64
}

// ListExpiredPendingOutput contains pending challenges past their expiry
type ListExpiredPendingOutput struct {
	Challenges []*models.Challenge
}

// UpdateChallengeStatusInput contains the full updated challenge and the
// status it is expected to still hold in the store
type UpdateChallengeStatusInput struct {
	Challenge      *models.Challenge
	ExpectedStatus models.ChallengeStatus
}

// UpdateChallengeStatusOutput reports whether the conditional update won
type UpdateChallengeStatusOutput struct {
	Updated bool
}
