package settlement

import (
	"io"

	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	"github.com/Talha3818/gaming-site-sub001/internal/evidence"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
	"github.com/Talha3818/gaming-site-sub001/internal/notify"
	accountRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/account"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
)

// Config holds configuration and dependencies for the settlement service
type Config struct {
	ChallengeRepo challengeRepo.Repository
	AccountRepo   accountRepo.Repository
	Notifier      notify.Notifier
	Clock         clock.Clock

	// EvidenceStore is optional; when set, raw evidence payloads supplied to
	// Complete are uploaded before any state changes
	EvidenceStore evidence.Store
}

// EvidenceUpload carries a raw screenshot to store before settling
type EvidenceUpload struct {
	Key         string
	ContentType string
	Body        io.Reader
}

// CompleteInput contains parameters for settling a challenge
type CompleteInput struct {
	ChallengeID string
	WinnerID    string

	// WinnerScreenshot is an already-stored evidence reference
	WinnerScreenshot string

	// LoserScreenshot is an already-stored evidence reference, if any
	LoserScreenshot string

	// Evidence, when set, is uploaded through the evidence store and its URL
	// replaces WinnerScreenshot; upload failure aborts before any mutation
	Evidence *EvidenceUpload
}

// CompleteOutput contains the settled challenge and resulting balances
type CompleteOutput struct {
	Challenge     *models.Challenge
	TotalPot      int64
	WinnerBalance int64
	LoserBalance  int64
}

// AdminResolveInput contains parameters for admin arbitration
type AdminResolveInput struct {
	ChallengeID string
	AdminID     string
	Decision    models.AdminDecision

	// WinnerScreenshot is an optional evidence reference backing the decision
	WinnerScreenshot string
}

// AdminResolveOutput contains the arbitrated challenge. For a winner decision
// TotalPot is the amount credited; for a refund it is zero and each player
// got their own bet back.
type AdminResolveOutput struct {
	Challenge     *models.Challenge
	WinnerID      string
	TotalPot      int64
	WinnerBalance int64
	LoserBalance  int64
}
