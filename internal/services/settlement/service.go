package settlement

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	"github.com/Talha3818/gaming-site-sub001/internal/evidence"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
	"github.com/Talha3818/gaming-site-sub001/internal/notify"
	accountRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/account"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
)

// service implements the Service interface
type service struct {
	challengeRepo challengeRepo.Repository
	accountRepo   accountRepo.Repository
	notifier      notify.Notifier
	clock         clock.Clock
	evidenceStore evidence.Store
}

// New creates a new settlement service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChallengeRepo == nil {
		return nil, ErrNilChallengeRepo
	}

	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		challengeRepo: cfg.ChallengeRepo,
		accountRepo:   cfg.AccountRepo,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		evidenceStore: cfg.EvidenceStore,
	}, nil
}

// Complete settles an in-progress challenge. The transition to completed is a
// conditional update on the current status, so a second caller observes the
// challenge already settled and gets ErrInvalidState; the pot is credited
// exactly once.
func (s *service) Complete(ctx context.Context, input *CompleteInput) (*CompleteOutput, error) {
	if input == nil || input.ChallengeID == "" || input.WinnerID == "" {
		return nil, errors.New("challenge ID and winner ID are required")
	}

	winnerScreenshot := input.WinnerScreenshot

	// Upload evidence before touching any state, so a store failure rejects
	// the whole operation cleanly
	if input.Evidence != nil {
		if s.evidenceStore == nil {
			return nil, errors.New("no evidence store configured")
		}

		stored, err := s.evidenceStore.Put(ctx, &evidence.PutInput{
			Key:         input.Evidence.Key,
			ContentType: input.Evidence.ContentType,
			Body:        input.Evidence.Body,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to store evidence: %w", err)
		}
		winnerScreenshot = stored.URL
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.AccepterID == "" {
		return nil, ErrMissingParticipant
	}

	if ch.Status != models.ChallengeStatusInProgress {
		return nil, ErrInvalidState
	}

	if !ch.IsParticipant(input.WinnerID) {
		return nil, ErrNotParticipant
	}

	return s.settle(ctx, ch, input.WinnerID, winnerScreenshot, input.LoserScreenshot, "")
}

// AdminResolve arbitrates an in-progress challenge: designates a winner or
// refunds both bets. The two outcomes share one conditional transition, so
// they are mutually exclusive.
func (s *service) AdminResolve(ctx context.Context, input *AdminResolveInput) (*AdminResolveOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("challenge ID is required")
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.AccepterID == "" {
		return nil, ErrMissingParticipant
	}

	if ch.Status != models.ChallengeStatusInProgress {
		return nil, ErrInvalidState
	}

	switch input.Decision {
	case models.AdminDecisionRefund:
		return s.refundBoth(ctx, ch)

	case models.AdminDecisionChallenger, models.AdminDecisionAccepter:
		winnerID := ch.ChallengerID
		if input.Decision == models.AdminDecisionAccepter {
			winnerID = ch.AccepterID
		}

		settled, err := s.settle(ctx, ch, winnerID, input.WinnerScreenshot, "", input.Decision)
		if err != nil {
			return nil, err
		}

		return &AdminResolveOutput{
			Challenge:     settled.Challenge,
			WinnerID:      winnerID,
			TotalPot:      settled.TotalPot,
			WinnerBalance: settled.WinnerBalance,
			LoserBalance:  settled.LoserBalance,
		}, nil
	}

	return nil, ErrInvalidDecision
}

// settle performs the single payout transition shared by player submission
// and admin arbitration. Effects, in order: completed status with winner and
// loser recorded, pot credited, stats incremented.
func (s *service) settle(ctx context.Context, ch *models.Challenge, winnerID, winnerScreenshot, loserScreenshot string, decision models.AdminDecision) (*CompleteOutput, error) {
	loserID := ch.Opponent(winnerID)

	// Both account records must exist before anything is written; a missing
	// record aborts the operation whole, to be retried whole.
	if _, err := s.getAccount(ctx, winnerID); err != nil {
		return nil, err
	}
	loser, err := s.getAccount(ctx, loserID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	updated := *ch
	updated.Status = models.ChallengeStatusCompleted
	updated.WinnerID = winnerID
	updated.LoserID = loserID
	updated.WinnerScreenshot = winnerScreenshot
	updated.LoserScreenshot = loserScreenshot
	updated.AdminDecision = decision
	updated.CompletedAt = now
	updated.UpdatedAt = now

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusInProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete challenge: %w", err)
	}
	if !result.Updated {
		// Settled by a racing caller
		return nil, ErrInvalidState
	}

	pot := updated.TotalPot()

	credit, err := s.accountRepo.Credit(ctx, &accountRepo.CreditInput{
		AccountID: winnerID,
		Amount:    pot,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to credit winner: %w", err)
	}

	if err := s.accountRepo.IncrementWin(ctx, &accountRepo.IncrementWinInput{
		AccountID: winnerID,
		Earnings:  updated.BetAmount,
	}); err != nil {
		return nil, fmt.Errorf("failed to record win: %w", err)
	}

	if err := s.accountRepo.IncrementLoss(ctx, &accountRepo.IncrementLossInput{
		AccountID: loserID,
	}); err != nil {
		return nil, fmt.Errorf("failed to record loss: %w", err)
	}

	s.notify(ctx, winnerID, notify.EventPaymentUpdate, updated.ID,
		fmt.Sprintf("you won the match, %d credited", pot))
	s.notify(ctx, loserID, notify.EventMatchUpdate, updated.ID,
		"the match has been settled")

	return &CompleteOutput{
		Challenge:     &updated,
		TotalPot:      pot,
		WinnerBalance: credit.Balance,
		LoserBalance:  loser.Balance,
	}, nil
}

// refundBoth returns each participant their own bet with no stat changes
func (s *service) refundBoth(ctx context.Context, ch *models.Challenge) (*AdminResolveOutput, error) {
	// Verify both records up front; no partial refunds
	if _, err := s.getAccount(ctx, ch.ChallengerID); err != nil {
		return nil, err
	}
	if _, err := s.getAccount(ctx, ch.AccepterID); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	updated := *ch
	updated.Status = models.ChallengeStatusCompleted
	updated.AdminDecision = models.AdminDecisionRefund
	updated.CompletedAt = now
	updated.UpdatedAt = now

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusInProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve challenge: %w", err)
	}
	if !result.Updated {
		return nil, ErrInvalidState
	}

	challengerCredit, err := s.accountRepo.Credit(ctx, &accountRepo.CreditInput{
		AccountID: updated.ChallengerID,
		Amount:    updated.BetAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to refund challenger: %w", err)
	}

	accepterCredit, err := s.accountRepo.Credit(ctx, &accountRepo.CreditInput{
		AccountID: updated.AccepterID,
		Amount:    updated.BetAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to refund accepter: %w", err)
	}

	for _, userID := range []string{updated.ChallengerID, updated.AccepterID} {
		s.notify(ctx, userID, notify.EventPaymentUpdate, updated.ID,
			fmt.Sprintf("match refunded by admin, %d returned", updated.BetAmount))
	}

	return &AdminResolveOutput{
		Challenge:     &updated,
		TotalPot:      0,
		WinnerBalance: challengerCredit.Balance,
		LoserBalance:  accepterCredit.Balance,
	}, nil
}

// getChallenge loads a challenge, mapping the repository's not-found error
func (s *service) getChallenge(ctx context.Context, challengeID string) (*models.Challenge, error) {
	ch, err := s.challengeRepo.GetChallenge(ctx, &challengeRepo.GetChallengeInput{
		ChallengeID: challengeID,
	})
	if err != nil {
		if errors.Is(err, challengeRepo.ErrChallengeNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return ch, nil
}

// getAccount loads an account, mapping the repository's not-found error
func (s *service) getAccount(ctx context.Context, accountID string) (*models.Account, error) {
	acct, err := s.accountRepo.GetAccount(ctx, &accountRepo.GetAccountInput{
		AccountID: accountID,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return acct, nil
}

// notify emits a best-effort event; failures are logged and swallowed
func (s *service) notify(ctx context.Context, userID string, kind notify.EventKind, challengeID, message string) {
	if err := s.notifier.Notify(ctx, userID, &notify.Event{
		Kind:        kind,
		ChallengeID: challengeID,
		Message:     message,
	}); err != nil {
		log.Printf("failed to notify %s about %s: %v", userID, challengeID, err)
	}
}
