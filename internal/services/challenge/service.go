package challenge

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Talha3818/gaming-site-sub001/internal/common/clock"
	"github.com/Talha3818/gaming-site-sub001/internal/common/uuid"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
	"github.com/Talha3818/gaming-site-sub001/internal/notify"
	accountRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/account"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
	"github.com/Talha3818/gaming-site-sub001/internal/services/scheduler"
)

const (
	defaultMinBet             = 10
	defaultMaxBet             = 10000
	defaultMinDurationMinutes = 15
	defaultMaxDurationMinutes = 120
	defaultMinLeadTime        = 30 * time.Minute
	defaultExpiry             = 24 * time.Hour
	defaultMinExtendHours     = 1
	defaultMaxExtendHours     = 72
	defaultExpireSweepLimit   = 100
)

// supportedGames lists the titles a challenge may be played on
var supportedGames = map[models.GameTitle]bool{
	models.GameTitleFIFA:      true,
	models.GameTitleEFootball: true,
	models.GameTitleCODM:      true,
	models.GameTitlePUBG:      true,
}

// service implements the Service interface
type service struct {
	config        *Config
	challengeRepo challengeRepo.Repository
	accountRepo   accountRepo.Repository
	scheduler     scheduler.Service
	notifier      notify.Notifier
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new challenge service
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

	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Set default values if not provided
	if cfg.MinBet == 0 {
		cfg.MinBet = defaultMinBet
	}
	if cfg.MaxBet == 0 {
		cfg.MaxBet = defaultMaxBet
	}
	if cfg.MinDurationMinutes == 0 {
		cfg.MinDurationMinutes = defaultMinDurationMinutes
	}
	if cfg.MaxDurationMinutes == 0 {
		cfg.MaxDurationMinutes = defaultMaxDurationMinutes
	}
	if cfg.MinLeadTime == 0 {
		cfg.MinLeadTime = defaultMinLeadTime
	}
	if cfg.DefaultExpiry == 0 {
		cfg.DefaultExpiry = defaultExpiry
	}
	if cfg.MinExtendHours == 0 {
		cfg.MinExtendHours = defaultMinExtendHours
	}
	if cfg.MaxExtendHours == 0 {
		cfg.MaxExtendHours = defaultMaxExtendHours
	}

	return &service{
		config:        cfg,
		challengeRepo: cfg.ChallengeRepo,
		accountRepo:   cfg.AccountRepo,
		scheduler:     cfg.Scheduler,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateChallenge validates terms, escrows the challenger's bet and opens a
// pending challenge
func (s *service) CreateChallenge(ctx context.Context, input *CreateChallengeInput) (*CreateChallengeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ChallengerID == "" {
		return nil, errors.New("challenger ID is required")
	}

	if !supportedGames[input.Game] {
		return nil, ErrInvalidGame
	}

	if input.BetAmount < s.config.MinBet || input.BetAmount > s.config.MaxBet {
		return nil, ErrInvalidBetAmount
	}

	if input.DurationMinutes < s.config.MinDurationMinutes || input.DurationMinutes > s.config.MaxDurationMinutes {
		return nil, ErrInvalidDuration
	}

	now := s.clock.Now()
	if input.ScheduledMatchTime.Before(now.Add(s.config.MinLeadTime)) {
		return nil, ErrInvalidMatchTime
	}

	// Validate the slot before any money moves
	conflict, err := s.scheduler.CheckConflict(ctx, &scheduler.CheckConflictInput{
		UserIDs:         []string{input.ChallengerID},
		Start:           input.ScheduledMatchTime,
		DurationMinutes: input.DurationMinutes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check scheduling conflict: %w", err)
	}
	if conflict.HasConflict {
		return nil, &ConflictError{Conflicts: conflict.Conflicts}
	}

	// Escrow the challenger's bet
	debit, err := s.accountRepo.Debit(ctx, &accountRepo.DebitInput{
		AccountID: input.ChallengerID,
		Amount:    input.BetAmount,
	})
	if err != nil {
		return nil, s.mapLedgerError(err)
	}

	ch := &models.Challenge{
		ID:                   s.uuidGenerator.NewUUID(),
		Game:                 input.Game,
		ChallengerID:         input.ChallengerID,
		BetAmount:            input.BetAmount,
		ScheduledMatchTime:   input.ScheduledMatchTime,
		MatchDurationMinutes: input.DurationMinutes,
		Status:               models.ChallengeStatusPending,
		ExpiresAt:            now.Add(s.config.DefaultExpiry),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.challengeRepo.SaveChallenge(ctx, &challengeRepo.SaveChallengeInput{
		Challenge: ch,
	}); err != nil {
		// Return the escrow; the challenge was never persisted
		s.refund(ctx, input.ChallengerID, input.BetAmount, ch.ID)
		return nil, fmt.Errorf("failed to save challenge: %w", err)
	}

	s.notify(ctx, ch.ChallengerID, notify.EventPaymentUpdate, ch.ID,
		fmt.Sprintf("%d escrowed for your %s challenge", ch.BetAmount, ch.Game))

	return &CreateChallengeOutput{
		Challenge: ch,
		Balance:   debit.Balance,
	}, nil
}

// AcceptChallenge escrows the accepter's bet and moves a pending challenge to
// accepted. Racing accepters are resolved by the conditional status update;
// the loser gets their escrow back and an invalid-state error.
func (s *service) AcceptChallenge(ctx context.Context, input *AcceptChallengeInput) (*AcceptChallengeOutput, error) {
	if input == nil || input.ChallengeID == "" || input.AccepterID == "" {
		return nil, errors.New("challenge ID and accepter ID are required")
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.Status != models.ChallengeStatusPending {
		return nil, ErrInvalidState
	}

	if ch.ChallengerID == input.AccepterID {
		return nil, ErrSelfAccept
	}

	now := s.clock.Now()
	if ch.Expired(now) {
		// Lazy expiry: age the challenge out instead of accepting it
		s.expireOne(ctx, ch, now)
		return nil, ErrChallengeExpired
	}

	// Re-validate the slot for the accepter
	conflict, err := s.scheduler.CheckConflict(ctx, &scheduler.CheckConflictInput{
		UserIDs:            []string{input.AccepterID},
		Start:              ch.ScheduledMatchTime,
		DurationMinutes:    ch.MatchDurationMinutes,
		ExcludeChallengeID: ch.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check scheduling conflict: %w", err)
	}
	if conflict.HasConflict {
		return nil, &ConflictError{Conflicts: conflict.Conflicts}
	}

	// Escrow the accepter's bet
	debit, err := s.accountRepo.Debit(ctx, &accountRepo.DebitInput{
		AccountID: input.AccepterID,
		Amount:    ch.BetAmount,
	})
	if err != nil {
		return nil, s.mapLedgerError(err)
	}

	updated := *ch
	updated.AccepterID = input.AccepterID
	updated.Status = models.ChallengeStatusAccepted
	updated.UpdatedAt = now

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusPending,
	})
	if err != nil {
		// The transition outcome is unknown here; hold the escrow rather than
		// risk refunding a bet on a transition that committed
		log.Printf("accept of challenge %s failed with escrow held for %s: %v", ch.ID, input.AccepterID, err)
		return nil, fmt.Errorf("failed to accept challenge: %w", err)
	}
	if !result.Updated {
		// Someone else won the race; give the escrow back
		s.refund(ctx, input.AccepterID, ch.BetAmount, ch.ID)
		return nil, ErrInvalidState
	}

	s.notify(ctx, updated.ChallengerID, notify.EventMatchUpdate, updated.ID,
		"your challenge has been accepted")
	s.notify(ctx, updated.AccepterID, notify.EventPaymentUpdate, updated.ID,
		fmt.Sprintf("%d escrowed for the %s match", updated.BetAmount, updated.Game))

	return &AcceptChallengeOutput{
		Challenge: &updated,
		Balance:   debit.Balance,
	}, nil
}

// StartMatch records the room codes and moves an accepted challenge to
// in-progress
func (s *service) StartMatch(ctx context.Context, input *StartMatchInput) (*StartMatchOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("challenge ID is required")
	}

	if input.RoomCode == "" {
		return nil, errors.New("room code is required")
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.Status != models.ChallengeStatusAccepted {
		return nil, ErrInvalidState
	}

	if !input.Admin && !ch.IsParticipant(input.ActorID) {
		return nil, ErrNotParticipant
	}

	now := s.clock.Now()

	updated := *ch
	updated.RoomCode = input.RoomCode
	updated.AdminRoomCode = input.AdminRoomCode
	updated.RoomCodeProvidedAt = now
	updated.RoomCodeProvidedBy = input.ActorID
	updated.MatchTime = now
	updated.Status = models.ChallengeStatusInProgress
	updated.UpdatedAt = now

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusAccepted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}
	if !result.Updated {
		return nil, ErrInvalidState
	}

	for _, userID := range []string{updated.ChallengerID, updated.AccepterID} {
		s.notify(ctx, userID, notify.EventMatchUpdate, updated.ID,
			fmt.Sprintf("your match is starting, room code: %s", updated.RoomCode))
	}

	return &StartMatchOutput{Challenge: &updated}, nil
}

// CancelChallenge cancels a pending challenge and refunds the challenger. The
// refund happens only after winning the conditional transition, so it is paid
// exactly once even when cancellation races expiry or acceptance.
func (s *service) CancelChallenge(ctx context.Context, input *CancelChallengeInput) (*CancelChallengeOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("challenge ID is required")
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.Status != models.ChallengeStatusPending {
		return nil, ErrInvalidState
	}

	if ch.ChallengerID != input.ActorID {
		return nil, ErrNotParticipant
	}

	updated := *ch
	updated.Status = models.ChallengeStatusCancelled
	updated.UpdatedAt = s.clock.Now()

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel challenge: %w", err)
	}
	if !result.Updated {
		return nil, ErrInvalidState
	}

	credit, err := s.accountRepo.Credit(ctx, &accountRepo.CreditInput{
		AccountID: updated.ChallengerID,
		Amount:    updated.BetAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to refund challenger: %w", err)
	}

	s.notify(ctx, updated.ChallengerID, notify.EventPaymentUpdate, updated.ID,
		fmt.Sprintf("challenge cancelled, %d refunded", updated.BetAmount))

	return &CancelChallengeOutput{
		Challenge: &updated,
		Refunded:  updated.BetAmount,
		Balance:   credit.Balance,
	}, nil
}

// ExtendExpiry pushes out the expiry of a pending challenge
func (s *service) ExtendExpiry(ctx context.Context, input *ExtendExpiryInput) (*ExtendExpiryOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("challenge ID is required")
	}

	if input.Hours < s.config.MinExtendHours || input.Hours > s.config.MaxExtendHours {
		return nil, ErrInvalidExtension
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.Status != models.ChallengeStatusPending {
		return nil, ErrInvalidState
	}

	if ch.ChallengerID != input.ActorID {
		return nil, ErrNotParticipant
	}

	now := s.clock.Now()

	updated := *ch
	updated.ExpiresAt = now.Add(time.Duration(input.Hours) * time.Hour)
	updated.UpdatedAt = now

	// Written through the conditional update so an extension cannot clobber a
	// concurrent accept or cancel
	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extend expiry: %w", err)
	}
	if !result.Updated {
		return nil, ErrInvalidState
	}

	return &ExtendExpiryOutput{Challenge: &updated}, nil
}

// DisputeChallenge flags a completed challenge as contested. The settled
// payout is never reverted; the flag exists for admins to review.
func (s *service) DisputeChallenge(ctx context.Context, input *DisputeChallengeInput) (*DisputeChallengeOutput, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("challenge ID is required")
	}

	if input.Reason == "" {
		return nil, errors.New("dispute reason is required")
	}

	ch, err := s.getChallenge(ctx, input.ChallengeID)
	if err != nil {
		return nil, err
	}

	if ch.Status != models.ChallengeStatusCompleted {
		return nil, ErrInvalidState
	}

	if !ch.IsParticipant(input.ActorID) {
		return nil, ErrNotParticipant
	}

	updated := *ch
	updated.IsDisputed = true
	updated.DisputeReason = input.Reason
	updated.UpdatedAt = s.clock.Now()

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dispute challenge: %w", err)
	}
	if !result.Updated {
		return nil, ErrInvalidState
	}

	opponent := updated.Opponent(input.ActorID)
	if opponent != "" {
		s.notify(ctx, opponent, notify.EventMatchUpdate, updated.ID,
			"the match result has been disputed")
	}

	return &DisputeChallengeOutput{Challenge: &updated}, nil
}

// ExpireOverdue cancels and refunds pending challenges past their expiry. It
// is safe to run concurrently with itself and with user cancellations; the
// conditional transition guarantees each refund is paid once.
func (s *service) ExpireOverdue(ctx context.Context, input *ExpireOverdueInput) (*ExpireOverdueOutput, error) {
	limit := int64(defaultExpireSweepLimit)
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	now := s.clock.Now()

	overdue, err := s.challengeRepo.ListExpiredPending(ctx, &challengeRepo.ListExpiredPendingInput{
		Now:   now,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expired challenges: %w", err)
	}

	expired := 0
	for _, ch := range overdue.Challenges {
		if s.expireOne(ctx, ch, now) {
			expired++
		}
	}

	return &ExpireOverdueOutput{Expired: expired}, nil
}

// GetChallenge retrieves a challenge by ID
func (s *service) GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("challenge ID is required")
	}

	return s.getChallenge(ctx, input.ChallengeID)
}

// ListChallengesForUser retrieves all challenges a user participates in
func (s *service) ListChallengesForUser(ctx context.Context, input *ListChallengesForUserInput) (*ListChallengesForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID is required")
	}

	result, err := s.challengeRepo.ListChallengesForUser(ctx, &challengeRepo.ListChallengesForUserInput{
		UserID: input.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	return &ListChallengesForUserOutput{Challenges: result.Challenges}, nil
}

// expireOne moves a single pending challenge to cancelled and refunds the
// challenger; reports whether this caller performed the transition
func (s *service) expireOne(ctx context.Context, ch *models.Challenge, now time.Time) bool {
	updated := *ch
	updated.Status = models.ChallengeStatusCancelled
	updated.UpdatedAt = now

	result, err := s.challengeRepo.UpdateChallengeStatus(ctx, &challengeRepo.UpdateChallengeStatusInput{
		Challenge:      &updated,
		ExpectedStatus: models.ChallengeStatusPending,
	})
	if err != nil {
		log.Printf("failed to expire challenge %s: %v", ch.ID, err)
		return false
	}
	if !result.Updated {
		// Another sweep or a user action got there first
		return false
	}

	if _, err := s.accountRepo.Credit(ctx, &accountRepo.CreditInput{
		AccountID: updated.ChallengerID,
		Amount:    updated.BetAmount,
	}); err != nil {
		log.Printf("failed to refund expired challenge %s: %v", ch.ID, err)
		return true
	}

	s.notify(ctx, updated.ChallengerID, notify.EventPaymentUpdate, updated.ID,
		fmt.Sprintf("challenge expired, %d refunded", updated.BetAmount))

	return true
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

// refund is a best-effort return of escrow after a failed transition
func (s *service) refund(ctx context.Context, accountID string, amount int64, challengeID string) {
	if _, err := s.accountRepo.Credit(ctx, &accountRepo.CreditInput{
		AccountID: accountID,
		Amount:    amount,
	}); err != nil {
		log.Printf("failed to refund %d to %s for challenge %s: %v", amount, accountID, challengeID, err)
	}
}

// mapLedgerError translates account repository errors into service errors
func (s *service) mapLedgerError(err error) error {
	switch {
	case errors.Is(err, accountRepo.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, accountRepo.ErrAccountNotFound):
		return ErrAccountNotFound
	}
	return fmt.Errorf("ledger operation failed: %w", err)
}

// notify emits a best-effort event; delivery failures are logged and never
// propagated to the caller
func (s *service) notify(ctx context.Context, userID string, kind notify.EventKind, challengeID, message string) {
	if err := s.notifier.Notify(ctx, userID, &notify.Event{
		Kind:        kind,
		ChallengeID: challengeID,
		Message:     message,
	}); err != nil {
		log.Printf("failed to notify %s about %s: %v", userID, challengeID, err)
	}
}
