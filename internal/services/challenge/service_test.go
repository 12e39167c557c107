package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/Talha3818/gaming-site-sub001/internal/common/clock/mocks"
	uuidMocks "github.com/Talha3818/gaming-site-sub001/internal/common/uuid/mocks"
	"github.com/Talha3818/gaming-site-sub001/internal/models"
	notifyMocks "github.com/Talha3818/gaming-site-sub001/internal/notify/mocks"
	accountRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/account"
	accountMocks "github.com/Talha3818/gaming-site-sub001/internal/repositories/account/mocks"
	challengeRepo "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge"
	challengeMocks "github.com/Talha3818/gaming-site-sub001/internal/repositories/challenge/mocks"
	"github.com/Talha3818/gaming-site-sub001/internal/services/scheduler"
	schedulerMocks "github.com/Talha3818/gaming-site-sub001/internal/services/scheduler/mocks"
)

type ChallengeServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockChallengeRepo *challengeMocks.MockRepository
	mockAccountRepo   *accountMocks.MockRepository
	mockScheduler     *schedulerMocks.MockService
	mockNotifier      *notifyMocks.MockNotifier
	mockClock         *clockMocks.MockClock
	mockUUID          *uuidMocks.MockUUID
	challengeService  Service
	ctx               context.Context

	// Test data
	testTime        time.Time
	testChallengeID string
	testChallenger  string
	testAccepter    string

	// Reusable fixtures
	pendingChallenge  *models.Challenge
	acceptedChallenge *models.Challenge

	noConflict *scheduler.CheckConflictOutput
}

func (s *ChallengeServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChallengeRepo = challengeMocks.NewMockRepository(s.mockCtrl)
	s.mockAccountRepo = accountMocks.NewMockRepository(s.mockCtrl)
	s.mockScheduler = schedulerMocks.NewMockService(s.mockCtrl)
	s.mockNotifier = notifyMocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testChallengeID = "test-challenge-id"
	s.testChallenger = "test-challenger-id"
	s.testAccepter = "test-accepter-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockNotifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Initialize reusable fixtures
	s.pendingChallenge = &models.Challenge{
		ID:                   s.testChallengeID,
		Game:                 models.GameTitleFIFA,
		ChallengerID:         s.testChallenger,
		BetAmount:            100,
		ScheduledMatchTime:   s.testTime.Add(2 * time.Hour),
		MatchDurationMinutes: 30,
		Status:               models.ChallengeStatusPending,
		ExpiresAt:            s.testTime.Add(24 * time.Hour),
		CreatedAt:            s.testTime,
		UpdatedAt:            s.testTime,
	}

	s.acceptedChallenge = &models.Challenge{
		ID:                   s.testChallengeID,
		Game:                 models.GameTitleFIFA,
		ChallengerID:         s.testChallenger,
		AccepterID:           s.testAccepter,
		BetAmount:            100,
		ScheduledMatchTime:   s.testTime.Add(2 * time.Hour),
		MatchDurationMinutes: 30,
		Status:               models.ChallengeStatusAccepted,
		ExpiresAt:            s.testTime.Add(24 * time.Hour),
		CreatedAt:            s.testTime,
		UpdatedAt:            s.testTime,
	}

	s.noConflict = &scheduler.CheckConflictOutput{
		HasConflict: false,
		Conflicts:   map[string][]*models.Challenge{},
	}

	svc, err := New(&Config{
		ChallengeRepo: s.mockChallengeRepo,
		AccountRepo:   s.mockAccountRepo,
		Scheduler:     s.mockScheduler,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.challengeService = svc
}

func (s *ChallengeServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChallengeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChallengeServiceTestSuite))
}

func (s *ChallengeServiceTestSuite) createInput() *CreateChallengeInput {
	return &CreateChallengeInput{
		ChallengerID:       s.testChallenger,
		Game:               models.GameTitleFIFA,
		BetAmount:          100,
		ScheduledMatchTime: s.testTime.Add(2 * time.Hour),
		DurationMinutes:    30,
	}
}

func (s *ChallengeServiceTestSuite) TestCreateChallenge() {
	input := s.createInput()

	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, &scheduler.CheckConflictInput{
			UserIDs:         []string{s.testChallenger},
			Start:           input.ScheduledMatchTime,
			DurationMinutes: 30,
		}).
		Return(s.noConflict, nil)

	s.mockAccountRepo.EXPECT().
		Debit(s.ctx, &accountRepo.DebitInput{AccountID: s.testChallenger, Amount: 100}).
		Return(&accountRepo.DebitOutput{Balance: 400}, nil)

	s.mockUUID.EXPECT().NewUUID().Return(s.testChallengeID)

	s.mockChallengeRepo.EXPECT().
		SaveChallenge(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.SaveChallengeInput) error {
			s.Equal(s.testChallengeID, in.Challenge.ID)
			s.Equal(models.ChallengeStatusPending, in.Challenge.Status)
			s.Empty(in.Challenge.AccepterID)
			s.True(in.Challenge.ExpiresAt.Equal(s.testTime.Add(24 * time.Hour)))
			return nil
		})

	out, err := s.challengeService.CreateChallenge(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(s.testChallengeID, out.Challenge.ID)
	s.Equal(int64(400), out.Balance)
	s.Equal(int64(25), out.Challenge.MatchFee())
	s.Equal(int64(150), out.Challenge.TotalPot())
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeBetOutOfBounds() {
	for _, bet := range []int64{5, 9, 10001, 50000} {
		input := s.createInput()
		input.BetAmount = bet

		_, err := s.challengeService.CreateChallenge(s.ctx, input)
		s.ErrorIs(err, ErrInvalidBetAmount)
	}
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeDurationOutOfBounds() {
	for _, minutes := range []int{0, 14, 121} {
		input := s.createInput()
		input.DurationMinutes = minutes

		_, err := s.challengeService.CreateChallenge(s.ctx, input)
		s.ErrorIs(err, ErrInvalidDuration)
	}
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeTooSoon() {
	input := s.createInput()
	input.ScheduledMatchTime = s.testTime.Add(10 * time.Minute)

	_, err := s.challengeService.CreateChallenge(s.ctx, input)
	s.ErrorIs(err, ErrInvalidMatchTime)
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeUnsupportedGame() {
	input := s.createInput()
	input.Game = "chess"

	_, err := s.challengeService.CreateChallenge(s.ctx, input)
	s.ErrorIs(err, ErrInvalidGame)
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeSchedulingConflict() {
	input := s.createInput()

	conflicting := &models.Challenge{ID: "other-challenge"}
	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, gomock.Any()).
		Return(&scheduler.CheckConflictOutput{
			HasConflict: true,
			Conflicts: map[string][]*models.Challenge{
				s.testChallenger: {conflicting},
			},
		}, nil)

	_, err := s.challengeService.CreateChallenge(s.ctx, input)

	var conflictErr *ConflictError
	s.Require().True(errors.As(err, &conflictErr))
	s.Len(conflictErr.Conflicts[s.testChallenger], 1)
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeInsufficientFunds() {
	input := s.createInput()

	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, gomock.Any()).
		Return(s.noConflict, nil)

	s.mockAccountRepo.EXPECT().
		Debit(s.ctx, gomock.Any()).
		Return(nil, accountRepo.ErrInsufficientFunds)

	_, err := s.challengeService.CreateChallenge(s.ctx, input)
	s.ErrorIs(err, ErrInsufficientFunds)
}

func (s *ChallengeServiceTestSuite) TestCreateChallengeRefundsOnSaveFailure() {
	input := s.createInput()

	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, gomock.Any()).
		Return(s.noConflict, nil)

	s.mockAccountRepo.EXPECT().
		Debit(s.ctx, gomock.Any()).
		Return(&accountRepo.DebitOutput{Balance: 400}, nil)

	s.mockUUID.EXPECT().NewUUID().Return(s.testChallengeID)

	s.mockChallengeRepo.EXPECT().
		SaveChallenge(s.ctx, gomock.Any()).
		Return(errors.New("store unavailable"))

	// The escrow goes back when the challenge cannot be persisted
	s.mockAccountRepo.EXPECT().
		Credit(s.ctx, &accountRepo.CreditInput{AccountID: s.testChallenger, Amount: 100}).
		Return(&accountRepo.CreditOutput{Balance: 500}, nil)

	_, err := s.challengeService.CreateChallenge(s.ctx, input)
	s.Error(err)
}

func (s *ChallengeServiceTestSuite) TestAcceptChallenge() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, &challengeRepo.GetChallengeInput{ChallengeID: s.testChallengeID}).
		Return(s.pendingChallenge, nil)

	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, &scheduler.CheckConflictInput{
			UserIDs:            []string{s.testAccepter},
			Start:              s.pendingChallenge.ScheduledMatchTime,
			DurationMinutes:    30,
			ExcludeChallengeID: s.testChallengeID,
		}).
		Return(s.noConflict, nil)

	s.mockAccountRepo.EXPECT().
		Debit(s.ctx, &accountRepo.DebitInput{AccountID: s.testAccepter, Amount: 100}).
		Return(&accountRepo.DebitOutput{Balance: 900}, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusPending, in.ExpectedStatus)
			s.Equal(models.ChallengeStatusAccepted, in.Challenge.Status)
			s.Equal(s.testAccepter, in.Challenge.AccepterID)
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	out, err := s.challengeService.AcceptChallenge(s.ctx, &AcceptChallengeInput{
		ChallengeID: s.testChallengeID,
		AccepterID:  s.testAccepter,
	})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStatusAccepted, out.Challenge.Status)
	s.Equal(int64(900), out.Balance)
}

func (s *ChallengeServiceTestSuite) TestAcceptChallengeNotPending() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.acceptedChallenge, nil)

	_, err := s.challengeService.AcceptChallenge(s.ctx, &AcceptChallengeInput{
		ChallengeID: s.testChallengeID,
		AccepterID:  "someone-else",
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestAcceptChallengeOwnChallenge() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	_, err := s.challengeService.AcceptChallenge(s.ctx, &AcceptChallengeInput{
		ChallengeID: s.testChallengeID,
		AccepterID:  s.testChallenger,
	})
	s.ErrorIs(err, ErrSelfAccept)
}

func (s *ChallengeServiceTestSuite) TestAcceptChallengeRefundsRaceLoser() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, gomock.Any()).
		Return(s.noConflict, nil)

	s.mockAccountRepo.EXPECT().
		Debit(s.ctx, gomock.Any()).
		Return(&accountRepo.DebitOutput{Balance: 900}, nil)

	// Another accepter won the conditional update
	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		Return(&challengeRepo.UpdateChallengeStatusOutput{Updated: false}, nil)

	// The losing accepter gets their escrow back
	s.mockAccountRepo.EXPECT().
		Credit(s.ctx, &accountRepo.CreditInput{AccountID: s.testAccepter, Amount: 100}).
		Return(&accountRepo.CreditOutput{Balance: 1000}, nil)

	_, err := s.challengeService.AcceptChallenge(s.ctx, &AcceptChallengeInput{
		ChallengeID: s.testChallengeID,
		AccepterID:  s.testAccepter,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestAcceptChallengeUpdateErrorHoldsEscrow() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	s.mockScheduler.EXPECT().
		CheckConflict(s.ctx, gomock.Any()).
		Return(s.noConflict, nil)

	s.mockAccountRepo.EXPECT().
		Debit(s.ctx, gomock.Any()).
		Return(&accountRepo.DebitOutput{Balance: 900}, nil)

	// The update may or may not have committed; the escrow stays held, so a
	// durably accepted challenge can never coexist with a returned bet.
	// No Credit expectation: a refund here fails the suite.
	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection reset"))

	_, err := s.challengeService.AcceptChallenge(s.ctx, &AcceptChallengeInput{
		ChallengeID: s.testChallengeID,
		AccepterID:  s.testAccepter,
	})
	s.Error(err)
	s.NotErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestAcceptChallengeLazyExpiry() {
	stale := *s.pendingChallenge
	stale.ExpiresAt = s.testTime.Add(-time.Hour)

	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(&stale, nil)

	// The expired challenge is aged out instead of accepted
	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusCancelled, in.Challenge.Status)
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	s.mockAccountRepo.EXPECT().
		Credit(s.ctx, &accountRepo.CreditInput{AccountID: s.testChallenger, Amount: 100}).
		Return(&accountRepo.CreditOutput{Balance: 600}, nil)

	_, err := s.challengeService.AcceptChallenge(s.ctx, &AcceptChallengeInput{
		ChallengeID: s.testChallengeID,
		AccepterID:  s.testAccepter,
	})
	s.ErrorIs(err, ErrChallengeExpired)
}

func (s *ChallengeServiceTestSuite) TestStartMatch() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.acceptedChallenge, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusAccepted, in.ExpectedStatus)
			s.Equal(models.ChallengeStatusInProgress, in.Challenge.Status)
			s.Equal("ROOM-42", in.Challenge.RoomCode)
			s.True(in.Challenge.MatchTime.Equal(s.testTime))
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	out, err := s.challengeService.StartMatch(s.ctx, &StartMatchInput{
		ChallengeID:   s.testChallengeID,
		ActorID:       s.testChallenger,
		RoomCode:      "ROOM-42",
		AdminRoomCode: "ADMIN-42",
	})
	s.Require().NoError(err)
	s.Equal(models.ChallengeStatusInProgress, out.Challenge.Status)
}

func (s *ChallengeServiceTestSuite) TestStartMatchNotParticipant() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.acceptedChallenge, nil)

	_, err := s.challengeService.StartMatch(s.ctx, &StartMatchInput{
		ChallengeID: s.testChallengeID,
		ActorID:     "random-user",
		RoomCode:    "ROOM-42",
	})
	s.ErrorIs(err, ErrNotParticipant)
}

func (s *ChallengeServiceTestSuite) TestStartMatchAsAdmin() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.acceptedChallenge, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		Return(&challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil)

	_, err := s.challengeService.StartMatch(s.ctx, &StartMatchInput{
		ChallengeID: s.testChallengeID,
		ActorID:     "admin-user",
		RoomCode:    "ROOM-42",
		Admin:       true,
	})
	s.NoError(err)
}

func (s *ChallengeServiceTestSuite) TestStartMatchNotAccepted() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	_, err := s.challengeService.StartMatch(s.ctx, &StartMatchInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testChallenger,
		RoomCode:    "ROOM-42",
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestCancelChallenge() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusPending, in.ExpectedStatus)
			s.Equal(models.ChallengeStatusCancelled, in.Challenge.Status)
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	s.mockAccountRepo.EXPECT().
		Credit(s.ctx, &accountRepo.CreditInput{AccountID: s.testChallenger, Amount: 100}).
		Return(&accountRepo.CreditOutput{Balance: 600}, nil)

	out, err := s.challengeService.CancelChallenge(s.ctx, &CancelChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testChallenger,
	})
	s.Require().NoError(err)
	s.Equal(int64(100), out.Refunded)
	s.Equal(int64(600), out.Balance)
}

func (s *ChallengeServiceTestSuite) TestCancelChallengeNotPending() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.acceptedChallenge, nil)

	_, err := s.challengeService.CancelChallenge(s.ctx, &CancelChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testChallenger,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestCancelChallengeNotChallenger() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	_, err := s.challengeService.CancelChallenge(s.ctx, &CancelChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testAccepter,
	})
	s.ErrorIs(err, ErrNotParticipant)
}

func (s *ChallengeServiceTestSuite) TestCancelChallengeLosesRace() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	// Acceptance or expiry got there first; no refund is paid here
	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		Return(&challengeRepo.UpdateChallengeStatusOutput{Updated: false}, nil)

	_, err := s.challengeService.CancelChallenge(s.ctx, &CancelChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testChallenger,
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestExtendExpiry() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.pendingChallenge, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusPending, in.ExpectedStatus)
			s.Equal(models.ChallengeStatusPending, in.Challenge.Status)
			s.True(in.Challenge.ExpiresAt.Equal(s.testTime.Add(48 * time.Hour)))
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	out, err := s.challengeService.ExtendExpiry(s.ctx, &ExtendExpiryInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testChallenger,
		Hours:       48,
	})
	s.Require().NoError(err)
	s.True(out.Challenge.ExpiresAt.Equal(s.testTime.Add(48 * time.Hour)))
}

func (s *ChallengeServiceTestSuite) TestExtendExpiryOutOfBounds() {
	for _, hours := range []int{0, -1, 73} {
		_, err := s.challengeService.ExtendExpiry(s.ctx, &ExtendExpiryInput{
			ChallengeID: s.testChallengeID,
			ActorID:     s.testChallenger,
			Hours:       hours,
		})
		s.ErrorIs(err, ErrInvalidExtension)
	}
}

func (s *ChallengeServiceTestSuite) TestDisputeChallenge() {
	completed := *s.acceptedChallenge
	completed.Status = models.ChallengeStatusCompleted
	completed.WinnerID = s.testChallenger
	completed.LoserID = s.testAccepter

	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(&completed, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusCompleted, in.ExpectedStatus)
			s.True(in.Challenge.IsDisputed)
			s.Equal("wrong score reported", in.Challenge.DisputeReason)
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	out, err := s.challengeService.DisputeChallenge(s.ctx, &DisputeChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testAccepter,
		Reason:      "wrong score reported",
	})
	s.Require().NoError(err)
	s.True(out.Challenge.IsDisputed)
}

func (s *ChallengeServiceTestSuite) TestDisputeChallengeNotCompleted() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(s.acceptedChallenge, nil)

	_, err := s.challengeService.DisputeChallenge(s.ctx, &DisputeChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     s.testAccepter,
		Reason:      "wrong score reported",
	})
	s.ErrorIs(err, ErrInvalidState)
}

func (s *ChallengeServiceTestSuite) TestDisputeChallengeNotParticipant() {
	completed := *s.acceptedChallenge
	completed.Status = models.ChallengeStatusCompleted

	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(&completed, nil)

	_, err := s.challengeService.DisputeChallenge(s.ctx, &DisputeChallengeInput{
		ChallengeID: s.testChallengeID,
		ActorID:     "random-user",
		Reason:      "wrong score reported",
	})
	s.ErrorIs(err, ErrNotParticipant)
}

func (s *ChallengeServiceTestSuite) TestExpireOverdue() {
	stale := *s.pendingChallenge
	stale.ExpiresAt = s.testTime.Add(-time.Hour)

	s.mockChallengeRepo.EXPECT().
		ListExpiredPending(s.ctx, &challengeRepo.ListExpiredPendingInput{
			Now:   s.testTime,
			Limit: 10,
		}).
		Return(&challengeRepo.ListExpiredPendingOutput{
			Challenges: []*models.Challenge{&stale},
		}, nil)

	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in *challengeRepo.UpdateChallengeStatusInput) (*challengeRepo.UpdateChallengeStatusOutput, error) {
			s.Equal(models.ChallengeStatusPending, in.ExpectedStatus)
			s.Equal(models.ChallengeStatusCancelled, in.Challenge.Status)
			return &challengeRepo.UpdateChallengeStatusOutput{Updated: true}, nil
		})

	s.mockAccountRepo.EXPECT().
		Credit(s.ctx, &accountRepo.CreditInput{AccountID: s.testChallenger, Amount: 100}).
		Return(&accountRepo.CreditOutput{Balance: 600}, nil)

	out, err := s.challengeService.ExpireOverdue(s.ctx, &ExpireOverdueInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal(1, out.Expired)
}

func (s *ChallengeServiceTestSuite) TestExpireOverdueSkipsRaceLosers() {
	stale := *s.pendingChallenge
	stale.ExpiresAt = s.testTime.Add(-time.Hour)

	s.mockChallengeRepo.EXPECT().
		ListExpiredPending(s.ctx, gomock.Any()).
		Return(&challengeRepo.ListExpiredPendingOutput{
			Challenges: []*models.Challenge{&stale},
		}, nil)

	// A concurrent cancel already took the transition; no second refund
	s.mockChallengeRepo.EXPECT().
		UpdateChallengeStatus(s.ctx, gomock.Any()).
		Return(&challengeRepo.UpdateChallengeStatusOutput{Updated: false}, nil)

	out, err := s.challengeService.ExpireOverdue(s.ctx, &ExpireOverdueInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal(0, out.Expired)
}

func (s *ChallengeServiceTestSuite) TestGetChallengeNotFound() {
	s.mockChallengeRepo.EXPECT().
		GetChallenge(s.ctx, gomock.Any()).
		Return(nil, challengeRepo.ErrChallengeNotFound)

	_, err := s.challengeService.GetChallenge(s.ctx, &GetChallengeInput{
		ChallengeID: "missing",
	})
	s.ErrorIs(err, ErrChallengeNotFound)
}
