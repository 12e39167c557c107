package expiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	challengeService "github.com/Talha3818/gaming-site-sub001/internal/services/challenge"
	challengeMocks "github.com/Talha3818/gaming-site-sub001/internal/services/challenge/mocks"
)

type ExpiryWorkerTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockChallengeService *challengeMocks.MockService
}

func (s *ExpiryWorkerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChallengeService = challengeMocks.NewMockService(s.mockCtrl)
}

func (s *ExpiryWorkerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExpiryWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(ExpiryWorkerTestSuite))
}

func (s *ExpiryWorkerTestSuite) TestNewRequiresChallengeService() {
	_, err := New(&Config{})
	s.Error(err)
}

func (s *ExpiryWorkerTestSuite) TestNewAppliesDefaults() {
	worker, err := New(&Config{
		ChallengeService: s.mockChallengeService,
	})
	s.Require().NoError(err)
	s.Equal(defaultInterval, worker.interval)
	s.Equal(int64(defaultBatchLimit), worker.batchLimit)
}

func (s *ExpiryWorkerTestSuite) TestSweepUsesBatchLimit() {
	worker, err := New(&Config{
		ChallengeService: s.mockChallengeService,
		Interval:         30 * time.Second,
		BatchLimit:       25,
	})
	s.Require().NoError(err)

	s.mockChallengeService.EXPECT().
		ExpireOverdue(gomock.Any(), &challengeService.ExpireOverdueInput{Limit: 25}).
		DoAndReturn(func(ctx context.Context, _ *challengeService.ExpireOverdueInput) (*challengeService.ExpireOverdueOutput, error) {
			// The sweep bounds its own work
			_, hasDeadline := ctx.Deadline()
			s.True(hasDeadline)
			return &challengeService.ExpireOverdueOutput{Expired: 3}, nil
		})

	worker.sweep()
}

func (s *ExpiryWorkerTestSuite) TestSweepToleratesServiceError() {
	worker, err := New(&Config{
		ChallengeService: s.mockChallengeService,
	})
	s.Require().NoError(err)

	s.mockChallengeService.EXPECT().
		ExpireOverdue(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("store unavailable"))

	worker.sweep()
}

func (s *ExpiryWorkerTestSuite) TestStopWithoutStart() {
	worker, err := New(&Config{
		ChallengeService: s.mockChallengeService,
	})
	s.Require().NoError(err)
	s.NoError(worker.Stop())
}
