package services

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/Dosada05/mahjong-club/clock/mocks"
	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
	"github.com/Dosada05/mahjong-club/repositories/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockPlayerRepo     *mocks.MockPlayerRepository
	mockSessionRepo    *mocks.MockSessionRepository
	mockRoundRepo      *mocks.MockRoundRepository
	mockMembershipRepo *mocks.MockMembershipRepository
	mockClock          *clockMocks.MockClock
	service            DashboardService
	ctx                context.Context

	testNow    time.Time
	testPlayer *models.Player
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlayerRepo = mocks.NewMockPlayerRepository(s.mockCtrl)
	s.mockSessionRepo = mocks.NewMockSessionRepository(s.mockCtrl)
	s.mockRoundRepo = mocks.NewMockRoundRepository(s.mockCtrl)
	s.mockMembershipRepo = mocks.NewMockMembershipRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testNow = time.Date(2030, 1, 15, 12, 0, 0, 0, time.UTC)
	s.testPlayer = &models.Player{ID: 1, Name: "Alice"}

	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.service = NewDashboardService(
		s.mockPlayerRepo,
		s.mockSessionRepo,
		s.mockRoundRepo,
		s.mockMembershipRepo,
		s.mockClock,
	)
}

func (s *DashboardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

// expectAggregates настраивает пять конкурентных чтений агрегатора.
// Контексты внутри errgroup производные, поэтому gomock.Any().
func (s *DashboardServiceTestSuite) expectAggregates(sessionCount, roundCount, winCount int, upcoming, past []models.GameSession) {
	s.mockMembershipRepo.EXPECT().
		CountByPlayer(gomock.Any(), models.SessionMembership, 1).
		Return(sessionCount, nil)
	s.mockMembershipRepo.EXPECT().
		CountByPlayer(gomock.Any(), models.RoundMembership, 1).
		Return(roundCount, nil)
	s.mockRoundRepo.EXPECT().
		CountWinsByPlayer(gomock.Any(), 1).
		Return(winCount, nil)
	s.mockSessionRepo.EXPECT().
		ListUpcomingWithDetails(gomock.Any(), s.testNow).
		Return(upcoming, nil)
	s.mockSessionRepo.EXPECT().
		ListPastWithDetails(gomock.Any(), s.testNow).
		Return(past, nil)
}

func (s *DashboardServiceTestSuite) TestFreshPlayerHasZeroCounters() {
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.expectAggregates(0, 0, 0, []models.GameSession{}, []models.GameSession{})

	dashboard, err := s.service.GetDashboard(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(0, dashboard.SessionCount)
	s.Equal(0, dashboard.RoundCount)
	s.Equal(0, dashboard.WinCount)
	s.Empty(dashboard.UpcomingSessions)
	s.Empty(dashboard.PastSessions)
}

func (s *DashboardServiceTestSuite) TestCountersComeFromEdgeCounts() {
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.expectAggregates(3, 7, 2, []models.GameSession{}, []models.GameSession{})

	dashboard, err := s.service.GetDashboard(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(3, dashboard.SessionCount)
	s.Equal(7, dashboard.RoundCount)
	s.Equal(2, dashboard.WinCount)
}

// Победы считаются по winner_id раунда, членство в раунде на них не влияет:
// счётчики приходят из независимых источников.
func (s *DashboardServiceTestSuite) TestWinCountIndependentOfRoundMembership() {
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.expectAggregates(0, 5, 0, []models.GameSession{}, []models.GameSession{})

	dashboard, err := s.service.GetDashboard(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal(5, dashboard.RoundCount)
	s.Equal(0, dashboard.WinCount)
}

func (s *DashboardServiceTestSuite) TestMarksRoundsJoinedByPlayer() {
	winnerID := 2
	upcoming := []models.GameSession{
		{
			ID:   10,
			Date: s.testNow.AddDate(0, 0, 3),
			Players: []models.SessionMember{
				{ID: 100, PlayerID: 1, Player: s.testPlayer},
			},
			Rounds: []models.GameRound{
				{
					ID: 20, Number: 1, SessionID: 10,
					Players: []models.RoundMember{{ID: 200, PlayerID: 1, Player: s.testPlayer}},
				},
				{
					ID: 21, Number: 2, SessionID: 10, WinnerID: &winnerID,
					Players: []models.RoundMember{{ID: 201, PlayerID: 2}},
				},
			},
		},
	}
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.expectAggregates(1, 1, 0, upcoming, []models.GameSession{})

	dashboard, err := s.service.GetDashboard(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().Len(dashboard.UpcomingSessions, 1)
	rounds := dashboard.UpcomingSessions[0].Rounds
	s.Require().Len(rounds, 2)
	s.True(rounds[0].Joined)
	s.False(rounds[1].Joined)
	// Раунд без победителя — валидное состояние.
	s.Nil(rounds[0].WinnerID)
	s.Equal(&winnerID, rounds[1].WinnerID)
}

func (s *DashboardServiceTestSuite) TestPartitionUsesHalfOpenBoundary() {
	// Оба списка получают один и тот же момент: date >= now и date < now
	// не пересекаются, сессия "на сегодня" попадает только в предстоящие.
	today := models.GameSession{ID: 11, Date: s.testNow}
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.expectAggregates(0, 0, 0, []models.GameSession{today}, []models.GameSession{})

	dashboard, err := s.service.GetDashboard(s.ctx, 1)

	s.Require().NoError(err)
	s.Len(dashboard.UpcomingSessions, 1)
	s.Empty(dashboard.PastSessions)
}

func (s *DashboardServiceTestSuite) TestPlayerNotFound() {
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 42).Return(nil, repositories.ErrPlayerNotFound)

	_, err := s.service.GetDashboard(s.ctx, 42)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *DashboardServiceTestSuite) TestInvalidPlayerID() {
	_, err := s.service.GetDashboard(s.ctx, 0)
	s.ErrorIs(err, ErrValidationFailed)
}
