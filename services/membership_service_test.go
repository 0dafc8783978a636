package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
	"github.com/Dosada05/mahjong-club/repositories/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recordingBroadcaster запоминает отправленные в комнаты сообщения.
type recordingBroadcaster struct {
	rooms []string
}

func (b *recordingBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	b.rooms = append(b.rooms, roomID)
}

type MembershipServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockMembershipRepo *mocks.MockMembershipRepository
	mockPlayerRepo     *mocks.MockPlayerRepository
	mockSessionRepo    *mocks.MockSessionRepository
	mockRoundRepo      *mocks.MockRoundRepository
	broadcaster        *recordingBroadcaster
	service            MembershipService
	ctx                context.Context

	testPlayer  *models.Player
	testSession *models.GameSession
	testRound   *models.GameRound
}

func (s *MembershipServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMembershipRepo = mocks.NewMockMembershipRepository(s.mockCtrl)
	s.mockPlayerRepo = mocks.NewMockPlayerRepository(s.mockCtrl)
	s.mockSessionRepo = mocks.NewMockSessionRepository(s.mockCtrl)
	s.mockRoundRepo = mocks.NewMockRoundRepository(s.mockCtrl)
	s.broadcaster = &recordingBroadcaster{}
	s.ctx = context.Background()

	s.testPlayer = &models.Player{ID: 1, Name: "Alice"}
	s.testSession = &models.GameSession{ID: 10}
	s.testRound = &models.GameRound{ID: 20, Number: 1, SessionID: 10}

	s.service = NewMembershipService(
		s.mockMembershipRepo,
		s.mockPlayerRepo,
		s.mockSessionRepo,
		s.mockRoundRepo,
		s.broadcaster,
	)
}

func (s *MembershipServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}

func (s *MembershipServiceTestSuite) TestToggleSessionMembershipAdds() {
	s.mockSessionRepo.EXPECT().GetByID(s.ctx, 10).Return(s.testSession, nil)
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.mockMembershipRepo.EXPECT().
		Toggle(s.ctx, models.SessionMembership, 10, 1).
		Return(&models.ToggleResult{
			State: models.ToggleAdded,
			Edge:  models.Membership{ID: 100, Kind: models.SessionMembership, TargetID: 10, PlayerID: 1},
		}, nil)

	result, err := s.service.ToggleSessionMembership(s.ctx, 1, 10)

	s.Require().NoError(err)
	s.Equal(models.ToggleAdded, result.State)
	s.Equal(10, result.Edge.TargetID)
	s.Equal([]string{"session_10"}, s.broadcaster.rooms)
}

func (s *MembershipServiceTestSuite) TestToggleTwiceReturnsToOriginalState() {
	s.mockSessionRepo.EXPECT().GetByID(s.ctx, 10).Return(s.testSession, nil).Times(2)
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil).Times(2)

	first := s.mockMembershipRepo.EXPECT().
		Toggle(s.ctx, models.SessionMembership, 10, 1).
		Return(&models.ToggleResult{State: models.ToggleAdded}, nil)
	s.mockMembershipRepo.EXPECT().
		Toggle(s.ctx, models.SessionMembership, 10, 1).
		Return(&models.ToggleResult{State: models.ToggleRemoved}, nil).
		After(first)

	added, err := s.service.ToggleSessionMembership(s.ctx, 1, 10)
	s.Require().NoError(err)
	s.Equal(models.ToggleAdded, added.State)

	removed, err := s.service.ToggleSessionMembership(s.ctx, 1, 10)
	s.Require().NoError(err)
	s.Equal(models.ToggleRemoved, removed.State)
}

func (s *MembershipServiceTestSuite) TestToggleSessionMembershipInvalidInput() {
	_, err := s.service.ToggleSessionMembership(s.ctx, 0, 10)
	s.ErrorIs(err, ErrValidationFailed)

	_, err = s.service.ToggleSessionMembership(s.ctx, 1, -5)
	s.ErrorIs(err, ErrValidationFailed)
	s.Empty(s.broadcaster.rooms)
}

func (s *MembershipServiceTestSuite) TestToggleSessionMembershipSessionNotFound() {
	s.mockSessionRepo.EXPECT().GetByID(s.ctx, 99).Return(nil, repositories.ErrSessionNotFound)

	_, err := s.service.ToggleSessionMembership(s.ctx, 1, 99)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *MembershipServiceTestSuite) TestToggleSessionMembershipPlayerNotFound() {
	s.mockSessionRepo.EXPECT().GetByID(s.ctx, 10).Return(s.testSession, nil)
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 42).Return(nil, repositories.ErrPlayerNotFound)

	_, err := s.service.ToggleSessionMembership(s.ctx, 42, 10)
	s.ErrorIs(err, ErrPlayerNotFound)
}

func (s *MembershipServiceTestSuite) TestToggleSessionMembershipConcurrentConflict() {
	s.mockSessionRepo.EXPECT().GetByID(s.ctx, 10).Return(s.testSession, nil)
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.mockMembershipRepo.EXPECT().
		Toggle(s.ctx, models.SessionMembership, 10, 1).
		Return(nil, repositories.ErrMembershipConflict)

	_, err := s.service.ToggleSessionMembership(s.ctx, 1, 10)
	s.ErrorIs(err, ErrMembershipConflict)
	s.Empty(s.broadcaster.rooms)
}

func (s *MembershipServiceTestSuite) TestToggleRoundMembershipAdds() {
	s.mockRoundRepo.EXPECT().GetByID(s.ctx, 20).Return(s.testRound, nil)
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.mockMembershipRepo.EXPECT().
		Toggle(s.ctx, models.RoundMembership, 20, 1).
		Return(&models.ToggleResult{
			State: models.ToggleAdded,
			Edge:  models.Membership{ID: 200, Kind: models.RoundMembership, TargetID: 20, PlayerID: 1},
		}, nil)

	result, err := s.service.ToggleRoundMembership(s.ctx, 1, 20)

	s.Require().NoError(err)
	s.Equal(models.ToggleAdded, result.State)
	// Уведомление уходит в комнату сессии раунда, не раунда.
	s.Equal([]string{"session_10"}, s.broadcaster.rooms)
}

func (s *MembershipServiceTestSuite) TestToggleRoundMembershipRoundNotFound() {
	s.mockRoundRepo.EXPECT().GetByID(s.ctx, 77).Return(nil, repositories.ErrRoundNotFound)

	_, err := s.service.ToggleRoundMembership(s.ctx, 1, 77)
	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *MembershipServiceTestSuite) TestToggleRepoErrorPropagates() {
	storeErr := errors.New("store unavailable")
	s.mockSessionRepo.EXPECT().GetByID(s.ctx, 10).Return(s.testSession, nil)
	s.mockPlayerRepo.EXPECT().GetByID(s.ctx, 1).Return(s.testPlayer, nil)
	s.mockMembershipRepo.EXPECT().
		Toggle(s.ctx, models.SessionMembership, 10, 1).
		Return(nil, storeErr)

	_, err := s.service.ToggleSessionMembership(s.ctx, 1, 10)
	s.ErrorIs(err, storeErr)
}
