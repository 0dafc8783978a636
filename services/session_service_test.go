package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
	"github.com/Dosada05/mahjong-club/repositories/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *mocks.MockSessionRepository
	service         SessionService
	ctx             context.Context
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = mocks.NewMockSessionRepository(s.mockCtrl)
	s.service = NewSessionService(s.mockSessionRepo)
	s.ctx = context.Background()
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestCreateSession() {
	date := time.Date(2030, 3, 8, 0, 0, 0, 0, time.UTC)

	s.mockSessionRepo.EXPECT().
		FindByDate(s.ctx, date).
		Return(nil, repositories.ErrSessionNotFound)
	s.mockSessionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.GameSession) error {
			session.ID = 5
			return nil
		})

	session, err := s.service.CreateSession(s.ctx, date)

	s.Require().NoError(err)
	s.Equal(5, session.ID)
	s.Equal(date, session.Date)
}

// Время суток и зона отбрасываются: сессия привязана к календарной дате.
func (s *SessionServiceTestSuite) TestCreateSessionNormalizesDate() {
	given := time.Date(2030, 3, 8, 19, 45, 12, 0, time.UTC)
	normalized := time.Date(2030, 3, 8, 0, 0, 0, 0, time.UTC)

	s.mockSessionRepo.EXPECT().
		FindByDate(s.ctx, normalized).
		Return(nil, repositories.ErrSessionNotFound)
	s.mockSessionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.GameSession) error {
			s.Equal(normalized, session.Date)
			session.ID = 6
			return nil
		})

	session, err := s.service.CreateSession(s.ctx, given)

	s.Require().NoError(err)
	s.Equal(normalized, session.Date)
}

func (s *SessionServiceTestSuite) TestCreateSessionDateTaken() {
	date := time.Date(2030, 3, 8, 0, 0, 0, 0, time.UTC)
	existing := &models.GameSession{ID: 3, Date: date}

	s.mockSessionRepo.EXPECT().FindByDate(s.ctx, date).Return(existing, nil)

	_, err := s.service.CreateSession(s.ctx, date)
	s.ErrorIs(err, ErrSessionDateConflict)
}

// Гонка двух создателей: предварительная проверка прошла, но вставку
// соперника отловило уникальное ограничение.
func (s *SessionServiceTestSuite) TestCreateSessionRaceLoser() {
	date := time.Date(2030, 3, 8, 0, 0, 0, 0, time.UTC)

	s.mockSessionRepo.EXPECT().
		FindByDate(s.ctx, date).
		Return(nil, repositories.ErrSessionNotFound)
	s.mockSessionRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(repositories.ErrSessionDateConflict)

	_, err := s.service.CreateSession(s.ctx, date)
	s.ErrorIs(err, ErrSessionDateConflict)
}

func (s *SessionServiceTestSuite) TestCreateSessionZeroDate() {
	_, err := s.service.CreateSession(s.ctx, time.Time{})
	s.ErrorIs(err, ErrValidationFailed)
}

func (s *SessionServiceTestSuite) TestGetByIDNotFound() {
	s.mockSessionRepo.EXPECT().
		GetByID(s.ctx, 99).
		Return(nil, repositories.ErrSessionNotFound)

	_, err := s.service.GetByID(s.ctx, 99)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *SessionServiceTestSuite) TestGetByIDInvalid() {
	_, err := s.service.GetByID(s.ctx, -1)
	s.ErrorIs(err, ErrValidationFailed)
}

func (s *SessionServiceTestSuite) TestCreateSessionCheckError() {
	date := time.Date(2030, 3, 8, 0, 0, 0, 0, time.UTC)
	dbErr := errors.New("connection reset")

	s.mockSessionRepo.EXPECT().FindByDate(s.ctx, date).Return(nil, dbErr)

	_, err := s.service.CreateSession(s.ctx, date)
	s.ErrorIs(err, dbErr)
}
