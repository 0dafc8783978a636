package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
)

// SessionService инкапсулирует бизнес-логику игровых сессий.
type SessionService interface {
	// CreateSession создаёт сессию на указанную календарную дату.
	// На одну дату допускается не более одной сессии.
	CreateSession(ctx context.Context, date time.Time) (*models.GameSession, error)
	GetByID(ctx context.Context, id int) (*models.GameSession, error)
	List(ctx context.Context) ([]models.GameSession, error)
}

type sessionService struct {
	sessionRepo repositories.SessionRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) CreateSession(ctx context.Context, date time.Time) (*models.GameSession, error) {
	if date.IsZero() {
		return nil, ErrValidationFailed
	}
	date = normalizeDate(date)

	// Предварительная проверка даёт дружелюбный ответ без неудачной
	// вставки; уникальное ограничение закрывает гонку двух создателей.
	_, err := s.sessionRepo.FindByDate(ctx, date)
	switch {
	case err == nil:
		return nil, ErrSessionDateConflict
	case errors.Is(err, repositories.ErrSessionNotFound):
		// Даты ещё нет — создаём.
	default:
		return nil, fmt.Errorf("failed to check session date: %w", err)
	}

	session := &models.GameSession{Date: date}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		if errors.Is(err, repositories.ErrSessionDateConflict) {
			return nil, ErrSessionDateConflict
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) GetByID(ctx context.Context, id int) (*models.GameSession, error) {
	if id <= 0 {
		return nil, ErrValidationFailed
	}
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *sessionService) List(ctx context.Context) ([]models.GameSession, error) {
	return s.sessionRepo.List(ctx)
}

// normalizeDate отбрасывает время: сессия привязана к календарной дате.
func normalizeDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
