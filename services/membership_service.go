package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
)

// Broadcaster уведомляет подключённых клиентов комнаты сессии об изменениях.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// MembershipService — движок переключения участия. Одна операция
// обслуживает оба отношения: игрок-в-сессии и игрок-в-раунде.
type MembershipService interface {
	ToggleSessionMembership(ctx context.Context, playerID, sessionID int) (*models.ToggleResult, error)
	ToggleRoundMembership(ctx context.Context, playerID, roundID int) (*models.ToggleResult, error)
}

type membershipService struct {
	membershipRepo repositories.MembershipRepository
	playerRepo     repositories.PlayerRepository
	sessionRepo    repositories.SessionRepository
	roundRepo      repositories.RoundRepository
	notifier       Broadcaster
}

func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	playerRepo repositories.PlayerRepository,
	sessionRepo repositories.SessionRepository,
	roundRepo repositories.RoundRepository,
	notifier Broadcaster,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		playerRepo:     playerRepo,
		sessionRepo:    sessionRepo,
		roundRepo:      roundRepo,
		notifier:       notifier,
	}
}

func (s *membershipService) ToggleSessionMembership(ctx context.Context, playerID, sessionID int) (*models.ToggleResult, error) {
	if playerID <= 0 || sessionID <= 0 {
		return nil, ErrValidationFailed
	}

	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to check toggle target session: %w", err)
	}

	result, err := s.toggle(ctx, models.SessionMembership, sessionID, playerID)
	if err != nil {
		return nil, err
	}
	s.notify(sessionID, "SESSION_MEMBERSHIP_TOGGLED", result)
	return result, nil
}

func (s *membershipService) ToggleRoundMembership(ctx context.Context, playerID, roundID int) (*models.ToggleResult, error) {
	if playerID <= 0 || roundID <= 0 {
		return nil, ErrValidationFailed
	}

	round, err := s.roundRepo.GetByID(ctx, roundID)
	if err != nil {
		if errors.Is(err, repositories.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to check toggle target round: %w", err)
	}

	result, err := s.toggle(ctx, models.RoundMembership, roundID, playerID)
	if err != nil {
		return nil, err
	}
	s.notify(round.SessionID, "ROUND_MEMBERSHIP_TOGGLED", result)
	return result, nil
}

// toggle выполняет общую часть: проверяет игрока и переключает ребро.
// Сам переворот атомарен на уровне репозитория, счётчики не трогаются —
// они всегда пересчитываются при чтении.
func (s *membershipService) toggle(ctx context.Context, kind models.MembershipKind, targetID, playerID int) (*models.ToggleResult, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to check toggle actor: %w", err)
	}

	result, err := s.membershipRepo.Toggle(ctx, kind, targetID, playerID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrMembershipConflict):
			return nil, ErrMembershipConflict
		case errors.Is(err, repositories.ErrMembershipTargetInvalid):
			return nil, ErrMembershipTargetMissing
		case errors.Is(err, repositories.ErrMembershipPlayerInvalid):
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *membershipService) notify(sessionID int, messageType string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	roomID := fmt.Sprintf("session_%d", sessionID)
	s.notifier.BroadcastToRoom(roomID, map[string]interface{}{
		"type":    messageType,
		"payload": payload,
		"room_id": roomID,
	})
}
