package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/Dosada05/mahjong-club/repositories"
)

// CompleteRoundInput — форма завершения раунда: номер, сессия и,
// опционально, победитель.
type CompleteRoundInput struct {
	Number    int  `json:"number"`
	SessionID int  `json:"session_id"`
	WinnerID  *int `json:"winner_id,omitempty"`
}

// RoundService инкапсулирует бизнес-логику игровых раундов.
type RoundService interface {
	// CompleteRound создаёт раунд (session_id, number), либо, если он уже
	// существует и указан победитель, записывает победителя.
	CompleteRound(ctx context.Context, input CompleteRoundInput) (*models.GameRound, error)
	GetByID(ctx context.Context, id int) (*models.GameRound, error)
}

type roundService struct {
	roundRepo   repositories.RoundRepository
	sessionRepo repositories.SessionRepository
	playerRepo  repositories.PlayerRepository
	notifier    Broadcaster
}

func NewRoundService(
	roundRepo repositories.RoundRepository,
	sessionRepo repositories.SessionRepository,
	playerRepo repositories.PlayerRepository,
	notifier Broadcaster,
) RoundService {
	return &roundService{
		roundRepo:   roundRepo,
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		notifier:    notifier,
	}
}

func (s *roundService) CompleteRound(ctx context.Context, input CompleteRoundInput) (*models.GameRound, error) {
	if input.Number <= 0 || input.SessionID <= 0 {
		return nil, ErrValidationFailed
	}
	if input.WinnerID != nil && *input.WinnerID <= 0 {
		return nil, ErrValidationFailed
	}

	if _, err := s.sessionRepo.GetByID(ctx, input.SessionID); err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to check round session: %w", err)
	}

	if input.WinnerID != nil {
		if _, err := s.playerRepo.GetByID(ctx, *input.WinnerID); err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return nil, ErrRoundWinnerInvalid
			}
			return nil, fmt.Errorf("failed to check round winner: %w", err)
		}
	}

	existing, err := s.roundRepo.FindBySessionAndNumber(ctx, input.SessionID, input.Number)
	switch {
	case err == nil:
		// Раунд уже есть: без победителя повторное создание — конфликт,
		// с победителем — это запись результата существующего раунда.
		if input.WinnerID == nil {
			return nil, ErrRoundNumberConflict
		}
		if err := s.roundRepo.SetWinner(ctx, existing.ID, *input.WinnerID); err != nil {
			if errors.Is(err, repositories.ErrRoundWinnerInvalid) {
				return nil, ErrRoundWinnerInvalid
			}
			return nil, err
		}
		existing.WinnerID = input.WinnerID
		s.notify(existing.SessionID, existing)
		return existing, nil
	case errors.Is(err, repositories.ErrRoundNotFound):
		// Раунда ещё нет — создаём.
	default:
		return nil, fmt.Errorf("failed to look up round: %w", err)
	}

	round := &models.GameRound{
		Number:    input.Number,
		SessionID: input.SessionID,
		WinnerID:  input.WinnerID,
	}
	if err := s.roundRepo.Create(ctx, round); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRoundNumberConflict):
			return nil, ErrRoundNumberConflict
		case errors.Is(err, repositories.ErrRoundSessionInvalid):
			return nil, ErrSessionNotFound
		case errors.Is(err, repositories.ErrRoundWinnerInvalid):
			return nil, ErrRoundWinnerInvalid
		}
		return nil, err
	}
	s.notify(round.SessionID, round)
	return round, nil
}

func (s *roundService) GetByID(ctx context.Context, id int) (*models.GameRound, error) {
	if id <= 0 {
		return nil, ErrValidationFailed
	}
	round, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return round, nil
}

func (s *roundService) notify(sessionID int, round *models.GameRound) {
	if s.notifier == nil {
		return
	}
	roomID := fmt.Sprintf("session_%d", sessionID)
	s.notifier.BroadcastToRoom(roomID, map[string]interface{}{
		"type":    "ROUND_COMPLETED",
		"payload": round,
		"room_id": roomID,
	})
}
