package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/lib/pq"
)

var (
	ErrRoundNotFound       = errors.New("game round not found")
	ErrRoundNumberConflict = errors.New("game round number conflict: round already exists for this session")
	ErrRoundSessionInvalid = errors.New("game round session conflict or invalid")
	ErrRoundWinnerInvalid  = errors.New("game round winner conflict or invalid")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_round_repository.go github.com/Dosada05/mahjong-club/repositories RoundRepository
type RoundRepository interface {
	Create(ctx context.Context, round *models.GameRound) error
	GetByID(ctx context.Context, id int) (*models.GameRound, error)
	FindBySessionAndNumber(ctx context.Context, sessionID, number int) (*models.GameRound, error)
	SetWinner(ctx context.Context, roundID, winnerID int) error
	CountWinsByPlayer(ctx context.Context, playerID int) (int, error)
}

type postgresRoundRepository struct {
	db *sql.DB
}

func NewPostgresRoundRepository(db *sql.DB) RoundRepository {
	return &postgresRoundRepository{db: db}
}

func (r *postgresRoundRepository) Create(ctx context.Context, round *models.GameRound) error {
	query := `
		INSERT INTO game_rounds (number, session_id, winner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		round.Number,
		round.SessionID,
		round.WinnerID,
	).Scan(&round.ID, &round.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				if pqErr.Constraint == "game_rounds_session_id_number_key" {
					return ErrRoundNumberConflict
				}
			case "23503": // foreign_key_violation
				switch pqErr.Constraint {
				case "game_rounds_session_id_fkey":
					return ErrRoundSessionInvalid
				case "game_rounds_winner_id_fkey":
					return ErrRoundWinnerInvalid
				}
			}
		}
		return fmt.Errorf("failed to create game round: %w", err)
	}
	return nil
}

func (r *postgresRoundRepository) GetByID(ctx context.Context, id int) (*models.GameRound, error) {
	query := `SELECT id, number, session_id, winner_id, created_at FROM game_rounds WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresRoundRepository) FindBySessionAndNumber(ctx context.Context, sessionID, number int) (*models.GameRound, error) {
	query := `SELECT id, number, session_id, winner_id, created_at FROM game_rounds WHERE session_id = $1 AND number = $2`
	return r.findOne(ctx, query, sessionID, number)
}

func (r *postgresRoundRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.GameRound, error) {
	round := &models.GameRound{}
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&round.ID, &round.Number, &round.SessionID, &round.WinnerID, &round.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to find game round: %w", err)
	}
	return round, nil
}

func (r *postgresRoundRepository) SetWinner(ctx context.Context, roundID, winnerID int) error {
	query := `UPDATE game_rounds SET winner_id = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, winnerID, roundID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" && pqErr.Constraint == "game_rounds_winner_id_fkey" {
				return ErrRoundWinnerInvalid
			}
		}
		return fmt.Errorf("failed to set game round winner: %w", err)
	}
	return checkAffectedRows(result, ErrRoundNotFound)
}

func (r *postgresRoundRepository) CountWinsByPlayer(ctx context.Context, playerID int) (int, error) {
	query := `SELECT COUNT(*) FROM game_rounds WHERE winner_id = $1`

	var count int
	if err := r.db.QueryRowContext(ctx, query, playerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wins by player: %w", err)
	}
	return count, nil
}
