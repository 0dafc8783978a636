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
	ErrMembershipConflict      = errors.New("membership conflict: edge already created concurrently")
	ErrMembershipTargetInvalid = errors.New("membership target conflict or invalid")
	ErrMembershipPlayerInvalid = errors.New("membership player conflict or invalid")
	ErrMembershipKindInvalid   = errors.New("unknown membership kind")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_membership_repository.go github.com/Dosada05/mahjong-club/repositories MembershipRepository
type MembershipRepository interface {
	// Toggle атомарно переключает участие: удаляет ребро, если оно есть,
	// иначе вставляет новое. Обе ветки выполняются в одной транзакции.
	Toggle(ctx context.Context, kind models.MembershipKind, targetID, playerID int) (*models.ToggleResult, error)
	CountByPlayer(ctx context.Context, kind models.MembershipKind, playerID int) (int, error)
}

// membershipRelation описывает, на какую таблицу проецируется вид участия.
type membershipRelation struct {
	table            string
	targetColumn     string
	uniqueConstraint string
	playerFKey       string
	targetFKey       string
}

func relationFor(kind models.MembershipKind) (membershipRelation, error) {
	switch kind {
	case models.SessionMembership:
		return membershipRelation{
			table:            "player_in_session",
			targetColumn:     "session_id",
			uniqueConstraint: "player_in_session_session_id_player_id_key",
			playerFKey:       "player_in_session_player_id_fkey",
			targetFKey:       "player_in_session_session_id_fkey",
		}, nil
	case models.RoundMembership:
		return membershipRelation{
			table:            "player_in_round",
			targetColumn:     "round_id",
			uniqueConstraint: "player_in_round_round_id_player_id_key",
			playerFKey:       "player_in_round_player_id_fkey",
			targetFKey:       "player_in_round_round_id_fkey",
		}, nil
	default:
		return membershipRelation{}, ErrMembershipKindInvalid
	}
}

type postgresMembershipRepository struct {
	db *sql.DB
}

func NewPostgresMembershipRepository(db *sql.DB) MembershipRepository {
	return &postgresMembershipRepository{db: db}
}

func (r *postgresMembershipRepository) Toggle(ctx context.Context, kind models.MembershipKind, targetID, playerID int) (*models.ToggleResult, error) {
	rel, err := relationFor(kind)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin toggle transaction: %w", err)
	}
	defer tx.Rollback()

	edge := models.Membership{
		Kind:     kind,
		TargetID: targetID,
		PlayerID: playerID,
	}

	deleteQuery := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND player_id = $2 RETURNING id`,
		rel.table, rel.targetColumn,
	)
	err = tx.QueryRowContext(ctx, deleteQuery, targetID, playerID).Scan(&edge.ID)
	switch {
	case err == nil:
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit toggle transaction: %w", err)
		}
		return &models.ToggleResult{State: models.ToggleRemoved, Edge: edge}, nil
	case errors.Is(err, sql.ErrNoRows):
		// Ребра не было — вставляем. Уникальное ограничение страхует от
		// параллельной вставки того же ребра.
	default:
		return nil, fmt.Errorf("failed to delete membership edge: %w", err)
	}

	insertQuery := fmt.Sprintf(
		`INSERT INTO %s (%s, player_id) VALUES ($1, $2) RETURNING id`,
		rel.table, rel.targetColumn,
	)
	if err := tx.QueryRowContext(ctx, insertQuery, targetID, playerID).Scan(&edge.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				if pqErr.Constraint == rel.uniqueConstraint {
					return nil, ErrMembershipConflict
				}
			case "23503": // foreign_key_violation
				switch pqErr.Constraint {
				case rel.playerFKey:
					return nil, ErrMembershipPlayerInvalid
				case rel.targetFKey:
					return nil, ErrMembershipTargetInvalid
				}
			}
		}
		return nil, fmt.Errorf("failed to insert membership edge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit toggle transaction: %w", err)
	}
	return &models.ToggleResult{State: models.ToggleAdded, Edge: edge}, nil
}

func (r *postgresMembershipRepository) CountByPlayer(ctx context.Context, kind models.MembershipKind, playerID int) (int, error) {
	rel, err := relationFor(kind)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE player_id = $1`, rel.table)

	var count int
	if err := r.db.QueryRowContext(ctx, query, playerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count membership edges: %w", err)
	}
	return count, nil
}
