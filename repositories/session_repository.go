package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/mahjong-club/models"
	"github.com/lib/pq"
)

var (
	ErrSessionNotFound     = errors.New("game session not found")
	ErrSessionDateConflict = errors.New("game session date conflict")
)

//go:generate mockgen -package=mocks -destination=mocks/mock_session_repository.go github.com/Dosada05/mahjong-club/repositories SessionRepository
type SessionRepository interface {
	Create(ctx context.Context, session *models.GameSession) error
	GetByID(ctx context.Context, id int) (*models.GameSession, error)
	FindByDate(ctx context.Context, date time.Time) (*models.GameSession, error)
	List(ctx context.Context) ([]models.GameSession, error)
	// ListUpcomingWithDetails возвращает сессии с date >= from (по возрастанию),
	// с вложенными участниками, раундами и участниками раундов.
	ListUpcomingWithDetails(ctx context.Context, from time.Time) ([]models.GameSession, error)
	// ListPastWithDetails возвращает сессии с date < until (по убыванию),
	// с той же вложенностью. Граница полуоткрытая: "сегодня" не прошедшая.
	ListPastWithDetails(ctx context.Context, until time.Time) ([]models.GameSession, error)
}

type postgresSessionRepository struct {
	db *sql.DB
}

func NewPostgresSessionRepository(db *sql.DB) SessionRepository {
	return &postgresSessionRepository{db: db}
}

func (r *postgresSessionRepository) Create(ctx context.Context, session *models.GameSession) error {
	query := `
		INSERT INTO game_sessions (date)
		VALUES ($1)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, session.Date).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" && pqErr.Constraint == "game_sessions_date_key" {
				return ErrSessionDateConflict
			}
		}
		return fmt.Errorf("failed to create game session: %w", err)
	}
	return nil
}

func (r *postgresSessionRepository) GetByID(ctx context.Context, id int) (*models.GameSession, error) {
	query := `SELECT id, date, created_at FROM game_sessions WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresSessionRepository) FindByDate(ctx context.Context, date time.Time) (*models.GameSession, error) {
	query := `SELECT id, date, created_at FROM game_sessions WHERE date = $1`
	return r.findOne(ctx, query, date)
}

func (r *postgresSessionRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.GameSession, error) {
	s := &models.GameSession{}
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&s.ID, &s.Date, &s.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find game session: %w", err)
	}
	return s, nil
}

func (r *postgresSessionRepository) List(ctx context.Context) ([]models.GameSession, error) {
	query := `SELECT id, date, created_at FROM game_sessions ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list game sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]models.GameSession, 0)
	for rows.Next() {
		var s models.GameSession
		if err := rows.Scan(&s.ID, &s.Date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game session rows: %w", err)
	}
	return sessions, nil
}

func (r *postgresSessionRepository) ListUpcomingWithDetails(ctx context.Context, from time.Time) ([]models.GameSession, error) {
	return r.listWithDetails(ctx, "date >= $1", "ASC", from)
}

func (r *postgresSessionRepository) ListPastWithDetails(ctx context.Context, until time.Time) ([]models.GameSession, error) {
	return r.listWithDetails(ctx, "date < $1", "DESC", until)
}

func (r *postgresSessionRepository) listWithDetails(ctx context.Context, cond, order string, boundary time.Time) ([]models.GameSession, error) {
	query := fmt.Sprintf(`SELECT id, date, created_at FROM game_sessions WHERE %s ORDER BY date %s`, cond, order)

	rows, err := r.db.QueryContext(ctx, query, boundary)
	if err != nil {
		return nil, fmt.Errorf("failed to list game sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]models.GameSession, 0)
	index := make(map[int]*models.GameSession)
	ids := make([]int64, 0)

	for rows.Next() {
		var s models.GameSession
		if err := rows.Scan(&s.ID, &s.Date, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan game session row: %w", err)
		}
		s.Players = make([]models.SessionMember, 0)
		s.Rounds = make([]models.GameRound, 0)
		sessions = append(sessions, s)
		ids = append(ids, int64(s.ID))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game session rows: %w", err)
	}
	if len(sessions) == 0 {
		return sessions, nil
	}
	for i := range sessions {
		index[sessions[i].ID] = &sessions[i]
	}

	if err := r.loadMembers(ctx, ids, index); err != nil {
		return nil, err
	}
	roundIndex, err := r.loadRounds(ctx, ids, index)
	if err != nil {
		return nil, err
	}
	if len(roundIndex) > 0 {
		if err := r.loadRoundMembers(ctx, roundIndex); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (r *postgresSessionRepository) loadMembers(ctx context.Context, sessionIDs []int64, index map[int]*models.GameSession) error {
	query := `
		SELECT m.id, m.session_id, m.player_id, p.id, p.name, p.avatar_key, p.created_at
		FROM player_in_session m
		JOIN players p ON m.player_id = p.id
		WHERE m.session_id = ANY($1)
		ORDER BY m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(sessionIDs))
	if err != nil {
		return fmt.Errorf("failed to load session members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.SessionMember
		var sessionID int
		var p models.Player
		if err := rows.Scan(&m.ID, &sessionID, &m.PlayerID, &p.ID, &p.Name, &p.AvatarKey, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan session member row: %w", err)
		}
		m.Player = &p
		if s, ok := index[sessionID]; ok {
			s.Players = append(s.Players, m)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating session member rows: %w", err)
	}
	return nil
}

func (r *postgresSessionRepository) loadRounds(ctx context.Context, sessionIDs []int64, index map[int]*models.GameSession) (map[int]*models.GameRound, error) {
	query := `
		SELECT gr.id, gr.number, gr.session_id, gr.winner_id, gr.created_at,
		       w.id, w.name, w.avatar_key, w.created_at
		FROM game_rounds gr
		LEFT JOIN players w ON gr.winner_id = w.id
		WHERE gr.session_id = ANY($1)
		ORDER BY gr.session_id, gr.number ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(sessionIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to load game rounds: %w", err)
	}
	defer rows.Close()

	type placement struct {
		sessionID int
		pos       int
	}
	placements := make(map[int]placement)

	for rows.Next() {
		var round models.GameRound
		var winnerID sql.NullInt64
		var winnerName sql.NullString
		var winnerAvatar sql.NullString
		var winnerCreatedAt sql.NullTime
		if err := rows.Scan(
			&round.ID, &round.Number, &round.SessionID, &round.WinnerID, &round.CreatedAt,
			&winnerID, &winnerName, &winnerAvatar, &winnerCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game round row: %w", err)
		}
		// winner_id может быть NULL: раунд без победителя — валидное состояние.
		if round.WinnerID != nil && winnerID.Valid {
			winner := &models.Player{
				ID:        int(winnerID.Int64),
				Name:      winnerName.String,
				CreatedAt: winnerCreatedAt.Time,
			}
			if winnerAvatar.Valid {
				key := winnerAvatar.String
				winner.AvatarKey = &key
			}
			round.Winner = winner
		}
		round.Players = make([]models.RoundMember, 0)
		if s, ok := index[round.SessionID]; ok {
			s.Rounds = append(s.Rounds, round)
			placements[round.ID] = placement{sessionID: round.SessionID, pos: len(s.Rounds) - 1}
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game round rows: %w", err)
	}

	roundIndex := make(map[int]*models.GameRound, len(placements))
	for roundID, pl := range placements {
		roundIndex[roundID] = &index[pl.sessionID].Rounds[pl.pos]
	}
	return roundIndex, nil
}

func (r *postgresSessionRepository) loadRoundMembers(ctx context.Context, roundIndex map[int]*models.GameRound) error {
	roundIDs := make([]int64, 0, len(roundIndex))
	for id := range roundIndex {
		roundIDs = append(roundIDs, int64(id))
	}

	query := `
		SELECT m.id, m.round_id, m.player_id, p.id, p.name, p.avatar_key, p.created_at
		FROM player_in_round m
		JOIN players p ON m.player_id = p.id
		WHERE m.round_id = ANY($1)
		ORDER BY m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(roundIDs))
	if err != nil {
		return fmt.Errorf("failed to load round members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.RoundMember
		var roundID int
		var p models.Player
		if err := rows.Scan(&m.ID, &roundID, &m.PlayerID, &p.ID, &p.Name, &p.AvatarKey, &p.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan round member row: %w", err)
		}
		m.Player = &p
		if round, ok := roundIndex[roundID]; ok {
			round.Players = append(round.Players, m)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating round member rows: %w", err)
	}
	return nil
}
