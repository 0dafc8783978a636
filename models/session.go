package models

import "time"

// GameSession — игровой день клуба. На одну календарную дату может
// существовать не более одной сессии (game_sessions_date_key).
type GameSession struct {
	ID        int       `json:"id"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`

	// Заполняются только при загрузке с деталями.
	Players []SessionMember `json:"players,omitempty"`
	Rounds  []GameRound     `json:"rounds,omitempty"`
}

// SessionMember — строка player_in_session вместе с данными игрока.
type SessionMember struct {
	ID       int     `json:"id"`
	PlayerID int     `json:"player_id"`
	Player   *Player `json:"player,omitempty"`
}
