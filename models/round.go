package models

import "time"

type GameRound struct {
	ID        int       `json:"id"`
	Number    int       `json:"number"`
	SessionID int       `json:"session_id"`
	WinnerID  *int      `json:"winner_id,omitempty"`
	Winner    *Player   `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Players []RoundMember `json:"players,omitempty"`

	// Joined выставляется агрегатором для текущего игрока.
	Joined bool `json:"joined"`
}

// RoundMember — строка player_in_round вместе с данными игрока.
// Участие в раунде и победа в нём независимы: winner_id живёт на раунде.
type RoundMember struct {
	ID       int     `json:"id"`
	PlayerID int     `json:"player_id"`
	Player   *Player `json:"player,omitempty"`
}
