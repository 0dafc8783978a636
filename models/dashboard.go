package models

type Dashboard struct {
	Player           *Player       `json:"player"`
	SessionCount     int           `json:"session_count"`
	RoundCount       int           `json:"round_count"`
	WinCount         int           `json:"win_count"`
	UpcomingSessions []GameSession `json:"upcoming_sessions"`
	PastSessions     []GameSession `json:"past_sessions"`
}
