package models

// MembershipKind различает два отношения участия: игрок в сессии и
// игрок в раунде. Тоггл параметризован этим типом вместо двух копий логики.
type MembershipKind string

const (
	SessionMembership MembershipKind = "session"
	RoundMembership   MembershipKind = "round"
)

func (k MembershipKind) Valid() bool {
	return k == SessionMembership || k == RoundMembership
}

// Membership — ребро участия: строка player_in_session или player_in_round.
// TargetID — id сессии либо раунда в зависимости от Kind.
type Membership struct {
	ID       int            `json:"id"`
	Kind     MembershipKind `json:"kind"`
	TargetID int            `json:"target_id"`
	PlayerID int            `json:"player_id"`
}

// ToggleState — результат переключения участия.
type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)

type ToggleResult struct {
	State ToggleState `json:"state"`
	Edge  Membership  `json:"edge"`
}
