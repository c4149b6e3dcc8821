package entity

type Participant struct {
	ChatID   int64  `json:"chat_id" db:"chat_id"`
	UserID   int64  `json:"user_id" db:"user_id"`
	Username string `json:"username" db:"username"` // @username or full name, may be empty
	Active   bool   `json:"active" db:"active"`
	IsAdmin  bool   `json:"is_admin" db:"is_admin"`
}

// ParticipantRef is the read-only view the reminder pass works with.
type ParticipantRef struct {
	UserID      int64
	DisplayName string
}

func (p *Participant) Ref() ParticipantRef {
	return ParticipantRef{UserID: p.UserID, DisplayName: p.Username}
}
