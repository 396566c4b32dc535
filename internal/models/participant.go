package models

import "time"

// Participant is a workshop roster entry scoped to one session.
type Participant struct {
	ID        int64     `db:"id" json:"id"`
	SessionID int64     `db:"session_id" json:"session_id"`
	Name      string    `db:"name" json:"name"`
	Role      *string   `db:"role" json:"role"`
	Company   *string   `db:"company" json:"company"`
	Email     *string   `db:"email" json:"email"`
	IsPresent bool      `db:"is_present" json:"is_present"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ParticipantPatch carries a partial update. Nil fields retain the stored
// value.
type ParticipantPatch struct {
	Name      *string
	Role      *string
	Company   *string
	Email     *string
	IsPresent *bool
}
