package models

import (
	"time"
)

// Participant represents a member of the guild roster
type Participant struct {
	// ID is the stable identifier used by every rotation table
	ID ParticipantID `json:"id"`

	// Name is the display name of the member
	Name string `json:"name"`

	// Role is a free-form tag such as "member" or "officer"
	Role string `json:"role,omitempty"`

	// JoinedAt is when the member was added to the roster
	JoinedAt time.Time `json:"joinedAt"`
}
