package models

import (
	"time"
)

// ItemStatus represents the lifecycle of the current turn on an item
type ItemStatus string

const (
	// ItemStatusPending indicates the current holder has not acted yet
	ItemStatusPending ItemStatus = "pending"

	// ItemStatusLooted indicates the last holder took the item
	ItemStatusLooted ItemStatus = "looted"

	// ItemStatusSkipped indicates the last holder deferred their turn
	ItemStatusSkipped ItemStatus = "skipped"

	// ItemStatusSwapped indicates the last holder handed the item to someone else
	ItemStatusSwapped ItemStatus = "swapped"
)

// IsPending returns true if the current holder still has to act
func (s ItemStatus) IsPending() bool {
	return s == ItemStatusPending || s == ""
}

// MaxSkips is the number of skips after which a participant forfeits their slot
const MaxSkips = 2

// RemovedEntry records a participant extracted from a rotation after reaching
// the skip limit, so they can be put back where they were
type RemovedEntry struct {
	// ParticipantID is the removed participant
	ParticipantID ParticipantID `json:"participantId"`

	// OriginalIndex is the position they held when removed
	OriginalIndex int `json:"originalIndex"`

	// RemovedAt is when the removal happened
	RemovedAt time.Time `json:"removedAt"`
}

// ItemRotation holds the turn order and turn state for one loot item
type ItemRotation struct {
	// ItemID is the item this rotation belongs to
	ItemID ItemID `json:"itemId"`

	// Order is the sequence of participants defining turn order
	Order []ParticipantID `json:"order"`

	// Cursor is the index in Order of the current turn-holder
	Cursor int `json:"cursor"`

	// Status is the state of the current turn
	Status ItemStatus `json:"status"`

	// Skips counts skips per participant for this item, zero counts are not stored
	Skips map[ParticipantID]int `json:"skips"`

	// Looted lists participants who looted or swapped during the current cycle
	Looted []ParticipantID `json:"looted"`

	// Removed lists participants extracted for reaching the skip limit, oldest first
	Removed []RemovedEntry `json:"removed"`

	// ResumeAt is who the rotation continues with after a deferred turn is revisited
	ResumeAt ParticipantID `json:"resumeAt,omitempty"`
}

// DeferralEntry is a skipped turn owed a revisit
type DeferralEntry struct {
	// ItemID is the item whose turn was skipped
	ItemID ItemID `json:"itemId"`

	// ParticipantID is who skipped
	ParticipantID ParticipantID `json:"participantId"`

	// EnqueuedAt is when the skip happened
	EnqueuedAt time.Time `json:"enqueuedAt"`
}
