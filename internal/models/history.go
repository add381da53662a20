package models

import (
	"time"
)

// HistoryKind represents the action recorded by a history entry
type HistoryKind string

const (
	// HistoryKindLoot records a participant taking an item
	HistoryKindLoot HistoryKind = "loot"

	// HistoryKindSkip records a participant deferring their turn
	HistoryKindSkip HistoryKind = "skip"

	// HistoryKindSwap records a participant handing their turn's reward to someone else
	HistoryKindSwap HistoryKind = "swap"
)

// HistoryEntry records a completed turn action. Names are copied at the time
// of the action so entries stay readable after deletions.
type HistoryEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// Timestamp is when the action happened
	Timestamp time.Time `json:"timestamp"`

	// Kind is the action taken
	Kind HistoryKind `json:"kind"`

	// ItemID is the item acted on
	ItemID ItemID `json:"itemId"`

	// ItemName is the item name at the time of the action
	ItemName string `json:"itemName"`

	// ParticipantID is the turn-holder who acted
	ParticipantID ParticipantID `json:"participantId"`

	// ParticipantName is the holder's name at the time of the action
	ParticipantName string `json:"participantName"`

	// CounterpartID is who received the item on a swap
	CounterpartID ParticipantID `json:"counterpartId,omitempty"`

	// CounterpartName is the counterpart's name at the time of the swap
	CounterpartName string `json:"counterpartName,omitempty"`

	// NextParticipantName is who held the turn right after the action
	NextParticipantName string `json:"nextParticipantName,omitempty"`
}
