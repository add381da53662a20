package models

import (
	"time"
)

// RotationState is the complete state of one guild's loot rotations. It is
// the value every engine operation consumes and produces, and the blob that
// gets persisted.
type RotationState struct {
	// GuildID is the guild this state belongs to
	GuildID string `json:"guildId"`

	// Version increases by one on every applied operation
	Version int64 `json:"version"`

	// Roster is the ordered list of guild members
	Roster []*Participant `json:"roster"`

	// Items is the registry of active loot items
	Items []*LootItem `json:"items"`

	// Rotations holds the rotation table row for every item
	Rotations map[ItemID]*ItemRotation `json:"rotations"`

	// Deferrals is the global FIFO of skipped turns owed a revisit
	Deferrals []DeferralEntry `json:"deferrals"`

	// Pending is the staging queue of items awaiting promotion
	Pending []*PendingItem `json:"pending"`

	// History lists completed actions, most recent first
	History []*HistoryEntry `json:"history"`

	// ActionsToday counts turn actions since the last daily reset
	ActionsToday int `json:"actionsToday"`

	// UpdatedAt is when the state last changed
	UpdatedAt time.Time `json:"updatedAt"`
}
