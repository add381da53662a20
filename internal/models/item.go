package models

import (
	"time"
)

// Rarity represents how scarce a loot item is
type Rarity string

const (
	// RarityCommon is the lowest rarity tier
	RarityCommon Rarity = "common"

	// RarityUncommon is slightly better than common
	RarityUncommon Rarity = "uncommon"

	// RarityRare items drop occasionally
	RarityRare Rarity = "rare"

	// RarityEpic items drop seldom
	RarityEpic Rarity = "epic"

	// RarityLegendary is the highest rarity tier
	RarityLegendary Rarity = "legendary"
)

// Valid reports whether r is one of the known rarities
func (r Rarity) Valid() bool {
	switch r {
	case RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary:
		return true
	}
	return false
}

// Color returns the display colour of the rarity as an RGB integer
func (r Rarity) Color() int {
	switch r {
	case RarityUncommon:
		return 0x1EFF00
	case RarityRare:
		return 0x0070DD
	case RarityEpic:
		return 0xA335EE
	case RarityLegendary:
		return 0xFF8000
	default:
		return 0x9D9D9D
	}
}

// LootItem represents a reward that is distributed through its own rotation
type LootItem struct {
	// ID is the stable identifier of the item
	ID ItemID `json:"id"`

	// Name is the display name of the item
	Name string `json:"name"`

	// Rarity is the rarity tier of the item
	Rarity Rarity `json:"rarity,omitempty"`

	// Category is a free-form grouping such as "Loot" or "Material"
	Category string `json:"category,omitempty"`

	// CreatedAt is when the item was registered
	CreatedAt time.Time `json:"createdAt"`
}

// Priority determines where a pending item is placed in the arrival queue
type Priority string

const (
	// PriorityUrgent items go ahead of everything else
	PriorityUrgent Priority = "urgent"

	// PriorityHigh items go after urgent items
	PriorityHigh Priority = "high"

	// PriorityNormal items go to the back of the queue
	PriorityNormal Priority = "normal"
)

// Rank orders priorities, higher is more urgent
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 2
	case PriorityHigh:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priorities
func (p Priority) Valid() bool {
	switch p {
	case PriorityUrgent, PriorityHigh, PriorityNormal:
		return true
	}
	return false
}

// PendingItem is a loot item staged for promotion into the active rotations
type PendingItem struct {
	// ID is the identifier of the staged entry
	ID PendingID `json:"id"`

	// Name is the name the item will have once promoted
	Name string `json:"name"`

	// Rarity is the rarity tier of the item
	Rarity Rarity `json:"rarity,omitempty"`

	// Category is a free-form grouping
	Category string `json:"category,omitempty"`

	// Priority determines the position in the queue
	Priority Priority `json:"priority"`

	// AddedAt is when the item was queued
	AddedAt time.Time `json:"addedAt"`
}
