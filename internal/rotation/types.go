package rotation

import (
	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Direction is which way an entry moves in a manual reorder
type Direction string

const (
	// DirectionUp moves an entry one place towards the front
	DirectionUp Direction = "up"

	// DirectionDown moves an entry one place towards the back
	DirectionDown Direction = "down"
)

// AdvanceInput contains parameters for a manual advance
type AdvanceInput struct {
	ItemID models.ItemID
}

// AdvanceResult reports the outcome of a manual advance
type AdvanceResult struct {
	// Advanced is false when the rotation was empty and nothing changed
	Advanced bool

	// Holder is the participant now holding the turn
	Holder models.ParticipantID
}

// AdvanceAllInput contains parameters for advancing every item
type AdvanceAllInput struct{}

// AdvanceAllResult reports the outcome of advancing every item
type AdvanceAllResult struct {
	// Advanced counts the items whose cursor moved
	Advanced int
}

// ReorderInput contains parameters for moving one entry of a rotation
type ReorderInput struct {
	ItemID    models.ItemID
	Index     int
	Direction Direction
}

// SetOrderInput contains parameters for replacing a rotation order
type SetOrderInput struct {
	ItemID models.ItemID
	Order  []models.ParticipantID
}

// RandomizeInput contains parameters for shuffling a rotation order
type RandomizeInput struct {
	ItemID models.ItemID
}

// OrderResult reports the rotation after a reorder
type OrderResult struct {
	Order  []models.ParticipantID
	Holder models.ParticipantID
}

// TurnInput contains parameters for a loot or skip on the current turn
type TurnInput struct {
	ItemID models.ItemID

	// ParticipantID optionally names who is acting. When set it must be the
	// current turn-holder.
	ParticipantID models.ParticipantID
}

// SwapInput contains parameters for handing the current turn's reward to
// another roster member
type SwapInput struct {
	ItemID        models.ItemID
	ParticipantID models.ParticipantID
	CounterpartID models.ParticipantID
}

// TurnResult reports the outcome of a loot, skip or swap
type TurnResult struct {
	// Entry is the history entry that was recorded
	Entry *models.HistoryEntry

	// Actor is who acted
	Actor models.ParticipantID

	// Next is who holds the turn now, empty if the rotation emptied
	Next models.ParticipantID

	// FromDeferral is true when Next was reached by revisiting a skipped turn
	FromDeferral bool

	// Removed is true when the actor forfeited their slot by skipping
	Removed bool

	// NewCycle is true when the item finished a cycle and its ledger was cleared
	NewCycle bool

	// SkipCount is the actor's skip count for the item after the action
	SkipCount int
}

// QueueItemInput contains parameters for staging an item
type QueueItemInput struct {
	Name     string
	Rarity   models.Rarity
	Category string
	Priority models.Priority
}

// QueueItemResult reports where an item was staged
type QueueItemResult struct {
	Pending  *models.PendingItem
	Position int
}

// PromoteInput contains parameters for promoting a staged item
type PromoteInput struct {
	PendingID models.PendingID

	// Order optionally sets the rotation order, the roster order is used otherwise
	Order []models.ParticipantID
}

// DiscardPendingInput contains parameters for dropping a staged item
type DiscardPendingInput struct {
	PendingID models.PendingID
}

// DiscardPendingResult reports the dropped entry
type DiscardPendingResult struct {
	Pending *models.PendingItem
}

// AddItemInput contains parameters for registering an item directly
type AddItemInput struct {
	Name     string
	Rarity   models.Rarity
	Category string

	// Order optionally sets the rotation order, the roster order is used otherwise
	Order []models.ParticipantID
}

// ItemResult reports a registered item
type ItemResult struct {
	Item *models.LootItem
}

// DeleteItemInput contains parameters for deleting an item
type DeleteItemInput struct {
	ItemID models.ItemID
}

// DeleteItemResult reports what a delete removed
type DeleteItemResult struct {
	Item            *models.LootItem
	DeferralsPurged int
}

// ResetInput contains parameters for a reset. An empty ItemID resets every
// item and the daily counter.
type ResetInput struct {
	ItemID models.ItemID
}

// ResetResult reports the outcome of a reset
type ResetResult struct {
	// Items counts the items that were reset
	Items int

	// Restored counts participants put back into rotations
	Restored int
}

// ResetDailyCounterInput contains parameters for clearing the daily counter
type ResetDailyCounterInput struct{}

// ResetDailyCounterResult reports the counter before it was cleared
type ResetDailyCounterResult struct {
	Previous int
}

// AddParticipantInput contains parameters for adding a roster member
type AddParticipantInput struct {
	Name string
	Role string

	// JoinRotations appends the new member to every existing rotation
	JoinRotations bool
}

// ParticipantResult reports a roster member
type ParticipantResult struct {
	Participant *models.Participant
}

// RemoveParticipantInput contains parameters for removing a roster member
type RemoveParticipantInput struct {
	ParticipantID models.ParticipantID
}

// RenameParticipantInput contains parameters for renaming a roster member
type RenameParticipantInput struct {
	ParticipantID models.ParticipantID
	Name          string
}
