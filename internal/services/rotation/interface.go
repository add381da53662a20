package rotation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lootwheel/internal/services/rotation Service

import "context"

// Service defines the loot rotation operations available to the front-ends.
// Every mutating input carries an Admin flag set by the caller's
// authentication; operations without it fail with ErrPermissionDenied.
type Service interface {
	// GetState returns the current rotations of a guild
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// GetHistory returns the most recent actions of a guild
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// Loot records that the current holder took an item
	Loot(ctx context.Context, input *TurnInput) (*TurnOutput, error)

	// Skip defers the current holder's turn on an item
	Skip(ctx context.Context, input *TurnInput) (*TurnOutput, error)

	// Swap records that the current holder handed an item to someone else
	Swap(ctx context.Context, input *SwapInput) (*TurnOutput, error)

	// Advance moves an item's turn on without recording an action
	Advance(ctx context.Context, input *ItemInput) (*AdvanceOutput, error)

	// AdvanceAll moves every item's turn on by one
	AdvanceAll(ctx context.Context, input *GuildInput) (*AdvanceAllOutput, error)

	// Reorder moves one entry of an item's rotation up or down
	Reorder(ctx context.Context, input *ReorderInput) (*OrderOutput, error)

	// SetOrder replaces an item's rotation order
	SetOrder(ctx context.Context, input *SetOrderInput) (*OrderOutput, error)

	// Randomize shuffles an item's rotation order
	Randomize(ctx context.Context, input *ItemInput) (*OrderOutput, error)

	// Reset restores one item, or every item, to a fresh cycle
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// ResetDailyCounter clears a guild's count of actions taken today
	ResetDailyCounter(ctx context.Context, input *GuildInput) (*ResetDailyCounterOutput, error)

	// ResetAllDailyCounters clears the daily counter of every stored guild
	ResetAllDailyCounters(ctx context.Context, input *ResetAllDailyCountersInput) (*ResetAllDailyCountersOutput, error)

	// AddItem registers an item with its own rotation
	AddItem(ctx context.Context, input *AddItemInput) (*ItemOutput, error)

	// DeleteItem removes an item and everything tied to it
	DeleteItem(ctx context.Context, input *ItemInput) (*DeleteItemOutput, error)

	// QueueItem stages an item for later promotion
	QueueItem(ctx context.Context, input *QueueItemInput) (*QueueItemOutput, error)

	// Promote moves a staged item into the active rotations
	Promote(ctx context.Context, input *PromoteInput) (*ItemOutput, error)

	// DiscardPending drops a staged item
	DiscardPending(ctx context.Context, input *PendingInput) (*DiscardPendingOutput, error)

	// AddParticipant adds a member to the roster
	AddParticipant(ctx context.Context, input *AddParticipantInput) (*ParticipantOutput, error)

	// RemoveParticipant removes a member from the roster and every rotation
	RemoveParticipant(ctx context.Context, input *ParticipantInput) (*ParticipantOutput, error)

	// RenameParticipant changes a member's display name
	RenameParticipant(ctx context.Context, input *RenameParticipantInput) (*ParticipantOutput, error)

	// Export returns the guild's snapshot
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)

	// Import replaces the guild's state with a snapshot
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}
