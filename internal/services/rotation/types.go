package rotation

import (
	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/notify"
	stateRepo "github.com/KirkDiggler/lootwheel/internal/repositories/state"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/KirkDiggler/lootwheel/internal/shuffle"
	"go.uber.org/zap"
)

// Config holds configuration for the rotation service
type Config struct {
	// HistoryLimit is the default number of entries GetHistory returns
	HistoryLimit int

	// Repository dependencies
	StateRepo stateRepo.Repository

	// Service dependencies
	Messaging     messaging.Service
	Notifier      notify.Notifier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Shuffler      shuffle.Shuffler
	Logger        *zap.Logger
}

// GuildInput identifies a guild and the caller's capability
type GuildInput struct {
	GuildID string
	Admin   bool
}

// ItemInput targets one item by ID or name
type ItemInput struct {
	GuildID string
	Admin   bool
	ItemRef string
}

// TurnInput contains parameters for a loot or skip
type TurnInput struct {
	GuildID string
	Admin   bool
	ItemRef string

	// ParticipantRef optionally names who is acting, by ID or name. When set
	// it must be the current turn-holder.
	ParticipantRef string
}

// SwapInput contains parameters for a swap
type SwapInput struct {
	GuildID        string
	Admin          bool
	ItemRef        string
	ParticipantRef string

	// CounterpartRef names who receives the item, by ID or name
	CounterpartRef string
}

// TurnOutput contains the result of a loot, skip or swap
type TurnOutput struct {
	Result *engine.TurnResult

	// Announcement is the line posted to the guild, e.g. "Alice looted Crystal! Next: Bob"
	Announcement string

	View *engine.View
}

// AdvanceOutput contains the result of a manual advance
type AdvanceOutput struct {
	Advanced   bool
	HolderName string
	View       *engine.View
}

// AdvanceAllOutput contains the result of advancing every item
type AdvanceAllOutput struct {
	Advanced int
	View     *engine.View
}

// ReorderInput contains parameters for moving one rotation entry
type ReorderInput struct {
	GuildID   string
	Admin     bool
	ItemRef   string
	Index     int
	Direction engine.Direction
}

// SetOrderInput contains parameters for replacing a rotation order
type SetOrderInput struct {
	GuildID         string
	Admin           bool
	ItemRef         string
	ParticipantRefs []string
}

// OrderOutput contains an item's rotation after a reorder
type OrderOutput struct {
	Names []string
	View  *engine.View
}

// ResetInput contains parameters for a reset. An empty ItemRef resets
// every item and the daily counter.
type ResetInput struct {
	GuildID string
	Admin   bool
	ItemRef string
}

// ResetOutput contains the result of a reset
type ResetOutput struct {
	Result       *engine.ResetResult
	Announcement string
	View         *engine.View
}

// ResetDailyCounterOutput contains the counter before it was cleared
type ResetDailyCounterOutput struct {
	Previous int
}

// ResetAllDailyCountersInput contains parameters for the daily job
type ResetAllDailyCountersInput struct {
	Admin bool
}

// ResetAllDailyCountersOutput reports how many guilds were reset
type ResetAllDailyCountersOutput struct {
	Guilds int
}

// AddItemInput contains parameters for registering an item
type AddItemInput struct {
	GuildID  string
	Admin    bool
	Name     string
	Rarity   models.Rarity
	Category string

	// ParticipantRefs optionally sets the rotation order
	ParticipantRefs []string
}

// ItemOutput contains a registered item
type ItemOutput struct {
	Item *models.LootItem
	View *engine.View
}

// DeleteItemOutput contains what a delete removed
type DeleteItemOutput struct {
	Item            *models.LootItem
	DeferralsPurged int
	View            *engine.View
}

// QueueItemInput contains parameters for staging an item
type QueueItemInput struct {
	GuildID  string
	Admin    bool
	Name     string
	Rarity   models.Rarity
	Category string
	Priority models.Priority
}

// QueueItemOutput contains where the item was staged
type QueueItemOutput struct {
	Pending  *models.PendingItem
	Position int
	View     *engine.View
}

// PromoteInput contains parameters for promoting a staged item
type PromoteInput struct {
	GuildID    string
	Admin      bool
	PendingRef string

	// ParticipantRefs optionally sets the rotation order
	ParticipantRefs []string
}

// PendingInput targets one staged item by ID or name
type PendingInput struct {
	GuildID    string
	Admin      bool
	PendingRef string
}

// DiscardPendingOutput contains the dropped item
type DiscardPendingOutput struct {
	Pending *models.PendingItem
	View    *engine.View
}

// AddParticipantInput contains parameters for adding a member
type AddParticipantInput struct {
	GuildID       string
	Admin         bool
	Name          string
	Role          string
	JoinRotations bool
}

// ParticipantInput targets one member by ID or name
type ParticipantInput struct {
	GuildID        string
	Admin          bool
	ParticipantRef string
}

// RenameParticipantInput contains parameters for renaming a member
type RenameParticipantInput struct {
	GuildID        string
	Admin          bool
	ParticipantRef string
	Name           string
}

// ParticipantOutput contains a roster member
type ParticipantOutput struct {
	Participant *models.Participant
	View        *engine.View
}

// GetStateInput contains parameters for reading a guild's state
type GetStateInput struct {
	GuildID string
}

// GetStateOutput contains a guild's state
type GetStateOutput struct {
	State *models.RotationState
	View  *engine.View
}

// GetHistoryInput contains parameters for reading history
type GetHistoryInput struct {
	GuildID string

	// ItemRef optionally limits the entries to one item
	ItemRef string

	// Limit caps the number of entries, the configured default is used when zero
	Limit int
}

// GetHistoryOutput contains history entries, most recent first
type GetHistoryOutput struct {
	Entries []*models.HistoryEntry
}

// ExportInput contains parameters for exporting a snapshot
type ExportInput struct {
	GuildID string
}

// ExportOutput contains a snapshot
type ExportOutput struct {
	Data []byte
}

// ImportInput contains parameters for replacing a guild's state
type ImportInput struct {
	GuildID string
	Admin   bool
	Data    []byte
}

// ImportOutput contains the imported state
type ImportOutput struct {
	View *engine.View
}
