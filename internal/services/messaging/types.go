package messaging

import (
	"github.com/KirkDiggler/lootwheel/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// GetActionMessageInput contains parameters for an action announcement
type GetActionMessageInput struct {
	// Kind is the action taken
	Kind models.HistoryKind

	// ParticipantName is who acted
	ParticipantName string

	// ItemName is the item acted on
	ItemName string

	// CounterpartName is who received the item on a swap
	CounterpartName string

	// NextName is who is up next, empty if nobody is
	NextName string

	// Removed is true when a skip forfeited the participant's slot
	Removed bool

	// NewCycle is true when the item went all the way around
	NewCycle bool

	// Rarity of the item, legendary drops get a celebration
	Rarity models.Rarity

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetActionMessageOutput contains the generated announcement
type GetActionMessageOutput struct {
	// Title is a short headline
	Title string

	// Message is the announcement line, e.g. "Alice looted Crystal! Next: Bob"
	Message string

	// Comment is optional flavour text
	Comment string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetErrorMessageInput contains parameters for an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the rotation service
	Err error
}

// GetErrorMessageOutput contains the generated error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// GetBossAlertMessageInput contains parameters for a boss alert
type GetBossAlertMessageInput struct {
	// BossName is the spawn being announced
	BossName string

	// Countdown is the formatted time until the spawn
	Countdown string
}

// GetBossAlertMessageOutput contains the generated alert
type GetBossAlertMessageOutput struct {
	Message string
}

// GetResetMessageInput contains parameters for a reset announcement
type GetResetMessageInput struct {
	// ItemName is the item reset, empty for a full reset
	ItemName string

	// Restored counts members put back into rotations
	Restored int
}

// GetResetMessageOutput contains the generated announcement
type GetResetMessageOutput struct {
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the flavour text selection, used by tests
	Seed int64
}
