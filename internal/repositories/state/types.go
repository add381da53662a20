package state

import (
	"errors"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// ErrStateNotFound is returned when a guild has no saved snapshot
var ErrStateNotFound = errors.New("rotation state not found")

type GetStateInput struct {
	GuildID string
}

type SaveStateInput struct {
	State *models.RotationState
}

type DeleteStateInput struct {
	GuildID string
}

type ListGuildsInput struct {
}

type ListGuildsOutput struct {
	GuildIDs []string
}
