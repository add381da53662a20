package state

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/lootwheel/internal/repositories/state Repository

import (
	"context"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Repository defines the interface for rotation snapshot persistence
type Repository interface {
	// GetState retrieves the snapshot for a guild, ErrStateNotFound if none was saved
	GetState(ctx context.Context, input *GetStateInput) (*models.RotationState, error)

	// SaveState persists the snapshot for a guild, replacing any previous one
	SaveState(ctx context.Context, input *SaveStateInput) error

	// DeleteState removes the snapshot for a guild
	DeleteState(ctx context.Context, input *DeleteStateInput) error

	// ListGuilds lists every guild that has a snapshot
	ListGuilds(ctx context.Context, input *ListGuildsInput) (*ListGuildsOutput, error)
}
