package rotation

import (
	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/shuffle"
)

// Engine applies rotation operations to a state value. It holds no state of
// its own; every operation works on a copy of the state it is given and
// returns the copy, so a failed operation leaves the caller's state untouched.
type Engine struct {
	clock    clock.Clock
	uuid     uuid.UUID
	shuffler shuffle.Shuffler
}

// Config holds the collaborators of the engine
type Config struct {
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Shuffler      shuffle.Shuffler
}

// New creates a new rotation engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilInput
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	return &Engine{
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
		shuffler: cfg.Shuffler,
	}, nil
}

// begin validates the arguments and returns a normalised working copy
func (e *Engine) begin(state *models.RotationState, hasInput bool) (*models.RotationState, error) {
	if state == nil {
		return nil, ErrNilState
	}
	if !hasInput {
		return nil, ErrNilInput
	}
	next := Clone(state)
	normalize(next)
	return next, nil
}

// commit stamps a working copy as a new version
func (e *Engine) commit(state *models.RotationState) *models.RotationState {
	state.Version++
	state.UpdatedAt = e.clock.Now()
	return state
}
