package rotation

import (
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// QueueItem stages an item for later promotion. Urgent items go ahead of
// high ones, which go ahead of normal ones; arrival order is kept within a
// priority.
func (e *Engine) QueueItem(state *models.RotationState, input *QueueItemInput) (*models.RotationState, *QueueItemResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	name := CleanName(input.Name)
	if name == "" {
		return nil, nil, ErrInvalidName
	}
	rarity := input.Rarity
	if rarity == "" {
		rarity = models.RarityCommon
	}
	if !rarity.Valid() {
		return nil, nil, fmt.Errorf("rarity %q: %w", rarity, ErrInvalidRarity)
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !priority.Valid() {
		return nil, nil, fmt.Errorf("priority %q: %w", priority, ErrInvalidPriority)
	}

	pending := &models.PendingItem{
		ID:       models.PendingID(e.uuid.NewUUID()),
		Name:     name,
		Rarity:   rarity,
		Category: CleanName(input.Category),
		Priority: priority,
		AddedAt:  e.clock.Now(),
	}

	pos := len(next.Pending)
	for i, p := range next.Pending {
		if p.Priority.Rank() < priority.Rank() {
			pos = i
			break
		}
	}
	next.Pending = append(next.Pending, nil)
	copy(next.Pending[pos+1:], next.Pending[pos:])
	next.Pending[pos] = pending

	return e.commit(next), &QueueItemResult{Pending: pending, Position: pos}, nil
}

// Promote moves a staged item into the registry and gives it a rotation
func (e *Engine) Promote(state *models.RotationState, input *PromoteInput) (*models.RotationState, *ItemResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	idx := pendingIndex(next, input.PendingID)
	if idx < 0 {
		return nil, nil, fmt.Errorf("pending item %q: %w", input.PendingID, ErrNotFound)
	}
	pending := next.Pending[idx]

	item, err := e.register(next, pending.Name, pending.Rarity, pending.Category, input.Order, e.clock.Now())
	if err != nil {
		return nil, nil, err
	}
	next.Pending = append(next.Pending[:idx], next.Pending[idx+1:]...)

	return e.commit(next), &ItemResult{Item: item}, nil
}

// DiscardPending drops a staged item without promoting it
func (e *Engine) DiscardPending(state *models.RotationState, input *DiscardPendingInput) (*models.RotationState, *DiscardPendingResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	idx := pendingIndex(next, input.PendingID)
	if idx < 0 {
		return nil, nil, fmt.Errorf("pending item %q: %w", input.PendingID, ErrNotFound)
	}
	pending := next.Pending[idx]
	next.Pending = append(next.Pending[:idx], next.Pending[idx+1:]...)

	return e.commit(next), &DiscardPendingResult{Pending: pending}, nil
}

func pendingIndex(state *models.RotationState, id models.PendingID) int {
	for i, p := range state.Pending {
		if p.ID == id {
			return i
		}
	}
	return -1
}
