package rotation

import (
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Advance moves an item's turn to the next participant in plain rotation
// order. Deferred turns are not consulted. An empty rotation is left as is.
func (e *Engine) Advance(state *models.RotationState, input *AdvanceInput) (*models.RotationState, *AdvanceResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	_, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if !advance(rot) {
		return next, &AdvanceResult{}, nil
	}

	holder, _ := Holder(rot)
	return e.commit(next), &AdvanceResult{Advanced: true, Holder: holder}, nil
}

// AdvanceAll advances every item by one turn and counts as a single action
func (e *Engine) AdvanceAll(state *models.RotationState, input *AdvanceAllInput) (*models.RotationState, *AdvanceAllResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	result := &AdvanceAllResult{}
	for _, item := range next.Items {
		if advance(next.Rotations[item.ID]) {
			result.Advanced++
		}
	}
	next.ActionsToday++

	return e.commit(next), result, nil
}

func advance(rot *models.ItemRotation) bool {
	if rot == nil || len(rot.Order) == 0 {
		return false
	}
	rot.Cursor = (rot.Cursor + 1) % len(rot.Order)
	rot.Status = models.ItemStatusPending
	rot.ResumeAt = ""
	return true
}

// Reorder swaps the entry at index with its neighbour. The cursor follows
// the participant it pointed at.
func (e *Engine) Reorder(state *models.RotationState, input *ReorderInput) (*models.RotationState, *OrderResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	_, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}

	var other int
	switch input.Direction {
	case DirectionUp:
		other = input.Index - 1
	case DirectionDown:
		other = input.Index + 1
	default:
		return nil, nil, fmt.Errorf("direction %q: %w", input.Direction, ErrInvalidPosition)
	}
	if input.Index < 0 || input.Index >= len(rot.Order) || other < 0 || other >= len(rot.Order) {
		return nil, nil, fmt.Errorf("move %d %s in %d entries: %w", input.Index, input.Direction, len(rot.Order), ErrInvalidPosition)
	}

	rot.Order[input.Index], rot.Order[other] = rot.Order[other], rot.Order[input.Index]
	switch rot.Cursor {
	case input.Index:
		rot.Cursor = other
	case other:
		rot.Cursor = input.Index
	}

	return e.commit(next), orderResult(rot), nil
}

// SetOrder replaces an item's rotation order and starts it from the front
func (e *Engine) SetOrder(state *models.RotationState, input *SetOrderInput) (*models.RotationState, *OrderResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	_, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if err := validateOrder(next, input.Order, false); err != nil {
		return nil, nil, err
	}

	setOrder(next, rot, input.Order)
	return e.commit(next), orderResult(rot), nil
}

// Randomize shuffles an item's rotation order and starts it from the front
func (e *Engine) Randomize(state *models.RotationState, input *RandomizeInput) (*models.RotationState, *OrderResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	item, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if len(rot.Order) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", item.Name, ErrEmptyRotation)
	}

	order := append([]models.ParticipantID{}, rot.Order...)
	e.shuffler.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	setOrder(next, rot, order)
	return e.commit(next), orderResult(rot), nil
}

func setOrder(state *models.RotationState, rot *models.ItemRotation, order []models.ParticipantID) {
	rot.Order = append([]models.ParticipantID{}, order...)
	rot.Cursor = 0
	rot.Status = models.ItemStatusPending
	rot.ResumeAt = ""

	removed := rot.Removed[:0]
	for _, r := range rot.Removed {
		if indexOf(rot.Order, r.ParticipantID) >= 0 {
			delete(rot.Skips, r.ParticipantID)
			continue
		}
		removed = append(removed, r)
	}
	rot.Removed = removed
	rot.Looted = keepListed(rot.Looted, rot.Order)

	purgeDeferrals(state, func(d models.DeferralEntry) bool {
		return d.ItemID == rot.ItemID && indexOf(rot.Order, d.ParticipantID) < 0
	})
}

// validateOrder checks that every entry is a roster member and appears once
func validateOrder(state *models.RotationState, order []models.ParticipantID, allowEmpty bool) error {
	if len(order) == 0 && !allowEmpty {
		return fmt.Errorf("order is empty: %w", ErrInvalidOrder)
	}
	seen := make(map[models.ParticipantID]bool, len(order))
	for _, id := range order {
		if participantByID(state, id) == nil {
			return fmt.Errorf("member %q: %w", id, ErrNotFound)
		}
		if seen[id] {
			return fmt.Errorf("%s listed twice: %w", ParticipantName(state, id), ErrInvalidOrder)
		}
		seen[id] = true
	}
	return nil
}

func orderResult(rot *models.ItemRotation) *OrderResult {
	holder, _ := Holder(rot)
	return &OrderResult{
		Order:  append([]models.ParticipantID{}, rot.Order...),
		Holder: holder,
	}
}

// keepListed returns the ids from in that appear in order
func keepListed(in, order []models.ParticipantID) []models.ParticipantID {
	out := []models.ParticipantID{}
	for _, id := range in {
		if indexOf(order, id) >= 0 {
			out = append(out, id)
		}
	}
	return out
}
