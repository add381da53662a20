package rotation

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// AddItem registers an item and gives it a rotation. Without an explicit
// order the rotation follows the roster.
func (e *Engine) AddItem(state *models.RotationState, input *AddItemInput) (*models.RotationState, *ItemResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	now := e.clock.Now()
	item, err := e.register(next, input.Name, input.Rarity, input.Category, input.Order, now)
	if err != nil {
		return nil, nil, err
	}

	return e.commit(next), &ItemResult{Item: item}, nil
}

func (e *Engine) register(state *models.RotationState, name string, rarity models.Rarity, category string, order []models.ParticipantID, now time.Time) (*models.LootItem, error) {
	name = CleanName(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if rarity == "" {
		rarity = models.RarityCommon
	}
	if !rarity.Valid() {
		return nil, fmt.Errorf("rarity %q: %w", rarity, ErrInvalidRarity)
	}
	for _, existing := range state.Items {
		if SameName(existing.Name, name) {
			return nil, fmt.Errorf("%s: %w", name, ErrItemExists)
		}
	}

	if len(order) == 0 {
		order = rosterOrder(state)
	} else if err := validateOrder(state, order, true); err != nil {
		return nil, err
	}

	item := &models.LootItem{
		ID:        models.ItemID(e.uuid.NewUUID()),
		Name:      name,
		Rarity:    rarity,
		Category:  CleanName(category),
		CreatedAt: now,
	}
	rot := &models.ItemRotation{Order: append([]models.ParticipantID{}, order...)}
	normalizeRotation(item.ID, rot)

	state.Items = append(state.Items, item)
	state.Rotations[item.ID] = rot
	return item, nil
}

// DeleteItem removes an item together with its rotation and any queued
// turns for it. History entries about the item are kept.
func (e *Engine) DeleteItem(state *models.RotationState, input *DeleteItemInput) (*models.RotationState, *DeleteItemResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	item, _, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}

	items := next.Items[:0]
	for _, it := range next.Items {
		if it.ID != item.ID {
			items = append(items, it)
		}
	}
	next.Items = items
	delete(next.Rotations, item.ID)
	purged := purgeDeferrals(next, forItem(item.ID))

	return e.commit(next), &DeleteItemResult{Item: item, DeferralsPurged: purged}, nil
}

func rosterOrder(state *models.RotationState) []models.ParticipantID {
	order := make([]models.ParticipantID, 0, len(state.Roster))
	for _, p := range state.Roster {
		order = append(order, p.ID)
	}
	return order
}
