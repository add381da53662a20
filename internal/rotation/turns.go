package rotation

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Skip defers the current holder's turn on an item. The skipped turn is
// queued for a revisit before the rotation moves past it. A second skip on
// the same item forfeits the participant's slot until the item is reset or
// finishes its cycle.
func (e *Engine) Skip(state *models.RotationState, input *TurnInput) (*models.RotationState, *TurnResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	item, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	holder, err := resolveHolder(next, item, rot, input.ParticipantID)
	if err != nil {
		return nil, nil, err
	}
	if rot.Skips[holder] >= models.MaxSkips {
		return nil, nil, fmt.Errorf("%s on %s: %w", ParticipantName(next, holder), item.Name, ErrSkipLimitExceeded)
	}

	now := e.clock.Now()
	successor := successorOf(rot)

	enqueueDeferral(next, item.ID, holder, now)
	rot.Skips[holder]++
	rot.Status = models.ItemStatusSkipped

	removed := false
	if rot.Skips[holder] >= models.MaxSkips {
		removeFromOrder(rot, holder, now)
		purgeDeferrals(next, forItemParticipant(item.ID, holder))
		removed = true
	}

	to, fromDeferral := dispatch(next, rot, holder, successor)
	entry := e.record(next, models.HistoryKindSkip, item, holder, "", to, now)
	next.ActionsToday++

	return e.commit(next), &TurnResult{
		Entry:        entry,
		Actor:        holder,
		Next:         to,
		FromDeferral: fromDeferral,
		Removed:      removed,
		SkipCount:    rot.Skips[holder],
	}, nil
}

// Loot records that the current holder took the item
func (e *Engine) Loot(state *models.RotationState, input *TurnInput) (*models.RotationState, *TurnResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	item, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	holder, err := resolveHolder(next, item, rot, input.ParticipantID)
	if err != nil {
		return nil, nil, err
	}

	result := e.take(next, item, rot, holder, "", e.clock.Now())
	return e.commit(next), result, nil
}

// Swap records that the current holder handed the item to another roster
// member. For turn purposes it counts the same as a loot by the holder; the
// rotation order is left alone.
func (e *Engine) Swap(state *models.RotationState, input *SwapInput) (*models.RotationState, *TurnResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	item, rot, err := rotationFor(next, input.ItemID)
	if err != nil {
		return nil, nil, err
	}
	holder, err := resolveHolder(next, item, rot, input.ParticipantID)
	if err != nil {
		return nil, nil, err
	}
	if participantByID(next, input.CounterpartID) == nil {
		return nil, nil, fmt.Errorf("member %q: %w", input.CounterpartID, ErrNotFound)
	}
	if input.CounterpartID == holder {
		return nil, nil, ErrSelfSwap
	}

	result := e.take(next, item, rot, holder, input.CounterpartID, e.clock.Now())
	return e.commit(next), result, nil
}

// take applies a loot, or a swap when counterpart is set
func (e *Engine) take(state *models.RotationState, item *models.LootItem, rot *models.ItemRotation, holder, counterpart models.ParticipantID, now time.Time) *TurnResult {
	successor := successorOf(rot)

	delete(rot.Skips, holder)
	purgeDeferrals(state, forItemParticipant(item.ID, holder))
	if indexOf(rot.Looted, holder) < 0 {
		rot.Looted = append(rot.Looted, holder)
	}

	kind := models.HistoryKindLoot
	rot.Status = models.ItemStatusLooted
	if counterpart != "" {
		kind = models.HistoryKindSwap
		rot.Status = models.ItemStatusSwapped
	}

	to, fromDeferral := dispatch(state, rot, holder, successor)
	newCycle := completeCycle(rot)

	entry := e.record(state, kind, item, holder, counterpart, to, now)
	state.ActionsToday++

	return &TurnResult{
		Entry:        entry,
		Actor:        holder,
		Next:         to,
		FromDeferral: fromDeferral,
		NewCycle:     newCycle,
	}
}

// resolveHolder returns the current turn-holder, checking the optional
// participant named by the caller against it
func resolveHolder(state *models.RotationState, item *models.LootItem, rot *models.ItemRotation, participant models.ParticipantID) (models.ParticipantID, error) {
	holder, ok := Holder(rot)
	if !ok {
		return "", fmt.Errorf("%s: %w", item.Name, ErrEmptyRotation)
	}
	if participant == "" {
		return holder, nil
	}
	if participantByID(state, participant) == nil {
		return "", fmt.Errorf("member %q: %w", participant, ErrNotFound)
	}
	if participant != holder {
		return "", fmt.Errorf("%s is up for %s, not %s: %w",
			ParticipantName(state, holder), item.Name, ParticipantName(state, participant), ErrNotTurnHolder)
	}
	return holder, nil
}

// removeFromOrder extracts a participant from the rotation and logs where
// they were. The cursor keeps pointing at the same holder when it can and
// wraps to the front when it falls off the end.
func removeFromOrder(rot *models.ItemRotation, participant models.ParticipantID, now time.Time) bool {
	idx := indexOf(rot.Order, participant)
	if idx < 0 {
		return false
	}
	rot.Order = append(rot.Order[:idx], rot.Order[idx+1:]...)
	rot.Removed = append(rot.Removed, models.RemovedEntry{
		ParticipantID: participant,
		OriginalIndex: idx,
		RemovedAt:     now,
	})
	if rot.Cursor > idx {
		rot.Cursor--
	}
	if rot.Cursor >= len(rot.Order) {
		rot.Cursor = 0
	}
	return true
}

// restoreRemoved puts every removed participant back at their original
// index, most recently removed first, keeping the cursor on the holder
func restoreRemoved(rot *models.ItemRotation) int {
	holder, hasHolder := Holder(rot)
	restored := 0
	for i := len(rot.Removed) - 1; i >= 0; i-- {
		entry := rot.Removed[i]
		if indexOf(rot.Order, entry.ParticipantID) >= 0 {
			continue
		}
		idx := entry.OriginalIndex
		if idx < 0 {
			idx = 0
		}
		if idx > len(rot.Order) {
			idx = len(rot.Order)
		}
		rot.Order = append(rot.Order, "")
		copy(rot.Order[idx+1:], rot.Order[idx:])
		rot.Order[idx] = entry.ParticipantID
		restored++
	}
	rot.Removed = []models.RemovedEntry{}
	if hasHolder {
		rot.Cursor = indexOf(rot.Order, holder)
	} else {
		rot.Cursor = 0
	}
	return restored
}

// completeCycle starts a fresh cycle for an item once everyone still in its
// rotation has looted or forfeited
func completeCycle(rot *models.ItemRotation) bool {
	if len(rot.Order) == 0 {
		return false
	}
	for _, p := range rot.Order {
		if indexOf(rot.Looted, p) < 0 && rot.Skips[p] < models.MaxSkips {
			return false
		}
	}
	restoreRemoved(rot)
	rot.Skips = map[models.ParticipantID]int{}
	rot.Looted = []models.ParticipantID{}
	return true
}
