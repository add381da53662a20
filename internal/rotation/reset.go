package rotation

import (
	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Reset restores an item's rotation to a fresh cycle: removed participants
// are put back, the skip ledger and looted set are cleared, queued turns for
// the item are dropped and the turn goes back to the front. Without an item
// every rotation is reset and the daily counter is cleared.
func (e *Engine) Reset(state *models.RotationState, input *ResetInput) (*models.RotationState, *ResetResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	result := &ResetResult{}
	if input.ItemID != "" {
		_, rot, err := rotationFor(next, input.ItemID)
		if err != nil {
			return nil, nil, err
		}
		result.Restored = resetRotation(next, rot)
		result.Items = 1
		return e.commit(next), result, nil
	}

	for _, item := range next.Items {
		result.Restored += resetRotation(next, next.Rotations[item.ID])
		result.Items++
	}
	next.ActionsToday = 0

	return e.commit(next), result, nil
}

func resetRotation(state *models.RotationState, rot *models.ItemRotation) int {
	restored := restoreRemoved(rot)
	rot.Skips = map[models.ParticipantID]int{}
	rot.Looted = []models.ParticipantID{}
	rot.Cursor = 0
	rot.Status = models.ItemStatusPending
	rot.ResumeAt = ""
	purgeDeferrals(state, forItem(rot.ItemID))
	return restored
}

// ResetDailyCounter clears the count of actions taken today
func (e *Engine) ResetDailyCounter(state *models.RotationState, input *ResetDailyCounterInput) (*models.RotationState, *ResetDailyCounterResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	result := &ResetDailyCounterResult{Previous: next.ActionsToday}
	next.ActionsToday = 0
	return e.commit(next), result, nil
}
