package rotation

import (
	"github.com/KirkDiggler/lootwheel/internal/models"
)

// dispatch moves the cursor after a loot, skip or swap by actor. Deferred
// turns for the item are revisited first, earliest first. The participant
// who would normally have been next is remembered in ResumeAt so the
// rotation carries on from there once the queue for the item drains.
// successor is the normal next holder, computed before any removal.
func dispatch(state *models.RotationState, rot *models.ItemRotation, actor, successor models.ParticipantID) (models.ParticipantID, bool) {
	if len(rot.Order) == 0 {
		rot.Cursor = 0
		rot.ResumeAt = ""
		return "", false
	}

	target, found := dequeueDeferral(state, rot, actor)
	if found {
		if rot.ResumeAt == "" && successor != target {
			rot.ResumeAt = successor
		}
	} else if rot.ResumeAt != "" && rot.ResumeAt != actor && indexOf(rot.Order, rot.ResumeAt) >= 0 {
		target = rot.ResumeAt
		rot.ResumeAt = ""
	} else {
		rot.ResumeAt = ""
		target = successor
	}

	idx := indexOf(rot.Order, target)
	if idx < 0 {
		// successor was the actor and the actor has just been removed
		idx = rot.Cursor
		if idx >= len(rot.Order) {
			idx = 0
		}
		target = rot.Order[idx]
	}
	rot.Cursor = idx
	if target != actor {
		rot.Status = models.ItemStatusPending
	}
	if rot.ResumeAt == target {
		rot.ResumeAt = ""
	}
	return target, found
}

// dequeueDeferral pops the earliest queued turn for the rotation's item,
// leaving the actor's own entry in place and discarding entries for
// participants no longer in the rotation.
func dequeueDeferral(state *models.RotationState, rot *models.ItemRotation, actor models.ParticipantID) (models.ParticipantID, bool) {
	var target models.ParticipantID
	found := false
	kept := state.Deferrals[:0]
	for _, d := range state.Deferrals {
		switch {
		case found || d.ItemID != rot.ItemID || d.ParticipantID == actor:
			kept = append(kept, d)
		case indexOf(rot.Order, d.ParticipantID) < 0:
			// stale entry
		default:
			target = d.ParticipantID
			found = true
		}
	}
	state.Deferrals = kept
	return target, found
}

// successorOf returns who follows the current holder in plain rotation order
func successorOf(rot *models.ItemRotation) models.ParticipantID {
	if len(rot.Order) == 0 {
		return ""
	}
	return rot.Order[(rot.Cursor+1)%len(rot.Order)]
}

func indexOf(order []models.ParticipantID, id models.ParticipantID) int {
	for i, p := range order {
		if p == id {
			return i
		}
	}
	return -1
}
