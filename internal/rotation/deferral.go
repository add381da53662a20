package rotation

import (
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// enqueueDeferral appends a skipped turn to the queue unless it is already owed
func enqueueDeferral(state *models.RotationState, item models.ItemID, participant models.ParticipantID, now time.Time) bool {
	for _, d := range state.Deferrals {
		if d.ItemID == item && d.ParticipantID == participant {
			return false
		}
	}
	state.Deferrals = append(state.Deferrals, models.DeferralEntry{
		ItemID:        item,
		ParticipantID: participant,
		EnqueuedAt:    now,
	})
	return true
}

// purgeDeferrals drops the queued entries matched by drop and returns how
// many were dropped
func purgeDeferrals(state *models.RotationState, drop func(models.DeferralEntry) bool) int {
	kept := state.Deferrals[:0]
	dropped := 0
	for _, d := range state.Deferrals {
		if drop(d) {
			dropped++
			continue
		}
		kept = append(kept, d)
	}
	state.Deferrals = kept
	return dropped
}

func forItem(item models.ItemID) func(models.DeferralEntry) bool {
	return func(d models.DeferralEntry) bool {
		return d.ItemID == item
	}
}

func forItemParticipant(item models.ItemID, participant models.ParticipantID) func(models.DeferralEntry) bool {
	return func(d models.DeferralEntry) bool {
		return d.ItemID == item && d.ParticipantID == participant
	}
}

func forParticipant(participant models.ParticipantID) func(models.DeferralEntry) bool {
	return func(d models.DeferralEntry) bool {
		return d.ParticipantID == participant
	}
}

// DeferralsFor lists the queued entries for one item, earliest first
func DeferralsFor(state *models.RotationState, item models.ItemID) []models.DeferralEntry {
	var out []models.DeferralEntry
	if state == nil {
		return out
	}
	for _, d := range state.Deferrals {
		if d.ItemID == item {
			out = append(out, d)
		}
	}
	return out
}
