package rotation

import (
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// DefaultHistoryLimit is how many entries a history read returns by default
const DefaultHistoryLimit = 20

// record prepends a history entry. Names are copied so the entry stays
// readable after the item or members are deleted.
func (e *Engine) record(state *models.RotationState, kind models.HistoryKind, item *models.LootItem, actor, counterpart, next models.ParticipantID, now time.Time) *models.HistoryEntry {
	entry := &models.HistoryEntry{
		ID:              e.uuid.NewUUID(),
		Timestamp:       now,
		Kind:            kind,
		ItemID:          item.ID,
		ItemName:        item.Name,
		ParticipantID:   actor,
		ParticipantName: ParticipantName(state, actor),
	}
	if counterpart != "" {
		entry.CounterpartID = counterpart
		entry.CounterpartName = ParticipantName(state, counterpart)
	}
	if next != "" {
		entry.NextParticipantName = ParticipantName(state, next)
	}

	state.History = append([]*models.HistoryEntry{entry}, state.History...)
	return entry
}

// Recent returns up to limit history entries, most recent first. An empty
// item returns entries for every item.
func Recent(state *models.RotationState, item models.ItemID, limit int) []*models.HistoryEntry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	out := []*models.HistoryEntry{}
	if state == nil {
		return out
	}
	for _, h := range state.History {
		if h == nil || (item != "" && h.ItemID != item) {
			continue
		}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out
}
