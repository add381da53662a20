package rotation

import (
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// NewState returns an empty state for a guild
func NewState(guildID string) *models.RotationState {
	state := &models.RotationState{GuildID: guildID}
	normalize(state)
	return state
}

// Clone returns a deep copy of the state
func Clone(state *models.RotationState) *models.RotationState {
	if state == nil {
		return nil
	}

	out := *state

	out.Roster = make([]*models.Participant, 0, len(state.Roster))
	for _, p := range state.Roster {
		if p == nil {
			continue
		}
		cp := *p
		out.Roster = append(out.Roster, &cp)
	}

	out.Items = make([]*models.LootItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item == nil {
			continue
		}
		cp := *item
		out.Items = append(out.Items, &cp)
	}

	out.Rotations = make(map[models.ItemID]*models.ItemRotation, len(state.Rotations))
	for id, rot := range state.Rotations {
		if rot == nil {
			continue
		}
		out.Rotations[id] = cloneRotation(rot)
	}

	out.Deferrals = append([]models.DeferralEntry{}, state.Deferrals...)

	out.Pending = make([]*models.PendingItem, 0, len(state.Pending))
	for _, p := range state.Pending {
		if p == nil {
			continue
		}
		cp := *p
		out.Pending = append(out.Pending, &cp)
	}

	out.History = make([]*models.HistoryEntry, 0, len(state.History))
	for _, h := range state.History {
		if h == nil {
			continue
		}
		cp := *h
		out.History = append(out.History, &cp)
	}

	return &out
}

func cloneRotation(rot *models.ItemRotation) *models.ItemRotation {
	cp := *rot
	cp.Order = append([]models.ParticipantID{}, rot.Order...)
	cp.Looted = append([]models.ParticipantID{}, rot.Looted...)
	cp.Removed = append([]models.RemovedEntry{}, rot.Removed...)
	cp.Skips = make(map[models.ParticipantID]int, len(rot.Skips))
	for id, n := range rot.Skips {
		cp.Skips[id] = n
	}
	return &cp
}

// normalize fills absent collections with empty values and repairs values
// that would break an invariant, so a partially populated snapshot loads.
func normalize(state *models.RotationState) {
	if state.Roster == nil {
		state.Roster = []*models.Participant{}
	}
	if state.Items == nil {
		state.Items = []*models.LootItem{}
	}
	if state.Rotations == nil {
		state.Rotations = map[models.ItemID]*models.ItemRotation{}
	}
	if state.Deferrals == nil {
		state.Deferrals = []models.DeferralEntry{}
	}
	if state.Pending == nil {
		state.Pending = []*models.PendingItem{}
	}
	if state.History == nil {
		state.History = []*models.HistoryEntry{}
	}
	state.Roster = compact(state.Roster)
	state.Items = compact(state.Items)
	state.Pending = compact(state.Pending)
	state.History = compact(state.History)

	known := make(map[models.ItemID]bool, len(state.Items))
	for _, item := range state.Items {
		known[item.ID] = true
		if state.Rotations[item.ID] == nil {
			state.Rotations[item.ID] = &models.ItemRotation{}
		}
	}
	for id, rot := range state.Rotations {
		if !known[id] {
			delete(state.Rotations, id)
			continue
		}
		normalizeRotation(id, rot)
	}

	deferrals := state.Deferrals[:0]
	seen := make(map[models.DeferralEntry]bool)
	for _, d := range state.Deferrals {
		key := models.DeferralEntry{ItemID: d.ItemID, ParticipantID: d.ParticipantID}
		if !known[d.ItemID] || seen[key] {
			continue
		}
		seen[key] = true
		deferrals = append(deferrals, d)
	}
	state.Deferrals = deferrals

	if state.ActionsToday < 0 {
		state.ActionsToday = 0
	}
}

func normalizeRotation(id models.ItemID, rot *models.ItemRotation) {
	rot.ItemID = id
	if rot.Order == nil {
		rot.Order = []models.ParticipantID{}
	}
	if rot.Looted == nil {
		rot.Looted = []models.ParticipantID{}
	}
	if rot.Removed == nil {
		rot.Removed = []models.RemovedEntry{}
	}
	if rot.Skips == nil {
		rot.Skips = map[models.ParticipantID]int{}
	}
	for pid, n := range rot.Skips {
		switch {
		case n <= 0:
			delete(rot.Skips, pid)
		case n > models.MaxSkips:
			rot.Skips[pid] = models.MaxSkips
		}
	}
	if rot.Status == "" {
		rot.Status = models.ItemStatusPending
	}
	if rot.Cursor < 0 || rot.Cursor >= len(rot.Order) {
		rot.Cursor = 0
	}
}

func compact[T any](in []*T) []*T {
	out := in[:0]
	for _, v := range in {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// FindItem looks an item up by ID or by name
func FindItem(state *models.RotationState, ref string) (*models.LootItem, error) {
	if state != nil {
		for _, item := range state.Items {
			if string(item.ID) == ref {
				return item, nil
			}
		}
		for _, item := range state.Items {
			if SameName(item.Name, ref) {
				return item, nil
			}
		}
	}
	return nil, fmt.Errorf("item %q: %w", ref, ErrNotFound)
}

// FindParticipant looks a roster member up by ID or by name
func FindParticipant(state *models.RotationState, ref string) (*models.Participant, error) {
	if state != nil {
		for _, p := range state.Roster {
			if string(p.ID) == ref {
				return p, nil
			}
		}
		for _, p := range state.Roster {
			if SameName(p.Name, ref) {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("member %q: %w", ref, ErrNotFound)
}

// FindPending looks a pending entry up by ID or by name
func FindPending(state *models.RotationState, ref string) (*models.PendingItem, error) {
	if state != nil {
		for _, p := range state.Pending {
			if string(p.ID) == ref {
				return p, nil
			}
		}
		for _, p := range state.Pending {
			if SameName(p.Name, ref) {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("pending item %q: %w", ref, ErrNotFound)
}

// ParticipantName returns the display name for an ID, or the ID itself when
// the member is no longer on the roster
func ParticipantName(state *models.RotationState, id models.ParticipantID) string {
	if p := participantByID(state, id); p != nil {
		return p.Name
	}
	return string(id)
}

func participantByID(state *models.RotationState, id models.ParticipantID) *models.Participant {
	for _, p := range state.Roster {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func itemByID(state *models.RotationState, id models.ItemID) *models.LootItem {
	for _, item := range state.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// rotationFor returns the item and its rotation, failing with ErrNotFound
func rotationFor(state *models.RotationState, id models.ItemID) (*models.LootItem, *models.ItemRotation, error) {
	item := itemByID(state, id)
	if item == nil {
		return nil, nil, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	rot := state.Rotations[id]
	if rot == nil {
		rot = &models.ItemRotation{}
		normalizeRotation(id, rot)
		state.Rotations[id] = rot
	}
	return item, rot, nil
}

// Holder returns the participant holding the current turn on a rotation
func Holder(rot *models.ItemRotation) (models.ParticipantID, bool) {
	if rot == nil || len(rot.Order) == 0 || rot.Cursor < 0 || rot.Cursor >= len(rot.Order) {
		return "", false
	}
	return rot.Order[rot.Cursor], true
}
