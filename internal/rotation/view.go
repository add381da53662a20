package rotation

import (
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// View is a read-only projection of a state with names resolved, used by
// the chat and HTTP front-ends
type View struct {
	GuildID      string                `json:"guildId"`
	Version      int64                 `json:"version"`
	ActionsToday int                   `json:"actionsToday"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Items        []*ItemView           `json:"items"`
	Pending      []*models.PendingItem `json:"pending"`
	Roster       []*models.Participant `json:"roster"`
}

// ItemView is the rotation of one item
type ItemView struct {
	ID       models.ItemID     `json:"id"`
	Name     string            `json:"name"`
	Rarity   models.Rarity     `json:"rarity"`
	Category string            `json:"category,omitempty"`
	Status   models.ItemStatus `json:"status"`
	Cursor   int               `json:"cursor"`

	// Holder is nil when the rotation is empty
	Holder   *MemberView   `json:"holder,omitempty"`
	Order    []*MemberView `json:"order"`
	Removed  []*MemberView `json:"removed"`
	Deferred []*MemberView `json:"deferred"`
}

// MemberView is a participant as seen from one item's rotation
type MemberView struct {
	ID      models.ParticipantID `json:"id"`
	Name    string               `json:"name"`
	Skips   int                  `json:"skips"`
	Looted  bool                 `json:"looted"`
	Current bool                 `json:"current"`
}

// NewView builds a view of the state
func NewView(state *models.RotationState) *View {
	if state == nil {
		return &View{Items: []*ItemView{}, Pending: []*models.PendingItem{}, Roster: []*models.Participant{}}
	}

	view := &View{
		GuildID:      state.GuildID,
		Version:      state.Version,
		ActionsToday: state.ActionsToday,
		UpdatedAt:    state.UpdatedAt,
		Items:        make([]*ItemView, 0, len(state.Items)),
		Pending:      append([]*models.PendingItem{}, state.Pending...),
		Roster:       append([]*models.Participant{}, state.Roster...),
	}
	for _, item := range state.Items {
		view.Items = append(view.Items, newItemView(state, item))
	}
	return view
}

// Item returns the view of one item, or nil
func (v *View) Item(id models.ItemID) *ItemView {
	for _, item := range v.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func newItemView(state *models.RotationState, item *models.LootItem) *ItemView {
	iv := &ItemView{
		ID:       item.ID,
		Name:     item.Name,
		Rarity:   item.Rarity,
		Category: item.Category,
		Status:   models.ItemStatusPending,
		Order:    []*MemberView{},
		Removed:  []*MemberView{},
		Deferred: []*MemberView{},
	}
	rot := state.Rotations[item.ID]
	if rot == nil {
		return iv
	}
	iv.Status = rot.Status
	iv.Cursor = rot.Cursor

	member := func(id models.ParticipantID) *MemberView {
		return &MemberView{
			ID:     id,
			Name:   ParticipantName(state, id),
			Skips:  rot.Skips[id],
			Looted: indexOf(rot.Looted, id) >= 0,
		}
	}

	for i, id := range rot.Order {
		mv := member(id)
		if i == rot.Cursor {
			mv.Current = true
			iv.Holder = mv
		}
		iv.Order = append(iv.Order, mv)
	}
	for _, r := range rot.Removed {
		iv.Removed = append(iv.Removed, member(r.ParticipantID))
	}
	for _, d := range DeferralsFor(state, item.ID) {
		iv.Deferred = append(iv.Deferred, member(d.ParticipantID))
	}
	return iv
}
