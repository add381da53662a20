package rotation

import (
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// AddParticipant adds a member to the roster. With JoinRotations the member
// is appended to the end of every existing rotation.
func (e *Engine) AddParticipant(state *models.RotationState, input *AddParticipantInput) (*models.RotationState, *ParticipantResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	name := CleanName(input.Name)
	if name == "" {
		return nil, nil, ErrInvalidName
	}
	if err := checkNameFree(next, name, ""); err != nil {
		return nil, nil, err
	}

	participant := &models.Participant{
		ID:       models.ParticipantID(e.uuid.NewUUID()),
		Name:     name,
		Role:     CleanName(input.Role),
		JoinedAt: e.clock.Now(),
	}
	next.Roster = append(next.Roster, participant)

	if input.JoinRotations {
		for _, item := range next.Items {
			rot := next.Rotations[item.ID]
			rot.Order = append(rot.Order, participant.ID)
		}
	}

	return e.commit(next), &ParticipantResult{Participant: participant}, nil
}

// RemoveParticipant removes a member from the roster and from every
// rotation, ledger and queue. Where the member held the turn it passes to
// whoever came next.
func (e *Engine) RemoveParticipant(state *models.RotationState, input *RemoveParticipantInput) (*models.RotationState, *ParticipantResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	participant := participantByID(next, input.ParticipantID)
	if participant == nil {
		return nil, nil, fmt.Errorf("member %q: %w", input.ParticipantID, ErrNotFound)
	}
	id := participant.ID

	roster := next.Roster[:0]
	for _, p := range next.Roster {
		if p.ID != id {
			roster = append(roster, p)
		}
	}
	next.Roster = roster

	for _, rot := range next.Rotations {
		purgeFromRotation(rot, id)
	}
	purgeDeferrals(next, forParticipant(id))

	return e.commit(next), &ParticipantResult{Participant: participant}, nil
}

func purgeFromRotation(rot *models.ItemRotation, id models.ParticipantID) {
	if idx := indexOf(rot.Order, id); idx >= 0 {
		holder, _ := Holder(rot)
		if holder == id {
			holder = successorOf(rot)
			if holder == id {
				holder = ""
			}
			rot.Status = models.ItemStatusPending
		}
		rot.Order = append(rot.Order[:idx], rot.Order[idx+1:]...)
		rot.Cursor = indexOf(rot.Order, holder)
		if rot.Cursor < 0 {
			rot.Cursor = 0
		}
	}

	delete(rot.Skips, id)
	rot.Looted = withoutID(rot.Looted, id)
	removed := rot.Removed[:0]
	for _, r := range rot.Removed {
		if r.ParticipantID != id {
			removed = append(removed, r)
		}
	}
	rot.Removed = removed
	if rot.ResumeAt == id {
		rot.ResumeAt = ""
	}
}

func withoutID(ids []models.ParticipantID, id models.ParticipantID) []models.ParticipantID {
	out := []models.ParticipantID{}
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// RenameParticipant changes a member's display name. Rotations refer to
// members by ID so nothing else changes.
func (e *Engine) RenameParticipant(state *models.RotationState, input *RenameParticipantInput) (*models.RotationState, *ParticipantResult, error) {
	next, err := e.begin(state, input != nil)
	if err != nil {
		return nil, nil, err
	}

	participant := participantByID(next, input.ParticipantID)
	if participant == nil {
		return nil, nil, fmt.Errorf("member %q: %w", input.ParticipantID, ErrNotFound)
	}
	name := CleanName(input.Name)
	if name == "" {
		return nil, nil, ErrInvalidName
	}
	if err := checkNameFree(next, name, participant.ID); err != nil {
		return nil, nil, err
	}
	participant.Name = name

	return e.commit(next), &ParticipantResult{Participant: participant}, nil
}

func checkNameFree(state *models.RotationState, name string, self models.ParticipantID) error {
	for _, p := range state.Roster {
		if p.ID != self && SameName(p.Name, name) {
			return fmt.Errorf("%s: %w", name, ErrParticipantExists)
		}
	}
	return nil
}
