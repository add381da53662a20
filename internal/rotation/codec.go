package rotation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
)

// Serialize encodes a state as a JSON snapshot. Map keys are sorted and
// empty collections are written as empty values, so serializing a
// deserialized snapshot gives back the same bytes.
func Serialize(state *models.RotationState) ([]byte, error) {
	if state == nil {
		return nil, ErrNilState
	}
	out := Clone(state)
	normalize(out)

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}
	return data, nil
}

// Deserialize decodes a snapshot. Fields missing from the snapshot take
// their empty value, and an empty snapshot yields an empty state.
func Deserialize(data []byte) (*models.RotationState, error) {
	state := &models.RotationState{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, state); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
	}
	normalize(state)
	return state, nil
}
