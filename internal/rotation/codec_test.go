package rotation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := New(&Config{
		Clock:         clock.Fixed(time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)),
		UUIDGenerator: uuid.NewSequence("id"),
		Shuffler:      shuffle.Reverse{},
	})
	require.NoError(t, err)
	return engine
}

// populated builds a state that touches every collection
func populated(t *testing.T, e *Engine) *models.RotationState {
	t.Helper()
	state := NewState("guild-1")
	var err error
	for _, name := range []string{"Alice", "Bob", "Cara", "Dan"} {
		state, _, err = e.AddParticipant(state, &AddParticipantInput{Name: name, Role: "member"})
		require.NoError(t, err)
	}
	var item *ItemResult
	state, item, err = e.AddItem(state, &AddItemInput{Name: "Crystal", Rarity: models.RarityEpic, Category: "Loot"})
	require.NoError(t, err)
	state, _, err = e.AddItem(state, &AddItemInput{Name: "Feather", Rarity: models.RarityRare})
	require.NoError(t, err)
	state, _, err = e.QueueItem(state, &QueueItemInput{Name: "Flame", Priority: models.PriorityHigh})
	require.NoError(t, err)

	state, _, err = e.Skip(state, &TurnInput{ItemID: item.Item.ID})
	require.NoError(t, err)
	state, _, err = e.Swap(state, &SwapInput{ItemID: item.Item.ID, CounterpartID: state.Roster[3].ID})
	require.NoError(t, err)
	return state
}

func TestSerializeRoundTripIsStable(t *testing.T) {
	e := newTestEngine(t)
	state := populated(t, e)

	first, err := Serialize(state)
	require.NoError(t, err)

	loaded, err := Deserialize(first)
	require.NoError(t, err)

	second, err := Serialize(loaded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestDeserializePartialSnapshot(t *testing.T) {
	state, err := Deserialize([]byte(`{"guildId":"g1","items":[{"id":"i1","name":"Crystal"}],"rotations":{"i1":{"order":["p1"],"cursor":7,"skips":{"p1":0}}}}`))
	require.NoError(t, err)

	assert.Equal(t, "g1", state.GuildID)
	assert.NotNil(t, state.Roster)
	assert.NotNil(t, state.Deferrals)
	assert.NotNil(t, state.Pending)
	assert.NotNil(t, state.History)

	rot := state.Rotations["i1"]
	require.NotNil(t, rot)
	assert.Equal(t, models.ItemID("i1"), rot.ItemID)
	assert.Equal(t, 0, rot.Cursor)
	assert.Equal(t, models.ItemStatusPending, rot.Status)
	assert.Empty(t, rot.Skips)
}

func TestDeserializeDropsOrphans(t *testing.T) {
	state, err := Deserialize([]byte(`{"rotations":{"gone":{"order":["p1"]}},"deferrals":[{"itemId":"gone","participantId":"p1"}]}`))
	require.NoError(t, err)
	assert.Empty(t, state.Rotations)
	assert.Empty(t, state.Deferrals)
}

func TestDeserializeEmptyAndInvalid(t *testing.T) {
	state, err := Deserialize(nil)
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	_, err = Deserialize([]byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	_, err = Serialize(nil)
	assert.ErrorIs(t, err, ErrNilState)
}

func TestInvariantsHoldUnderRandomOperations(t *testing.T) {
	e := newTestEngine(t)
	state := populated(t, e)
	rng := rand.New(rand.NewSource(1))

	for step := 0; step < 500; step++ {
		item := state.Items[rng.Intn(len(state.Items))]
		var next *models.RotationState
		var err error
		switch rng.Intn(6) {
		case 0:
			next, _, err = e.Skip(state, &TurnInput{ItemID: item.ID})
		case 1:
			next, _, err = e.Loot(state, &TurnInput{ItemID: item.ID})
		case 2:
			counterpart := state.Roster[rng.Intn(len(state.Roster))].ID
			next, _, err = e.Swap(state, &SwapInput{ItemID: item.ID, CounterpartID: counterpart})
		case 3:
			next, _, err = e.Advance(state, &AdvanceInput{ItemID: item.ID})
		case 4:
			dir := DirectionUp
			if rng.Intn(2) == 0 {
				dir = DirectionDown
			}
			next, _, err = e.Reorder(state, &ReorderInput{ItemID: item.ID, Index: rng.Intn(4), Direction: dir})
		case 5:
			if rng.Intn(10) == 0 {
				next, _, err = e.Reset(state, &ResetInput{ItemID: item.ID})
			} else {
				next, _, err = e.Loot(state, &TurnInput{ItemID: item.ID})
			}
		}
		if err != nil {
			continue
		}
		require.GreaterOrEqual(t, len(next.History), len(state.History))
		state = next
		assertInvariants(t, state)
	}
}

func assertInvariants(t *testing.T, state *models.RotationState) {
	t.Helper()
	for id, rot := range state.Rotations {
		if len(rot.Order) == 0 {
			assert.Equal(t, 0, rot.Cursor, "item %s", id)
		} else {
			assert.True(t, rot.Cursor >= 0 && rot.Cursor < len(rot.Order), "item %s cursor %d of %d", id, rot.Cursor, len(rot.Order))
		}
		for p, n := range rot.Skips {
			assert.True(t, n >= 1 && n <= models.MaxSkips, "item %s skips %d", id, n)
			if n == models.MaxSkips {
				assert.Equal(t, -1, indexOf(rot.Order, p), "forfeited participant still in order")
				found := false
				for _, r := range rot.Removed {
					found = found || r.ParticipantID == p
				}
				assert.True(t, found, "forfeited participant missing from removed log")
			}
		}
	}

	seen := map[[2]string]bool{}
	for _, d := range state.Deferrals {
		key := [2]string{string(d.ItemID), string(d.ParticipantID)}
		assert.False(t, seen[key], "duplicate deferral %v", key)
		seen[key] = true
	}
}
