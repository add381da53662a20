package discord

import (
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/bosstimer"
	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItemView(id, name string, cursor int, members ...string) *engine.ItemView {
	item := &engine.ItemView{
		ID:       models.ItemID(id),
		Name:     name,
		Rarity:   models.RarityEpic,
		Status:   models.ItemStatusPending,
		Cursor:   cursor,
		Removed:  []*engine.MemberView{},
		Deferred: []*engine.MemberView{},
	}
	for i, m := range members {
		mv := &engine.MemberView{ID: models.ParticipantID("p-" + m), Name: m, Current: i == cursor}
		item.Order = append(item.Order, mv)
	}
	if len(item.Order) > 0 {
		item.Holder = item.Order[cursor]
	}
	return item
}

func TestRenderStatusEmpty(t *testing.T) {
	embeds, components := renderStatus(&engine.View{})
	require.Len(t, embeds, 1)
	assert.Contains(t, embeds[0].Description, "/loot add-item")
	assert.Nil(t, components)
}

func TestRenderStatus(t *testing.T) {
	view := &engine.View{
		ActionsToday: 4,
		UpdatedAt:    time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
		Items: []*engine.ItemView{
			testItemView("item-1", "Crystal", 1, "Alice", "Bob", "Cara"),
			testItemView("item-2", "Feather", 0),
		},
	}

	embeds, components := renderStatus(view)
	require.Len(t, embeds, 2)

	crystal := embeds[0]
	assert.Equal(t, "Crystal (epic)", crystal.Title)
	assert.Equal(t, models.RarityEpic.Color(), crystal.Color)
	assert.Equal(t, "Up now: **Bob**", crystal.Description)
	require.Len(t, crystal.Fields, 2)
	assert.Equal(t, "Cara, Alice", crystal.Fields[1].Value)

	assert.Equal(t, "Nobody is in this rotation.", embeds[1].Description)
	assert.Equal(t, "4 action(s) today", embeds[1].Footer.Text)
	assert.Equal(t, "2025-06-01T13:00:00Z", embeds[1].Timestamp)

	// One row for Crystal, none for the empty Feather, plus refresh
	require.Len(t, components, 2)
	row := components[0].(discordgo.ActionsRow)
	loot := row.Components[0].(discordgo.Button)
	assert.Equal(t, "loot:item-1", loot.CustomID)
	assert.Equal(t, "Crystal: Bob looted", loot.Label)
	assert.Equal(t, "skip:item-1", row.Components[1].(discordgo.Button).CustomID)
	assert.Equal(t, ButtonRefresh, components[1].(discordgo.ActionsRow).Components[0].(discordgo.Button).CustomID)
}

func TestRenderStatusCapsEmbedsAndRows(t *testing.T) {
	view := &engine.View{}
	for i := 0; i < 12; i++ {
		view.Items = append(view.Items, testItemView(fmt.Sprintf("item-%d", i), fmt.Sprintf("Item %d", i), 0, "Alice"))
	}

	embeds, components := renderStatus(view)
	assert.Len(t, embeds, maxEmbeds)
	assert.Len(t, components, maxButtonRows)
	assert.Contains(t, embeds[maxEmbeds-1].Footer.Text, "2 more item(s) not shown")
}

func TestRenderItemShowsSkipsDeferralsAndRemovals(t *testing.T) {
	item := testItemView("item-1", "Crystal", 0, "Alice", "Bob")
	item.Holder.Skips = 1
	item.Deferred = []*engine.MemberView{{Name: "Cara"}}
	item.Removed = []*engine.MemberView{{Name: "Dana"}}

	embed := renderItem(item)
	assert.Equal(t, "Up now: **Alice** (skipped 1/2)", embed.Description)
	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "Bob", embed.Fields[1].Value)
	assert.Equal(t, "Cara", embed.Fields[2].Value)
	assert.Equal(t, "Dana", embed.Fields[3].Value)
}

func TestNextUpWrapsAround(t *testing.T) {
	item := testItemView("item-1", "Crystal", 2, "Alice", "Bob", "Cara", "Dana", "Eve")
	assert.Equal(t, []string{"Dana", "Eve", "Alice"}, nextUp(item, 3))
	assert.Nil(t, nextUp(testItemView("item-2", "Solo", 0, "Alice"), 3))
}

func TestRenderOrder(t *testing.T) {
	embed := renderOrder("Crystal", []string{"Bob", "Alice"})
	assert.Equal(t, "Crystal rotation", embed.Title)
	assert.Equal(t, "1. Bob\n2. Alice\n", embed.Description)

	assert.Equal(t, "Nobody is in this rotation.", renderOrder("Crystal", nil).Description)
}

func TestRenderHistory(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	at := time.Date(2025, 6, 1, 5, 0, 0, 0, time.UTC)

	embed := renderHistory([]*models.HistoryEntry{
		{Timestamp: at, Kind: models.HistoryKindSwap, ParticipantName: "Alice", ItemName: "Crystal", CounterpartName: "Cara", NextParticipantName: "Bob"},
		{Timestamp: at, Kind: models.HistoryKindSkip, ParticipantName: "Bob", ItemName: "Feather"},
	}, manila)

	assert.Equal(t,
		"`Jun 1 13:00` **Alice** swapped Crystal to Cara, next: Bob\n`Jun 1 13:00` **Bob** skipped Feather\n",
		embed.Description)

	assert.Equal(t, "Nothing has happened yet.", renderHistory(nil, time.UTC).Description)
}

func TestRenderBosses(t *testing.T) {
	assert.Equal(t, "No boss schedule is configured.", renderBosses(nil).Description)

	embed := renderBosses([]bosstimer.Countdown{
		{Name: "Morning boss", At: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC), Remaining: 90 * time.Minute},
	})
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Morning boss", embed.Fields[0].Name)
	assert.Equal(t, "in 1h 30m (13:00 UTC)", embed.Fields[0].Value)
}
