package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/bosstimer"
	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/bwmarrin/discordgo"
)

const (
	colorInfo  = 0x00ff00 // Green
	colorError = 0xff0000 // Red

	// Discord caps a message at 10 embeds and 5 action rows
	maxEmbeds     = 10
	maxButtonRows = 5

	// nextUpShown is how many upcoming members an item embed lists
	nextUpShown = 3
)

// Component custom IDs. Turn buttons carry the item ID after the prefix.
const (
	ButtonLootPrefix = "loot:"
	ButtonSkipPrefix = "skip:"
	ButtonRefresh    = "refresh"
)

// renderStatus renders one embed per item and a Looted/Skip button row per item
func renderStatus(view *engine.View) ([]*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	if len(view.Items) == 0 {
		return []*discordgo.MessageEmbed{{
			Title:       "Loot rotations",
			Description: "No items yet. Use `/loot add-item` to create one.",
			Color:       colorInfo,
		}}, nil
	}

	embeds := make([]*discordgo.MessageEmbed, 0, min(len(view.Items), maxEmbeds))
	var rows []discordgo.MessageComponent
	for _, item := range view.Items {
		if len(embeds) == maxEmbeds {
			break
		}
		embeds = append(embeds, renderItem(item))

		if item.Holder != nil && len(rows) < maxButtonRows-1 {
			rows = append(rows, turnButtons(item))
		}
	}

	last := embeds[len(embeds)-1]
	last.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%d action(s) today", view.ActionsToday),
	}
	if len(view.Items) > maxEmbeds {
		last.Footer.Text += fmt.Sprintf(" | %d more item(s) not shown", len(view.Items)-maxEmbeds)
	}
	if !view.UpdatedAt.IsZero() {
		last.Timestamp = view.UpdatedAt.Format(time.RFC3339)
	}

	rows = append(rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Refresh",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonRefresh,
			},
		},
	})
	return embeds, rows
}

// renderItem renders the rotation of one item
func renderItem(item *engine.ItemView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s (%s)", item.Name, item.Rarity),
		Color: item.Rarity.Color(),
	}

	if item.Holder == nil {
		embed.Description = "Nobody is in this rotation."
		return embed
	}

	embed.Description = fmt.Sprintf("Up now: **%s**", item.Holder.Name)
	if item.Holder.Skips > 0 {
		embed.Description += fmt.Sprintf(" (skipped %d/%d)", item.Holder.Skips, models.MaxSkips)
	}

	fields := []*discordgo.MessageEmbedField{{
		Name:   "Last action",
		Value:  string(item.Status),
		Inline: true,
	}}
	if next := nextUp(item, nextUpShown); len(next) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Next up",
			Value:  strings.Join(next, ", "),
			Inline: true,
		})
	}
	if len(item.Deferred) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Deferred",
			Value: strings.Join(memberNames(item.Deferred), ", "),
		})
	}
	if len(item.Removed) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Sitting out",
			Value: strings.Join(memberNames(item.Removed), ", "),
		})
	}
	embed.Fields = fields
	return embed
}

// nextUp lists the members after the holder in rotation order
func nextUp(item *engine.ItemView, n int) []string {
	if len(item.Order) < 2 {
		return nil
	}
	var names []string
	for step := 1; step < len(item.Order) && len(names) < n; step++ {
		names = append(names, item.Order[(item.Cursor+step)%len(item.Order)].Name)
	}
	return names
}

func memberNames(members []*engine.MemberView) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return names
}

func turnButtons(item *engine.ItemView) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fmt.Sprintf("%s: %s looted", item.Name, item.Holder.Name),
				Style:    discordgo.SuccessButton,
				CustomID: ButtonLootPrefix + string(item.ID),
			},
			discordgo.Button{
				Label:    "Skip",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonSkipPrefix + string(item.ID),
			},
		},
	}
}

// renderTurn renders the result of a loot, skip or swap
func renderTurn(announcement string, item *engine.ItemView) *discordgo.MessageEmbed {
	embed := renderItem(item)
	embed.Title = announcement
	return embed
}

// renderOrder renders an item's rotation order as a numbered list
func renderOrder(itemName string, names []string) *discordgo.MessageEmbed {
	var b strings.Builder
	for i, name := range names {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	if b.Len() == 0 {
		b.WriteString("Nobody is in this rotation.")
	}
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s rotation", itemName),
		Description: b.String(),
		Color:       colorInfo,
	}
}

// renderHistory renders history entries, most recent first
func renderHistory(entries []*models.HistoryEntry, loc *time.Location) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent loot",
		Color: colorInfo,
	}
	if len(entries) == 0 {
		embed.Description = "Nothing has happened yet."
		return embed
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "`%s` %s\n", e.Timestamp.In(loc).Format("Jan 2 15:04"), historyLine(e))
	}
	embed.Description = b.String()
	return embed
}

func historyLine(e *models.HistoryEntry) string {
	var line string
	switch e.Kind {
	case models.HistoryKindLoot:
		line = fmt.Sprintf("**%s** looted %s", e.ParticipantName, e.ItemName)
	case models.HistoryKindSwap:
		line = fmt.Sprintf("**%s** swapped %s to %s", e.ParticipantName, e.ItemName, e.CounterpartName)
	case models.HistoryKindSkip:
		line = fmt.Sprintf("**%s** skipped %s", e.ParticipantName, e.ItemName)
	default:
		line = fmt.Sprintf("**%s** %s %s", e.ParticipantName, e.Kind, e.ItemName)
	}
	if e.NextParticipantName != "" {
		line += fmt.Sprintf(", next: %s", e.NextParticipantName)
	}
	return line
}

// renderBosses renders the countdown to every boss spawn
func renderBosses(countdowns []bosstimer.Countdown) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Boss spawns",
		Color: colorInfo,
	}
	if len(countdowns) == 0 {
		embed.Description = "No boss schedule is configured."
		return embed
	}
	for _, c := range countdowns {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   c.Name,
			Value:  fmt.Sprintf("%s (%s)", bosstimer.FormatCountdown(c.Remaining), c.At.Format("15:04 MST")),
			Inline: true,
		})
	}
	return embed
}
