package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
)

// formatView prints one block per item: holder first, then the rest of the
// rotation in turn order
func formatView(w io.Writer, view *engine.View) {
	if len(view.Items) == 0 {
		fmt.Fprintf(w, "%s has no items\n", view.GuildID)
		return
	}

	fmt.Fprintf(w, "%s  (%d action(s) today, version %d)\n", view.GuildID, view.ActionsToday, view.Version)
	for _, item := range view.Items {
		fmt.Fprintf(w, "\n%s [%s]\n", item.Name, item.Rarity)
		if item.Holder == nil {
			fmt.Fprintln(w, "  nobody is in this rotation")
			continue
		}
		fmt.Fprintf(w, "  up now: %s\n", item.Holder.Name)

		names := make([]string, 0, len(item.Order))
		for i := 1; i < len(item.Order); i++ {
			m := item.Order[(item.Cursor+i)%len(item.Order)]
			names = append(names, m.Name)
		}
		if len(names) > 0 {
			fmt.Fprintf(w, "  then: %s\n", strings.Join(names, ", "))
		}
		if len(item.Deferred) > 0 {
			fmt.Fprintf(w, "  deferred: %s\n", joinMembers(item.Deferred))
		}
		if len(item.Removed) > 0 {
			fmt.Fprintf(w, "  sitting out: %s\n", joinMembers(item.Removed))
		}
	}

	if len(view.Pending) > 0 {
		fmt.Fprintln(w, "\npending:")
		for i, p := range view.Pending {
			fmt.Fprintf(w, "  %d. %s [%s, %s]\n", i+1, p.Name, p.Rarity, p.Priority)
		}
	}
}

func joinMembers(members []*engine.MemberView) string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}
	return strings.Join(names, ", ")
}

func formatHistory(w io.Writer, entries []*models.HistoryEntry, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "no actions recorded")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-5s %s  %s", e.Timestamp.In(loc).Format("2006-01-02 15:04"), e.Kind, e.ItemName, e.ParticipantName)
		if e.CounterpartName != "" {
			line += " -> " + e.CounterpartName
		}
		if e.NextParticipantName != "" {
			line += "  (next: " + e.NextParticipantName + ")"
		}
		fmt.Fprintln(w, line)
	}
}
