package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/lootwheel/internal/notify Notifier

import (
	"context"
	"errors"
)

// Announcement is a message posted to the guild's chat channels
type Announcement struct {
	// GuildID is the guild the announcement is about
	GuildID string

	// Title is a short headline
	Title string

	// Message is the main text
	Message string

	// Comment is optional flavour text shown under the message
	Comment string

	// Color is an RGB accent colour, zero for the default
	Color int
}

// Notifier posts announcements somewhere people will see them
type Notifier interface {
	Notify(ctx context.Context, announcement *Announcement) error
}

// Multi fans an announcement out to several notifiers
type Multi []Notifier

// Notify posts to every notifier and joins their errors
func (m Multi) Notify(ctx context.Context, announcement *Announcement) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, announcement); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards announcements
type Nop struct{}

// Notify does nothing
func (Nop) Notify(context.Context, *Announcement) error {
	return nil
}
