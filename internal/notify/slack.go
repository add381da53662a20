package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/slack-go/slack"
)

// SlackConfig holds configuration for the Slack notifier
type SlackConfig struct {
	// WebhookURL is an incoming webhook URL
	WebhookURL string
}

// Slack posts announcements to a Slack incoming webhook
type Slack struct {
	webhookURL string
}

// NewSlack creates a Slack notifier
func NewSlack(cfg *SlackConfig) (*Slack, error) {
	if cfg == nil || cfg.WebhookURL == "" {
		return nil, errors.New("slack webhook URL is required")
	}
	return &Slack{webhookURL: cfg.WebhookURL}, nil
}

// Notify posts the announcement as a webhook message with one attachment
func (s *Slack) Notify(ctx context.Context, announcement *Announcement) error {
	if announcement == nil {
		return errors.New("announcement cannot be nil")
	}

	attachment := slack.Attachment{
		Title:  announcement.Title,
		Text:   announcement.Message,
		Footer: announcement.Comment,
	}
	if announcement.Color != 0 {
		attachment.Color = fmt.Sprintf("#%06x", announcement.Color)
	}

	msg := &slack.WebhookMessage{
		Text:        announcement.Title,
		Attachments: []slack.Attachment{attachment},
	}
	if err := slack.PostWebhookContext(ctx, s.webhookURL, msg); err != nil {
		return fmt.Errorf("slack: post announcement: %w", err)
	}
	return nil
}
