package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// session abstracts the discordgo.Session method used to post
type session interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordConfig holds configuration for the Discord notifier
type DiscordConfig struct {
	// Session is the bot's Discord session
	Session session

	// ChannelID is the channel announcements are posted to
	ChannelID string

	// Channels overrides ChannelID per guild
	Channels map[string]string
}

// Discord posts announcements as embeds to a Discord channel
type Discord struct {
	session   session
	channelID string
	channels  map[string]string
}

// NewDiscord creates a Discord notifier
func NewDiscord(cfg *DiscordConfig) (*Discord, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}
	if cfg.ChannelID == "" && len(cfg.Channels) == 0 {
		return nil, errors.New("announce channel is required")
	}

	return &Discord{
		session:   cfg.Session,
		channelID: cfg.ChannelID,
		channels:  cfg.Channels,
	}, nil
}

// Notify posts the announcement as an embed
func (d *Discord) Notify(ctx context.Context, announcement *Announcement) error {
	if announcement == nil {
		return errors.New("announcement cannot be nil")
	}

	channelID := d.channelID
	if ch, ok := d.channels[announcement.GuildID]; ok {
		channelID = ch
	}
	if channelID == "" {
		return nil
	}

	embed := &discordgo.MessageEmbed{
		Title:       announcement.Title,
		Description: announcement.Message,
		Color:       announcement.Color,
	}
	if announcement.Comment != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: announcement.Comment}
	}

	if _, err := d.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord: send announcement: %w", err)
	}
	return nil
}
