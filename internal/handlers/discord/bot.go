package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	loot       *LootCommand
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Session is an unopened session, created with discordgo.New
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// LootCommand handles /loot and the status buttons
	LootCommand *LootCommand

	Logger *zap.Logger
}

// NewSession creates a bot session from a token
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.LootCommand == nil {
		return nil, errors.New("loot command cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		session:    cfg.Session,
		loot:       cfg.LootCommand,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.RegisterCommand(b.loot); err != nil {
		return fmt.Errorf("failed to register loot command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err),
			)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. Commands are global
// unless a development guild is configured.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID),
	)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(s, i)
}

// dispatch routes an interaction to its handler
func (b *Bot) dispatch(r Responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(r, i); err != nil {
				b.logger.Error("failed to handle command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.loot.HandleComponent(r, i); err != nil {
			b.logger.Error("failed to handle component",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err),
			)
		}
	}
}
