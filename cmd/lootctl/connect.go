package main

import (
	"errors"

	"github.com/KirkDiggler/lootwheel/internal/app"
	"github.com/KirkDiggler/lootwheel/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session is an opened app plus the guild the command targets
type session struct {
	*app.App
	cfg     *config.Config
	guildID string
}

// connect loads the configuration and opens storage
func connect(cmd *cobra.Command, opts *globalOptions, needGuild bool) (*session, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(false); err != nil {
		return nil, err
	}

	guildID := opts.guildID
	if guildID == "" {
		guildID = cfg.GuildID
	}
	if needGuild && guildID == "" {
		return nil, errors.New("a guild is required: pass --guild or set GUILD_ID")
	}

	logger := zap.NewNop()
	if opts.verbose {
		if logger, err = cfg.NewLogger(); err != nil {
			return nil, err
		}
	}

	a, err := app.New(cmd.Context(), cfg, &app.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	return &session{App: a, cfg: cfg, guildID: guildID}, nil
}
