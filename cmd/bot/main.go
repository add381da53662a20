package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/lootwheel/internal/app"
	"github.com/KirkDiggler/lootwheel/internal/bosstimer"
	"github.com/KirkDiggler/lootwheel/internal/config"
	"github.com/KirkDiggler/lootwheel/internal/handlers/api"
	"github.com/KirkDiggler/lootwheel/internal/handlers/discord"
	"github.com/KirkDiggler/lootwheel/internal/notify"
	"github.com/KirkDiggler/lootwheel/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(true); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("bot stopped", zap.Error(err))
	}
	logger.Info("bot has been shut down")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	session, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	// Announcements go to the Discord channel and Slack, whichever are configured
	var notifiers notify.Multi
	if cfg.AnnounceChannel != "" {
		n, err := notify.NewDiscord(&notify.DiscordConfig{Session: session, ChannelID: cfg.AnnounceChannel})
		if err != nil {
			return fmt.Errorf("discord notifier: %w", err)
		}
		notifiers = append(notifiers, n)
	}
	if cfg.SlackWebhookURL != "" {
		n, err := notify.NewSlack(&notify.SlackConfig{WebhookURL: cfg.SlackWebhookURL})
		if err != nil {
			return fmt.Errorf("slack notifier: %w", err)
		}
		notifiers = append(notifiers, n)
	}

	a, err := app.New(ctx, cfg, &app.Options{Notifier: notifiers, Logger: logger})
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.SeedPath != "" && cfg.GuildID != "" {
		if err := applySeed(ctx, a, cfg, logger); err != nil {
			return err
		}
	}

	timer, err := bosstimer.New(&bosstimer.Config{
		GuildID:     cfg.GuildID,
		Location:    cfg.Location(),
		Schedules:   cfg.BossSchedules,
		AlertWindow: cfg.BossAlertWindow,
		Clock:       a.Clock,
		Messaging:   a.Messaging,
		Notifier:    notifiers,
		Logger:      logger.Named("bosstimer"),
	})
	if err != nil {
		return fmt.Errorf("boss timer: %w", err)
	}

	scheduler, err := app.NewScheduler(&app.SchedulerConfig{
		Rotation:     a.Rotation,
		DailyResetAt: cfg.DailyResetAt,
		Location:     cfg.Location(),
		Logger:       logger.Named("scheduler"),
	})
	if err != nil {
		return err
	}
	if len(notifiers) > 0 {
		if _, err := timer.Schedule(scheduler); err != nil {
			return fmt.Errorf("schedule boss alerts: %w", err)
		}
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Warn("scheduler shutdown failed", zap.Error(err))
		}
	}()

	lootCmd, err := discord.NewLootCommand(&discord.LootCommandConfig{
		RotationService: a.Rotation,
		Messaging:       a.Messaging,
		Bosses:          timer,
		AdminRoleID:     cfg.AdminRoleID,
		Clock:           a.Clock,
		Location:        cfg.Location(),
		Logger:          logger.Named("discord"),
	})
	if err != nil {
		return fmt.Errorf("loot command: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		LootCommand:   lootCmd,
		Logger:        logger.Named("discord"),
	})
	if err != nil {
		return fmt.Errorf("discord bot: %w", err)
	}
	if err := bot.Start(); err != nil {
		return err
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			logger.Warn("error stopping bot", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	if cfg.HTTPAddr != "" {
		server, err := api.New(&api.Config{
			RotationService: a.Rotation,
			AdminToken:      cfg.HTTPAdminToken,
			Logger:          logger.Named("api"),
		})
		if err != nil {
			return fmt.Errorf("http api: %w", err)
		}
		go func() {
			errCh <- server.Start(ctx, cfg.HTTPAddr)
		}()
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

func applySeed(ctx context.Context, a *app.App, cfg *config.Config, logger *zap.Logger) error {
	f, err := seed.Load(cfg.SeedPath)
	if err != nil {
		return err
	}
	seeder, err := seed.New(&seed.Config{Service: a.Rotation, Logger: logger.Named("seed")})
	if err != nil {
		return err
	}
	res, err := seeder.Apply(ctx, cfg.GuildID, f)
	if err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	logger.Info("seed applied",
		zap.String("guild_id", cfg.GuildID),
		zap.Int("members_added", res.MembersAdded),
		zap.Int("items_added", res.ItemsAdded),
	)
	return nil
}
