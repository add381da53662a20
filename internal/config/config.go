// Package config loads the bot and CLI configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/bosstimer"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Storage backends
const (
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Config holds every setting read from the environment
type Config struct {
	// Discord
	DiscordToken    string `env:"DISCORD_TOKEN"`
	ApplicationID   string `env:"APPLICATION_ID"`
	GuildID         string `env:"GUILD_ID"`
	AdminRoleID     string `env:"ADMIN_ROLE_ID"`
	AnnounceChannel string `env:"ANNOUNCE_CHANNEL_ID"`
	SlackWebhookURL string `env:"SLACK_WEBHOOK_URL"`

	// Storage
	Storage       string `env:"STORAGE" envDefault:"redis"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"lootwheel.db"`

	// HTTP API, disabled when HTTPAddr is empty
	HTTPAddr       string `env:"HTTP_ADDR"`
	HTTPAdminToken string `env:"HTTP_ADMIN_TOKEN"`

	// Schedules, boss spawns are "name=cron" entries
	Timezone        string        `env:"TIMEZONE" envDefault:"Asia/Manila"`
	BossSchedules   []string      `env:"BOSS_SCHEDULES" envSeparator:";" envDefault:"Morning boss=0 13 * * *;Evening boss=0 21 * * *"`
	BossAlertWindow time.Duration `env:"BOSS_ALERT_WINDOW" envDefault:"30m"`
	DailyResetAt    string        `env:"DAILY_RESET_CRON" envDefault:"0 0 * * *"`

	HistoryLimit int    `env:"HISTORY_LIMIT" envDefault:"20"`
	SeedPath     string `env:"SEED_PATH"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then the environment. Variables
// already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validate checks the settings needed by the given front-ends. The bot
// needs Discord settings, the CLI only storage.
func (c *Config) Validate(requireDiscord bool) error {
	var errs []string
	if requireDiscord && c.DiscordToken == "" {
		errs = append(errs, "DISCORD_TOKEN is required")
	}
	if requireDiscord && c.ApplicationID == "" {
		errs = append(errs, "APPLICATION_ID is required")
	}
	switch c.Storage {
	case StorageRedis:
		if c.RedisAddr == "" {
			errs = append(errs, "REDIS_ADDR is required for redis storage")
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, "SQLITE_PATH is required for sqlite storage")
		}
	default:
		errs = append(errs, fmt.Sprintf("STORAGE must be %q or %q, got %q", StorageRedis, StorageSQLite, c.Storage))
	}
	if c.HTTPAddr != "" && c.HTTPAdminToken == "" {
		errs = append(errs, "HTTP_ADMIN_TOKEN is required when HTTP_ADDR is set")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("TIMEZONE %q: %v", c.Timezone, err))
	}
	if _, err := bosstimer.ParseSpawns(c.BossSchedules); err != nil {
		errs = append(errs, fmt.Sprintf("BOSS_SCHEDULES: %v", err))
	}
	if _, err := cronParser.Parse(c.DailyResetAt); err != nil {
		errs = append(errs, fmt.Sprintf("DAILY_RESET_CRON %q: %v", c.DailyResetAt, err))
	}
	if c.BossAlertWindow <= 0 {
		errs = append(errs, "BOSS_ALERT_WINDOW must be positive")
	}
	if c.HistoryLimit <= 0 {
		errs = append(errs, "HISTORY_LIMIT must be positive")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL %q: %v", c.LogLevel, err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Location returns the configured timezone, UTC if it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NewLogger builds a development logger at debug level and a production
// logger otherwise
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if level == zapcore.DebugLevel {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
