package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "Asia/Manila", cfg.Timezone)
	assert.Equal(t, []string{"Morning boss=0 13 * * *", "Evening boss=0 21 * * *"}, cfg.BossSchedules)
	assert.Equal(t, 30*time.Minute, cfg.BossAlertWindow)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE=sqlite\nSQLITE_PATH=/tmp/loot.db\nHISTORY_LIMIT=5\n"), 0o600))

	// godotenv does not override, so the variables must start unset
	for _, key := range []string{"STORAGE", "SQLITE_PATH", "HISTORY_LIMIT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/loot.db", cfg.SQLitePath)
	assert.Equal(t, 5, cfg.HistoryLimit)
}

func TestParseEnvRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "parse env")
}

func validConfig() *Config {
	return &Config{
		DiscordToken:    "token",
		ApplicationID:   "app",
		Storage:         StorageRedis,
		RedisAddr:       "localhost:6379",
		Timezone:        "Asia/Manila",
		BossSchedules:   []string{"0 13 * * *"},
		BossAlertWindow: 30 * time.Minute,
		DailyResetAt:    "0 0 * * *",
		HistoryLimit:    20,
		LogLevel:        "info",
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name           string
		mutate         func(*Config)
		requireDiscord bool
		wantErr        []string
	}{
		{name: "valid", mutate: func(*Config) {}, requireDiscord: true},
		{
			name:           "cli does not need discord",
			mutate:         func(c *Config) { c.DiscordToken = ""; c.ApplicationID = "" },
			requireDiscord: false,
		},
		{
			name:           "bot needs discord",
			mutate:         func(c *Config) { c.DiscordToken = ""; c.ApplicationID = "" },
			requireDiscord: true,
			wantErr:        []string{"DISCORD_TOKEN is required", "APPLICATION_ID is required"},
		},
		{
			name:    "unknown storage",
			mutate:  func(c *Config) { c.Storage = "postgres" },
			wantErr: []string{"STORAGE must be"},
		},
		{
			name:    "http without token",
			mutate:  func(c *Config) { c.HTTPAddr = ":8080" },
			wantErr: []string{"HTTP_ADMIN_TOKEN is required"},
		},
		{
			name: "collects every problem",
			mutate: func(c *Config) {
				c.Timezone = "Mars/Olympus"
				c.BossSchedules = []string{"not a cron"}
				c.BossAlertWindow = 0
				c.LogLevel = "loud"
			},
			wantErr: []string{"TIMEZONE", "BOSS_SCHEDULES", "BOSS_ALERT_WINDOW", "LOG_LEVEL"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate(tc.requireDiscord)
			if len(tc.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLocation(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, "Asia/Manila", cfg.Location().String())

	cfg.Timezone = "Mars/Olympus"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestNewLogger(t *testing.T) {
	cfg := validConfig()
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "debug"
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	cfg.LogLevel = "loud"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}
