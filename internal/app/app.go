// Package app wires storage and the rotation service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/config"
	"github.com/KirkDiggler/lootwheel/internal/notify"
	stateRepo "github.com/KirkDiggler/lootwheel/internal/repositories/state"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/KirkDiggler/lootwheel/internal/shuffle"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// App holds the wired collaborators shared by the bot and the CLI
type App struct {
	Repository stateRepo.Repository
	Messaging  messaging.Service
	Rotation   rotationService.Service
	Clock      clock.Clock

	closers []func() error
}

// Options customise New
type Options struct {
	// Notifier receives announcements, nothing is posted when nil
	Notifier notify.Notifier

	Logger *zap.Logger
}

// New opens the configured storage and builds the rotation service
func New(ctx context.Context, cfg *config.Config, opts *Options) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if opts == nil {
		opts = &Options{}
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	a := &App{Clock: &clock.DefaultClock{}}

	repo, err := a.openRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Repository = repo
	log.Info("storage opened", zap.String("storage", cfg.Storage))

	msg, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("messaging: %w", err)
	}
	a.Messaging = msg

	shuffler, err := shuffle.New(&shuffle.Config{})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("shuffler: %w", err)
	}

	svc, err := rotationService.New(&rotationService.Config{
		HistoryLimit:  cfg.HistoryLimit,
		StateRepo:     repo,
		Messaging:     msg,
		Notifier:      opts.Notifier,
		Clock:         a.Clock,
		UUIDGenerator: uuid.New(),
		Shuffler:      shuffler,
		Logger:        log,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("rotation service: %w", err)
	}
	a.Rotation = svc

	return a, nil
}

func (a *App) openRepository(ctx context.Context, cfg *config.Config) (stateRepo.Repository, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		a.closers = append(a.closers, sqlDB.Close)

		repo, err := stateRepo.NewGorm(&stateRepo.GormConfig{DB: db, AutoMigrate: true})
		if err != nil {
			a.Close()
			return nil, err
		}
		return repo, nil
	case config.StorageRedis, "":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, client.Close)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := stateRepo.NewRedis(&stateRepo.Config{RedisClient: client})
		if err != nil {
			a.Close()
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

// Close releases the storage connections
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
