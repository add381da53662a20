package app

import (
	"context"
	"fmt"
	"time"

	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// SchedulerConfig holds the recurring jobs' settings
type SchedulerConfig struct {
	Rotation rotationService.Service

	// DailyResetAt is the cron expression the daily counters are cleared at
	DailyResetAt string

	Location *time.Location
	Logger   *zap.Logger
}

// NewScheduler creates a scheduler with the daily counter reset registered.
// It is not started.
func NewScheduler(cfg *SchedulerConfig) (gocron.Scheduler, error) {
	if cfg == nil || cfg.Rotation == nil {
		return nil, fmt.Errorf("rotation service cannot be nil")
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(cfg.DailyResetAt, false),
		gocron.NewTask(resetDailyCounters, cfg.Rotation, log),
		gocron.WithName("daily-reset"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("schedule daily reset %q: %w", cfg.DailyResetAt, err)
	}

	return scheduler, nil
}

func resetDailyCounters(svc rotationService.Service, log *zap.Logger) {
	out, err := svc.ResetAllDailyCounters(context.Background(), &rotationService.ResetAllDailyCountersInput{Admin: true})
	if err != nil {
		log.Error("daily reset failed", zap.Error(err))
		return
	}
	log.Info("daily counters reset", zap.Int("guilds", out.Guilds))
}
