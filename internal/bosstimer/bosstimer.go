// Package bosstimer tracks recurring boss spawns and posts an alert shortly
// before each one.
package bosstimer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/notify"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultAlertWindow is how long before a spawn the alert goes out
const DefaultAlertWindow = 30 * time.Minute

// DefaultSchedules are the daily spawns, in the timer's location
var DefaultSchedules = []string{
	"Morning boss=0 13 * * *",
	"Evening boss=0 21 * * *",
}

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Spawn is a named recurring boss spawn
type Spawn struct {
	Name     string
	Spec     string
	schedule cron.Schedule
}

// ParseSpawns parses "name=cron" entries. An entry without a name is
// called "Boss N" after its position.
func ParseSpawns(entries []string) ([]*Spawn, error) {
	var errs []error
	spawns := make([]*Spawn, 0, len(entries))
	for i, entry := range entries {
		name, spec, found := strings.Cut(entry, "=")
		if !found {
			name, spec = fmt.Sprintf("Boss %d", i+1), entry
		}
		name, spec = strings.TrimSpace(name), strings.TrimSpace(spec)

		schedule, err := cronParser.Parse(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("spawn %q: %w", entry, err))
			continue
		}
		spawns = append(spawns, &Spawn{Name: name, Spec: spec, schedule: schedule})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return spawns, nil
}

// Countdown is the time left until a spawn's next occurrence
type Countdown struct {
	Name      string
	At        time.Time
	Remaining time.Duration
}

// Config holds configuration for the boss timer
type Config struct {
	// GuildID is the guild alerts are posted for
	GuildID string

	// Location the schedules are expressed in, UTC when nil
	Location *time.Location

	// Schedules are "name=cron" entries, DefaultSchedules when empty
	Schedules []string

	// AlertWindow is how long before a spawn to alert, DefaultAlertWindow when zero
	AlertWindow time.Duration

	Clock     clock.Clock
	Messaging messaging.Service
	Notifier  notify.Notifier
	Logger    *zap.Logger
}

// Timer computes countdowns and sends spawn alerts
type Timer struct {
	guildID   string
	location  *time.Location
	spawns    []*Spawn
	window    time.Duration
	clock     clock.Clock
	messaging messaging.Service
	notifier  notify.Notifier
	logger    *zap.Logger

	mu      sync.Mutex
	alerted map[string]time.Time
}

// New creates a boss timer
func New(cfg *Config) (*Timer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	entries := cfg.Schedules
	if len(entries) == 0 {
		entries = DefaultSchedules
	}
	spawns, err := ParseSpawns(entries)
	if err != nil {
		return nil, err
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	window := cfg.AlertWindow
	if window <= 0 {
		window = DefaultAlertWindow
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Timer{
		guildID:   cfg.GuildID,
		location:  loc,
		spawns:    spawns,
		window:    window,
		clock:     cfg.Clock,
		messaging: cfg.Messaging,
		notifier:  notifier,
		logger:    logger,
		alerted:   map[string]time.Time{},
	}, nil
}

// Countdowns lists the next occurrence of every spawn, soonest first
func (t *Timer) Countdowns(now time.Time) []Countdown {
	local := now.In(t.location)
	out := make([]Countdown, 0, len(t.spawns))
	for _, s := range t.spawns {
		at := s.schedule.Next(local)
		out = append(out, Countdown{Name: s.Name, At: at, Remaining: at.Sub(local)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})
	return out
}

// FormatCountdown renders a duration the way spawn boards show it:
// "in 2h 5m", "in 4m 10s", "in 9s", or "NOW!" once it has passed.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		return "NOW!"
	}

	hours := int(d / time.Hour)
	minutes := int(d % time.Hour / time.Minute)
	seconds := int(d % time.Minute / time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("in %dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("in %dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("in %ds", seconds)
	}
}

// CheckAlerts announces every spawn that has entered the alert window and
// was not announced yet. It returns how many alerts were sent.
func (t *Timer) CheckAlerts(ctx context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	sent := 0
	var errs []error
	for _, c := range t.Countdowns(t.clock.Now()) {
		if c.Remaining > t.window {
			continue
		}
		if last, ok := t.alerted[c.Name]; ok && last.Equal(c.At) {
			continue
		}

		msg, err := t.messaging.GetBossAlertMessage(ctx, &messaging.GetBossAlertMessageInput{
			BossName:  c.Name,
			Countdown: FormatCountdown(c.Remaining),
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := t.notifier.Notify(ctx, &notify.Announcement{
			GuildID: t.guildID,
			Title:   "Boss alert",
			Message: msg.Message,
		}); err != nil {
			errs = append(errs, fmt.Errorf("alert %s: %w", c.Name, err))
			continue
		}

		t.alerted[c.Name] = c.At
		sent++
		t.logger.Info("boss alert sent",
			zap.String("boss", c.Name),
			zap.Time("spawn_at", c.At),
		)
	}
	return sent, errors.Join(errs...)
}

// Schedule registers the alert check to run every minute
func (t *Timer) Schedule(scheduler gocron.Scheduler) (gocron.Job, error) {
	return scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() {
			if _, err := t.CheckAlerts(context.Background()); err != nil {
				t.logger.Warn("boss alert check failed", zap.Error(err))
			}
		}),
		gocron.WithName("boss-alerts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
}
