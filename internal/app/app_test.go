package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/lootwheel/internal/config"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	rotationMocks "github.com/KirkDiggler/lootwheel/internal/services/rotation/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func exerciseService(t *testing.T, a *App) {
	t.Helper()
	ctx := context.Background()

	_, err := a.Rotation.AddParticipant(ctx, &rotationService.AddParticipantInput{GuildID: "guild-1", Admin: true, Name: "Alice"})
	require.NoError(t, err)

	out, err := a.Rotation.GetState(ctx, &rotationService.GetStateInput{GuildID: "guild-1"})
	require.NoError(t, err)
	require.Len(t, out.View.Roster, 1)
	assert.Equal(t, "Alice", out.View.Roster[0].Name)
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	a, err := New(context.Background(), &config.Config{
		Storage:      config.StorageRedis,
		RedisAddr:    mr.Addr(),
		HistoryLimit: 20,
	}, nil)
	require.NoError(t, err)
	defer a.Close()

	exerciseService(t, a)
	assert.True(t, mr.Exists("rotation_state:guild-1"))
}

func TestNewWithSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lootwheel.db")

	a, err := New(context.Background(), &config.Config{
		Storage:      config.StorageSQLite,
		SQLitePath:   path,
		HistoryLimit: 20,
	}, nil)
	require.NoError(t, err)

	exerciseService(t, a)
	require.NoError(t, a.Close())

	reopened, err := New(context.Background(), &config.Config{
		Storage:      config.StorageSQLite,
		SQLitePath:   path,
		HistoryLimit: 20,
	}, nil)
	require.NoError(t, err)
	defer reopened.Close()

	out, err := reopened.Rotation.GetState(context.Background(), &rotationService.GetStateInput{GuildID: "guild-1"})
	require.NoError(t, err)
	assert.Len(t, out.View.Roster, 1)
}

func TestNewRejectsBadStorage(t *testing.T) {
	_, err := New(context.Background(), &config.Config{Storage: "etcd"}, nil)
	assert.ErrorContains(t, err, `unknown storage "etcd"`)

	_, err = New(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), &config.Config{Storage: config.StorageRedis, RedisAddr: addr}, nil)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestNewScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rotationMocks.NewMockService(ctrl)

	scheduler, err := NewScheduler(&SchedulerConfig{Rotation: svc, DailyResetAt: "0 0 * * *"})
	require.NoError(t, err)
	defer scheduler.Shutdown()

	jobs := scheduler.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "daily-reset", jobs[0].Name())

	_, err = NewScheduler(&SchedulerConfig{Rotation: svc, DailyResetAt: "whenever"})
	assert.Error(t, err)

	_, err = NewScheduler(&SchedulerConfig{})
	assert.Error(t, err)
}

func TestResetDailyCounters(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := rotationMocks.NewMockService(ctrl)

	svc.EXPECT().
		ResetAllDailyCounters(gomock.Any(), &rotationService.ResetAllDailyCountersInput{Admin: true}).
		Return(&rotationService.ResetAllDailyCountersOutput{Guilds: 2}, nil)
	resetDailyCounters(svc, zap.NewNop())

	svc.EXPECT().
		ResetAllDailyCounters(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))
	resetDailyCounters(svc, zap.NewNop())
}
