package state

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetState() {
	state := sampleState("guild-1", s.testNow)

	err := s.repo.SaveState(s.ctx, &SaveStateInput{State: state})
	s.Require().NoError(err)
	s.True(s.mr.Exists("rotation_state:guild-1"))

	loaded, err := s.repo.GetState(s.ctx, &GetStateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(state.Version, loaded.Version)
	s.Equal(state.Roster, loaded.Roster)
	s.Equal(state.Items, loaded.Items)
	s.Equal(state.Rotations["item-1"].Order, loaded.Rotations["item-1"].Order)
	s.Equal(1, loaded.Rotations["item-1"].Skips["p-1"])
	s.Equal(state.Deferrals, loaded.Deferrals)
	s.Equal(3, loaded.ActionsToday)
}

func (s *RedisRepositoryTestSuite) TestGetStateNotFound() {
	_, err := s.repo.GetState(s.ctx, &GetStateInput{GuildID: "missing"})
	s.ErrorIs(err, ErrStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetStateToleratesPartialBlob() {
	s.Require().NoError(s.mr.Set("rotation_state:guild-2", `{"actionsToday":4}`))

	loaded, err := s.repo.GetState(s.ctx, &GetStateInput{GuildID: "guild-2"})
	s.Require().NoError(err)
	s.Equal("guild-2", loaded.GuildID)
	s.Equal(4, loaded.ActionsToday)
	s.NotNil(loaded.Rotations)
}

func (s *RedisRepositoryTestSuite) TestSaveStateValidation() {
	s.Error(s.repo.SaveState(s.ctx, nil))
	s.Error(s.repo.SaveState(s.ctx, &SaveStateInput{State: &models.RotationState{}}))
}

func (s *RedisRepositoryTestSuite) TestListAndDelete() {
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: sampleState("b", s.testNow)}))
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: sampleState("a", s.testNow)}))

	out, err := s.repo.ListGuilds(s.ctx, &ListGuildsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, out.GuildIDs)

	s.Require().NoError(s.repo.DeleteState(s.ctx, &DeleteStateInput{GuildID: "a"}))

	out, err = s.repo.ListGuilds(s.ctx, &ListGuildsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"b"}, out.GuildIDs)

	_, err = s.repo.GetState(s.ctx, &GetStateInput{GuildID: "a"})
	s.ErrorIs(err, ErrStateNotFound)
}

// sampleState builds a small but complete state for persistence tests
func sampleState(guildID string, now time.Time) *models.RotationState {
	return &models.RotationState{
		GuildID: guildID,
		Version: 7,
		Roster: []*models.Participant{
			{ID: "p-1", Name: "Alice", JoinedAt: now},
			{ID: "p-2", Name: "Bob", JoinedAt: now},
		},
		Items: []*models.LootItem{
			{ID: "item-1", Name: "Crystal", Rarity: models.RarityEpic, CreatedAt: now},
		},
		Rotations: map[models.ItemID]*models.ItemRotation{
			"item-1": {
				ItemID: "item-1",
				Order:  []models.ParticipantID{"p-1", "p-2"},
				Cursor: 1,
				Status: models.ItemStatusPending,
				Skips:  map[models.ParticipantID]int{"p-1": 1},
			},
		},
		Deferrals: []models.DeferralEntry{
			{ItemID: "item-1", ParticipantID: "p-1", EnqueuedAt: now},
		},
		ActionsToday: 3,
		UpdatedAt:    now,
	}
}
