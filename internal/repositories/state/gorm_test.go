package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormRepositoryTestSuite struct {
	suite.Suite
	db      *gorm.DB
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *GormRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.db = db

	repo, err := NewGorm(&GormConfig{DB: db, AutoMigrate: true})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
}

func (s *GormRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func TestGormRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormRepositoryTestSuite))
}

func (s *GormRepositoryTestSuite) TestNewGormValidatesConfig() {
	_, err := NewGorm(nil)
	s.Error(err)

	_, err = NewGorm(&GormConfig{})
	s.Error(err)
}

func (s *GormRepositoryTestSuite) TestSaveAndGetState() {
	state := sampleState("guild-1", s.testNow)
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: state}))

	loaded, err := s.repo.GetState(s.ctx, &GetStateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(state.Roster, loaded.Roster)
	s.Equal(state.Rotations["item-1"].Cursor, loaded.Rotations["item-1"].Cursor)
	s.Equal(state.Deferrals, loaded.Deferrals)
}

func (s *GormRepositoryTestSuite) TestSaveOverwrites() {
	state := sampleState("guild-1", s.testNow)
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: state}))

	state.Version = 8
	state.ActionsToday = 0
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: state}))

	loaded, err := s.repo.GetState(s.ctx, &GetStateInput{GuildID: "guild-1"})
	s.Require().NoError(err)
	s.Equal(int64(8), loaded.Version)
	s.Equal(0, loaded.ActionsToday)

	var count int64
	s.Require().NoError(s.db.Model(&Snapshot{}).Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *GormRepositoryTestSuite) TestGetStateNotFound() {
	_, err := s.repo.GetState(s.ctx, &GetStateInput{GuildID: "missing"})
	s.ErrorIs(err, ErrStateNotFound)
}

func (s *GormRepositoryTestSuite) TestListAndDelete() {
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: sampleState("b", s.testNow)}))
	s.Require().NoError(s.repo.SaveState(s.ctx, &SaveStateInput{State: sampleState("a", s.testNow)}))

	out, err := s.repo.ListGuilds(s.ctx, &ListGuildsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, out.GuildIDs)

	s.Require().NoError(s.repo.DeleteState(s.ctx, &DeleteStateInput{GuildID: "b"}))

	out, err = s.repo.ListGuilds(s.ctx, &ListGuildsInput{})
	s.Require().NoError(err)
	s.Equal([]string{"a"}, out.GuildIDs)
}
