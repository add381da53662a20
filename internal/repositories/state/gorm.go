package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/rotation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is the table row holding one guild's serialized state
type Snapshot struct {
	GuildID   string `gorm:"primaryKey;size:64"`
	Version   int64  `gorm:"not null"`
	Data      []byte `gorm:"type:blob;not null"`
	UpdatedAt time.Time
}

// TableName keeps the table name stable
func (Snapshot) TableName() string {
	return "rotation_snapshots"
}

// GormConfig holds configuration for the SQL state repository
type GormConfig struct {
	DB *gorm.DB

	// AutoMigrate creates the snapshot table when it is missing
	AutoMigrate bool
}

// gormRepository implements the Repository interface on a SQL database
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new SQL-backed state repository
func NewGorm(cfg *GormConfig) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}
	if cfg.AutoMigrate {
		if err := cfg.DB.AutoMigrate(&Snapshot{}); err != nil {
			return nil, fmt.Errorf("failed to migrate snapshots: %w", err)
		}
	}

	return &gormRepository{db: cfg.DB}, nil
}

// SaveState upserts the guild snapshot row
func (r *gormRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
	if input == nil || input.State == nil {
		return errors.New("input and state cannot be nil")
	}
	if input.State.GuildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	blob, err := rotation.Serialize(input.State)
	if err != nil {
		return err
	}

	row := &Snapshot{
		GuildID:   input.State.GuildID,
		Version:   input.State.Version,
		Data:      blob,
		UpdatedAt: input.State.UpdatedAt,
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guild_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "data", "updated_at"}),
	}).Create(row)
	if result.Error != nil {
		return fmt.Errorf("failed to save state: %w", result.Error)
	}

	return nil
}

// GetState loads the guild snapshot row
func (r *gormRepository) GetState(ctx context.Context, input *GetStateInput) (*models.RotationState, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	var row Snapshot
	err := r.db.WithContext(ctx).Where("guild_id = ?", input.GuildID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	state, err := rotation.Deserialize(row.Data)
	if err != nil {
		return nil, err
	}
	if state.GuildID == "" {
		state.GuildID = input.GuildID
	}

	return state, nil
}

// DeleteState removes the guild snapshot row
func (r *gormRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	if err := r.db.WithContext(ctx).Where("guild_id = ?", input.GuildID).Delete(&Snapshot{}).Error; err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}

	return nil
}

// ListGuilds returns the guilds with a saved snapshot, sorted
func (r *gormRepository) ListGuilds(ctx context.Context, input *ListGuildsInput) (*ListGuildsOutput, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&Snapshot{}).Order("guild_id").Pluck("guild_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}

	return &ListGuildsOutput{GuildIDs: ids}, nil
}
