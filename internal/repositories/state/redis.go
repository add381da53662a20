package state

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	stateKeyPrefix = "rotation_state:"
	guildsKey      = "rotation_guilds"
)

// Config holds configuration for the Redis state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed state repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveState persists a guild snapshot to Redis
func (r *redisRepository) SaveState(ctx context.Context, input *SaveStateInput) error {
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

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, stateKeyPrefix+input.State.GuildID, blob, 0)
	pipe.SAdd(ctx, guildsKey, input.State.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// GetState retrieves a guild snapshot from Redis
func (r *redisRepository) GetState(ctx context.Context, input *GetStateInput) (*models.RotationState, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	blob, err := r.client.Get(ctx, stateKeyPrefix+input.GuildID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	state, err := rotation.Deserialize(blob)
	if err != nil {
		return nil, err
	}
	if state.GuildID == "" {
		state.GuildID = input.GuildID
	}

	return state, nil
}

// DeleteState removes a guild snapshot from Redis
func (r *redisRepository) DeleteState(ctx context.Context, input *DeleteStateInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, stateKeyPrefix+input.GuildID)
	pipe.SRem(ctx, guildsKey, input.GuildID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete state: %w", err)
	}

	return nil
}

// ListGuilds returns the guilds with a saved snapshot, sorted
func (r *redisRepository) ListGuilds(ctx context.Context, input *ListGuildsInput) (*ListGuildsOutput, error) {
	ids, err := r.client.SMembers(ctx, guildsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	sort.Strings(ids)

	return &ListGuildsOutput{GuildIDs: ids}, nil
}
