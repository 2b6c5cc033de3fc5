package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkrug/croupier/internal/models"
	"github.com/redis/go-redis/v9"
)

const settingsKeyPrefix = "settings:"

// Config holds configuration for the Redis settings repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSettings persists a guild's settings document
func (r *redisRepository) SaveSettings(ctx context.Context, input *SaveSettingsInput) error {
	if input == nil || input.Settings == nil {
		return errors.New("input and settings cannot be nil")
	}

	if input.Settings.GuildID == "" {
		return errors.New("settings guild ID cannot be empty")
	}

	settingsJSON, err := json.Marshal(input.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	key := settingsKeyPrefix + input.Settings.GuildID
	if err := r.client.Set(ctx, key, settingsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings retrieves a guild's settings, returning defaults when the
// guild has never stored any
func (r *redisRepository) GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GameSettings, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	settingsJSON, err := r.client.Get(ctx, settingsKeyPrefix+input.GuildID).Result()
	if err != nil {
		if err == redis.Nil {
			return models.DefaultGameSettings(input.GuildID), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	var s models.GameSettings
	if err := json.Unmarshal([]byte(settingsJSON), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &s, nil
}
