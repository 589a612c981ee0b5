package appstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/smashcrew/teambalance/internal/models"
)

// appStateKey is the Redis key of the singleton app state row
const appStateKey = "app_state"

// Config holds configuration for the Redis app state repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed app state repository
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

// GetAppState retrieves the app state from Redis. A missing row yields the
// zero state rather than an error.
func (r *redisRepository) GetAppState(ctx context.Context, input *GetAppStateInput) (*models.AppState, error) {
	stateJSON, err := r.client.Get(ctx, appStateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.AppState{}, nil
		}
		return nil, fmt.Errorf("failed to get app state: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal app state: %w", err)
	}

	return &state, nil
}

// SaveAppState persists the app state to Redis
func (r *redisRepository) SaveAppState(ctx context.Context, input *SaveAppStateInput) error {
	if input == nil || input.AppState == nil {
		return errors.New("input and app state cannot be nil")
	}

	stateJSON, err := json.Marshal(input.AppState)
	if err != nil {
		return fmt.Errorf("failed to marshal app state: %w", err)
	}

	if err := r.client.Set(ctx, appStateKey, stateJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save app state: %w", err)
	}

	return nil
}
