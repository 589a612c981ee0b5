package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/smashcrew/teambalance/internal/models"
)

const (
	// Key prefixes for Redis
	teamKeyPrefix = "team:"
	teamsKey      = "teams"
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// SaveTeam persists a team to Redis
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}

	if input.Team.ID == "" {
		return errors.New("team ID cannot be empty")
	}

	// Marshal the team to JSON
	teamJSON, err := json.Marshal(input.Team)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	teamKey := fmt.Sprintf("%s%s", teamKeyPrefix, input.Team.ID)
	pipe.Set(ctx, teamKey, teamJSON, 0) // No expiration
	pipe.SAdd(ctx, teamsKey, input.Team.ID)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	teamKey := fmt.Sprintf("%s%s", teamKeyPrefix, input.TeamID)
	teamJSON, err := r.client.Get(ctx, teamKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var t models.Team
	if err := json.Unmarshal([]byte(teamJSON), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &t, nil
}

// ListTeams retrieves every team from Redis
func (r *redisRepository) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	teamIDs, err := r.client.SMembers(ctx, teamsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list team IDs: %w", err)
	}

	teams := make([]*models.Team, 0, len(teamIDs))
	if len(teamIDs) == 0 {
		return &ListTeamsOutput{Teams: teams}, nil
	}

	keys := make([]string, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		keys = append(keys, fmt.Sprintf("%s%s", teamKeyPrefix, teamID))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	for _, value := range values {
		teamJSON, ok := value.(string)
		if !ok {
			continue
		}

		var t models.Team
		if err := json.Unmarshal([]byte(teamJSON), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team: %w", err)
		}
		teams = append(teams, &t)
	}

	return &ListTeamsOutput{Teams: teams}, nil
}
