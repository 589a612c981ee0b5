package participant

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
	participantKeyPrefix = "participant:"
	tokenKeyPrefix       = "participant_token:"
	participantsKey      = "participants"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// ErrParticipantIsLeader is returned when deleting a participant who leads a team
var ErrParticipantIsLeader = errors.New("participant is a team leader")

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

// SaveParticipant persists a participant to Redis
func (r *redisRepository) SaveParticipant(ctx context.Context, input *SaveParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	p := input.Participant

	// Ensure the participant has an ID
	if p.ID == "" {
		return errors.New("participant ID cannot be empty")
	}

	// Marshal the participant to JSON
	participantJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal participant: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the participant and track it in the id set
	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, p.ID)
	pipe.Set(ctx, participantKey, participantJSON, 0) // No expiration
	pipe.SAdd(ctx, participantsKey, p.ID)

	// Index the lookup token
	if p.Token != "" {
		tokenKey := fmt.Sprintf("%s%s", tokenKeyPrefix, p.Token)
		pipe.Set(ctx, tokenKey, p.ID, 0)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save participant: %w", err)
	}

	return nil
}

// GetParticipant retrieves a participant by ID from Redis
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	return r.getByID(ctx, input.ParticipantID)
}

// GetParticipantByToken retrieves a participant through the token index
func (r *redisRepository) GetParticipantByToken(ctx context.Context, input *GetParticipantByTokenInput) (*models.Participant, error) {
	if input == nil || input.Token == "" {
		return nil, errors.New("input and token cannot be empty")
	}

	tokenKey := fmt.Sprintf("%s%s", tokenKeyPrefix, input.Token)
	participantID, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	return r.getByID(ctx, participantID)
}

// ListParticipants retrieves every participant from Redis
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error) {
	participantIDs, err := r.client.SMembers(ctx, participantsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list participant IDs: %w", err)
	}

	participants := make([]*models.Participant, 0, len(participantIDs))
	if len(participantIDs) == 0 {
		return &ListParticipantsOutput{Participants: participants}, nil
	}

	keys := make([]string, 0, len(participantIDs))
	for _, participantID := range participantIDs {
		keys = append(keys, fmt.Sprintf("%s%s", participantKeyPrefix, participantID))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	for _, value := range values {
		participantJSON, ok := value.(string)
		if !ok {
			// The id set can briefly reference a deleted participant
			continue
		}

		var p models.Participant
		if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
		}
		participants = append(participants, &p)
	}

	return &ListParticipantsOutput{Participants: participants}, nil
}

// DeleteParticipant removes a participant from Redis. Leaders cannot be deleted.
func (r *redisRepository) DeleteParticipant(ctx context.Context, input *DeleteParticipantInput) error {
	if input == nil || input.ParticipantID == "" {
		return errors.New("input and participant ID cannot be empty")
	}

	p, err := r.getByID(ctx, input.ParticipantID)
	if err != nil {
		return err
	}

	if p.IsLeader {
		return ErrParticipantIsLeader
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, p.ID))
	pipe.SRem(ctx, participantsKey, p.ID)
	if p.Token != "" {
		pipe.Del(ctx, fmt.Sprintf("%s%s", tokenKeyPrefix, p.Token))
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}

	return nil
}

// BulkSetTeamID rewrites the team assignment of many participants in a single
// pipeline. The writes are not transactional across participants; a failure
// mid-pipeline can leave a subset updated.
func (r *redisRepository) BulkSetTeamID(ctx context.Context, input *BulkSetTeamIDInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if len(input.Assignments) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()

	for _, assignment := range input.Assignments {
		p, err := r.getByID(ctx, assignment.ParticipantID)
		if err != nil {
			return err
		}

		p.TeamID = assignment.TeamID

		participantJSON, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to marshal participant: %w", err)
		}

		pipe.Set(ctx, fmt.Sprintf("%s%s", participantKeyPrefix, p.ID), participantJSON, 0)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update team assignments: %w", err)
	}

	return nil
}

// getByID loads and unmarshals a single participant
func (r *redisRepository) getByID(ctx context.Context, participantID string) (*models.Participant, error) {
	participantKey := fmt.Sprintf("%s%s", participantKeyPrefix, participantID)
	participantJSON, err := r.client.Get(ctx, participantKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	var p models.Participant
	if err := json.Unmarshal([]byte(participantJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participant: %w", err)
	}

	return &p, nil
}
