package characters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mizutanik/roadquest/internal/domain/character"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

// Create stores a new character
func (r *redisRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID cannot be empty")
	}

	data, err := json.Marshal(char)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal character")
	}

	if err := r.client.Set(ctx, characterKey(char.ID), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store character")
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	data, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("character not found: %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to get character")
	}

	var char character.Character
	if err := json.Unmarshal(data, &char); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal character")
	}

	return &char, nil
}

// Update modifies an existing character
func (r *redisRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}

	data, err := json.Marshal(char)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal character")
	}

	if err := r.client.Set(ctx, characterKey(char.ID), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to update character")
	}

	return nil
}

// Delete removes a character
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, characterKey(id)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete character")
	}
	return nil
}
