package roads

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mizutanik/roadquest/internal/domain/game/exploration"
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

func roadKey(id string) string {
	return fmt.Sprintf("road:%s", id)
}

// Put stores or replaces a road
func (r *redisRepository) Put(ctx context.Context, road *exploration.Road) error {
	if road == nil {
		return apperrors.InvalidArgument("road cannot be nil")
	}
	if road.ID == "" {
		return apperrors.InvalidArgument("road ID cannot be empty")
	}

	data, err := json.Marshal(road)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal road")
	}

	if err := r.client.Set(ctx, roadKey(road.ID), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store road")
	}

	return nil
}

// Get retrieves a road by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*exploration.Road, error) {
	data, err := r.client.Get(ctx, roadKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("road not found: %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to get road")
	}

	var road exploration.Road
	if err := json.Unmarshal(data, &road); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal road")
	}

	return &road, nil
}

// Delete removes a road
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, roadKey(id)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete road")
	}
	return nil
}
