package monsters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mizutanik/roadquest/internal/domain/monster"
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

func monsterKey(key string) string {
	return fmt.Sprintf("monster:%s", key)
}

// Put stores or replaces a monster definition
func (r *redisRepository) Put(ctx context.Context, m *monster.Monster) error {
	if m == nil {
		return apperrors.InvalidArgument("monster cannot be nil")
	}
	if m.Key == "" {
		return apperrors.InvalidArgument("monster key cannot be empty")
	}

	data, err := json.Marshal(m)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal monster")
	}

	if err := r.client.Set(ctx, monsterKey(m.Key), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store monster")
	}

	return nil
}

// GetByKey retrieves a monster by key
func (r *redisRepository) GetByKey(ctx context.Context, key string) (*monster.Monster, error) {
	data, err := r.client.Get(ctx, monsterKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("monster not found: %s", key)
		}
		return nil, apperrors.Wrap(err, "failed to get monster")
	}

	var m monster.Monster
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal monster")
	}

	return &m, nil
}

// Delete removes a monster definition
func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, monsterKey(key)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete monster")
	}
	return nil
}
