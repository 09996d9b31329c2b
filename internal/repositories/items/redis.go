package items

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mizutanik/roadquest/internal/domain/item"
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

func itemKey(key string) string {
	return fmt.Sprintf("item:%s", key)
}

func kindIndexKey(kind item.Kind) string {
	return fmt.Sprintf("items:kind:%s", kind)
}

// Put stores or replaces a catalog item and indexes it by kind.
func (r *redisRepository) Put(ctx context.Context, it *item.Item) error {
	if it == nil {
		return apperrors.InvalidArgument("item cannot be nil")
	}
	if it.Key == "" {
		return apperrors.InvalidArgument("item key cannot be empty")
	}

	data, err := json.Marshal(it)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal item")
	}

	if err := r.client.Set(ctx, itemKey(it.Key), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store item")
	}

	if err := r.client.SAdd(ctx, kindIndexKey(it.Kind), it.Key).Err(); err != nil {
		return apperrors.Wrap(err, "failed to index item kind")
	}

	return nil
}

// GetByKey retrieves an item by its catalog key
func (r *redisRepository) GetByKey(ctx context.Context, key string) (*item.Item, error) {
	data, err := r.client.Get(ctx, itemKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("item not found: %s", key)
		}
		return nil, apperrors.Wrap(err, "failed to get item")
	}

	var it item.Item
	if err := json.Unmarshal(data, &it); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal item")
	}

	return &it, nil
}

// ListByKind retrieves all items of one kind via the kind index.
func (r *redisRepository) ListByKind(ctx context.Context, kind item.Kind) ([]*item.Item, error) {
	keys, err := r.client.SMembers(ctx, kindIndexKey(kind)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list item kind index")
	}

	out := make([]*item.Item, 0, len(keys))
	for _, key := range keys {
		it, err := r.GetByKey(ctx, key)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		out = append(out, it)
	}

	return out, nil
}

// Delete removes an item from the catalog and its kind index.
func (r *redisRepository) Delete(ctx context.Context, key string) error {
	it, err := r.GetByKey(ctx, key)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	if err := r.client.Del(ctx, itemKey(key)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete item")
	}
	if err := r.client.SRem(ctx, kindIndexKey(it.Kind), key).Err(); err != nil {
		return apperrors.Wrap(err, "failed to remove item kind index")
	}

	return nil
}
