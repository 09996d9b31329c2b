package battles

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mizutanik/roadquest/internal/domain/game/combat"
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

func battleKey(id string) string {
	return fmt.Sprintf("battle:%s", id)
}

func activeBattleKey(characterID string) string {
	return fmt.Sprintf("character:%s:active_battle", characterID)
}

// Create stores a new battle and indexes it as the character's active
// battle while it remains non-terminal.
func (r *redisRepository) Create(ctx context.Context, battle *combat.Battle) error {
	if battle == nil {
		return apperrors.InvalidArgument("battle cannot be nil")
	}
	if battle.ID == "" {
		return apperrors.InvalidArgument("battle ID cannot be empty")
	}

	data, err := json.Marshal(battle)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal battle")
	}

	if err := r.client.Set(ctx, battleKey(battle.ID), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store battle")
	}

	if !battle.IsTerminal() {
		if err := r.client.Set(ctx, activeBattleKey(battle.CharacterID), battle.ID, 0).Err(); err != nil {
			return apperrors.Wrap(err, "failed to index active battle")
		}
	}

	return nil
}

// Get retrieves a battle by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*combat.Battle, error) {
	data, err := r.client.Get(ctx, battleKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("battle not found: %s", id)
		}
		return nil, apperrors.Wrap(err, "failed to get battle")
	}

	var battle combat.Battle
	if err := json.Unmarshal(data, &battle); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal battle")
	}

	return &battle, nil
}

// Update modifies an existing battle, clearing the active index once
// the battle goes terminal.
func (r *redisRepository) Update(ctx context.Context, battle *combat.Battle) error {
	if battle == nil {
		return apperrors.InvalidArgument("battle cannot be nil")
	}

	data, err := json.Marshal(battle)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal battle")
	}

	if err := r.client.Set(ctx, battleKey(battle.ID), data, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to update battle")
	}

	if battle.IsTerminal() {
		if err := r.client.Del(ctx, activeBattleKey(battle.CharacterID)).Err(); err != nil {
			return apperrors.Wrap(err, "failed to clear active battle index")
		}
	} else {
		if err := r.client.Set(ctx, activeBattleKey(battle.CharacterID), battle.ID, 0).Err(); err != nil {
			return apperrors.Wrap(err, "failed to index active battle")
		}
	}

	return nil
}

// Delete removes a battle and its active index entry.
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	battle, err := r.Get(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil
		}
		return err
	}

	if err := r.client.Del(ctx, battleKey(id)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete battle")
	}
	if err := r.client.Del(ctx, activeBattleKey(battle.CharacterID)).Err(); err != nil {
		return apperrors.Wrap(err, "failed to clear active battle index")
	}

	return nil
}

// GetActiveByCharacter retrieves the character's current non-terminal
// battle via the active index, nil when there is none.
func (r *redisRepository) GetActiveByCharacter(ctx context.Context, characterID string) (*combat.Battle, error) {
	id, err := r.client.Get(ctx, activeBattleKey(characterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to look up active battle")
	}

	battle, err := r.Get(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	if battle.IsTerminal() {
		return nil, nil
	}
	return battle, nil
}
