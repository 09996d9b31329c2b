package battles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutanik/roadquest/internal/domain/game/combat"
	"github.com/mizutanik/roadquest/internal/domain/shared"
	"github.com/mizutanik/roadquest/internal/testutils"
)

func TestRedisRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	client := testutils.StartRedisContainer(t)
	repo := NewRedisRepository(&RedisRepoConfig{Client: client})
	ctx := context.Background()

	battle := combat.NewBattle(
		"battle-1", "char-1", "Riko", "slime", "Slime",
		&shared.CombatantStats{HP: 80, MaxHP: 80},
		&shared.CombatantStats{HP: 40, MaxHP: 40},
	)
	battle.AppendLog(combat.ActorSystem, "state", "A Slime appeared!", 0, false)

	require.NoError(t, repo.Create(ctx, battle))

	t.Run("round-trips through redis", func(t *testing.T) {
		stored, err := repo.Get(ctx, "battle-1")
		require.NoError(t, err)
		assert.Equal(t, combat.StateStarting, stored.State)
		assert.Equal(t, 40, stored.Monster.HP)
		require.Len(t, stored.Log, 1)
	})

	t.Run("active index follows the battle lifecycle", func(t *testing.T) {
		active, err := repo.GetActiveByCharacter(ctx, "char-1")
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "battle-1", active.ID)

		battle.End(combat.StateVictory)
		require.NoError(t, repo.Update(ctx, battle))

		active, err = repo.GetActiveByCharacter(ctx, "char-1")
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("delete removes everything", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "battle-1"))
		_, err := repo.Get(ctx, "battle-1")
		assert.Error(t, err)
	})
}
