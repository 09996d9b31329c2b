package battles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutanik/roadquest/internal/domain/game/combat"
	"github.com/mizutanik/roadquest/internal/domain/shared"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

func inMemoryBattle(id, characterID string) *combat.Battle {
	return combat.NewBattle(
		id, characterID, "Riko", "slime", "Slime",
		&shared.CombatantStats{HP: 80, MaxHP: 80},
		&shared.CombatantStats{HP: 40, MaxHP: 40},
	)
}

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, inMemoryBattle("battle-1", "char-1")))

		battle, err := repo.Get(ctx, "battle-1")
		require.NoError(t, err)
		assert.Equal(t, "battle-1", battle.ID)
	})

	t.Run("create rejects duplicates", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Create(ctx, inMemoryBattle("battle-1", "char-1")))

		err := repo.Create(ctx, inMemoryBattle("battle-1", "char-1"))
		assert.True(t, apperrors.Is(err, apperrors.CodeAlreadyExists))
	})

	t.Run("stored battles are isolated from the caller", func(t *testing.T) {
		repo := NewInMemoryRepository()
		battle := inMemoryBattle("battle-1", "char-1")
		require.NoError(t, repo.Create(ctx, battle))

		battle.Character.TakeDamage(50)

		stored, err := repo.Get(ctx, "battle-1")
		require.NoError(t, err)
		assert.Equal(t, 80, stored.Character.HP)
	})

	t.Run("update requires an existing battle", func(t *testing.T) {
		repo := NewInMemoryRepository()
		err := repo.Update(ctx, inMemoryBattle("battle-1", "char-1"))
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("get active by character skips terminal battles", func(t *testing.T) {
		repo := NewInMemoryRepository()
		battle := inMemoryBattle("battle-1", "char-1")
		require.NoError(t, repo.Create(ctx, battle))

		active, err := repo.GetActiveByCharacter(ctx, "char-1")
		require.NoError(t, err)
		require.NotNil(t, active)

		battle.End(combat.StateEscaped)
		require.NoError(t, repo.Update(ctx, battle))

		active, err = repo.GetActiveByCharacter(ctx, "char-1")
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo := NewInMemoryRepository()
		require.NoError(t, repo.Delete(ctx, "battle-1"))
	})
}
