package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutanik/roadquest/internal/domain/shared"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/items"
	"github.com/mizutanik/roadquest/internal/testutils"
)

type itemFixture struct {
	svc        Service
	characters characters.Repository
	catalog    items.Repository
}

func setupItemService(t *testing.T) *itemFixture {
	t.Helper()

	f := &itemFixture{
		characters: characters.NewInMemoryRepository(),
		catalog:    items.NewInMemoryRepository(),
	}
	f.svc = NewService(&ServiceConfig{
		CharacterRepository: f.characters,
		ItemRepository:      f.catalog,
	})

	char := testutils.CreateTestCharacter("char-1", "Riko")
	require.NoError(t, f.characters.Create(context.Background(), char))
	return f
}

func TestUseItem(t *testing.T) {
	ctx := context.Background()

	t.Run("heals and consumes the potion", func(t *testing.T) {
		f := setupItemService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.BaseStats.HP = 50
		char.AddInventory(testutils.CreateTestPotion("healing-potion", "Healing Potion", 30), 2)
		require.NoError(t, f.characters.Update(ctx, char))

		result, err := f.svc.UseItem(ctx, "char-1", 0)
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 30, result.Delta)

		char, err = f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 80, char.BaseStats.HP)
		assert.Equal(t, 1, char.ItemAt(0).Quantity)
	})

	t.Run("full pools reject the use without consuming", func(t *testing.T) {
		f := setupItemService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.AddInventory(testutils.CreateTestPotion("healing-potion", "Healing Potion", 30), 1)
		require.NoError(t, f.characters.Update(ctx, char))

		result, err := f.svc.UseItem(ctx, "char-1", 0)
		require.NoError(t, err)

		assert.False(t, result.Success)

		char, err = f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 1, char.ItemAt(0).Quantity)
	})

	t.Run("a limited-use stack refreshes as each one is spent", func(t *testing.T) {
		f := setupItemService(t)

		flask := testutils.CreateTestPotion("stamina-flask", "Stamina Flask", 5)
		flask.Consume.UsageLimit = 2
		flask.Consume.RemainingUses = 2
		require.NoError(t, f.catalog.Put(ctx, flask))

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.BaseStats.HP = 10
		require.NoError(t, f.characters.Update(ctx, char))

		result, err := f.svc.GrantItem(ctx, "char-1", "stamina-flask", 3)
		require.NoError(t, err)
		require.True(t, result.Success)

		// the second use exhausts the first flask; the third must draw
		// on the next one in the stack
		for i := 0; i < 3; i++ {
			result, err := f.svc.UseItem(ctx, "char-1", 0)
			require.NoError(t, err)
			assert.True(t, result.Success, result.Message)
		}

		char, err = f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		require.NotNil(t, char.ItemAt(0))
		assert.Equal(t, 2, char.ItemAt(0).Quantity)
		assert.Equal(t, 1, char.ItemAt(0).Item.Consume.RemainingUses)
		assert.Equal(t, 25, char.BaseStats.HP)
	})

	t.Run("empty slot fails", func(t *testing.T) {
		f := setupItemService(t)

		result, err := f.svc.UseItem(ctx, "char-1", 3)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "no item in slot 3")
	})
}

func TestEquipUnequipItem(t *testing.T) {
	ctx := context.Background()

	t.Run("equip then unequip round-trips through the inventory", func(t *testing.T) {
		f := setupItemService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.AddInventory(testutils.CreateTestWeapon("iron-sword", "Iron Sword", 5, 30), 1)
		require.NoError(t, f.characters.Update(ctx, char))

		result, err := f.svc.EquipItem(ctx, "char-1", "iron-sword")
		require.NoError(t, err)
		assert.True(t, result.Success)

		char, err = f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		require.NotNil(t, char.EquippedWeapon())
		assert.Empty(t, char.Inventory)

		result, err = f.svc.UnequipItem(ctx, "char-1", shared.SlotWeapon)
		require.NoError(t, err)
		assert.True(t, result.Success)

		char, err = f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Nil(t, char.EquippedWeapon())
		require.Len(t, char.Inventory, 1)
	})

	t.Run("equip rejects unmet requirements", func(t *testing.T) {
		f := setupItemService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		sword := testutils.CreateTestWeapon("mythril-sword", "Mythril Sword", 20, 50)
		sword.Equip.RequiredLevel = 20
		char.AddInventory(sword, 1)
		require.NoError(t, f.characters.Update(ctx, char))

		result, err := f.svc.EquipItem(ctx, "char-1", "mythril-sword")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "requires level 20")
	})

	t.Run("unequip an empty slot fails", func(t *testing.T) {
		f := setupItemService(t)

		result, err := f.svc.UnequipItem(ctx, "char-1", shared.SlotShield)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestRepairItem(t *testing.T) {
	ctx := context.Background()

	t.Run("restores durability up to the maximum", func(t *testing.T) {
		f := setupItemService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.AddInventory(testutils.CreateTestWeapon("iron-sword", "Iron Sword", 5, 30), 1)
		ok, _ := char.Equip("iron-sword")
		require.True(t, ok)
		char.EquippedWeapon().Equip.Durability = 5
		require.NoError(t, f.characters.Update(ctx, char))

		result, err := f.svc.RepairItem(ctx, "char-1", shared.SlotWeapon, 100)
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 25, result.Delta)

		char, err = f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 30, char.EquippedWeapon().CurrentDurability())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := setupItemService(t)
		_, err := f.svc.RepairItem(ctx, "char-1", shared.SlotWeapon, 0)
		assert.True(t, apperrors.IsInvalidArgument(err))
	})

	t.Run("nothing equipped fails", func(t *testing.T) {
		f := setupItemService(t)
		result, err := f.svc.RepairItem(ctx, "char-1", shared.SlotWeapon, 10)
		require.NoError(t, err)
		assert.False(t, result.Success)
	})
}

func TestGrantItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds the catalog item to the inventory", func(t *testing.T) {
		f := setupItemService(t)
		require.NoError(t, f.catalog.Put(ctx, testutils.CreateTestPotion("healing-potion", "Healing Potion", 30)))

		result, err := f.svc.GrantItem(ctx, "char-1", "healing-potion", 3)
		require.NoError(t, err)
		assert.True(t, result.Success)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		require.NotNil(t, char.ItemAt(0))
		assert.Equal(t, 3, char.ItemAt(0).Quantity)
	})

	t.Run("rejects an out-of-range rarity", func(t *testing.T) {
		f := setupItemService(t)
		potion := testutils.CreateTestPotion("broken-row", "Broken Row", 10)
		potion.Rarity = 9
		require.NoError(t, f.catalog.Put(ctx, potion))

		_, err := f.svc.GrantItem(ctx, "char-1", "broken-row", 1)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		f := setupItemService(t)
		_, err := f.svc.GrantItem(ctx, "char-1", "no-such-item", 1)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		f := setupItemService(t)
		_, err := f.svc.GrantItem(ctx, "char-1", "healing-potion", 0)
		assert.True(t, apperrors.IsInvalidArgument(err))
	})
}
