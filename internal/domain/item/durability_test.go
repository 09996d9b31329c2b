package item

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizutanik/roadquest/internal/domain/shared"
)

func testSword(durability int) *Item {
	return &Item{
		ID:     "item-1",
		Key:    "iron-sword",
		Name:   "Iron Sword",
		Kind:   KindWeapon,
		Rarity: 2,
		Effects: map[string]int{
			shared.EffectAttack: 5,
		},
		Equip: &EquipProfile{
			MaxDurability: 30,
			Durability:    durability,
			Slot:          shared.SlotWeapon,
		},
		Weapon: &WeaponProfile{Style: WeaponStylePhysical},
	}
}

func TestTakeDamage(t *testing.T) {
	t.Run("reduces durability", func(t *testing.T) {
		sword := testSword(30)
		sword.TakeDamage(3)
		assert.Equal(t, 27, sword.CurrentDurability())
	})

	t.Run("clamps at zero", func(t *testing.T) {
		sword := testSword(2)
		sword.TakeDamage(10)
		assert.Equal(t, 0, sword.CurrentDurability())
		assert.True(t, sword.IsBroken())
	})

	t.Run("ignores non-positive damage", func(t *testing.T) {
		sword := testSword(10)
		sword.TakeDamage(0)
		sword.TakeDamage(-5)
		assert.Equal(t, 10, sword.CurrentDurability())
	})

	t.Run("no-op for items without an equip profile", func(t *testing.T) {
		potion := &Item{Key: "potion", Kind: KindPotion}
		potion.TakeDamage(5)
		assert.Equal(t, 0, potion.CurrentDurability())
		assert.False(t, potion.IsBroken())
	})
}

func TestRepair(t *testing.T) {
	t.Run("restores durability", func(t *testing.T) {
		sword := testSword(5)
		sword.Repair(10)
		assert.Equal(t, 15, sword.CurrentDurability())
	})

	t.Run("clamps at the maximum", func(t *testing.T) {
		sword := testSword(25)
		sword.Repair(100)
		assert.Equal(t, 30, sword.CurrentDurability())
	})

	t.Run("a repaired item is no longer broken", func(t *testing.T) {
		sword := testSword(0)
		assert.True(t, sword.IsBroken())
		sword.Repair(1)
		assert.False(t, sword.IsBroken())
	})
}

func TestStatModifiers(t *testing.T) {
	t.Run("intact equipment contributes its effects", func(t *testing.T) {
		sword := testSword(10)
		assert.Equal(t, map[string]int{shared.EffectAttack: 5}, sword.StatModifiers())
	})

	t.Run("broken equipment contributes nothing", func(t *testing.T) {
		sword := testSword(0)
		assert.Empty(t, sword.StatModifiers())
	})

	t.Run("zero max durability never breaks", func(t *testing.T) {
		ring := &Item{
			Key:     "ring",
			Kind:    KindAccessory,
			Effects: map[string]int{shared.EffectAgility: 2},
			Equip:   &EquipProfile{Slot: shared.SlotAccessory},
		}
		assert.False(t, ring.IsBroken())
		assert.Equal(t, map[string]int{shared.EffectAgility: 2}, ring.StatModifiers())
	})
}
