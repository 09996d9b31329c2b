package monster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutanik/roadquest/internal/domain/item"
	"github.com/mizutanik/roadquest/internal/domain/shared"
)

func TestCombatStats(t *testing.T) {
	slime := &Monster{
		Key:   "slime",
		Name:  "Slime",
		Level: 3,
		Stats: shared.CombatantStats{HP: 40, MaxHP: 40, Attack: 15},
	}

	stats := slime.CombatStats()
	assert.Equal(t, 3, stats.Level)

	stats.TakeDamage(25)
	assert.Equal(t, 40, slime.Stats.HP, "definition stays untouched")
}

func TestNaturalWeapon(t *testing.T) {
	slime := &Monster{Key: "slime", Name: "Slime"}

	weapon := slime.NaturalWeapon()
	require.NotNil(t, weapon.Weapon)
	assert.Equal(t, item.KindWeapon, weapon.Kind)
	assert.Equal(t, item.WeaponStylePhysical, weapon.Weapon.Style)
	assert.False(t, weapon.HasDurability())
	assert.Equal(t, 0, weapon.Effects[shared.EffectAttack])

	mage := &Monster{Key: "wisp", Name: "Wisp", AttackStyle: item.WeaponStyleMagical}
	assert.Equal(t, item.WeaponStyleMagical, mage.NaturalWeapon().Weapon.Style)
}
