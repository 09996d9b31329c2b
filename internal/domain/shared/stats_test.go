package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEffects(t *testing.T) {
	t.Run("known keys fold into the stat block", func(t *testing.T) {
		stats := &CombatantStats{HP: 50, MaxHP: 50, Attack: 10}
		stats.ApplyEffects(map[string]int{
			EffectAttack:  5,
			EffectDefense: 3,
			EffectMaxHP:   20,
		})

		assert.Equal(t, 15, stats.Attack)
		assert.Equal(t, 3, stats.Defense)
		assert.Equal(t, 70, stats.MaxHP)
		assert.Equal(t, 70, stats.HP)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		stats := &CombatantStats{Attack: 10}
		stats.ApplyEffects(map[string]int{"luck": 99, "extra_dice": 2})
		assert.Equal(t, 10, stats.Attack)
	})
}

func TestTakeDamageClampsAtZero(t *testing.T) {
	stats := &CombatantStats{HP: 10, MaxHP: 50}
	stats.TakeDamage(25)
	assert.Equal(t, 0, stats.HP)
	assert.False(t, stats.IsAlive())
}

func TestHeal(t *testing.T) {
	t.Run("returns the amount actually restored", func(t *testing.T) {
		stats := &CombatantStats{HP: 40, MaxHP: 50}
		assert.Equal(t, 10, stats.HealHP(30))
		assert.Equal(t, 50, stats.HP)
	})

	t.Run("negative amounts heal nothing", func(t *testing.T) {
		stats := &CombatantStats{SP: 5, MaxSP: 20}
		assert.Equal(t, 0, stats.HealSP(-10))
		assert.Equal(t, 5, stats.SP)
	})

	t.Run("each pool heals independently", func(t *testing.T) {
		stats := &CombatantStats{MP: 0, MaxMP: 30, SP: 10, MaxSP: 20}
		assert.Equal(t, 30, stats.HealMP(99))
		assert.Equal(t, 10, stats.SP)
	})
}

func TestSpendSP(t *testing.T) {
	stats := &CombatantStats{SP: 8, MaxSP: 20}

	assert.True(t, stats.SpendSP(8))
	assert.Equal(t, 0, stats.SP)
	assert.False(t, stats.SpendSP(1))
}

func TestGet(t *testing.T) {
	stats := &CombatantStats{Level: 5, Attack: 12, Agility: 7}

	assert.Equal(t, 12, stats.Get(EffectAttack))
	assert.Equal(t, 7, stats.Get(EffectAgility))
	assert.Equal(t, 5, stats.Get("level"))
	assert.Equal(t, 0, stats.Get("no-such-stat"))
}

func TestStatsClone(t *testing.T) {
	stats := &CombatantStats{HP: 50, MaxHP: 50}
	clone := stats.Clone()
	clone.TakeDamage(30)

	assert.Equal(t, 50, stats.HP)
	assert.Equal(t, 20, clone.HP)
}
