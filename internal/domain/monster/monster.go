package monster

import (
	"github.com/mizutanik/roadquest/internal/domain/item"
	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// Monster is a configured monster definition. Battles snapshot its
// stats; the definition itself is immutable content.
type Monster struct {
	ID          string                `json:"id"`
	Key         string                `json:"key"`
	Name        string                `json:"name"`
	Level       int                   `json:"level"`
	Stats       shared.CombatantStats `json:"stats"`
	AttackStyle item.WeaponStyle      `json:"attack_style"`
	ExpReward   int                   `json:"exp_reward"`
	GoldReward  int                   `json:"gold_reward"`
}

// CombatStats returns a fresh mutable stat block for one battle.
func (m *Monster) CombatStats() *shared.CombatantStats {
	stats := m.Stats.Clone()
	stats.Level = m.Level
	return stats
}

// NaturalWeapon returns the pseudo-weapon a monster attacks with. It
// has no power of its own (the monster's attack stat carries the
// damage) and no durability to wear down.
func (m *Monster) NaturalWeapon() *item.Item {
	style := m.AttackStyle
	if style == "" {
		style = item.WeaponStylePhysical
	}
	return &item.Item{
		Key:    m.Key + "-claws",
		Name:   m.Name,
		Kind:   item.KindWeapon,
		Rarity: item.MinRarity,
		Weapon: &item.WeaponProfile{Style: style},
	}
}
