package testutils

import (
	"github.com/mizutanik/roadquest/internal/domain/character"
	"github.com/mizutanik/roadquest/internal/domain/game/exploration"
	"github.com/mizutanik/roadquest/internal/domain/item"
	"github.com/mizutanik/roadquest/internal/domain/monster"
	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// CreateTestCharacter creates a fully formed test character
func CreateTestCharacter(id, name string) *character.Character {
	return &character.Character{
		ID:    id,
		Name:  name,
		Level: 5,
		Gold:  100,
		BaseStats: shared.CombatantStats{
			Level:    5,
			HP:       80,
			MaxHP:    80,
			SP:       30,
			MaxSP:    30,
			MP:       20,
			MaxMP:    20,
			Attack:   20,
			Defense:  12,
			Agility:  15,
			Evasion:  10,
			Accuracy: 80,
		},
		Inventory: []*character.InventorySlot{},
		Equipped:  map[shared.Slot]*item.Item{},
	}
}

// CreateTestWeapon creates a physical weapon with durability
func CreateTestWeapon(key, name string, attack, durability int) *item.Item {
	return &item.Item{
		ID:      key,
		Key:     key,
		Name:    name,
		Kind:    item.KindWeapon,
		Rarity:  2,
		Value:   150,
		Effects: map[string]int{shared.EffectAttack: attack},
		Equip: &item.EquipProfile{
			MaxDurability: durability,
			Durability:    durability,
			Slot:          shared.SlotWeapon,
			RequiredLevel: 1,
		},
		Weapon: &item.WeaponProfile{Style: item.WeaponStylePhysical},
	}
}

// CreateTestPotion creates a single-use HP potion
func CreateTestPotion(key, name string, heal int) *item.Item {
	return &item.Item{
		ID:     key,
		Key:    key,
		Name:   name,
		Kind:   item.KindPotion,
		Rarity: 1,
		Value:  20,
		Consume: &item.ConsumeProfile{
			EffectType:  item.EffectHealHP,
			EffectValue: heal,
		},
	}
}

// CreateTestMonster creates a monster definition
func CreateTestMonster(key, name string) *monster.Monster {
	return &monster.Monster{
		ID:    key,
		Key:   key,
		Name:  name,
		Level: 3,
		Stats: shared.CombatantStats{
			Level:    3,
			HP:       40,
			MaxHP:    40,
			Attack:   15,
			Defense:  8,
			Agility:  10,
			Evasion:  10,
			Accuracy: 70,
		},
		AttackStyle: item.WeaponStylePhysical,
		ExpReward:   25,
		GoldReward:  15,
	}
}

// CreateTestRoad creates a road with one spawn entry
func CreateTestRoad(id, key string) *exploration.Road {
	return &exploration.Road{
		ID:            id,
		Key:           key,
		Name:          key,
		FromLocation:  "town-a",
		ToLocation:    "town-b",
		BaseDice:      2,
		Multiplier:    1,
		EncounterRate: 30,
		Spawns: []*exploration.SpawnEntry{
			{MonsterKey: "slime", Priority: 10},
		},
	}
}
