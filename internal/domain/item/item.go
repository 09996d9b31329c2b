package item

import (
	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// Kind discriminates the item taxonomy. Rather than an inheritance
// chain, an Item is a single value whose kind selects which of the
// optional profiles below is populated.
type Kind string

const (
	KindWeapon    Kind = "weapon"
	KindHead      Kind = "head"
	KindBody      Kind = "body"
	KindFoot      Kind = "foot"
	KindShield    Kind = "shield"
	KindAccessory Kind = "accessory"
	KindBag       Kind = "bag"
	KindPotion    Kind = "potion"
	KindMaterial  Kind = "material"
)

// WeaponStyle selects which attack stat a weapon scales with.
type WeaponStyle string

const (
	WeaponStylePhysical WeaponStyle = "physical"
	WeaponStyleMagical  WeaponStyle = "magical"
)

const (
	// MinRarity and MaxRarity bound the item rarity scale.
	MinRarity = 1
	MaxRarity = 5

	defaultStackLimit = 99
)

// EquipProfile carries the fields shared by every equippable kind.
// Durability is clamped to [0, MaxDurability]; at zero the item is
// broken and contributes no stat modifiers.
type EquipProfile struct {
	MaxDurability int            `json:"max_durability"`
	Durability    int            `json:"durability"`
	Slot          shared.Slot    `json:"slot"`
	RequiredLevel int            `json:"required_level"`
	RequiredStats map[string]int `json:"required_stats,omitempty"`
}

// WeaponProfile adds weapon-only fields.
type WeaponProfile struct {
	Style          WeaponStyle `json:"style"`
	SpecialSkillID string      `json:"special_skill_id,omitempty"`
}

// ConsumeProfile adds consumable-only fields. A zero UsageLimit marks
// a single-use consumable: one use spends it. A positive limit gives
// each item in a stack that many uses before it is consumed.
type ConsumeProfile struct {
	EffectType    EffectType `json:"effect_type"`
	EffectValue   int        `json:"effect_value"`
	UsageLimit    int        `json:"usage_limit,omitempty"`
	RemainingUses int        `json:"remaining_uses,omitempty"`
}

// MaterialProfile adds crafting-material fields. Materials have no
// battle relevance.
type MaterialProfile struct {
	MaterialType string `json:"material_type"`
	Grade        int    `json:"grade"`
}

// Item is a game item. Common fields apply to every kind; the profile
// pointers are populated per kind (Equip for every equippable kind,
// Weapon additionally for weapons, and so on).
type Item struct {
	ID          string         `json:"id"`
	Key         string         `json:"key"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Kind        Kind           `json:"kind"`
	Rarity      int            `json:"rarity"`
	Value       int            `json:"value"`
	Effects     map[string]int `json:"effects,omitempty"`
	StackLimit  int            `json:"stack_limit,omitempty"`

	Equip    *EquipProfile    `json:"equip,omitempty"`
	Weapon   *WeaponProfile   `json:"weapon,omitempty"`
	Consume  *ConsumeProfile  `json:"consume,omitempty"`
	Material *MaterialProfile `json:"material,omitempty"`
}

// IsUsable reports whether the item can be used directly on a target.
func (i *Item) IsUsable() bool {
	return i.Kind == KindPotion && i.Consume != nil
}

// IsEquippable reports whether the item can be equipped.
func (i *Item) IsEquippable() bool {
	return i.Equip != nil
}

// HasDurability reports whether the item tracks durability.
func (i *Item) HasDurability() bool {
	return i.Equip != nil && i.Equip.MaxDurability > 0
}

// GetEffects returns a copy of the raw effect map.
func (i *Item) GetEffects() map[string]int {
	out := make(map[string]int, len(i.Effects))
	for k, v := range i.Effects {
		out[k] = v
	}
	return out
}

// GetStackLimit returns how many of this item share one inventory slot.
// Equipment never stacks; other kinds default to 99 when unset.
func (i *Item) GetStackLimit() int {
	if i.IsEquippable() {
		return 1
	}
	if i.StackLimit > 0 {
		return i.StackLimit
	}
	return defaultStackLimit
}

// GetName returns the item display name.
func (i *Item) GetName() string {
	return i.Name
}

// GetKey returns the item catalog key.
func (i *Item) GetKey() string {
	return i.Key
}

// GetSlot returns the equipment slot, SlotNone for non-equipment.
func (i *Item) GetSlot() shared.Slot {
	if i.Equip == nil {
		return shared.SlotNone
	}
	return i.Equip.Slot
}

// Clone returns a deep copy of the item.
func (i *Item) Clone() *Item {
	clone := *i
	clone.Effects = i.GetEffects()

	if i.Equip != nil {
		equip := *i.Equip
		if i.Equip.RequiredStats != nil {
			equip.RequiredStats = make(map[string]int, len(i.Equip.RequiredStats))
			for k, v := range i.Equip.RequiredStats {
				equip.RequiredStats[k] = v
			}
		}
		clone.Equip = &equip
	}
	if i.Weapon != nil {
		weapon := *i.Weapon
		clone.Weapon = &weapon
	}
	if i.Consume != nil {
		consume := *i.Consume
		clone.Consume = &consume
	}
	if i.Material != nil {
		material := *i.Material
		clone.Material = &material
	}

	return &clone
}
