package character

import (
	"fmt"

	"github.com/mizutanik/roadquest/internal/domain/item"
	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// InventorySlot holds a stack of one item.
type InventorySlot struct {
	Item     *item.Item `json:"item"`
	Quantity int        `json:"quantity"`
}

// Character is the persistent player aggregate: identity, progression,
// inventory, equipped gear, and road position. Combat never reads it
// directly; it assembles an ephemeral stat block via CombatStats.
type Character struct {
	ID        string                     `json:"id"`
	Name      string                     `json:"name"`
	Level     int                        `json:"level"`
	Exp       int                        `json:"exp"`
	Gold      int                        `json:"gold"`
	BaseStats shared.CombatantStats      `json:"base_stats"`
	Inventory []*InventorySlot           `json:"inventory"`
	Equipped  map[shared.Slot]*item.Item `json:"equipped"`
	RoadID    string                     `json:"road_id,omitempty"`
	Position  int                        `json:"position"`
}

// AddInventory adds quantity of an item, stacking onto an existing slot
// up to the item's stack limit before opening new slots.
func (c *Character) AddInventory(it *item.Item, quantity int) {
	if it == nil || quantity <= 0 {
		return
	}

	limit := it.GetStackLimit()
	for _, slot := range c.Inventory {
		if quantity == 0 {
			return
		}
		if slot.Item.Key != it.Key || slot.Quantity >= limit {
			continue
		}
		room := limit - slot.Quantity
		if room > quantity {
			room = quantity
		}
		slot.Quantity += room
		quantity -= room
	}

	for quantity > 0 {
		take := quantity
		if take > limit {
			take = limit
		}
		c.Inventory = append(c.Inventory, &InventorySlot{Item: it.Clone(), Quantity: take})
		quantity -= take
	}
}

// ItemAt returns the inventory slot at the given index, nil if out of
// range or empty.
func (c *Character) ItemAt(index int) *InventorySlot {
	if index < 0 || index >= len(c.Inventory) {
		return nil
	}
	return c.Inventory[index]
}

// RemoveFromSlot removes quantity from an inventory slot, dropping the
// slot entirely when it empties.
func (c *Character) RemoveFromSlot(index, quantity int) {
	slot := c.ItemAt(index)
	if slot == nil {
		return
	}
	slot.Quantity -= quantity
	if slot.Quantity <= 0 {
		c.Inventory = append(c.Inventory[:index], c.Inventory[index+1:]...)
	}
}

func (c *Character) findInventory(key string) (int, *InventorySlot) {
	for i, slot := range c.Inventory {
		if slot.Item.Key == key {
			return i, slot
		}
	}
	return -1, nil
}

// Equip moves the named inventory item into its equipment slot,
// returning any previously equipped item to the inventory. Eligibility
// is checked against the character's level and base stats; rejection
// reasons come back as the message.
func (c *Character) Equip(key string) (bool, string) {
	index, slot := c.findInventory(key)
	if slot == nil {
		return false, fmt.Sprintf("%s is not in the inventory", key)
	}

	it := slot.Item
	ok, reason := it.CanEquipBy(c.Level, &c.BaseStats)
	if !ok {
		return false, reason
	}

	if c.Equipped == nil {
		c.Equipped = make(map[shared.Slot]*item.Item)
	}

	equipSlot := it.GetSlot()
	if previous := c.Equipped[equipSlot]; previous != nil {
		c.AddInventory(previous, 1)
	}

	c.Equipped[equipSlot] = it.Clone()
	c.RemoveFromSlot(index, 1)
	return true, ""
}

// Unequip moves the item in the given slot back to the inventory.
func (c *Character) Unequip(slot shared.Slot) bool {
	it := c.Equipped[slot]
	if it == nil {
		return false
	}
	delete(c.Equipped, slot)
	c.AddInventory(it, 1)
	return true
}

// EquippedWeapon returns the equipped weapon, nil when unarmed.
func (c *Character) EquippedWeapon() *item.Item {
	return c.Equipped[shared.SlotWeapon]
}

// CombatStats assembles the ephemeral combat stat block: base stats
// plus the aggregated modifiers of every equipped, unbroken item.
func (c *Character) CombatStats() *shared.CombatantStats {
	stats := c.BaseStats.Clone()
	stats.Level = c.Level
	for _, it := range c.Equipped {
		stats.ApplyEffects(it.StatModifiers())
	}
	return stats
}

// MovementDice returns the movement dice count: the road's base count
// plus any equipment-derived extra dice.
func (c *Character) MovementDice(base int) int {
	extra := 0
	for _, it := range c.Equipped {
		extra += it.StatModifiers()[shared.EffectExtraDice]
	}
	count := base + extra
	if count < 1 {
		count = 1
	}
	return count
}

// Clone returns a deep copy of the character.
func (c *Character) Clone() *Character {
	clone := *c
	clone.Inventory = make([]*InventorySlot, len(c.Inventory))
	for i, slot := range c.Inventory {
		clone.Inventory[i] = &InventorySlot{Item: slot.Item.Clone(), Quantity: slot.Quantity}
	}
	clone.Equipped = make(map[shared.Slot]*item.Item, len(c.Equipped))
	for s, it := range c.Equipped {
		clone.Equipped[s] = it.Clone()
	}
	return &clone
}
