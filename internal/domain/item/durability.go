package item

// TakeDamage reduces durability by n, clamping at zero. The caller is
// responsible for persisting the mutated item.
func (i *Item) TakeDamage(n int) {
	if i.Equip == nil || n <= 0 {
		return
	}
	i.Equip.Durability -= n
	if i.Equip.Durability < 0 {
		i.Equip.Durability = 0
	}
}

// Repair restores durability by n, clamping at the maximum.
func (i *Item) Repair(n int) {
	if i.Equip == nil || n <= 0 {
		return
	}
	i.Equip.Durability += n
	if i.Equip.Durability > i.Equip.MaxDurability {
		i.Equip.Durability = i.Equip.MaxDurability
	}
}

// IsBroken reports whether a durability-tracking item has hit zero.
// Broken equipment stays equipped but contributes nothing.
func (i *Item) IsBroken() bool {
	return i.HasDurability() && i.Equip.Durability <= 0
}

// CurrentDurability returns the current durability, zero for items
// without one.
func (i *Item) CurrentDurability() int {
	if i.Equip == nil {
		return 0
	}
	return i.Equip.Durability
}

// StatModifiers returns the effect map this item contributes to combat
// stats. Broken equipment contributes nothing.
func (i *Item) StatModifiers() map[string]int {
	if i.IsBroken() {
		return map[string]int{}
	}
	return i.GetEffects()
}
