package item

import (
	"fmt"

	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// EffectType names what a consumable does when used.
type EffectType string

const (
	EffectHealHP     EffectType = "heal_hp"
	EffectHealMP     EffectType = "heal_mp"
	EffectHealSP     EffectType = "heal_sp"
	EffectRestoreAll EffectType = "restore_all"
	EffectBuffAttack EffectType = "buff_attack"
	EffectBuffDefend EffectType = "buff_defense"
	EffectCureStatus EffectType = "cure_status"
)

// UseResult reports the outcome of using an item on a target. Failures
// are results, not errors; the turn continues either way.
type UseResult struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Target  *shared.CombatantStats `json:"target,omitempty"`
	Delta   int                    `json:"delta"`
}

// effectValueKeys maps an effect type to the legacy effect-map keys it
// may derive its value from when the explicit field is absent.
var effectValueKeys = map[EffectType][]string{
	EffectHealHP:     {shared.EffectHealHP},
	EffectHealMP:     {shared.EffectHealMP},
	EffectHealSP:     {shared.EffectHealSP},
	EffectRestoreAll: {shared.EffectHealHP},
	EffectBuffAttack: {shared.EffectAttack},
	EffectBuffDefend: {shared.EffectDefense},
}

// EffectValue resolves the consumable's effect magnitude: explicit
// field first, then the first matching known key in the raw effect
// map, then zero. Keeps legacy item rows without the explicit field
// working.
func (i *Item) EffectValue() int {
	if i.Consume == nil {
		return 0
	}
	if i.Consume.EffectValue != 0 {
		return i.Consume.EffectValue
	}
	for _, key := range effectValueKeys[i.Consume.EffectType] {
		if v, ok := i.Effects[key]; ok {
			return v
		}
	}
	return 0
}

// ResetUses restores a limited-use consumable to its full usage count.
// A stack shares one Item value, so when the spent one is removed the
// next in the stack must start at full uses.
func (i *Item) ResetUses() {
	if i.Consume != nil && i.Consume.UsageLimit > 0 {
		i.Consume.RemainingUses = i.Consume.UsageLimit
	}
}

// CanUseOn reports whether using this item on the target would have any
// effect. A heal with nothing to restore is rejected up front so the
// caller never wastes a consumable on a no-op.
func (i *Item) CanUseOn(target *shared.CombatantStats) bool {
	if !i.IsUsable() || target == nil {
		return false
	}
	if i.Consume.UsageLimit > 0 && i.Consume.RemainingUses <= 0 {
		return false
	}

	switch i.Consume.EffectType {
	case EffectHealHP:
		return target.HP < target.MaxHP
	case EffectHealMP:
		return target.MP < target.MaxMP
	case EffectHealSP:
		return target.SP < target.MaxSP
	case EffectRestoreAll:
		return target.HP < target.MaxHP || target.MP < target.MaxMP || target.SP < target.MaxSP
	case EffectBuffAttack, EffectBuffDefend, EffectCureStatus:
		return true
	}
	return false
}

// Use applies the item to the target. Equipment and materials fail with
// a message; consumables execute their effect, decrement remaining
// uses when limited, and report the delta applied.
func (i *Item) Use(target *shared.CombatantStats) *UseResult {
	if !i.IsUsable() {
		return &UseResult{
			Success: false,
			Message: fmt.Sprintf("%s cannot be used directly", i.Name),
		}
	}

	if !i.CanUseOn(target) {
		return &UseResult{
			Success: false,
			Message: fmt.Sprintf("%s would have no effect", i.Name),
		}
	}

	value := i.EffectValue()
	delta := 0
	message := ""

	switch i.Consume.EffectType {
	case EffectHealHP:
		delta = target.HealHP(value)
		message = fmt.Sprintf("restored %d HP", delta)
	case EffectHealMP:
		delta = target.HealMP(value)
		message = fmt.Sprintf("restored %d MP", delta)
	case EffectHealSP:
		delta = target.HealSP(value)
		message = fmt.Sprintf("restored %d SP", delta)
	case EffectRestoreAll:
		delta = target.HealHP(target.MaxHP) + target.HealMP(target.MaxMP) + target.HealSP(target.MaxSP)
		message = "fully restored"
	case EffectBuffAttack:
		target.Attack += value
		delta = value
		message = fmt.Sprintf("attack up by %d", value)
	case EffectBuffDefend:
		target.Defense += value
		delta = value
		message = fmt.Sprintf("defense up by %d", value)
	case EffectCureStatus:
		message = "status cured"
	default:
		return &UseResult{
			Success: false,
			Message: fmt.Sprintf("%s has an unknown effect", i.Name),
		}
	}

	if i.Consume.UsageLimit > 0 {
		i.Consume.RemainingUses--
	}

	return &UseResult{
		Success: true,
		Message: fmt.Sprintf("used %s: %s", i.Name, message),
		Target:  target,
		Delta:   delta,
	}
}
