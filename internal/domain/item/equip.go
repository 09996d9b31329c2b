package item

import (
	"fmt"

	"github.com/mizutanik/roadquest/internal/domain/shared"
)

// CanEquipBy checks equip eligibility: character level must meet the
// required level and every required stat threshold must be met
// (boundaries inclusive). There is no partial equip; the first unmet
// requirement rejects with a reason.
func (i *Item) CanEquipBy(level int, stats *shared.CombatantStats) (bool, string) {
	if !i.IsEquippable() {
		return false, fmt.Sprintf("%s cannot be equipped", i.Name)
	}

	if level < i.Equip.RequiredLevel {
		return false, fmt.Sprintf("%s requires level %d", i.Name, i.Equip.RequiredLevel)
	}

	for stat, threshold := range i.Equip.RequiredStats {
		if stats == nil || stats.Get(stat) < threshold {
			return false, fmt.Sprintf("%s requires %s %d", i.Name, stat, threshold)
		}
	}

	return true, ""
}
