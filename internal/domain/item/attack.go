package item

import (
	"fmt"
	"math"

	"github.com/mizutanik/roadquest/internal/dice"
	"github.com/mizutanik/roadquest/internal/domain/shared"
)

const (
	hitChanceFloor = 10
	critChance     = 5
	critMultiplier = 1.5

	// Variance scales damage uniformly across [0.80, 1.20] in steps of
	// 0.01, drawn as a single die so tests can script it.
	varianceSides  = 41
	varianceOffset = 79
)

// AttackResult is the outcome of one weapon attack.
type AttackResult struct {
	Hit               bool        `json:"hit"`
	Damage            int         `json:"damage"`
	Critical          bool        `json:"critical"`
	Message           string      `json:"message"`
	AttackType        WeaponStyle `json:"attack_type"`
	WeaponDamageTaken int         `json:"weapon_damage_taken"`
}

// AttackDamage resolves one attack with this weapon. Rolls are drawn
// from the injected roller in a fixed order: hit (d100), variance,
// critical (d100). A miss costs nothing; a hit costs 1 durability.
// The caller persists the weapon's durability change.
func (i *Item) AttackDamage(roller dice.Roller, attacker, defender *shared.CombatantStats) (*AttackResult, error) {
	if i.Kind != KindWeapon || i.Weapon == nil {
		return nil, fmt.Errorf("%s is not a weapon", i.Name)
	}

	if i.IsBroken() {
		return &AttackResult{
			Hit:        false,
			Damage:     0,
			Message:    fmt.Sprintf("%s is broken", i.Name),
			AttackType: i.Weapon.Style,
		}, nil
	}

	var weaponPower, attackerStat int
	if i.Weapon.Style == WeaponStyleMagical {
		weaponPower = i.Effects[shared.EffectMagicAttack]
		attackerStat = attacker.MagicAttack
	} else {
		weaponPower = i.Effects[shared.EffectAttack]
		attackerStat = attacker.Attack
	}
	totalAttack := weaponPower + attackerStat

	// Floor of 10%, no ceiling: accuracy can push past 100.
	hitChance := attacker.Accuracy - defender.Evasion
	if hitChance < hitChanceFloor {
		hitChance = hitChanceFloor
	}

	hitRoll, err := roller.Roll(1, 100, 0)
	if err != nil {
		return nil, err
	}
	if hitRoll.Total > hitChance {
		return &AttackResult{
			Hit:        false,
			Damage:     0,
			Message:    fmt.Sprintf("%s misses", i.Name),
			AttackType: i.Weapon.Style,
		}, nil
	}

	baseDamage := totalAttack - defender.Defense
	if baseDamage < 1 {
		baseDamage = 1
	}

	varianceRoll, err := roller.Roll(1, varianceSides, 0)
	if err != nil {
		return nil, err
	}
	multiplier := float64(varianceOffset+varianceRoll.Total) / 100
	damage := int(math.Round(float64(baseDamage) * multiplier))

	critical := false
	critRoll, err := roller.Roll(1, 100, 0)
	if err != nil {
		return nil, err
	}
	if critRoll.Total <= critChance {
		critical = true
		damage = int(math.Round(float64(damage) * critMultiplier))
	}

	durabilityCost := 0
	if i.HasDurability() {
		i.TakeDamage(1)
		durabilityCost = 1
	}

	message := fmt.Sprintf("%s hits for %d damage", i.Name, damage)
	if critical {
		message = fmt.Sprintf("critical! %s hits for %d damage", i.Name, damage)
	}

	return &AttackResult{
		Hit:               true,
		Damage:            damage,
		Critical:          critical,
		Message:           message,
		AttackType:        i.Weapon.Style,
		WeaponDamageTaken: durabilityCost,
	}, nil
}
