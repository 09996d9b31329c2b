package dice

import (
	"math"
	"time"
)

const movementDieSides = 6

// MovementEffect is a named adjustment applied to a movement roll before
// rounding. Flat is added to the bonus, Multiplier scales the total.
type MovementEffect struct {
	Name       string  `json:"name"`
	Flat       int     `json:"flat,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

// MovementRoll is the full record of one movement roll, individual dice
// included for display.
type MovementRoll struct {
	DiceRolls       []int            `json:"dice_rolls"`
	DiceCount       int              `json:"dice_count"`
	BaseTotal       int              `json:"base_total"`
	Bonus           int              `json:"bonus"`
	FinalMovement   int              `json:"final_movement"`
	MovementEffects []MovementEffect `json:"movement_effects,omitempty"`
	RolledAt        time.Time        `json:"rolled_at"`
}

// MovementInput configures a movement roll.
type MovementInput struct {
	DiceCount  int
	Bonus      int
	Multiplier float64
	Effects    []MovementEffect
}

// RollMovement rolls DiceCount d6 and computes the final movement:
// round((sum + bonus) * multiplier), with effect adjustments applied
// before rounding.
func RollMovement(roller Roller, input *MovementInput) (*MovementRoll, error) {
	diceCount := input.DiceCount
	if diceCount < 1 {
		diceCount = 1
	}

	result, err := roller.Roll(diceCount, movementDieSides, 0)
	if err != nil {
		return nil, err
	}

	multiplier := input.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	bonus := input.Bonus
	for _, effect := range input.Effects {
		bonus += effect.Flat
		if effect.Multiplier > 0 {
			multiplier *= effect.Multiplier
		}
	}

	final := int(math.Round(float64(result.Total+bonus) * multiplier))

	return &MovementRoll{
		DiceRolls:       result.Rolls,
		DiceCount:       diceCount,
		BaseTotal:       result.Total,
		Bonus:           bonus,
		FinalMovement:   final,
		MovementEffects: input.Effects,
		RolledAt:        time.Now().UTC(),
	}, nil
}
