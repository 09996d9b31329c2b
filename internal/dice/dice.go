package dice

import (
	"errors"
	"math/rand"
)

// RollResult holds the outcome of rolling one or more dice.
type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
}

// Roll rolls count dice with the given number of sides and adds a bonus.
func Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}

	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	maxValue, minValue, total := 0, 0, 0

	out := make([]int, count)
	for i := 0; i < count; i++ {
		roll := rand.Intn(sides) + 1
		total += roll
		if i == 0 {
			minValue = roll
			maxValue = roll
		}

		if minValue > roll {
			minValue = roll
		}

		if maxValue < roll {
			maxValue = roll
		}

		out[i] = roll
	}

	return &RollResult{
		Total:   total + bonus,
		Highest: maxValue,
		Lowest:  minValue,
		Rolls:   out,
		Bonus:   bonus,
	}, nil
}
