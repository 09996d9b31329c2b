package movement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutanik/roadquest/internal/dice"
	"github.com/mizutanik/roadquest/internal/domain/game/exploration"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
	"github.com/mizutanik/roadquest/internal/repositories/battles"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/monsters"
	"github.com/mizutanik/roadquest/internal/repositories/roads"
	battleService "github.com/mizutanik/roadquest/internal/services/battle"
	"github.com/mizutanik/roadquest/internal/testutils"
)

type movementFixture struct {
	svc        Service
	characters characters.Repository
	roads      roads.Repository
	roller     *dice.MockRoller
}

func setupMovementService(t *testing.T) *movementFixture {
	t.Helper()
	ctx := context.Background()

	f := &movementFixture{
		characters: characters.NewInMemoryRepository(),
		roads:      roads.NewInMemoryRepository(),
		roller:     dice.NewMockRoller(),
	}

	monsterRepo := monsters.NewInMemoryRepository()
	require.NoError(t, monsterRepo.Put(ctx, testutils.CreateTestMonster("slime", "Slime")))

	battleSvc := battleService.NewService(&battleService.ServiceConfig{
		BattleRepository:    battles.NewInMemoryRepository(),
		CharacterRepository: f.characters,
		MonsterRepository:   monsterRepo,
		DiceRoller:          f.roller,
	})

	f.svc = NewService(&ServiceConfig{
		CharacterRepository: f.characters,
		RoadRepository:      f.roads,
		BattleService:       battleSvc,
		DiceRoller:          f.roller,
	})

	char := testutils.CreateTestCharacter("char-1", "Riko")
	char.RoadID = "road-1"
	require.NoError(t, f.characters.Create(ctx, char))
	require.NoError(t, f.roads.Put(ctx, testutils.CreateTestRoad("road-1", "forest-road")))

	return f
}

func TestMove(t *testing.T) {
	ctx := context.Background()

	t.Run("advances by the roll plus the agility bonus", func(t *testing.T) {
		f := setupMovementService(t)

		// 2d6 = 7, agility 15 adds +1; encounter roll 71 > 30 misses
		f.roller.SetRolls([]int{3, 4, 71})
		result, err := f.svc.Move(ctx, "char-1")
		require.NoError(t, err)

		assert.Equal(t, 8, result.Roll.FinalMovement)
		assert.Equal(t, []int{3, 4}, result.Roll.DiceRolls)
		assert.Equal(t, 8, result.Position)
		assert.Equal(t, exploration.BoundaryNone, result.Boundary)
		assert.Nil(t, result.Encounter)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 8, char.Position)
	})

	t.Run("triggers an encounter and starts the battle", func(t *testing.T) {
		f := setupMovementService(t)

		// encounter roll 30 <= 30 triggers, spawn roll picks the slime
		f.roller.SetRolls([]int{3, 4, 30, 5})
		result, err := f.svc.Move(ctx, "char-1")
		require.NoError(t, err)

		require.NotNil(t, result.Encounter)
		assert.Equal(t, "slime", result.Encounter.MonsterKey)
		assert.Equal(t, "Slime", result.Encounter.MonsterName)
		assert.NotEmpty(t, result.Encounter.BattleID)
	})

	t.Run("reaching the end reports the destination, no encounter", func(t *testing.T) {
		f := setupMovementService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.Position = 95
		require.NoError(t, f.characters.Update(ctx, char))

		f.roller.SetRolls([]int{6, 6})
		result, err := f.svc.Move(ctx, "char-1")
		require.NoError(t, err)

		assert.Equal(t, exploration.RoadEnd, result.Position)
		assert.Equal(t, exploration.BoundaryEnd, result.Boundary)
		assert.Equal(t, "town-b", result.Location)
		assert.Nil(t, result.Encounter)
	})

	t.Run("zero encounter rate never rolls one", func(t *testing.T) {
		f := setupMovementService(t)

		road := testutils.CreateTestRoad("road-1", "forest-road")
		road.EncounterRate = 0
		require.NoError(t, f.roads.Put(ctx, road))

		f.roller.SetRolls([]int{2, 2})
		result, err := f.svc.Move(ctx, "char-1")
		require.NoError(t, err)
		assert.Nil(t, result.Encounter)
	})

	t.Run("extra movement dice from equipment", func(t *testing.T) {
		f := setupMovementService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		boots := testutils.CreateTestWeapon("winged-boots", "Winged Boots", 0, 10)
		boots.Kind = "foot"
		boots.Equip.Slot = "foot"
		boots.Effects = map[string]int{"extra_dice": 1}
		char.AddInventory(boots, 1)
		ok, reason := char.Equip("winged-boots")
		require.True(t, ok, reason)
		require.NoError(t, f.characters.Update(ctx, char))

		f.roller.SetRolls([]int{1, 1, 1, 71})
		result, err := f.svc.Move(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 3, result.Roll.DiceCount)
	})

	t.Run("rejects a character not on a road", func(t *testing.T) {
		f := setupMovementService(t)

		char, err := f.characters.Get(ctx, "char-1")
		require.NoError(t, err)
		char.RoadID = ""
		require.NoError(t, f.characters.Update(ctx, char))

		_, err = f.svc.Move(ctx, "char-1")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown character errors", func(t *testing.T) {
		f := setupMovementService(t)
		_, err := f.svc.Move(ctx, "nobody")
		assert.Error(t, err)
	})
}
