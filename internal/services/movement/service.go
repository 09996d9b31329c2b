package movement

//go:generate mockgen -destination=mock/mock_service.go -package=mockmovement -source=service.go

import (
	"context"
	"log"

	"github.com/mizutanik/roadquest/internal/dice"
	"github.com/mizutanik/roadquest/internal/domain/game/exploration"
	"github.com/mizutanik/roadquest/internal/domain/shared"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
	"github.com/mizutanik/roadquest/internal/metrics"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/roads"
	battleService "github.com/mizutanik/roadquest/internal/services/battle"
)

// Encounter reports a battle triggered during a move.
type Encounter struct {
	BattleID    string `json:"battle_id"`
	MonsterKey  string `json:"monster_key"`
	MonsterName string `json:"monster_name"`
}

// MoveResult is the JSON-serializable outcome of one move: the roll
// record (individual dice included), the resulting position, and
// whatever the move triggered.
type MoveResult struct {
	Roll      *dice.MovementRoll   `json:"roll"`
	Position  int                  `json:"position"`
	Boundary  exploration.Boundary `json:"boundary,omitempty"`
	Location  string               `json:"location,omitempty"`
	Encounter *Encounter           `json:"encounter,omitempty"`
}

// Service defines the road movement interface
type Service interface {
	// Move rolls movement dice for the character and advances their road
	// position, triggering boundary transitions and encounters
	Move(ctx context.Context, characterID string) (*MoveResult, error)
}

type service struct {
	characters characters.Repository
	roads      roads.Repository
	battles    battleService.Service
	diceRoller dice.Roller
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterRepository characters.Repository
	RoadRepository      roads.Repository
	BattleService       battleService.Service
	DiceRoller          dice.Roller
}

// NewService creates a new movement service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.RoadRepository == nil {
		panic("road repository is required")
	}
	if cfg.BattleService == nil {
		panic("battle service is required")
	}

	svc := &service{
		characters: cfg.CharacterRepository,
		roads:      cfg.RoadRepository,
		battles:    cfg.BattleService,
		diceRoller: cfg.DiceRoller,
	}

	if svc.diceRoller == nil {
		svc.diceRoller = dice.NewRandomRoller()
	}

	return svc
}

// Move rolls the road's dice for the character and applies the result.
// Reaching a road boundary reports the connected location instead of
// rolling an encounter; anything else risks the road's encounter rate.
func (s *service) Move(ctx context.Context, characterID string) (*MoveResult, error) {
	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get character")
	}

	if char.RoadID == "" {
		return nil, apperrors.Validation("character is not on a road")
	}

	road, err := s.roads.Get(ctx, char.RoadID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to get road")
	}

	baseDice := road.BaseDice
	if baseDice < 1 {
		baseDice = 1
	}

	roll, err := dice.RollMovement(s.diceRoller, &dice.MovementInput{
		DiceCount:  char.MovementDice(baseDice),
		Bonus:      road.MoveBonus + char.CombatStats().Get(shared.EffectAgility)/10,
		Multiplier: road.Multiplier,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "movement roll failed")
	}
	metrics.MovesRolled.Inc()

	position, boundary := exploration.ApplyMovement(char.Position, roll.FinalMovement)
	char.Position = position

	result := &MoveResult{
		Roll:     roll,
		Position: position,
		Boundary: boundary,
	}

	switch boundary {
	case exploration.BoundaryStart:
		result.Location = road.FromLocation
	case exploration.BoundaryEnd:
		result.Location = road.ToLocation
	default:
		encounter, encErr := s.rollEncounter(ctx, char.ID, road)
		if encErr != nil {
			return nil, encErr
		}
		result.Encounter = encounter
	}

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}

	log.Printf("character %s moved %d to position %d on %s", char.ID, roll.FinalMovement, position, road.Key)
	return result, nil
}

// rollEncounter checks the road's encounter rate and, on a trigger,
// picks a spawn by priority weight and starts the battle.
func (s *service) rollEncounter(ctx context.Context, characterID string, road *exploration.Road) (*Encounter, error) {
	if road.EncounterRate <= 0 || len(road.Spawns) == 0 {
		return nil, nil
	}

	rateRoll, err := s.diceRoller.Roll(1, 100, 0)
	if err != nil {
		return nil, apperrors.Wrap(err, "encounter roll failed")
	}
	if rateRoll.Total > road.EncounterRate {
		return nil, nil
	}

	total := road.TotalSpawnPriority()
	if total < 1 {
		return nil, nil
	}
	pickRoll, err := s.diceRoller.Roll(1, total, 0)
	if err != nil {
		return nil, apperrors.Wrap(err, "spawn roll failed")
	}

	spawn := road.PickSpawn(pickRoll.Total)
	if spawn == nil {
		return nil, apperrors.Internalf("spawn table mismatch on road %s", road.Key)
	}

	battle, err := s.battles.StartBattle(ctx, characterID, spawn.MonsterKey)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to start encounter with %s", spawn.MonsterKey)
	}

	return &Encounter{
		BattleID:    battle.ID,
		MonsterKey:  battle.MonsterKey,
		MonsterName: battle.MonsterName,
	}, nil
}
