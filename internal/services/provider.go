package services

import (
	"github.com/mizutanik/roadquest/internal/dice"
	"github.com/mizutanik/roadquest/internal/repositories/battles"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/items"
	"github.com/mizutanik/roadquest/internal/repositories/monsters"
	"github.com/mizutanik/roadquest/internal/repositories/roads"
	battleService "github.com/mizutanik/roadquest/internal/services/battle"
	itemService "github.com/mizutanik/roadquest/internal/services/item"
	movementService "github.com/mizutanik/roadquest/internal/services/movement"
)

// Provider holds all service instances
type Provider struct {
	BattleService   battleService.Service
	MovementService movementService.Service
	ItemService     itemService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	BattleRepository    battles.Repository
	CharacterRepository characters.Repository
	ItemRepository      items.Repository
	MonsterRepository   monsters.Repository
	RoadRepository      roads.Repository
	DiceRoller          dice.Roller
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	battleRepo := cfg.BattleRepository
	if battleRepo == nil {
		battleRepo = battles.NewInMemoryRepository()
	}

	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	itemRepo := cfg.ItemRepository
	if itemRepo == nil {
		itemRepo = items.NewInMemoryRepository()
	}

	monsterRepo := cfg.MonsterRepository
	if monsterRepo == nil {
		monsterRepo = monsters.NewInMemoryRepository()
	}

	roadRepo := cfg.RoadRepository
	if roadRepo == nil {
		roadRepo = roads.NewInMemoryRepository()
	}

	battleSvc := battleService.NewService(&battleService.ServiceConfig{
		BattleRepository:    battleRepo,
		CharacterRepository: charRepo,
		MonsterRepository:   monsterRepo,
		DiceRoller:          cfg.DiceRoller,
	})

	movementSvc := movementService.NewService(&movementService.ServiceConfig{
		CharacterRepository: charRepo,
		RoadRepository:      roadRepo,
		BattleService:       battleSvc,
		DiceRoller:          cfg.DiceRoller,
	})

	itemSvc := itemService.NewService(&itemService.ServiceConfig{
		CharacterRepository: charRepo,
		ItemRepository:      itemRepo,
	})

	return &Provider{
		BattleService:   battleSvc,
		MovementService: movementSvc,
		ItemService:     itemSvc,
	}
}
