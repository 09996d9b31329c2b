package item

//go:generate mockgen -destination=mock/mock_service.go -package=mockitem -source=service.go

import (
	"context"
	"fmt"

	"github.com/mizutanik/roadquest/internal/domain/item"
	"github.com/mizutanik/roadquest/internal/domain/shared"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
	"github.com/mizutanik/roadquest/internal/metrics"
	"github.com/mizutanik/roadquest/internal/repositories/characters"
	"github.com/mizutanik/roadquest/internal/repositories/items"
)

// Result is the JSON-serializable outcome of an item operation.
// Validation failures are results, not errors.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Delta   int    `json:"delta,omitempty"`
}

// Service defines the out-of-battle item operations
type Service interface {
	// UseItem uses the item in an inventory slot on the character itself
	UseItem(ctx context.Context, characterID string, slot int) (*Result, error)

	// EquipItem equips a named inventory item
	EquipItem(ctx context.Context, characterID, itemKey string) (*Result, error)

	// UnequipItem returns the item in an equipment slot to the inventory
	UnequipItem(ctx context.Context, characterID string, slot shared.Slot) (*Result, error)

	// RepairItem restores durability on an equipped item
	RepairItem(ctx context.Context, characterID string, slot shared.Slot, amount int) (*Result, error)

	// GrantItem adds a catalog item to the character's inventory
	GrantItem(ctx context.Context, characterID, itemKey string, quantity int) (*Result, error)
}

type service struct {
	characters characters.Repository
	catalog    items.Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	CharacterRepository characters.Repository
	ItemRepository      items.Repository
}

// NewService creates a new item service
func NewService(cfg *ServiceConfig) Service {
	if cfg.CharacterRepository == nil {
		panic("character repository is required")
	}
	if cfg.ItemRepository == nil {
		panic("item repository is required")
	}

	return &service{
		characters: cfg.CharacterRepository,
		catalog:    cfg.ItemRepository,
	}
}

// UseItem uses the item in an inventory slot on the character's own
// stat pools.
func (s *service) UseItem(ctx context.Context, characterID string, slot int) (*Result, error) {
	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	invSlot := char.ItemAt(slot)
	if invSlot == nil {
		return &Result{Success: false, Message: fmt.Sprintf("no item in slot %d", slot)}, nil
	}

	used := invSlot.Item.Use(&char.BaseStats)
	if !used.Success {
		return &Result{Success: false, Message: used.Message}, nil
	}

	if invSlot.Item.Consume.UsageLimit == 0 || invSlot.Item.Consume.RemainingUses <= 0 {
		char.RemoveFromSlot(slot, 1)
		invSlot.Item.ResetUses()
	}

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}

	metrics.ItemsUsed.Inc()
	return &Result{Success: true, Message: used.Message, Delta: used.Delta}, nil
}

// EquipItem equips a named inventory item, enforcing level and stat
// requirements.
func (s *service) EquipItem(ctx context.Context, characterID, itemKey string) (*Result, error) {
	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	ok, reason := char.Equip(itemKey)
	if !ok {
		return &Result{Success: false, Message: reason}, nil
	}

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}

	return &Result{Success: true, Message: fmt.Sprintf("equipped %s", itemKey)}, nil
}

// UnequipItem returns the item in an equipment slot to the inventory.
func (s *service) UnequipItem(ctx context.Context, characterID string, slot shared.Slot) (*Result, error) {
	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	if !char.Unequip(slot) {
		return &Result{Success: false, Message: fmt.Sprintf("nothing equipped in %s slot", slot)}, nil
	}

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}

	return &Result{Success: true, Message: fmt.Sprintf("unequipped %s slot", slot)}, nil
}

// RepairItem restores durability on an equipped item.
func (s *service) RepairItem(ctx context.Context, characterID string, slot shared.Slot, amount int) (*Result, error) {
	if amount <= 0 {
		return nil, apperrors.InvalidArgument("repair amount must be positive")
	}

	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	equipped := char.Equipped[slot]
	if equipped == nil {
		return &Result{Success: false, Message: fmt.Sprintf("nothing equipped in %s slot", slot)}, nil
	}
	if !equipped.HasDurability() {
		return &Result{Success: false, Message: fmt.Sprintf("%s has no durability to repair", equipped.Name)}, nil
	}

	before := equipped.CurrentDurability()
	equipped.Repair(amount)
	restored := equipped.CurrentDurability() - before

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}

	return &Result{
		Success: true,
		Message: fmt.Sprintf("repaired %s by %d", equipped.Name, restored),
		Delta:   restored,
	}, nil
}

// GrantItem adds a catalog item to the character's inventory. This is
// the entry point for shop purchases and loot drops.
func (s *service) GrantItem(ctx context.Context, characterID, itemKey string, quantity int) (*Result, error) {
	if quantity <= 0 {
		return nil, apperrors.InvalidArgument("quantity must be positive")
	}

	char, err := s.characters.Get(ctx, characterID)
	if err != nil {
		return nil, err
	}

	catalogItem, err := s.catalog.GetByKey(ctx, itemKey)
	if err != nil {
		return nil, err
	}
	if catalogItem.Rarity < item.MinRarity || catalogItem.Rarity > item.MaxRarity {
		return nil, apperrors.Validation(fmt.Sprintf("item %s has invalid rarity %d", itemKey, catalogItem.Rarity))
	}

	char.AddInventory(catalogItem, quantity)

	if err := s.characters.Update(ctx, char); err != nil {
		return nil, apperrors.Wrap(err, "failed to persist character")
	}

	return &Result{Success: true, Message: fmt.Sprintf("added %dx %s", quantity, catalogItem.Name)}, nil
}
