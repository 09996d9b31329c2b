package battles

import (
	"context"
	"sync"

	"github.com/mizutanik/roadquest/internal/domain/game/combat"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	battles map[string]*combat.Battle
}

// NewInMemoryRepository creates a new in-memory battle repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		battles: make(map[string]*combat.Battle),
	}
}

// Create creates a new battle
func (r *inMemoryRepository) Create(ctx context.Context, battle *combat.Battle) error {
	if battle == nil {
		return apperrors.InvalidArgument("battle cannot be nil")
	}
	if battle.ID == "" {
		return apperrors.InvalidArgument("battle ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[battle.ID]; exists {
		return apperrors.AlreadyExists("battle already exists: " + battle.ID)
	}

	r.battles[battle.ID] = battle.Clone()
	return nil
}

// Get retrieves a battle by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*combat.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	battle, exists := r.battles[id]
	if !exists {
		return nil, apperrors.NotFoundf("battle not found: %s", id)
	}

	return battle.Clone(), nil
}

// Update modifies an existing battle
func (r *inMemoryRepository) Update(ctx context.Context, battle *combat.Battle) error {
	if battle == nil {
		return apperrors.InvalidArgument("battle cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.battles[battle.ID]; !exists {
		return apperrors.NotFoundf("battle not found: %s", battle.ID)
	}

	r.battles[battle.ID] = battle.Clone()
	return nil
}

// Delete removes a battle
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.battles, id)
	return nil
}

// GetActiveByCharacter retrieves the character's non-terminal battle
func (r *inMemoryRepository) GetActiveByCharacter(ctx context.Context, characterID string) (*combat.Battle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, battle := range r.battles {
		if battle.CharacterID == characterID && !battle.IsTerminal() {
			return battle.Clone(), nil
		}
	}

	return nil, nil
}
