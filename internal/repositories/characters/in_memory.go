package characters

import (
	"context"
	"sync"

	"github.com/mizutanik/roadquest/internal/domain/character"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Create creates a new character
func (r *inMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperrors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return apperrors.AlreadyExists("character already exists: " + char.ID)
	}

	r.characters[char.ID] = char.Clone()
	return nil
}

// Get retrieves a character by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperrors.NotFoundf("character not found: %s", id)
	}

	return char.Clone(), nil
}

// Update modifies an existing character
func (r *inMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if char == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperrors.NotFoundf("character not found: %s", char.ID)
	}

	r.characters[char.ID] = char.Clone()
	return nil
}

// Delete removes a character
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.characters, id)
	return nil
}
