package monsters

import (
	"context"
	"sync"

	"github.com/mizutanik/roadquest/internal/domain/monster"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu       sync.RWMutex
	monsters map[string]*monster.Monster
}

// NewInMemoryRepository creates a new in-memory monster repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		monsters: make(map[string]*monster.Monster),
	}
}

// Put stores or replaces a monster definition
func (r *inMemoryRepository) Put(ctx context.Context, m *monster.Monster) error {
	if m == nil {
		return apperrors.InvalidArgument("monster cannot be nil")
	}
	if m.Key == "" {
		return apperrors.InvalidArgument("monster key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *m
	r.monsters[m.Key] = &clone
	return nil
}

// GetByKey retrieves a monster by key
func (r *inMemoryRepository) GetByKey(ctx context.Context, key string) (*monster.Monster, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, exists := r.monsters[key]
	if !exists {
		return nil, apperrors.NotFoundf("monster not found: %s", key)
	}

	clone := *m
	return &clone, nil
}

// Delete removes a monster definition
func (r *inMemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.monsters, key)
	return nil
}
