package items

import (
	"context"
	"sync"

	"github.com/mizutanik/roadquest/internal/domain/item"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*item.Item
}

// NewInMemoryRepository creates a new in-memory item repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		items: make(map[string]*item.Item),
	}
}

// Put stores or replaces a catalog item
func (r *inMemoryRepository) Put(ctx context.Context, it *item.Item) error {
	if it == nil {
		return apperrors.InvalidArgument("item cannot be nil")
	}
	if it.Key == "" {
		return apperrors.InvalidArgument("item key cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[it.Key] = it.Clone()
	return nil
}

// GetByKey retrieves an item by its catalog key
func (r *inMemoryRepository) GetByKey(ctx context.Context, key string) (*item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, exists := r.items[key]
	if !exists {
		return nil, apperrors.NotFoundf("item not found: %s", key)
	}

	return it.Clone(), nil
}

// ListByKind retrieves all items of one kind
func (r *inMemoryRepository) ListByKind(ctx context.Context, kind item.Kind) ([]*item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*item.Item{}
	for _, it := range r.items {
		if it.Kind == kind {
			out = append(out, it.Clone())
		}
	}

	return out, nil
}

// Delete removes an item from the catalog
func (r *inMemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, key)
	return nil
}
