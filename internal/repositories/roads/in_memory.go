package roads

import (
	"context"
	"sync"

	"github.com/mizutanik/roadquest/internal/domain/game/exploration"
	apperrors "github.com/mizutanik/roadquest/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu    sync.RWMutex
	roads map[string]*exploration.Road
}

// NewInMemoryRepository creates a new in-memory road repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		roads: make(map[string]*exploration.Road),
	}
}

func cloneRoad(road *exploration.Road) *exploration.Road {
	clone := *road
	clone.Spawns = make([]*exploration.SpawnEntry, len(road.Spawns))
	for i, spawn := range road.Spawns {
		s := *spawn
		clone.Spawns[i] = &s
	}
	return &clone
}

// Put stores or replaces a road
func (r *inMemoryRepository) Put(ctx context.Context, road *exploration.Road) error {
	if road == nil {
		return apperrors.InvalidArgument("road cannot be nil")
	}
	if road.ID == "" {
		return apperrors.InvalidArgument("road ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.roads[road.ID] = cloneRoad(road)
	return nil
}

// Get retrieves a road by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*exploration.Road, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	road, exists := r.roads[id]
	if !exists {
		return nil, apperrors.NotFoundf("road not found: %s", id)
	}

	return cloneRoad(road), nil
}

// Delete removes a road
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.roads, id)
	return nil
}
