package roads

//go:generate mockgen -destination=mock/mock_repository.go -package=mockroads -source=repository.go

import (
	"context"

	"github.com/mizutanik/roadquest/internal/domain/game/exploration"
)

// Repository defines the interface for road configuration storage
type Repository interface {
	// Put stores or replaces a road
	Put(ctx context.Context, road *exploration.Road) error

	// Get retrieves a road by ID
	Get(ctx context.Context, id string) (*exploration.Road, error)

	// Delete removes a road
	Delete(ctx context.Context, id string) error
}
