package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockmonsters -source=repository.go

import (
	"context"

	"github.com/mizutanik/roadquest/internal/domain/monster"
)

// Repository defines the interface for monster content storage
type Repository interface {
	// Put stores or replaces a monster definition
	Put(ctx context.Context, m *monster.Monster) error

	// GetByKey retrieves a monster by key
	GetByKey(ctx context.Context, key string) (*monster.Monster, error)

	// Delete removes a monster definition
	Delete(ctx context.Context, key string) error
}
