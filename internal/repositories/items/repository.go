package items

//go:generate mockgen -destination=mock/mock_repository.go -package=mockitems -source=repository.go

import (
	"context"

	"github.com/mizutanik/roadquest/internal/domain/item"
)

// Repository defines the interface for the item catalog. The catalog is
// game content: written by the back office, read everywhere.
type Repository interface {
	// Put stores or replaces a catalog item
	Put(ctx context.Context, it *item.Item) error

	// GetByKey retrieves an item by its catalog key
	GetByKey(ctx context.Context, key string) (*item.Item, error)

	// ListByKind retrieves all items of one kind
	ListByKind(ctx context.Context, kind item.Kind) ([]*item.Item, error)

	// Delete removes an item from the catalog
	Delete(ctx context.Context, key string) error
}
