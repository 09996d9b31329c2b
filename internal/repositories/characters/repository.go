package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockcharacters -source=repository.go

import (
	"context"

	"github.com/mizutanik/roadquest/internal/domain/character"
)

// Repository defines the interface for character storage operations
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// Update modifies an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
