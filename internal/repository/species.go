package repository

import (
	"context"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// SpeciesRepository defines storage and retrieval of the species catalog.
type SpeciesRepository interface {
	// Save inserts a new catalog entry.
	Save(ctx context.Context, species *domain.Species) error

	// ListAll returns the whole catalog ordered by name.
	ListAll(ctx context.Context) ([]domain.Species, error)

	// FindByID returns one catalog entry. ErrSpeciesNotFound when absent.
	FindByID(ctx context.Context, id uint) (*domain.Species, error)
}
