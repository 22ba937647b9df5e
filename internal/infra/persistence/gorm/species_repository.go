package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
)

// GormSpeciesRepository is the GORM implementation of SpeciesRepository.
type GormSpeciesRepository struct {
	db *gorm.DB
}

// NewGormSpeciesRepository creates a GormSpeciesRepository. db must not be nil.
func NewGormSpeciesRepository(db *gorm.DB) *GormSpeciesRepository {
	if db == nil {
		panic("database connection cannot be nil for GormSpeciesRepository")
	}
	return &GormSpeciesRepository{db: db}
}

func (r *GormSpeciesRepository) Save(ctx context.Context, species *domain.Species) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Save(species).Error; err != nil {
		if isDuplicateEntryError(err) {
			return repository.ErrDuplicateEntry
		}
		return fmt.Errorf("gorm: save species %q: %w", species.Name, err)
	}
	return nil
}

func (r *GormSpeciesRepository) ListAll(ctx context.Context) ([]domain.Species, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var catalog []domain.Species
	err := r.db.WithContext(ctx).Order("name ASC").Find(&catalog).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list species: %w", err)
	}
	return catalog, nil
}

func (r *GormSpeciesRepository) FindByID(ctx context.Context, id uint) (*domain.Species, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var species domain.Species
	err := r.db.WithContext(ctx).First(&species, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpeciesNotFound
		}
		return nil, fmt.Errorf("gorm: find species by id %d: %w", id, err)
	}
	return &species, nil
}
