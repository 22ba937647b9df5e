package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
)

// SpeciesService handles the species catalog. Catalog entries are
// write-once and independent of sightings.
type SpeciesService struct {
	speciesRepo repository.SpeciesRepository
}

// NewSpeciesService creates a SpeciesService.
func NewSpeciesService(speciesRepo repository.SpeciesRepository) *SpeciesService {
	if speciesRepo == nil {
		panic("SpeciesRepository cannot be nil for SpeciesService")
	}
	return &SpeciesService{speciesRepo: speciesRepo}
}

// Create stores a new catalog entry.
func (s *SpeciesService) Create(ctx context.Context, species *domain.Species) error {
	if species.Name == "" {
		return ErrInvalidInput
	}
	if err := s.speciesRepo.Save(ctx, species); err != nil {
		logrus.WithError(err).WithField("species", species.Name).Error("Failed to save species")
		return ErrInternalServer
	}
	logrus.WithField("species", species.Name).Info("Species created")
	return nil
}

// List returns the whole catalog.
func (s *SpeciesService) List(ctx context.Context) ([]domain.Species, error) {
	catalog, err := s.speciesRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list species")
		return nil, ErrInternalServer
	}
	return catalog, nil
}

// Get returns one catalog entry.
func (s *SpeciesService) Get(ctx context.Context, id uint) (*domain.Species, error) {
	species, err := s.speciesRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpeciesNotFound) {
			return nil, ErrSpeciesNotFound
		}
		logrus.WithError(err).WithField("species_id", id).Error("Failed to load species")
		return nil, ErrInternalServer
	}
	return species, nil
}
