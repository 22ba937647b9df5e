package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// GormBehaviourRepository is the GORM implementation of BehaviourRepository.
type GormBehaviourRepository struct {
	db *gorm.DB
}

// NewGormBehaviourRepository creates a GormBehaviourRepository. db must not be nil.
func NewGormBehaviourRepository(db *gorm.DB) *GormBehaviourRepository {
	if db == nil {
		panic("database connection cannot be nil for GormBehaviourRepository")
	}
	return &GormBehaviourRepository{db: db}
}

func (r *GormBehaviourRepository) ListAll(ctx context.Context) ([]domain.Behaviour, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var behaviours []domain.Behaviour
	err := r.db.WithContext(ctx).Order("id ASC").Find(&behaviours).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list behaviours: %w", err)
	}
	return behaviours, nil
}

func (r *GormBehaviourRepository) NamesForNote(ctx context.Context, noteID uint) ([]string, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var names []string
	err := r.db.WithContext(ctx).
		Table("behaviours").
		Select("behaviours.name").
		Joins("INNER JOIN notes_behaviours ON behaviours.id = notes_behaviours.behaviour_id").
		Where("notes_behaviours.note_id = ?", noteID).
		Order("behaviours.id ASC").
		Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: behaviour names for note %d: %w", noteID, err)
	}
	return names, nil
}
