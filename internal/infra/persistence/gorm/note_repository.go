package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
)

// GormNoteRepository is the GORM implementation of NoteRepository.
type GormNoteRepository struct {
	db *gorm.DB
}

// NewGormNoteRepository creates a GormNoteRepository. db must not be nil.
func NewGormNoteRepository(db *gorm.DB) *GormNoteRepository {
	if db == nil {
		panic("database connection cannot be nil for GormNoteRepository")
	}
	return &GormNoteRepository{db: db}
}

func (r *GormNoteRepository) ListWithAuthors(ctx context.Context) ([]domain.NoteWithAuthor, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var rows []domain.NoteWithAuthor
	err := r.db.WithContext(ctx).
		Table("notes").
		Select("notes.*, users.username").
		Joins("INNER JOIN users ON users.id = notes.user_id").
		Order("notes.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list notes with authors: %w", err)
	}
	return rows, nil
}

func (r *GormNoteRepository) FindByID(ctx context.Context, id uint) (*domain.Note, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var note domain.Note
	err := r.db.WithContext(ctx).First(&note, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}
		return nil, fmt.Errorf("gorm: find note by id %d: %w", id, err)
	}
	return &note, nil
}

func (r *GormNoteRepository) FindWithAuthor(ctx context.Context, id uint) (*domain.NoteWithAuthor, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var row domain.NoteWithAuthor
	err := r.db.WithContext(ctx).
		Table("notes").
		Select("notes.*, users.username").
		Joins("INNER JOIN users ON users.id = notes.user_id").
		Where("notes.id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoteNotFound
		}
		return nil, fmt.Errorf("gorm: find note %d with author: %w", id, err)
	}
	return &row, nil
}

func (r *GormNoteRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Note, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var notes []domain.Note
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: find notes for user %d: %w", userID, err)
	}
	return notes, nil
}

// CreateWithBehaviours inserts the note and its behaviour join rows in one
// transaction. GORM's Create fills note.ID from the insert's RETURNING
// clause, so the join rows use the real id rather than a predicted
// sequence value.
func (r *GormNoteRepository) CreateWithBehaviours(ctx context.Context, note *domain.Note, behaviourIDs []uint) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(note).Error; err != nil {
			return err
		}
		return insertBehaviourRows(tx, note.ID, behaviourIDs)
	})
	if err != nil {
		return fmt.Errorf("gorm: create note with behaviours: %w", err)
	}
	return nil
}

// UpdateWithBehaviours replaces the behaviour set and overwrites the
// scalar columns in one transaction, so the redirect after an edit
// observes the final state.
func (r *GormNoteRepository) UpdateWithBehaviours(ctx context.Context, note *domain.Note, behaviourIDs []uint) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", note.ID).Delete(&domain.NoteBehaviour{}).Error; err != nil {
			return err
		}
		if err := insertBehaviourRows(tx, note.ID, behaviourIDs); err != nil {
			return err
		}
		res := tx.Model(&domain.Note{}).Where("id = ?", note.ID).Updates(map[string]interface{}{
			"species_name":  note.SpeciesName,
			"habitat":       note.Habitat,
			"date_seen":     note.DateSeen,
			"appearance":    note.Appearance,
			"vocalizations": note.Vocalizations,
			"flock_size":    note.FlockSize,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNoteNotFound
		}
		return fmt.Errorf("gorm: update note %d with behaviours: %w", note.ID, err)
	}
	return nil
}

// DeleteCascade removes the note plus its join rows and comments. The
// schema has no ON DELETE CASCADE, so the cascade policy lives here,
// explicitly, in one transaction.
func (r *GormNoteRepository) DeleteCascade(ctx context.Context, id uint) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("note_id = ?", id).Delete(&domain.NoteBehaviour{}).Error; err != nil {
			return err
		}
		if err := tx.Where("note_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Note{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNoteNotFound
		}
		return fmt.Errorf("gorm: cascade delete note %d: %w", id, err)
	}
	return nil
}

func insertBehaviourRows(tx *gorm.DB, noteID uint, behaviourIDs []uint) error {
	if len(behaviourIDs) == 0 {
		return nil
	}
	rows := make([]domain.NoteBehaviour, 0, len(behaviourIDs))
	for _, behaviourID := range behaviourIDs {
		rows = append(rows, domain.NoteBehaviour{NoteID: noteID, BehaviourID: behaviourID})
	}
	return tx.Create(&rows).Error
}
