package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// GormCommentRepository is the GORM implementation of CommentRepository.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a GormCommentRepository. db must not be nil.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	if db == nil {
		panic("database connection cannot be nil for GormCommentRepository")
	}
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("gorm: save comment on note %d: %w", comment.NoteID, err)
	}
	return nil
}

func (r *GormCommentRepository) ForNote(ctx context.Context, noteID uint) ([]domain.CommentWithAuthor, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var rows []domain.CommentWithAuthor
	err := r.db.WithContext(ctx).
		Table("users_notes").
		Select("users.username, users_notes.comment").
		Joins("INNER JOIN users ON users.id = users_notes.user_id").
		Where("users_notes.note_id = ?", noteID).
		Order("users_notes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: comments for note %d: %w", noteID, err)
	}
	return rows, nil
}

func (r *GormCommentRepository) ForNoteByUser(ctx context.Context, noteID, userID uint) ([]domain.CommentWithAuthor, error) {
	ctx, cancel := withQueryTimeout(ctx)
	defer cancel()

	var rows []domain.CommentWithAuthor
	err := r.db.WithContext(ctx).
		Table("users_notes").
		Select("users.username, users_notes.comment").
		Joins("INNER JOIN users ON users.id = users_notes.user_id").
		Where("users_notes.note_id = ? AND users_notes.user_id = ?", noteID, userID).
		Order("users_notes.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: comments for note %d by user %d: %w", noteID, userID, err)
	}
	return rows, nil
}
