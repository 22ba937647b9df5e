package repository

import (
	"context"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// CommentRepository defines storage and retrieval of note comments.
type CommentRepository interface {
	// Save inserts a new comment.
	Save(ctx context.Context, comment *domain.Comment) error

	// ForNote returns all comments on a note joined with each commenting
	// user's username, oldest first.
	ForNote(ctx context.Context, noteID uint) ([]domain.CommentWithAuthor, error)

	// ForNoteByUser returns only the comments on a note that were written
	// by the given user. The per-user sightings page uses this narrower
	// scope; the single-note page uses ForNote. The two scopes are
	// intentionally kept distinct.
	ForNoteByUser(ctx context.Context, noteID, userID uint) ([]domain.CommentWithAuthor, error)
}
