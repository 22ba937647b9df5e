package repository

import (
	"context"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// NoteRepository defines storage and retrieval of sighting notes,
// including the behaviour join rows that belong to each note.
//
// The multi-statement operations (CreateWithBehaviours,
// UpdateWithBehaviours, DeleteCascade) must each run inside a single
// transaction so a failed step never leaves the join table half-written.
type NoteRepository interface {
	// ListWithAuthors returns every note joined with its author's
	// username, newest first.
	ListWithAuthors(ctx context.Context) ([]domain.NoteWithAuthor, error)

	// FindByID returns a single note. ErrNoteNotFound when absent.
	FindByID(ctx context.Context, id uint) (*domain.Note, error)

	// FindWithAuthor returns a single note joined with its author's
	// username. ErrNoteNotFound when absent.
	FindWithAuthor(ctx context.Context, id uint) (*domain.NoteWithAuthor, error)

	// FindByUser returns all notes owned by the given user, oldest first.
	FindByUser(ctx context.Context, userID uint) ([]domain.Note, error)

	// CreateWithBehaviours inserts the note, then one join row per
	// behaviour id, all in one transaction. The note id for the join rows
	// is taken from the insert itself, not predicted from the sequence.
	CreateWithBehaviours(ctx context.Context, note *domain.Note, behaviourIDs []uint) error

	// UpdateWithBehaviours replaces the note's behaviour set
	// (delete-then-reinsert) and then updates the scalar columns, in that
	// order, in one transaction.
	UpdateWithBehaviours(ctx context.Context, note *domain.Note, behaviourIDs []uint) error

	// DeleteCascade removes the note together with its behaviour join
	// rows and comments, in one transaction.
	DeleteCascade(ctx context.Context, id uint) error
}
