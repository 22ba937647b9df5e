package repository

import (
	"context"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// BehaviourRepository exposes the fixed behaviour vocabulary.
type BehaviourRepository interface {
	// ListAll returns the whole vocabulary ordered by id, for rendering
	// the sighting form's checkboxes.
	ListAll(ctx context.Context) ([]domain.Behaviour, error)

	// NamesForNote returns the behaviour names tagged on a note, joined
	// through notes_behaviours.
	NamesForNote(ctx context.Context, noteID uint) ([]string, error)
}
