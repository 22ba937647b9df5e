package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
)

// UserSightings is the rendering object for a user's sighting page.
type UserSightings struct {
	User      domain.User
	Sightings []domain.Note
	// SpeciesList is the deduplicated species names of the user's
	// sightings in first-seen order, for the filter dropdown.
	SpeciesList []string
	// Selected holds the sightings narrowed to the chosen species, each
	// with the comments on it written by the page user. Nil when no
	// species filter was applied.
	Selected []SelectedSighting
}

// SelectedSighting pairs a narrowed sighting with its page-user comments.
type SelectedSighting struct {
	Note     domain.Note
	Comments []domain.CommentWithAuthor
}

// UserService handles the dashboard redirect and the per-user sighting
// page.
type UserService struct {
	userRepo    repository.UserRepository
	noteRepo    repository.NoteRepository
	commentRepo repository.CommentRepository
}

// NewUserService creates a UserService.
func NewUserService(userRepo repository.UserRepository, noteRepo repository.NoteRepository, commentRepo repository.CommentRepository) *UserService {
	if userRepo == nil || noteRepo == nil || commentRepo == nil {
		panic("repositories cannot be nil for UserService")
	}
	return &UserService{userRepo: userRepo, noteRepo: noteRepo, commentRepo: commentRepo}
}

// DashboardUserID resolves the session username to a user id for the
// dashboard redirect.
func (s *UserService) DashboardUserID(ctx context.Context, username string) (uint, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, ErrUserNotFound
		}
		logrus.WithError(err).WithField("username", username).Error("Failed to resolve dashboard user")
		return 0, ErrInternalServer
	}
	return user.ID, nil
}

// Sightings builds the per-user page: all of the user's sightings, the
// distinct species list in first-seen order, and — when a species filter
// is supplied — the narrowed sightings, each with the comments on it
// written by the page user.
//
// The comment scope here is the page user's own comments only; the
// single-note view shows comments from all authors. The two scopes stay
// distinct on purpose.
func (s *UserService) Sightings(ctx context.Context, userID uint, speciesFilter string) (*UserSightings, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to load user")
		return nil, ErrInternalServer
	}

	notes, err := s.noteRepo.FindByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to load user's sightings")
		return nil, ErrInternalServer
	}

	user.Password = ""
	page := &UserSightings{
		User:        *user,
		Sightings:   notes,
		SpeciesList: distinctSpeciesFirstSeen(notes),
	}

	if speciesFilter == "" {
		return page, nil
	}

	for _, note := range notes {
		if note.SpeciesName != speciesFilter {
			continue
		}
		comments, err := s.commentRepo.ForNoteByUser(ctx, note.ID, userID)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{"note_id": note.ID, "user_id": userID}).
				Error("Failed to load comments for filtered sighting")
			return nil, ErrInternalServer
		}
		page.Selected = append(page.Selected, SelectedSighting{Note: note, Comments: comments})
	}
	return page, nil
}

// distinctSpeciesFirstSeen deduplicates species names preserving the order
// in which they first appear in the sighting list.
func distinctSpeciesFirstSeen(notes []domain.Note) []string {
	seen := make(map[string]struct{}, len(notes))
	var out []string
	for _, note := range notes {
		if _, ok := seen[note.SpeciesName]; ok {
			continue
		}
		seen[note.SpeciesName] = struct{}{}
		out = append(out, note.SpeciesName)
	}
	return out
}
