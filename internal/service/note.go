package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
)

// NoteDetail is the rendering object for a single sighting page: the note
// with its author, the behaviour names tagged on it, and all comments.
type NoteDetail struct {
	Note       domain.NoteWithAuthor
	Behaviours []string
	Comments   []domain.CommentWithAuthor
}

// NoteService handles sighting CRUD, behaviour tagging, comments and the
// owner authorization check.
type NoteService struct {
	noteRepo      repository.NoteRepository
	behaviourRepo repository.BehaviourRepository
	commentRepo   repository.CommentRepository
	hasher        *Hasher
}

// NewNoteService creates a NoteService.
func NewNoteService(noteRepo repository.NoteRepository, behaviourRepo repository.BehaviourRepository, commentRepo repository.CommentRepository, hasher *Hasher) *NoteService {
	if noteRepo == nil || behaviourRepo == nil || commentRepo == nil {
		panic("repositories cannot be nil for NoteService")
	}
	if hasher == nil {
		panic("Hasher cannot be nil for NoteService")
	}
	return &NoteService{
		noteRepo:      noteRepo,
		behaviourRepo: behaviourRepo,
		commentRepo:   commentRepo,
		hasher:        hasher,
	}
}

// List returns every sighting with its author for the front page.
func (s *NoteService) List(ctx context.Context) ([]domain.NoteWithAuthor, error) {
	rows, err := s.noteRepo.ListWithAuthors(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list sightings")
		return nil, ErrInternalServer
	}
	return rows, nil
}

// Detail loads the full single-sighting view. The three lookups are
// causally ordered: note first (it decides 404), then behaviours, then
// comments, merged into one rendering object.
func (s *NoteService) Detail(ctx context.Context, noteID uint) (*NoteDetail, error) {
	note, err := s.noteRepo.FindWithAuthor(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, ErrNoteNotFound
		}
		logrus.WithError(err).WithField("note_id", noteID).Error("Failed to load sighting")
		return nil, ErrInternalServer
	}

	behaviours, err := s.behaviourRepo.NamesForNote(ctx, noteID)
	if err != nil {
		logrus.WithError(err).WithField("note_id", noteID).Error("Failed to load behaviours for sighting")
		return nil, ErrInternalServer
	}

	comments, err := s.commentRepo.ForNote(ctx, noteID)
	if err != nil {
		logrus.WithError(err).WithField("note_id", noteID).Error("Failed to load comments for sighting")
		return nil, ErrInternalServer
	}

	return &NoteDetail{Note: *note, Behaviours: behaviours, Comments: comments}, nil
}

// BehaviourVocabulary returns the fixed behaviour catalog for form
// rendering.
func (s *NoteService) BehaviourVocabulary(ctx context.Context) ([]domain.Behaviour, error) {
	behaviours, err := s.behaviourRepo.ListAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to load behaviour vocabulary")
		return nil, ErrInternalServer
	}
	return behaviours, nil
}

// Create stores a new sighting owned by userID, tagged with behaviourIDs.
func (s *NoteService) Create(ctx context.Context, note *domain.Note, behaviourIDs []uint) (*domain.Note, error) {
	if err := s.noteRepo.CreateWithBehaviours(ctx, note, behaviourIDs); err != nil {
		logrus.WithError(err).WithField("user_id", note.UserID).Error("Failed to create sighting")
		return nil, ErrInternalServer
	}
	logrus.WithFields(logrus.Fields{"note_id": note.ID, "user_id": note.UserID}).Info("Sighting created")
	return note, nil
}

// Update overwrites the sighting's scalar columns and replaces its
// behaviour set. note.ID selects the target row.
func (s *NoteService) Update(ctx context.Context, note *domain.Note, behaviourIDs []uint) error {
	if err := s.noteRepo.UpdateWithBehaviours(ctx, note, behaviourIDs); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		logrus.WithError(err).WithField("note_id", note.ID).Error("Failed to update sighting")
		return ErrInternalServer
	}
	logrus.WithField("note_id", note.ID).Info("Sighting updated")
	return nil
}

// Delete removes the sighting together with its behaviour join rows and
// comments.
func (s *NoteService) Delete(ctx context.Context, noteID uint) error {
	if err := s.noteRepo.DeleteCascade(ctx, noteID); err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		logrus.WithError(err).WithField("note_id", noteID).Error("Failed to delete sighting")
		return ErrInternalServer
	}
	logrus.WithField("note_id", noteID).Info("Sighting deleted")
	return nil
}

// AddComment records a comment on a note. Empty comments are skipped
// without touching storage.
func (s *NoteService) AddComment(ctx context.Context, noteID, userID uint, body string) error {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	comment := &domain.Comment{NoteID: noteID, UserID: userID, Comment: body}
	if err := s.commentRepo.Save(ctx, comment); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{"note_id": noteID, "user_id": userID}).
			Error("Failed to save comment")
		return ErrInternalServer
	}
	return nil
}

// AuthorizeOwner permits a mutation only when the presented session digest
// matches the digest of the note owner's id. A missing note is reported as
// not-found; an owner mismatch as forbidden, with no hint whether the
// digest or the note was the problem beyond that.
func (s *NoteService) AuthorizeOwner(ctx context.Context, noteID uint, presentedDigest string) error {
	note, err := s.noteRepo.FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return ErrNoteNotFound
		}
		logrus.WithError(err).WithField("note_id", noteID).Error("Failed to load note for authorization")
		return ErrInternalServer
	}

	ownerDigest := s.hasher.UserIDDigest(note.UserID)
	if subtle.ConstantTimeCompare([]byte(ownerDigest), []byte(presentedDigest)) != 1 {
		logrus.WithFields(logrus.Fields{"note_id": noteID, "owner_id": note.UserID}).
			Warn("Owner authorization failed")
		return ErrForbidden
	}
	return nil
}
