package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
	"github.com/jcleow/birding-express-swe1/internal/repository/mocks"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

type noteServiceMocks struct {
	notes      *mocks.NoteRepository
	behaviours *mocks.BehaviourRepository
	comments   *mocks.CommentRepository
	hasher     *service.Hasher
}

func newNoteService(t *testing.T) (*service.NoteService, noteServiceMocks) {
	t.Helper()
	m := noteServiceMocks{
		notes:      new(mocks.NoteRepository),
		behaviours: new(mocks.BehaviourRepository),
		comments:   new(mocks.CommentRepository),
	}
	hasher, err := service.NewHasher("test-salt")
	require.NoError(t, err)
	m.hasher = hasher
	return service.NewNoteService(m.notes, m.behaviours, m.comments, hasher), m
}

func TestNoteService_AuthorizeOwner_OwnerProceeds(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	m.notes.On("FindByID", ctx, uint(3)).
		Return(&domain.Note{ID: 3, UserID: 7}, nil).
		Once()

	err := svc.AuthorizeOwner(ctx, 3, m.hasher.UserIDDigest(7))

	assert.NoError(t, err)
	m.notes.AssertExpectations(t)
}

func TestNoteService_AuthorizeOwner_NonOwnerForbidden(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	m.notes.On("FindByID", ctx, uint(3)).
		Return(&domain.Note{ID: 3, UserID: 7}, nil).
		Once()

	// User 8's digest presented against user 7's note.
	err := svc.AuthorizeOwner(ctx, 3, m.hasher.UserIDDigest(8))

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrForbidden))
	m.notes.AssertExpectations(t)
}

func TestNoteService_AuthorizeOwner_MissingNote(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	m.notes.On("FindByID", ctx, uint(99)).
		Return(nil, repository.ErrNoteNotFound).
		Once()

	err := svc.AuthorizeOwner(ctx, 99, m.hasher.UserIDDigest(7))

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNoteNotFound))
	m.notes.AssertExpectations(t)
}

func TestNoteService_Detail_MergesThreeLookups(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	note := &domain.NoteWithAuthor{
		Note:     domain.Note{ID: 4, SpeciesName: "Mynah", UserID: 7},
		Username: "alice",
	}
	m.notes.On("FindWithAuthor", ctx, uint(4)).Return(note, nil).Once()
	m.behaviours.On("NamesForNote", ctx, uint(4)).Return([]string{"flying", "singing"}, nil).Once()
	m.comments.On("ForNote", ctx, uint(4)).
		Return([]domain.CommentWithAuthor{{Username: "bob", Comment: "nice find"}}, nil).
		Once()

	detail, err := svc.Detail(ctx, 4)

	require.NoError(t, err)
	assert.Equal(t, "Mynah", detail.Note.SpeciesName)
	assert.Equal(t, []string{"flying", "singing"}, detail.Behaviours)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "bob", detail.Comments[0].Username)
	m.notes.AssertExpectations(t)
	m.behaviours.AssertExpectations(t)
	m.comments.AssertExpectations(t)
}

func TestNoteService_Detail_NotFound(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	m.notes.On("FindWithAuthor", ctx, uint(99)).Return(nil, repository.ErrNoteNotFound).Once()

	_, err := svc.Detail(ctx, 99)

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrNoteNotFound))
	// Dependent lookups must not run when the note is missing.
	m.behaviours.AssertNotCalled(t, "NamesForNote", mock.Anything, mock.Anything)
	m.comments.AssertNotCalled(t, "ForNote", mock.Anything, mock.Anything)
}

func TestNoteService_Create_PassesBehaviourSet(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	note := &domain.Note{SpeciesName: "Mynah", DateSeen: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), FlockSize: 3, UserID: 7}
	m.notes.On("CreateWithBehaviours", ctx, note, []uint{1, 2}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Note).ID = 11
		}).
		Return(nil).
		Once()

	created, err := svc.Create(ctx, note, []uint{1, 2})

	require.NoError(t, err)
	assert.Equal(t, uint(11), created.ID, "id must come from the insert itself")
	m.notes.AssertExpectations(t)
}

func TestNoteService_Update_ReplacesBehaviourSet(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	note := &domain.Note{ID: 11, SpeciesName: "Mynah", FlockSize: 4}
	m.notes.On("UpdateWithBehaviours", ctx, note, []uint{2, 3}).Return(nil).Once()

	err := svc.Update(ctx, note, []uint{2, 3})

	assert.NoError(t, err)
	m.notes.AssertExpectations(t)
}

func TestNoteService_Delete_Cascades(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	m.notes.On("DeleteCascade", ctx, uint(11)).Return(nil).Once()

	assert.NoError(t, svc.Delete(ctx, 11))
	m.notes.AssertExpectations(t)
}

func TestNoteService_AddComment_SkipsEmptyBody(t *testing.T) {
	svc, m := newNoteService(t)

	err := svc.AddComment(context.Background(), 11, 7, "   ")

	assert.NoError(t, err)
	m.comments.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNoteService_AddComment_SavesBody(t *testing.T) {
	svc, m := newNoteService(t)
	ctx := context.Background()

	m.comments.On("Save", ctx, mock.MatchedBy(func(comment *domain.Comment) bool {
		return comment.NoteID == 11 && comment.UserID == 7 && comment.Comment == "nice find"
	})).Return(nil).Once()

	assert.NoError(t, svc.AddComment(ctx, 11, 7, "nice find"))
	m.comments.AssertExpectations(t)
}
