package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jcleow/birding-express-swe1/internal/domain"
	"github.com/jcleow/birding-express-swe1/internal/repository"
	"github.com/jcleow/birding-express-swe1/internal/repository/mocks"
	"github.com/jcleow/birding-express-swe1/internal/service"
)

type userServiceMocks struct {
	users    *mocks.UserRepository
	notes    *mocks.NoteRepository
	comments *mocks.CommentRepository
}

func newUserService(t *testing.T) (*service.UserService, userServiceMocks) {
	t.Helper()
	m := userServiceMocks{
		users:    new(mocks.UserRepository),
		notes:    new(mocks.NoteRepository),
		comments: new(mocks.CommentRepository),
	}
	return service.NewUserService(m.users, m.notes, m.comments), m
}

func TestUserService_DashboardUserID(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.users.On("FindByUsername", ctx, "alice").
		Return(&domain.User{ID: 7, Username: "alice"}, nil).
		Once()

	id, err := svc.DashboardUserID(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
	m.users.AssertExpectations(t)
}

func TestUserService_DashboardUserID_UnknownUser(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.users.On("FindByUsername", ctx, "ghost").
		Return(nil, repository.ErrUserNotFound).
		Once()

	_, err := svc.DashboardUserID(ctx, "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUserNotFound))
}

func userNotes() []domain.Note {
	return []domain.Note{
		{ID: 1, SpeciesName: "Mynah", UserID: 7},
		{ID: 2, SpeciesName: "Sparrow", UserID: 7},
		{ID: 3, SpeciesName: "Mynah", UserID: 7},
		{ID: 4, SpeciesName: "Hornbill", UserID: 7},
	}
}

func TestUserService_Sightings_SpeciesListFirstSeenOrder(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.users.On("FindByID", ctx, uint(7)).Return(&domain.User{ID: 7, Username: "alice"}, nil).Once()
	m.notes.On("FindByUser", ctx, uint(7)).Return(userNotes(), nil).Once()

	page, err := svc.Sightings(ctx, 7, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"Mynah", "Sparrow", "Hornbill"}, page.SpeciesList,
		"distinct species must keep first-seen order")
	assert.Len(t, page.Sightings, 4)
	assert.Nil(t, page.Selected, "no filter, no narrowed set")
	m.comments.AssertNotCalled(t, "ForNoteByUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Sightings_SpeciesFilterNarrows(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.users.On("FindByID", ctx, uint(7)).Return(&domain.User{ID: 7, Username: "alice"}, nil).Once()
	m.notes.On("FindByUser", ctx, uint(7)).Return(userNotes(), nil).Once()
	// Comments here are scoped to the page user's id; the single-note
	// view is the one that shows all authors.
	m.comments.On("ForNoteByUser", ctx, uint(1), uint(7)).
		Return([]domain.CommentWithAuthor{{Username: "alice", Comment: "my first one"}}, nil).
		Once()
	m.comments.On("ForNoteByUser", ctx, uint(3), uint(7)).
		Return(nil, nil).
		Once()

	page, err := svc.Sightings(ctx, 7, "Mynah")

	require.NoError(t, err)
	require.Len(t, page.Selected, 2)
	assert.Equal(t, uint(1), page.Selected[0].Note.ID)
	assert.Equal(t, uint(3), page.Selected[1].Note.ID)
	assert.Len(t, page.Selected[0].Comments, 1)
	assert.Empty(t, page.Selected[1].Comments)
	m.comments.AssertExpectations(t)
}

func TestUserService_Sightings_UnknownUser(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.users.On("FindByID", ctx, uint(99)).Return(nil, repository.ErrUserNotFound).Once()

	_, err := svc.Sightings(ctx, 99, "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUserNotFound))
	m.notes.AssertNotCalled(t, "FindByUser", mock.Anything, mock.Anything)
}

func TestUserService_Sightings_HidesPasswordDigest(t *testing.T) {
	svc, m := newUserService(t)
	ctx := context.Background()

	m.users.On("FindByID", ctx, uint(7)).
		Return(&domain.User{ID: 7, Username: "alice", Password: "digest"}, nil).
		Once()
	m.notes.On("FindByUser", ctx, uint(7)).Return(nil, nil).Once()

	page, err := svc.Sightings(ctx, 7, "")

	require.NoError(t, err)
	assert.Empty(t, page.User.Password)
}
