// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// UserRepository is a testify mock of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByPasswordDigest(ctx context.Context, digest string) (*domain.User, error) {
	args := m.Called(ctx, digest)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// NoteRepository is a testify mock of repository.NoteRepository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) ListWithAuthors(ctx context.Context) ([]domain.NoteWithAuthor, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]domain.NoteWithAuthor)
	return rows, args.Error(1)
}

func (m *NoteRepository) FindByID(ctx context.Context, id uint) (*domain.Note, error) {
	args := m.Called(ctx, id)
	note, _ := args.Get(0).(*domain.Note)
	return note, args.Error(1)
}

func (m *NoteRepository) FindWithAuthor(ctx context.Context, id uint) (*domain.NoteWithAuthor, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*domain.NoteWithAuthor)
	return row, args.Error(1)
}

func (m *NoteRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Note, error) {
	args := m.Called(ctx, userID)
	notes, _ := args.Get(0).([]domain.Note)
	return notes, args.Error(1)
}

func (m *NoteRepository) CreateWithBehaviours(ctx context.Context, note *domain.Note, behaviourIDs []uint) error {
	args := m.Called(ctx, note, behaviourIDs)
	return args.Error(0)
}

func (m *NoteRepository) UpdateWithBehaviours(ctx context.Context, note *domain.Note, behaviourIDs []uint) error {
	args := m.Called(ctx, note, behaviourIDs)
	return args.Error(0)
}

func (m *NoteRepository) DeleteCascade(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// BehaviourRepository is a testify mock of repository.BehaviourRepository.
type BehaviourRepository struct {
	mock.Mock
}

func (m *BehaviourRepository) ListAll(ctx context.Context) ([]domain.Behaviour, error) {
	args := m.Called(ctx)
	behaviours, _ := args.Get(0).([]domain.Behaviour)
	return behaviours, args.Error(1)
}

func (m *BehaviourRepository) NamesForNote(ctx context.Context, noteID uint) ([]string, error) {
	args := m.Called(ctx, noteID)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

// CommentRepository is a testify mock of repository.CommentRepository.
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Save(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *CommentRepository) ForNote(ctx context.Context, noteID uint) ([]domain.CommentWithAuthor, error) {
	args := m.Called(ctx, noteID)
	rows, _ := args.Get(0).([]domain.CommentWithAuthor)
	return rows, args.Error(1)
}

func (m *CommentRepository) ForNoteByUser(ctx context.Context, noteID, userID uint) ([]domain.CommentWithAuthor, error) {
	args := m.Called(ctx, noteID, userID)
	rows, _ := args.Get(0).([]domain.CommentWithAuthor)
	return rows, args.Error(1)
}

// SpeciesRepository is a testify mock of repository.SpeciesRepository.
type SpeciesRepository struct {
	mock.Mock
}

func (m *SpeciesRepository) Save(ctx context.Context, species *domain.Species) error {
	args := m.Called(ctx, species)
	return args.Error(0)
}

func (m *SpeciesRepository) ListAll(ctx context.Context) ([]domain.Species, error) {
	args := m.Called(ctx)
	catalog, _ := args.Get(0).([]domain.Species)
	return catalog, args.Error(1)
}

func (m *SpeciesRepository) FindByID(ctx context.Context, id uint) (*domain.Species, error) {
	args := m.Called(ctx, id)
	species, _ := args.Get(0).(*domain.Species)
	return species, args.Error(1)
}
