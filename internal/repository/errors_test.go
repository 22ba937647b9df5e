package repository_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcleow/birding-express-swe1/internal/repository"
)

func TestNotFoundErrors_AreDistinctPerResource(t *testing.T) {
	assert.False(t, errors.Is(repository.ErrUserNotFound, repository.ErrNoteNotFound))
	assert.False(t, errors.Is(repository.ErrNoteNotFound, repository.ErrSpeciesNotFound))
	assert.False(t, errors.Is(repository.ErrSpeciesNotFound, repository.ErrUserNotFound))
}

func TestNotFoundErrors_AllWrapErrNotFound(t *testing.T) {
	for _, err := range []error{
		repository.ErrUserNotFound,
		repository.ErrNoteNotFound,
		repository.ErrSpeciesNotFound,
	} {
		assert.True(t, errors.Is(err, repository.ErrNotFound), "%v must wrap ErrNotFound", err)
	}
}

func TestNotFoundErrors_SurviveFurtherWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading page: %w", repository.ErrNoteNotFound)

	assert.True(t, errors.Is(wrapped, repository.ErrNoteNotFound))
	assert.False(t, errors.Is(wrapped, repository.ErrUserNotFound))
}
