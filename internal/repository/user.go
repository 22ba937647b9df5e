package repository

import (
	"context"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// UserRepository defines storage and retrieval of user accounts.
type UserRepository interface {
	// FindByID looks a user up by primary key. Returns ErrUserNotFound
	// when no row matches.
	FindByID(ctx context.Context, id uint) (*domain.User, error)

	// FindByUsername returns the first user with the given username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindByPasswordDigest returns the first user whose stored password
	// digest matches. Login works by digest lookup, not by username.
	FindByPasswordDigest(ctx context.Context, digest string) (*domain.User, error)

	// Save inserts the user when ID is zero, otherwise updates it. The
	// generated ID is written back into the passed struct.
	Save(ctx context.Context, user *domain.User) error
}
