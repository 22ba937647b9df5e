// Package gormpersistence implements the repository interfaces on top of
// GORM with a Postgres backend.
package gormpersistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// queryTimeout bounds every single query issued by this package. Expiry
// surfaces to the caller as a wrapped context error, which the service
// layer treats as an infrastructure failure.
const queryTimeout = 5 * time.Second

// uniqueViolation is the Postgres SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

func isDuplicateEntryError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
