// Package pglock translates PostgreSQL concurrency failures into the
// domain's retryable ContentionError. Row locks are taken with a bounded
// lock_timeout, so a transaction that cannot acquire its locks in time
// fails fast instead of queueing behind a long writer.
package pglock

import (
	"errors"

	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that indicate the transaction lost a concurrency race and
// can be retried as-is by the caller.
const (
	lockNotAvailable     = "55P03"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

// Translate maps lock timeouts, serialization failures, and deadlocks to
// ContentionError. Every other error, including nil, passes through
// unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case lockNotAvailable, serializationFailure, deadlockDetected:
		return errs.NewContentionError(err)
	default:
		return err
	}
}
