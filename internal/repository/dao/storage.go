package dao

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrStorageUnavailable marks transient infrastructure failures
// (connection refused, timeouts). Callers may retry.
var ErrStorageUnavailable = errors.New("storage unavailable")

// translateStorageErr maps driver-level connectivity failures onto
// ErrStorageUnavailable and passes every other error through.
func translateStorageErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStorageUnavailable
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ErrStorageUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsConnectionException(pgErr.Code) {
		return ErrStorageUnavailable
	}

	return err
}
