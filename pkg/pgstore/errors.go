package pgstore

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToConnect     = errors.New("failed to open db connection")
	ErrFailedToParseConfig = errors.New("failed to parse db config")
	ErrHealthcheckFailed   = errors.New("healthcheck failed, connection is not available")
	ErrFailedToMigrate     = errors.New("failed to apply migrations")
)

// isDuplicateKey detects PostgreSQL unique constraint violations (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
