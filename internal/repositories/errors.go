package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrJobNotFound      = errors.New("job not found")

	// ErrTransient marks store-level contention (serialization failure,
	// deadlock, lock timeout). The whole operation rolled back, so the
	// caller may safely retry it.
	ErrTransient = errors.New("transient store failure")
)

// Postgres error codes that indicate the transaction lost a race rather
// than violated a rule.
var transientPgCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
	"57014": true, // query_canceled (statement timeout)
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && transientPgCodes[pgErr.Code]
}
