package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation is worth
// repeating.
type ErrorClassification int

const (
	// NonRetryable is the default for constraint violations, syntax errors,
	// data exceptions and anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a dropped connection or a
	// deadlock rollback.
	Retryable
)

// String implements fmt.Stringer for log fields.
func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors surfaced by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
//
// Retryable: class 08 connection exceptions, class 40 transaction rollbacks
// and 57P03 cannot_connect_now. Everything else is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
