package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock wrapped", err: fmt.Errorf("tx: %w", pgError(pgerrcode.DeadlockDetected)), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("wrap: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("x")))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost:5432/faces"))
	assert.True(t, isPostgresDSN("postgresql://localhost/faces"))
	assert.True(t, isPostgresDSN("host=localhost user=faces dbname=faces"))
	assert.False(t, isPostgresDSN("faces.db"))
}

func TestDB_retryable(t *testing.T) {
	assert.False(t, (&DB{}).retryable(pgError(pgerrcode.ConnectionFailure)))
	assert.True(t, (&DB{errorClassificator: NewPostgresErrorClassifier()}).retryable(pgError(pgerrcode.ConnectionFailure)))
}
