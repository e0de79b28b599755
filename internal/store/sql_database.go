package store

import (
	"database/sql"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/migrations"
)

// DB is a database handle together with the goose dialect and schema
// directory it is migrated with.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	dialect       string
	migrationsDir string
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, db.migrationsDir)
}

// retryable reports whether err is classified as transient. Handles without
// a classificator never retry.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
