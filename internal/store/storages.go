package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
)

// Storages groups the receiver's repositories.
type Storages struct {
	RegistrationRepository RegistrationRepository

	db *DB
}

// NewStorages connects to PostgreSQL when cfg.DB.DSN is set and migrates the
// schema; otherwise registrations are kept in memory.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		logger.Info().Msg("no database configured, keeping registrations in memory")
		return &Storages{RegistrationRepository: NewMemoryRegistrationRepository()}, nil
	}

	if !isPostgresDSN(cfg.DB.DSN) {
		return nil, ErrUnknownDriver
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		RegistrationRepository: NewRegistrationRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
