package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/config"
	"github.com/MKhiriev/go-face-register/internal/logger"
)

// ClientStorages groups the client-side storage. Currently it holds only the
// upload [Journal].
type ClientStorages struct {
	Journal Journal
}

// NewClientStorages opens the SQLite journal at cfg.Path and migrates it.
// An empty path disables the journal.
func NewClientStorages(ctx context.Context, cfg config.Journal, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.Path == "" {
		logger.Debug().Msg("upload journal disabled")
		return &ClientStorages{Journal: NewNopJournal()}, nil
	}

	logger.Info().Str("path", cfg.Path).Msg("opening upload journal...")

	db, err := NewConnectSQLite(ctx, config.DB{DSN: cfg.Path}, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Journal: NewSQLiteJournal(db, logger),
	}, nil
}

// Close releases the journal.
func (s *ClientStorages) Close() error {
	return s.Journal.Close()
}
