package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-face-register/internal/logger"
	"github.com/MKhiriev/go-face-register/models"
)

type sqliteJournal struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteJournal returns a [Journal] writing to the upload_journal table.
func NewSQLiteJournal(db *DB, logger *logger.Logger) Journal {
	return &sqliteJournal{
		db:     db,
		logger: logger,
	}
}

func (j *sqliteJournal) Record(ctx context.Context, entry models.JournalEntry) error {
	query, args, err := buildInsertJournalEntryQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = j.db.ExecContext(ctx, query, args...); err != nil {
		j.logger.Err(err).
			Str("func", "*sqliteJournal.Record").
			Str("id", entry.ID).
			Msg("failed to record upload session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	j.logger.Debug().Str("id", entry.ID).Int("status", entry.StatusCode).Msg("upload session recorded")
	return nil
}

func (j *sqliteJournal) Close() error {
	return j.db.Close()
}

// nopJournal is used when the journal is disabled.
type nopJournal struct{}

func NewNopJournal() Journal {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, models.JournalEntry) error { return nil }

func (nopJournal) Close() error { return nil }
