package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-face-register/models"
)

const (
	registrationsTable = "registrations"
	framesTable        = "frames"
	journalTable       = "upload_journal"
)

var (
	// psql renders $n placeholders for PostgreSQL.
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	// sqlite renders ? placeholders for SQLite.
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	registrationColumns = []string{"user_id", "frame_count", "total_bytes", "created_at"}
)

func buildInsertRegistrationQuery(reg models.Registration) (string, []any, error) {
	return psql.
		Insert(registrationsTable).
		Columns("user_id", "frame_count", "total_bytes").
		Values(int64(reg.UserID), reg.FrameCount, reg.TotalBytes).
		Suffix("RETURNING created_at").
		ToSql()
}

func buildInsertFramesQuery(frames []models.Frame) (string, []any, error) {
	builder := psql.
		Insert(framesTable).
		Columns("user_id", "frame_index", "filename", "frame_bytes")
	for _, f := range frames {
		builder = builder.Values(int64(f.UserID), f.Index, f.Filename, f.Data)
	}
	return builder.ToSql()
}

func buildSelectRegistrationQuery(userID models.SessionID) (string, []any, error) {
	return psql.
		Select(registrationColumns...).
		From(registrationsTable).
		Where(sq.Eq{"user_id": int64(userID)}).
		ToSql()
}

func buildCountRegistrationsQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(registrationsTable).
		ToSql()
}

func buildInsertJournalEntryQuery(entry models.JournalEntry) (string, []any, error) {
	return sqlite.
		Insert(journalTable).
		Columns(
			"id",
			"user_id",
			"endpoint",
			"frame_count",
			"total_bytes",
			"status_code",
			"response",
			"error",
			"started_at",
			"finished_at",
		).
		Values(
			entry.ID,
			int64(entry.UserID),
			entry.Endpoint,
			entry.FrameCount,
			entry.TotalBytes,
			entry.StatusCode,
			entry.Response,
			entry.Error,
			entry.StartedAt,
			entry.FinishedAt,
		).
		ToSql()
}
