// Package migrations embeds the SQL schema of both processes and applies it
// with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Schema directories inside the embedded filesystem.
const (
	ClientDir = "client"
	ServerDir = "server"
)

// goose dialect names.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("nil database")

// Migrate applies every pending migration found in dir using the given goose
// dialect.
func Migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
