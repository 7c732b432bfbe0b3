package db

import (
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

// sqliteParams: writers take the database lock at BEGIN so that concurrent
// read-modify-write transactions queue instead of failing on upgrade.
const sqliteParams = "_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL&_synchronous=NORMAL&_txlock=immediate"

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) Name() string {
	return DriverSQLite
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(raw string) (string, error) {
	if strings.Contains(raw, "?") {
		return raw + "&" + sqliteParams, nil
	}
	return raw + "?" + sqliteParams, nil
}

func (d *SQLiteDialect) Placeholder() squirrel.PlaceholderFormat {
	return squirrel.Question
}

func (d *SQLiteDialect) SupportsLastInsertId() bool {
	return true
}

func (d *SQLiteDialect) LockSuffix() string {
	return ""
}

func (d *SQLiteDialect) InsertIgnore(b squirrel.InsertBuilder) squirrel.InsertBuilder {
	return b.Options("OR IGNORE")
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// Single writer; also keeps an in-memory database on one connection.
	db.SetMaxOpenConns(1)
	return nil
}

func (d *SQLiteDialect) MigrationsSubdir() string {
	return "sqlite"
}

func (d *SQLiteDialect) CreateMigrationsTableQuery() string {
	return `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at DATETIME DEFAULT CURRENT_TIMESTAMP)`
}
