package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Dialect captures what differs between the supported SQL backends.
type Dialect interface {
	// Name is the canonical driver key (sqlite, postgres, mysql).
	Name() string

	// DriverName returns the driver name for sql.Open.
	DriverName() string

	// DSN turns the configured connection string into the one handed to the driver.
	DSN(raw string) (string, error)

	// Placeholder is the bind-variable style for squirrel builders.
	Placeholder() squirrel.PlaceholderFormat

	// SupportsLastInsertId is false when inserts need RETURNING id.
	SupportsLastInsertId() bool

	// LockSuffix is appended to a SELECT to take a row lock inside a transaction.
	// Empty when the backend serialises writers another way.
	LockSuffix() string

	// InsertIgnore turns an insert into one that skips primary-key conflicts.
	InsertIgnore(b squirrel.InsertBuilder) squirrel.InsertBuilder

	// ConfigureConnection applies pool and session settings after sql.Open.
	ConfigureConnection(db *sql.DB) error

	// MigrationsSubdir names the embedded migrations directory.
	MigrationsSubdir() string

	// CreateMigrationsTableQuery returns the DDL for the migrations ledger.
	CreateMigrationsTableQuery() string
}

// NewDialect resolves a configured driver name.
func NewDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "sqlite", "sqlite3", "":
		return NewSQLiteDialect(), nil
	case "postgres", "postgresql":
		return NewPostgresDialect(), nil
	case "mysql":
		return NewMySQLDialect(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
