package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/wordgame/internal/logger"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

type DB struct {
	*sql.DB
	Dialect Dialect
	log     *logger.Logger
	logSQL  bool
}

// Option configures Open.
type Option func(*DB)

// WithSQLLogging echoes every statement at DEBUG level.
func WithSQLLogging(enabled bool) Option {
	return func(db *DB) {
		db.logSQL = enabled
	}
}

// Open connects to the configured backend and applies pending migrations.
func Open(driver, dsn string, opts ...Option) (*DB, error) {
	log := logger.Default().WithPrefix("db")

	dialect, err := NewDialect(driver)
	if err != nil {
		return nil, err
	}
	driverDSN, err := dialect.DSN(dsn)
	if err != nil {
		return nil, err
	}

	log.Info("opening %s database", dialect.Name())
	sqlDB, err := sql.Open(dialect.DriverName(), driverDSN)
	if err != nil {
		log.Error("failed to open database: %v", err)
		return nil, err
	}
	if err := dialect.ConfigureConnection(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("configure connection: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		log.Error("failed to ping database: %v", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{DB: sqlDB, Dialect: dialect, log: log}
	for _, opt := range opts {
		opt(db)
	}

	log.Debug("applying migrations")
	if err := db.applyMigrations(context.Background()); err != nil {
		log.Error("failed to apply migrations: %v", err)
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("database ready")
	return db, nil
}

// Builder returns a squirrel statement builder using the dialect's placeholders.
func (db *DB) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.Dialect.Placeholder())
}

// TraceSQL logs a statement when SQL logging is enabled.
func (db *DB) TraceSQL(ctx context.Context, query string, args []any) {
	if !db.logSQL {
		return
	}
	logger.FromContext(ctx).WithPrefix("sql").Debug("%s %v", strings.Join(strings.Fields(query), " "), args)
}

func (db *DB) applyMigrations(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, db.Dialect.CreateMigrationsTableQuery()); err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	dir := "migrations/" + db.Dialect.MigrationsSubdir()
	entries, err := migrationsFS.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		version := entry.Name()
		applied, err := db.isMigrationApplied(ctx, version)
		if err != nil {
			return err
		}
		if applied {
			db.log.Debug("migration %s already applied, skipping", version)
			continue
		}
		sqlBytes, err := migrationsFS.ReadFile(dir + "/" + version)
		if err != nil {
			return err
		}
		db.log.Info("applying migration: %s", version)
		for _, stmt := range splitStatements(string(sqlBytes)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				db.log.Error("migration %s failed: %v", version, err)
				return fmt.Errorf("apply migration %s: %w", version, err)
			}
		}
		query, args, err := db.Builder().Insert("schema_migrations").Columns("version").Values(version).ToSql()
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return err
		}
		db.log.Info("migration %s applied successfully", version)
	}
	return nil
}

func (db *DB) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	query, args, err := db.Builder().Select("version").From("schema_migrations").Where(squirrel.Eq{"version": version}).ToSql()
	if err != nil {
		return false, err
	}
	var v string
	err = db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// splitStatements breaks a migration file into single statements; not every
// driver accepts several statements per Exec.
func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
