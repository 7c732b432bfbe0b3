// Package sqlstore implements the repositories on database/sql for every
// dialect supported by internal/db.
package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/vytor/wordgame/internal/db"
	"github.com/vytor/wordgame/internal/repository"
)

// Store hands out repositories bound either to the pool or to a transaction.
type Store struct {
	db  *db.DB
	now func() time.Time
}

// NewStore creates a Store over an open database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database, now: time.Now}
}

// Progress returns a progress log outside any transaction.
func (s *Store) Progress() repository.ProgressRepository {
	return &progressRepository{q: s.db, db: s.db}
}

// Statistics returns a statistics store outside any transaction. Reads take
// no row lock.
func (s *Store) Statistics() repository.StatisticsRepository {
	return &statisticsRepository{q: s.db, db: s.db, now: s.now}
}

// WithinTx runs fn with repositories bound to one transaction. The statistics
// row is read under a row lock where the dialect supports one.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	return tx(ctx, s.db, func(t *sql.Tx) error {
		return fn(ctx, repository.Repositories{
			Progress:   &progressRepository{q: t, db: s.db},
			Statistics: &statisticsRepository{q: t, db: s.db, now: s.now, lock: true},
		})
	})
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
