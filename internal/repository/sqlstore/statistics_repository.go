package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/wordgame/internal/db"
	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
)

const (
	statisticsTable = "game_statistics"
	// The statistics table holds at most this one row.
	singletonID = 1
)

// ErrStatisticsMissing is returned by Commit when the singleton row is absent.
var ErrStatisticsMissing = errors.New("statistics row does not exist")

var statisticsColumns = []string{
	"total_score", "words_completed", "easy_completed", "medium_completed", "hard_completed", "last_updated",
}

type statisticsRepository struct {
	q    querier
	db   *db.DB
	now  func() time.Time
	lock bool
}

// GetOrCreate reads the singleton row, inserting a zeroed one first if it is
// missing. The insert ignores primary-key conflicts so racing first callers
// converge on the same row.
//
// Migrations seed the row, so the locked read inside WithinTx always hits an
// existing record. Locking a missing row on InnoDB takes a gap lock that two
// transactions can share, and their inserts would then deadlock.
func (r *statisticsRepository) GetOrCreate(ctx context.Context) (*models.Statistics, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")

	stats, err := r.get(ctx)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to read statistics: %v", err)
		return nil, fmt.Errorf("read statistics: %w", err)
	}

	log.Info("statistics row missing, creating it")
	insert := r.db.Dialect.InsertIgnore(r.db.Builder().
		Insert(statisticsTable).
		Columns(append([]string{"id"}, statisticsColumns...)...).
		Values(singletonID, 0, 0, 0, 0, 0, r.now().UTC()))
	query, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}
	r.db.TraceSQL(ctx, query, args)
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to create statistics: %v", err)
		return nil, fmt.Errorf("create statistics: %w", err)
	}

	stats, err = r.get(ctx)
	if err != nil {
		log.Error("failed to read statistics after create: %v", err)
		return nil, fmt.Errorf("read statistics: %w", err)
	}
	return stats, nil
}

func (r *statisticsRepository) get(ctx context.Context) (*models.Statistics, error) {
	sel := r.db.Builder().
		Select(statisticsColumns...).
		From(statisticsTable).
		Where(squirrel.Eq{"id": singletonID})
	if suffix := r.db.Dialect.LockSuffix(); r.lock && suffix != "" {
		sel = sel.Suffix(suffix)
	}
	query, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}
	r.db.TraceSQL(ctx, query, args)

	var s models.Statistics
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&s.TotalScore, &s.WordsCompleted, &s.EasyCompleted, &s.MediumCompleted, &s.HardCompleted, &s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	s.LastUpdated = s.LastUpdated.UTC()
	return &s, nil
}

// Commit overwrites the singleton row with s.
func (r *statisticsRepository) Commit(ctx context.Context, s models.Statistics) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("committing statistics: total_score=%d, words_completed=%d", s.TotalScore, s.WordsCompleted)

	query, args, err := r.db.Builder().
		Update(statisticsTable).
		SetMap(map[string]any{
			"total_score":      s.TotalScore,
			"words_completed":  s.WordsCompleted,
			"easy_completed":   s.EasyCompleted,
			"medium_completed": s.MediumCompleted,
			"hard_completed":   s.HardCompleted,
			"last_updated":     s.LastUpdated.UTC(),
		}).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()
	if err != nil {
		return err
	}
	r.db.TraceSQL(ctx, query, args)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update statistics: %v", err)
		return fmt.Errorf("update statistics: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update statistics: %w", err)
	}
	if n == 0 {
		return ErrStatisticsMissing
	}
	return nil
}
