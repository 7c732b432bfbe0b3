package sqlstore

import (
	"context"
	"fmt"

	"github.com/vytor/wordgame/internal/db"
	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
)

const progressTable = "game_progress"

var progressColumns = []string{"id", "word", "difficulty", "score", "completed_at"}

type progressRepository struct {
	q  querier
	db *db.DB
}

func (r *progressRepository) Append(ctx context.Context, e models.ProgressEntry) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	log.Debug("appending progress: word=%s, difficulty=%s, score=%d", e.Word, e.Difficulty, e.Score)

	insert := r.db.Builder().
		Insert(progressTable).
		Columns("word", "difficulty", "score", "completed_at").
		Values(e.Word, e.Difficulty, e.Score, e.CompletedAt.UTC())

	var id int64
	if r.db.Dialect.SupportsLastInsertId() {
		query, args, err := insert.ToSql()
		if err != nil {
			return 0, err
		}
		r.db.TraceSQL(ctx, query, args)
		res, err := r.q.ExecContext(ctx, query, args...)
		if err != nil {
			log.Error("failed to insert progress: %v", err)
			return 0, fmt.Errorf("insert progress: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			log.Error("failed to get progress id: %v", err)
			return 0, fmt.Errorf("progress id: %w", err)
		}
	} else {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return 0, err
		}
		r.db.TraceSQL(ctx, query, args)
		if err := r.q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			log.Error("failed to insert progress: %v", err)
			return 0, fmt.Errorf("insert progress: %w", err)
		}
	}

	log.Debug("progress appended: id=%d", id)
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (r *progressRepository) Recent(ctx context.Context, limit int) ([]models.ProgressEntry, error) {
	log := logger.FromContext(ctx).WithPrefix("progress_repo")
	if limit <= 0 {
		limit = 50
	}
	log.Debug("listing recent progress: limit=%d", limit)

	query, args, err := r.db.Builder().
		Select(progressColumns...).
		From(progressTable).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.db.TraceSQL(ctx, query, args)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	var entries []models.ProgressEntry
	for rows.Next() {
		var e models.ProgressEntry
		if err := rows.Scan(&e.ID, &e.Word, &e.Difficulty, &e.Score, &e.CompletedAt); err != nil {
			log.Error("failed to scan progress row: %v", err)
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		e.CompletedAt = e.CompletedAt.UTC()
		entries = append(entries, e)
	}
	log.Debug("found %d progress entries", len(entries))
	return entries, rows.Err()
}

func (r *progressRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.db.Builder().Select("COUNT(*)").From(progressTable).ToSql()
	if err != nil {
		return 0, err
	}
	r.db.TraceSQL(ctx, query, args)

	var count int
	if err := r.q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).WithPrefix("progress_repo").Error("failed to count progress: %v", err)
		return 0, fmt.Errorf("count progress: %w", err)
	}
	return count, nil
}
