package services

import (
	"context"

	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
	"github.com/vytor/wordgame/internal/repository"
)

// ProgressService records attempts and exposes the attempt log.
type ProgressService interface {
	Record(ctx context.Context, req models.AttemptRequest) error
	Recent(ctx context.Context, limit int) ([]models.ProgressEntry, error)
}

type progressService struct {
	tx       repository.Transactor
	progress repository.ProgressRepository
	opts     serviceOptions
}

// NewProgressService creates a new ProgressService. tx must be the only
// writer of the progress log and the statistics row.
func NewProgressService(tx repository.Transactor, progress repository.ProgressRepository, opts ...Option) ProgressService {
	return &progressService{tx: tx, progress: progress, opts: newOptions(opts)}
}

// Record validates req, then appends it to the log and folds it into the
// statistics in one transaction. Nothing is written when validation fails,
// and a storage fault rolls back both writes.
func (s *progressService) Record(ctx context.Context, req models.AttemptRequest) error {
	log := logger.FromContext(ctx)

	attempt, err := ValidateAttempt(req)
	if err != nil {
		log.Warn("rejected attempt: %v", err)
		return err
	}
	log = log.WithFields(map[string]any{"word": attempt.Word, "difficulty": attempt.Difficulty})
	log.Debug("recording attempt: score=%d", attempt.Score)

	ctx, cancel := context.WithTimeout(ctx, s.opts.timeout)
	defer cancel()

	var entryID int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		now := s.opts.now().UTC()

		id, err := repos.Progress.Append(ctx, models.ProgressEntry{
			Word:        attempt.Word,
			Difficulty:  attempt.Difficulty,
			Score:       attempt.Score,
			CompletedAt: now,
		})
		if err != nil {
			return err
		}
		entryID = id

		stats, err := repos.Statistics.GetOrCreate(ctx)
		if err != nil {
			return err
		}
		if err := stats.Apply(attempt, now); err != nil {
			return errors.NewValidationError("score", err.Error())
		}
		return repos.Statistics.Commit(ctx, *stats)
	})
	if errors.HasCode(err, errors.ErrCodeValidation) {
		log.Warn("rejected attempt: %v", err)
		return err
	}
	if err != nil {
		log.Error("database error while recording progress: %v", err)
		return errors.NewStorageError(err)
	}

	log.Info("recorded progress: entry_id=%d", entryID)
	return nil
}

func (s *progressService) Recent(ctx context.Context, limit int) ([]models.ProgressEntry, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing recent progress: limit=%d", limit)

	if limit < 0 {
		return nil, errors.NewValidationError("limit", "must not be negative")
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.timeout)
	defer cancel()

	entries, err := s.progress.Recent(ctx, limit)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, errors.NewStorageError(err)
	}
	if entries == nil {
		entries = []models.ProgressEntry{}
	}
	return entries, nil
}
