package repository

import (
	"context"

	"github.com/vytor/wordgame/internal/models"
)

// ProgressRepository is the append-only log of recorded attempts.
type ProgressRepository interface {
	Append(ctx context.Context, entry models.ProgressEntry) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.ProgressEntry, error)
	Count(ctx context.Context) (int, error)
}

// StatisticsRepository persists the singleton statistics row.
type StatisticsRepository interface {
	GetOrCreate(ctx context.Context) (*models.Statistics, error)
	Commit(ctx context.Context, stats models.Statistics) error
}

// Repositories are bound to a single transaction inside Transactor.WithinTx.
type Repositories struct {
	Progress   ProgressRepository
	Statistics StatisticsRepository
}

// Transactor runs fn in one transaction. Returning an error from fn rolls back
// every write made through repos.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
