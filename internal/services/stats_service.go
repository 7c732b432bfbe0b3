package services

import (
	"context"

	"github.com/vytor/wordgame/internal/errors"
	"github.com/vytor/wordgame/internal/logger"
	"github.com/vytor/wordgame/internal/models"
	"github.com/vytor/wordgame/internal/repository"
)

// StatsService handles statistics-related business logic
type StatsService interface {
	GetStatistics(ctx context.Context) (*models.Statistics, error)
}

type statsService struct {
	statsRepo repository.StatisticsRepository
	opts      serviceOptions
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatisticsRepository, opts ...Option) StatsService {
	return &statsService{statsRepo: statsRepo, opts: newOptions(opts)}
}

// GetStatistics returns the current totals, creating the zeroed row on first use.
func (s *statsService) GetStatistics(ctx context.Context) (*models.Statistics, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting statistics")

	ctx, cancel := context.WithTimeout(ctx, s.opts.timeout)
	defer cancel()

	stats, err := s.statsRepo.GetOrCreate(ctx)
	if err != nil {
		log.Error("failed to get statistics: %v", err)
		return nil, errors.NewStorageError(err)
	}
	return stats, nil
}
