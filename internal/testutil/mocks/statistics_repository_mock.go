package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/wordgame/internal/models"
)

// MockStatisticsRepository is a mock implementation of repository.StatisticsRepository
type MockStatisticsRepository struct {
	mock.Mock
}

func (m *MockStatisticsRepository) GetOrCreate(ctx context.Context) (*models.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Statistics), args.Error(1)
}

func (m *MockStatisticsRepository) Commit(ctx context.Context, stats models.Statistics) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}
