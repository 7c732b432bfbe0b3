package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/wordgame/internal/repository"
)

// MockTransactor runs the callback against fixed repositories. Set BeginErr
// to simulate a failure to open the transaction.
type MockTransactor struct {
	mock.Mock
	Repos    repository.Repositories
	BeginErr error
}

func (m *MockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	m.Called(ctx)
	if m.BeginErr != nil {
		return m.BeginErr
	}
	return fn(ctx, m.Repos)
}
