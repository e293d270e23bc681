package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cylindertrack/internal/domain"
)

// MockSettingsRepo is a mock implementation of port.SettingsRepository.
type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) GetOrCreate(ctx context.Context, defaults *domain.Settings) (*domain.Settings, error) {
	args := m.Called(ctx, defaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepo) AppendPrice(ctx context.Context, change domain.PriceChange) (*domain.Settings, error) {
	args := m.Called(ctx, change)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}
