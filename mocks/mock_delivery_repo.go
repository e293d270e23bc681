package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cylindertrack/internal/domain"
)

// MockDeliveryRepo is a mock implementation of port.DeliveryRepository.
type MockDeliveryRepo struct {
	mock.Mock
}

func (m *MockDeliveryRepo) Create(ctx context.Context, delivery *domain.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *MockDeliveryRepo) ListByDate(ctx context.Context, date string, limit int) ([]domain.Delivery, error) {
	args := m.Called(ctx, date, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Delivery), args.Error(1)
}

func (m *MockDeliveryRepo) Replace(ctx context.Context, delivery *domain.Delivery) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}
