package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/service"
)

// MockDeliveryService is a mock implementation of service.DeliveryService.
type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) Create(ctx context.Context, input service.DeliveryInput) (*domain.Delivery, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) ListByDate(ctx context.Context, date string) ([]domain.Delivery, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Delivery), args.Error(1)
}

func (m *MockDeliveryService) Replace(ctx context.Context, id uuid.UUID, input service.DeliveryInput) error {
	args := m.Called(ctx, id, input)
	return args.Error(0)
}

func (m *MockDeliveryService) DailySummary(ctx context.Context, date string) (*domain.DailySummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailySummary), args.Error(1)
}
