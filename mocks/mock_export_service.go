package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, date string, format domain.ExportFormat) (*service.ExportFile, error) {
	args := m.Called(ctx, date, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockExportService) Share(ctx context.Context, date string, format domain.ExportFormat) (*service.SharedExport, error) {
	args := m.Called(ctx, date, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SharedExport), args.Error(1)
}
