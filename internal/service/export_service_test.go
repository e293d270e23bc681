package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/export"
	"cylindertrack/internal/port"
	"cylindertrack/internal/service"
	"cylindertrack/mocks"
)

var exportCfg = service.ExportConfig{Prefix: "exports", PresignExpiry: 900}

func storedDeliveries() []domain.Delivery {
	in := validDeliveryInput("2024-01-15")
	d := in.ToDomain()
	return []domain.Delivery{*d}
}

func TestParseExportFormat(t *testing.T) {
	f, err := service.ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportCSV, f)

	f, err = service.ParseExportFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, domain.ExportXLSX, f)

	_, err = service.ParseExportFormat("pdf")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExportService_Export_CSV(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := service.NewExportService(repo, nil, exportCfg, nil, nil)

	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return(storedDeliveries(), nil)

	file, err := svc.Export(context.Background(), "2024-01-15", domain.ExportCSV)

	require.NoError(t, err)
	assert.Equal(t, "deliveries_2024-01-15.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, export.BOM))
	assert.Contains(t, string(file.Data), "NC: Mehta, Empty baki")
	assert.Contains(t, string(file.Data), "TOTAL")
}

func TestExportService_Export_XLSX(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := service.NewExportService(repo, nil, exportCfg, nil, nil)

	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return(storedDeliveries(), nil)

	file, err := svc.Export(context.Background(), "2024-01-15", domain.ExportXLSX)

	require.NoError(t, err)
	assert.Equal(t, "deliveries_2024-01-15.xlsx", file.Filename)
	// XLSX files are zip archives.
	assert.True(t, bytes.HasPrefix(file.Data, []byte("PK")))
}

func TestExportService_Export_NoDeliveries(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := service.NewExportService(repo, nil, exportCfg, nil, nil)

	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return([]domain.Delivery{}, nil)

	file, err := svc.Export(context.Background(), "2024-01-15", domain.ExportCSV)

	assert.Nil(t, file)
	assert.ErrorIs(t, err, domain.ErrNoDeliveries)
}

func TestExportService_Export_UnknownFormat(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := service.NewExportService(repo, nil, exportCfg, nil, nil)

	_, err := svc.Export(context.Background(), "2024-01-15", domain.ExportFormat("pdf"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	repo.AssertNotCalled(t, "ListByDate", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportService_Share_NoStorage(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := service.NewExportService(repo, nil, exportCfg, nil, nil)

	shared, err := svc.Share(context.Background(), "2024-01-15", domain.ExportCSV)

	assert.Nil(t, shared)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestExportService_Share_Success(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewExportService(repo, storage, exportCfg, nil, nil)

	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return(storedDeliveries(), nil)

	var uploadedKey string
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return strings.HasPrefix(in.Key, "exports/2024-01-15/") &&
			strings.HasSuffix(in.Key, ".csv") &&
			in.ContentType == "text/csv; charset=utf-8" &&
			in.ContentDisposition == `attachment; filename="deliveries_2024-01-15.csv"` &&
			in.Size > 0
	})).Run(func(args mock.Arguments) {
		uploadedKey = args.Get(1).(port.UploadInput).Key
	}).Return(&port.UploadOutput{ETag: "etag"}, nil)
	storage.On("GetPresignedURL", mock.Anything, mock.AnythingOfType("string"), int64(900)).
		Return("https://bucket.example/exports/file.csv?sig=1", nil)

	shared, err := svc.Share(context.Background(), "2024-01-15", domain.ExportCSV)

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example/exports/file.csv?sig=1", shared.URL)
	assert.Equal(t, uploadedKey, shared.Key)
	assert.Equal(t, int64(900), shared.ExpiresIn)
	storage.AssertExpectations(t)
}

func TestExportService_Share_UploadFails(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewExportService(repo, storage, exportCfg, nil, nil)

	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return(storedDeliveries(), nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	shared, err := svc.Share(context.Background(), "2024-01-15", domain.ExportCSV)

	assert.Nil(t, shared)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	storage.AssertNotCalled(t, "GetPresignedURL", mock.Anything, mock.Anything, mock.Anything)
}
