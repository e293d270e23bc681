package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/export"
	"cylindertrack/internal/metrics"
	"cylindertrack/internal/port"
)

// ExportFile is a rendered daily export.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SharedExport points at an uploaded export.
type SharedExport struct {
	URL       string `json:"url"`
	Key       string `json:"key"`
	ExpiresIn int64  `json:"expires_in"`
}

// ExportConfig controls where shared exports are uploaded.
type ExportConfig struct {
	Prefix        string
	PresignExpiry int64
}

// ExportService defines the daily export contract.
type ExportService interface {
	Export(ctx context.Context, date string, format domain.ExportFormat) (*ExportFile, error)
	Share(ctx context.Context, date string, format domain.ExportFormat) (*SharedExport, error)
}

type exportService struct {
	repo    port.DeliveryRepository
	storage port.ObjectStorage
	cfg     ExportConfig
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewExportService creates a new ExportService. storage may be nil, in which
// case Share returns domain.ErrStorageUnavailable.
func NewExportService(
	repo port.DeliveryRepository,
	storage port.ObjectStorage,
	cfg ExportConfig,
	m *metrics.Metrics,
	log *zap.Logger,
) ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &exportService{repo: repo, storage: storage, cfg: cfg, metrics: m, log: log}
}

// ParseExportFormat maps a query value to a format. Empty selects CSV.
func ParseExportFormat(raw string) (domain.ExportFormat, error) {
	switch domain.ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", domain.ExportCSV:
		return domain.ExportCSV, nil
	case domain.ExportXLSX:
		return domain.ExportXLSX, nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

func (s *exportService) Export(ctx context.Context, date string, format domain.ExportFormat) (*ExportFile, error) {
	file, err := s.render(ctx, date, format)
	if err != nil {
		return nil, err
	}
	s.metrics.Export(string(format), "download")
	return file, nil
}

func (s *exportService) Share(ctx context.Context, date string, format domain.ExportFormat) (*SharedExport, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageUnavailable
	}

	file, err := s.render(ctx, date, format)
	if err != nil {
		return nil, err
	}

	key := path.Join(s.cfg.Prefix, date, fmt.Sprintf("%s.%s", uuid.New().String(), format))
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Key:                key,
		Body:               bytes.NewReader(file.Data),
		ContentType:        file.ContentType,
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", file.Filename),
		Size:               int64(len(file.Data)),
	})
	if err != nil {
		s.log.Error("uploading export", zap.String("key", key), zap.Error(err))
		return nil, errors.Join(domain.ErrUploadFailed, err)
	}

	url, err := s.storage.GetPresignedURL(ctx, key, s.cfg.PresignExpiry)
	if err != nil {
		s.log.Error("presigning export", zap.String("key", key), zap.Error(err))
		return nil, errors.Join(domain.ErrUploadFailed, err)
	}

	s.metrics.Export(string(format), "share")
	return &SharedExport{URL: url, Key: key, ExpiresIn: s.cfg.PresignExpiry}, nil
}

func (s *exportService) render(ctx context.Context, date string, format domain.ExportFormat) (*ExportFile, error) {
	contentType, ok := domain.ContentTypes[format]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}

	deliveries, err := s.repo.ListByDate(ctx, date, domain.MaxListSize)
	if err != nil {
		return nil, err
	}
	if len(deliveries) == 0 {
		return nil, domain.ErrNoDeliveries
	}

	rows := export.Rows(deliveries)
	var buf bytes.Buffer
	switch format {
	case domain.ExportXLSX:
		err = export.WriteXLSX(&buf, date, rows)
	default:
		err = export.WriteCSV(&buf, rows)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", format, err)
	}

	return &ExportFile{
		Filename:    export.Filename(date, format),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}
