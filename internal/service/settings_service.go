package service

import (
	"context"
	"math"
	"time"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/port"
)

// UpdateSettingsInput is the DTO for changing the cylinder price.
type UpdateSettingsInput struct {
	CylinderPrice *float64 `json:"cylinder_price" binding:"required,gt=0"`
}

// SettingsService defines the pricing settings contract.
type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	UpdatePrice(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error)
}

type settingsService struct {
	repo port.SettingsRepository
	now  func() time.Time
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(repo port.SettingsRepository) SettingsService {
	return &settingsService{repo: repo, now: utcNow}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.repo.GetOrCreate(ctx, domain.NewDefaultSettings(s.now()))
}

func (s *settingsService) UpdatePrice(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	if input.CylinderPrice == nil {
		return nil, domain.ErrInvalidPrice
	}
	price := *input.CylinderPrice
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, domain.ErrInvalidPrice
	}
	return s.repo.AppendPrice(ctx, domain.PriceChange{Date: s.now(), Price: price})
}

func utcNow() time.Time {
	return time.Now().UTC()
}
