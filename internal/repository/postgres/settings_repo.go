package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/port"
)

type settingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new PostgreSQL-backed SettingsRepository.
func NewSettingsRepo(db *sqlx.DB) port.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetOrCreate(ctx context.Context, defaults *domain.Settings) (*domain.Settings, error) {
	query := `INSERT INTO settings (id, cylinder_price, price_history, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		domain.SettingsID, defaults.CylinderPrice, defaults.PriceHistory, defaults.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("settingsRepo.GetOrCreate insert: %w", err)
	}

	var settings domain.Settings
	err = r.db.GetContext(ctx, &settings,
		"SELECT id, cylinder_price, price_history, updated_at FROM settings WHERE id = $1", domain.SettingsID)
	if err != nil {
		return nil, fmt.Errorf("settingsRepo.GetOrCreate: %w", err)
	}
	return &settings, nil
}

func (r *settingsRepo) AppendPrice(ctx context.Context, change domain.PriceChange) (*domain.Settings, error) {
	change.Date = change.Date.UTC()
	history := domain.PriceHistory{change}

	// Single statement: concurrent updates each append their own history entry.
	query := `INSERT INTO settings (id, cylinder_price, price_history, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			cylinder_price = EXCLUDED.cylinder_price,
			price_history = settings.price_history || EXCLUDED.price_history,
			updated_at = EXCLUDED.updated_at
		RETURNING id, cylinder_price, price_history, updated_at`

	var settings domain.Settings
	err := r.db.GetContext(ctx, &settings, query,
		domain.SettingsID, change.Price, history, change.Date)
	if err != nil {
		return nil, fmt.Errorf("settingsRepo.AppendPrice: %w", err)
	}
	return &settings, nil
}
