package port

import (
	"context"

	"github.com/google/uuid"

	"cylindertrack/internal/domain"
)

// SettingsRepository defines the contract for the settings singleton.
type SettingsRepository interface {
	// GetOrCreate returns the singleton, inserting defaults when it does not exist yet.
	GetOrCreate(ctx context.Context, defaults *domain.Settings) (*domain.Settings, error)
	// AppendPrice sets the current price and appends one history entry in a single write,
	// creating the singleton when absent.
	AppendPrice(ctx context.Context, change domain.PriceChange) (*domain.Settings, error)
}

// EmployeeRepository defines the contract for employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	ListActive(ctx context.Context, limit int) ([]domain.Employee, error)
	// Deactivate flips active to false. It returns domain.ErrNotFound when no row
	// changed, which covers both unknown and already inactive employees.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// DeliveryRepository defines the contract for delivery persistence.
type DeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.Delivery) error
	ListByDate(ctx context.Context, date string, limit int) ([]domain.Delivery, error)
	// Replace overwrites every field except id and created_at. It returns
	// domain.ErrNotFound when no row changed, including an identical payload.
	Replace(ctx context.Context, delivery *domain.Delivery) error
}
