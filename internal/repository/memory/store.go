// Package memory keeps settings, employees and deliveries in process memory.
// It backs store.driver=memory and the service tests.
package memory

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/port"
)

// Store is a concurrency-safe in-memory implementation of every repository port.
type Store struct {
	mu         sync.RWMutex
	settings   *domain.Settings
	employees  map[uuid.UUID]*domain.Employee
	empOrder   []uuid.UUID
	deliveries map[uuid.UUID]*domain.Delivery
	delOrder   []uuid.UUID
	now        func() time.Time
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		employees:  make(map[uuid.UUID]*domain.Employee),
		deliveries: make(map[uuid.UUID]*domain.Delivery),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// PingContext always succeeds.
func (s *Store) PingContext(ctx context.Context) error {
	return ctx.Err()
}

// Settings returns the SettingsRepository view of the store.
func (s *Store) Settings() port.SettingsRepository { return settingsRepo{s} }

// Employees returns the EmployeeRepository view of the store.
func (s *Store) Employees() port.EmployeeRepository { return employeeRepo{s} }

// Deliveries returns the DeliveryRepository view of the store.
func (s *Store) Deliveries() port.DeliveryRepository { return deliveryRepo{s} }

type settingsRepo struct{ s *Store }

func (r settingsRepo) GetOrCreate(_ context.Context, defaults *domain.Settings) (*domain.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings == nil {
		created := copySettings(defaults)
		created.ID = domain.SettingsID
		r.s.settings = created
	}
	return copySettings(r.s.settings), nil
}

func (r settingsRepo) AppendPrice(_ context.Context, change domain.PriceChange) (*domain.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	change.Date = change.Date.UTC()
	if r.s.settings == nil {
		r.s.settings = &domain.Settings{ID: domain.SettingsID, PriceHistory: domain.PriceHistory{}}
	}
	r.s.settings.CylinderPrice = change.Price
	r.s.settings.PriceHistory = append(r.s.settings.PriceHistory, change)
	r.s.settings.UpdatedAt = change.Date
	return copySettings(r.s.settings), nil
}

type employeeRepo struct{ s *Store }

func (r employeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	employee.ID = uuid.New()
	employee.Active = true
	employee.CreatedAt = r.s.now()
	stored := *employee
	r.s.employees[employee.ID] = &stored
	r.s.empOrder = append(r.s.empOrder, employee.ID)
	return nil
}

func (r employeeRepo) ListActive(_ context.Context, limit int) ([]domain.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Employee{}
	for _, id := range r.s.empOrder {
		if len(out) >= limit {
			break
		}
		if e := r.s.employees[id]; e.Active {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r employeeRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.employees[id]
	if !ok || !e.Active {
		return domain.ErrNotFound
	}
	e.Active = false
	return nil
}

type deliveryRepo struct{ s *Store }

func (r deliveryRepo) Create(_ context.Context, delivery *domain.Delivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delivery.ID = uuid.New()
	delivery.CreatedAt = r.s.now()
	if delivery.ReconciliationReasons == nil {
		delivery.ReconciliationReasons = domain.ReconciliationReasons{}
	}
	r.s.deliveries[delivery.ID] = copyDelivery(delivery)
	r.s.delOrder = append(r.s.delOrder, delivery.ID)
	return nil
}

func (r deliveryRepo) ListByDate(_ context.Context, date string, limit int) ([]domain.Delivery, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := []domain.Delivery{}
	for _, id := range r.s.delOrder {
		if len(out) >= limit {
			break
		}
		if d := r.s.deliveries[id]; d.Date == date {
			out = append(out, *copyDelivery(d))
		}
	}
	return out, nil
}

func (r deliveryRepo) Replace(_ context.Context, delivery *domain.Delivery) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.deliveries[delivery.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if delivery.ReconciliationReasons == nil {
		delivery.ReconciliationReasons = domain.ReconciliationReasons{}
	}

	next := copyDelivery(delivery)
	next.CreatedAt = existing.CreatedAt
	// Unchanged payloads report not found, matching the SQL store.
	if reflect.DeepEqual(existing, next) {
		return domain.ErrNotFound
	}
	r.s.deliveries[delivery.ID] = next
	delivery.CreatedAt = existing.CreatedAt
	return nil
}

func copySettings(src *domain.Settings) *domain.Settings {
	out := *src
	out.PriceHistory = append(domain.PriceHistory{}, src.PriceHistory...)
	return &out
}

func copyDelivery(src *domain.Delivery) *domain.Delivery {
	out := *src
	out.ReconciliationReasons = make(domain.ReconciliationReasons, len(src.ReconciliationReasons))
	for i, reason := range src.ReconciliationReasons {
		if reason.ConsumerName != nil {
			name := *reason.ConsumerName
			reason.ConsumerName = &name
		}
		out.ReconciliationReasons[i] = reason
	}
	return &out
}
