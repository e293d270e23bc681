package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/port"
)

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	employee.ID = uuid.New()
	employee.Active = true
	employee.CreatedAt = time.Now().UTC()

	query := `INSERT INTO employees (id, name, active, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query,
		employee.ID, employee.Name, employee.Active, employee.CreatedAt)
	if err != nil {
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

func (r *employeeRepo) ListActive(ctx context.Context, limit int) ([]domain.Employee, error) {
	employees := []domain.Employee{}
	err := r.db.SelectContext(ctx, &employees,
		`SELECT id, name, active, created_at FROM employees
		WHERE active = TRUE ORDER BY created_at ASC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("employeeRepo.ListActive: %w", err)
	}
	return employees, nil
}

func (r *employeeRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE employees SET active = FALSE WHERE id = $1 AND active = TRUE", id)
	if err != nil {
		return fmt.Errorf("employeeRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
