package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/port"
)

// CreateEmployeeInput is the DTO for creating an employee.
type CreateEmployeeInput struct {
	Name string `json:"name" binding:"required"`
}

// EmployeeService defines the employee management contract.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	ListActive(ctx context.Context) ([]domain.Employee, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	repo port.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService implementation.
func NewEmployeeService(repo port.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (s *employeeService) Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrEmptyName
	}
	employee := &domain.Employee{
		Name:   input.Name,
		Active: true,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListActive(ctx context.Context) ([]domain.Employee, error) {
	return s.repo.ListActive(ctx, domain.MaxListSize)
}

func (s *employeeService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Deactivate(ctx, id)
}
