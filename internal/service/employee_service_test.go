package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/repository/memory"
	"cylindertrack/internal/service"
	"cylindertrack/mocks"
)

func TestEmployeeService_Create_Success(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Employee")).Return(nil)

	employee, err := svc.Create(context.Background(), service.CreateEmployeeInput{Name: "Ravi"})

	assert.NoError(t, err)
	assert.Equal(t, "Ravi", employee.Name)
	assert.True(t, employee.Active)
	repo.AssertExpectations(t)
}

func TestEmployeeService_Create_BlankName(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)

	employee, err := svc.Create(context.Background(), service.CreateEmployeeInput{Name: "   "})

	assert.Nil(t, employee)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_ListActive_UsesCap(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)

	expected := []domain.Employee{{ID: uuid.New(), Name: "Ravi", Active: true}}
	repo.On("ListActive", mock.Anything, domain.MaxListSize).Return(expected, nil)

	employees, err := svc.ListActive(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, employees)
}

func TestEmployeeService_Deactivate_NotFound(t *testing.T) {
	repo := new(mocks.MockEmployeeRepo)
	svc := service.NewEmployeeService(repo)

	id := uuid.New()
	repo.On("Deactivate", mock.Anything, id).Return(domain.ErrNotFound)

	err := svc.Deactivate(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := service.NewEmployeeService(memory.NewStore().Employees())

	created, err := svc.Create(ctx, service.CreateEmployeeInput{Name: "Ravi"})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Contains(t, active, *created)

	require.NoError(t, svc.Deactivate(ctx, created.ID))

	active, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.NotContains(t, active, *created)
	for _, e := range active {
		assert.NotEqual(t, created.ID, e.ID)
	}

	assert.ErrorIs(t, svc.Deactivate(ctx, created.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Deactivate(ctx, uuid.New()), domain.ErrNotFound)
}
