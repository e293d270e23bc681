package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/metrics"
	"cylindertrack/internal/repository/memory"
	"cylindertrack/internal/service"
	"cylindertrack/mocks"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func validDeliveryInput(date string) service.DeliveryInput {
	return service.DeliveryInput{
		Date:                    date,
		EmployeeName:            "Ravi",
		CylindersDelivered:      intPtr(25),
		EmptyReceived:           intPtr(23),
		OnlinePayments:          intPtr(15),
		PaytmPayments:           intPtr(5),
		PartialDigitalAmount:    floatPtr(2500),
		CashCollected:           floatPtr(4387.5),
		CalculatedCashCylinders: intPtr(5),
		CalculatedCashAmount:    floatPtr(4387.5),
		CalculatedTotalPayable:  floatPtr(1887.5),
		ReconciliationStatus:    "pending",
		ReconciliationReasons: []service.ReconciliationReasonInput{
			{Type: "missing", Reason: "NC", ConsumerName: strPtr("Mehta")},
			{Type: "missing", Reason: "Empty baki"},
		},
	}
}

func newDeliveryService(repo *mocks.MockDeliveryRepo) service.DeliveryService {
	return service.NewDeliveryService(repo, metrics.New(prometheus.NewRegistry()), zap.NewNop())
}

func TestDeliveryInput_ToDomain_Defaults(t *testing.T) {
	in := validDeliveryInput("2024-01-15")
	in.ReconciliationStatus = ""
	in.ReconciliationReasons = nil

	d := in.ToDomain()

	assert.Equal(t, domain.ReconciliationPending, d.ReconciliationStatus)
	assert.NotNil(t, d.ReconciliationReasons)
	assert.Empty(t, d.ReconciliationReasons)
	assert.Equal(t, uuid.Nil, d.ID)
	assert.True(t, d.CreatedAt.IsZero())
}

func TestDeliveryService_Create_Success(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := newDeliveryService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Delivery")).Return(nil)

	delivery, err := svc.Create(context.Background(), validDeliveryInput("2024-01-15"))

	assert.NoError(t, err)
	assert.Equal(t, "2024-01-15", delivery.Date)
	assert.Equal(t, "Ravi", delivery.EmployeeName)
	assert.Equal(t, 25, delivery.CylindersDelivered)
	require.Len(t, delivery.ReconciliationReasons, 2)
	assert.Equal(t, domain.ReasonNC, delivery.ReconciliationReasons[0].Reason)
	assert.Equal(t, "Mehta", *delivery.ReconciliationReasons[0].ConsumerName)
	assert.Nil(t, delivery.ReconciliationReasons[1].ConsumerName)
	repo.AssertExpectations(t)
}

func TestDeliveryService_Create_StoreError(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := newDeliveryService(repo)

	storeErr := errors.New("connection reset")
	repo.On("Create", mock.Anything, mock.Anything).Return(storeErr)

	delivery, err := svc.Create(context.Background(), validDeliveryInput("2024-01-15"))

	assert.Nil(t, delivery)
	assert.ErrorIs(t, err, storeErr)
}

func TestDeliveryService_Create_MismatchIsLoggedNotRejected(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	core, logs := observer.New(zap.WarnLevel)
	svc := service.NewDeliveryService(repo, metrics.New(prometheus.NewRegistry()), zap.New(core))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Delivery")).Return(nil)

	in := validDeliveryInput("2024-01-15")
	in.CalculatedCashCylinders = intPtr(9)

	delivery, err := svc.Create(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, 9, delivery.CalculatedCashCylinders)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, []interface{}{"calculated_cash_cylinders"}, logs.All()[0].ContextMap()["fields"])
}

func TestDeliveryService_Replace_SetsID(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := newDeliveryService(repo)

	id := uuid.New()
	repo.On("Replace", mock.Anything, mock.MatchedBy(func(d *domain.Delivery) bool {
		return d.ID == id && d.EmployeeName == "Ravi"
	})).Return(nil)

	err := svc.Replace(context.Background(), id, validDeliveryInput("2024-01-15"))

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeliveryService_Replace_NotFound(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := newDeliveryService(repo)

	repo.On("Replace", mock.Anything, mock.Anything).Return(domain.ErrNotFound)

	err := svc.Replace(context.Background(), uuid.New(), validDeliveryInput("2024-01-15"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeliveryService_DailySummary_Empty(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := newDeliveryService(repo)

	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return([]domain.Delivery{}, nil)

	summary, err := svc.DailySummary(context.Background(), "2024-01-15")

	assert.NoError(t, err)
	assert.Equal(t, domain.DailySummary{}, *summary)
}

func TestDeliveryService_DailySummary_StoreError(t *testing.T) {
	repo := new(mocks.MockDeliveryRepo)
	svc := newDeliveryService(repo)

	storeErr := errors.New("timeout")
	repo.On("ListByDate", mock.Anything, "2024-01-15", domain.MaxListSize).Return(nil, storeErr)

	summary, err := svc.DailySummary(context.Background(), "2024-01-15")

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, storeErr)
}

func TestDeliveryService_MemoryStore(t *testing.T) {
	ctx := context.Background()
	svc := service.NewDeliveryService(memory.NewStore().Deliveries(), nil, nil)

	created, err := svc.Create(ctx, validDeliveryInput("2024-01-15"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	list, err := svc.ListByDate(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *created, list[0])

	summary, err := svc.DailySummary(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, domain.DailySummary{
		TotalCylindersDelivered: 25,
		TotalEmptyReceived:      23,
		TotalOnlinePayments:     15,
		TotalPaytmPayments:      5,
		TotalPartialDigital:     2500,
		TotalCashCollected:      4387.5,
	}, *summary)

	second := validDeliveryInput("2024-01-15")
	second.CylindersDelivered = intPtr(10)
	second.CashCollected = floatPtr(100)
	_, err = svc.Create(ctx, second)
	require.NoError(t, err)

	summary, err = svc.DailySummary(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 35, summary.TotalCylindersDelivered)
	assert.Equal(t, 46, summary.TotalEmptyReceived)
	assert.Equal(t, 4487.5, summary.TotalCashCollected)

	replacement := validDeliveryInput("2024-01-15")
	replacement.EmployeeName = "Suresh"
	replacement.ReconciliationStatus = "completed"
	require.NoError(t, svc.Replace(ctx, created.ID, replacement))

	list, err = svc.ListByDate(ctx, "2024-01-15")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, created.CreatedAt, list[0].CreatedAt)
	assert.Equal(t, "Suresh", list[0].EmployeeName)
	assert.Equal(t, domain.ReconciliationCompleted, list[0].ReconciliationStatus)

	assert.ErrorIs(t, svc.Replace(ctx, uuid.New(), replacement), domain.ErrNotFound)
}
