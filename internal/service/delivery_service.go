package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cylindertrack/internal/domain"
	"cylindertrack/internal/metrics"
	"cylindertrack/internal/port"
)

// ReconciliationReasonInput is one mismatch annotation in a delivery payload.
type ReconciliationReasonInput struct {
	Type         string  `json:"type" binding:"required,mismatch_type"`
	Reason       string  `json:"reason" binding:"required,mismatch_reason"`
	ConsumerName *string `json:"consumer_name"`
}

// DeliveryInput is the DTO for creating or replacing a delivery. Numeric fields
// are pointers so that zero is accepted while absence is rejected.
type DeliveryInput struct {
	Date                    string                      `json:"date" binding:"required,datetime=2006-01-02"`
	EmployeeName            string                      `json:"employee_name" binding:"required"`
	CylindersDelivered      *int                        `json:"cylinders_delivered" binding:"required,min=0"`
	EmptyReceived           *int                        `json:"empty_received" binding:"required,min=0"`
	OnlinePayments          *int                        `json:"online_payments" binding:"required,min=0"`
	PaytmPayments           *int                        `json:"paytm_payments" binding:"required,min=0"`
	PartialDigitalAmount    *float64                    `json:"partial_digital_amount" binding:"required,min=0"`
	CashCollected           *float64                    `json:"cash_collected" binding:"required,min=0"`
	CalculatedCashCylinders *int                        `json:"calculated_cash_cylinders" binding:"required"`
	CalculatedCashAmount    *float64                    `json:"calculated_cash_amount" binding:"required"`
	CalculatedTotalPayable  *float64                    `json:"calculated_total_payable" binding:"required"`
	ReconciliationStatus    string                      `json:"reconciliation_status"`
	ReconciliationReasons   []ReconciliationReasonInput `json:"reconciliation_reasons" binding:"omitempty,dive"`
}

// ToDomain converts the payload into a delivery without id or created_at.
func (in *DeliveryInput) ToDomain() *domain.Delivery {
	status := domain.ReconciliationStatus(in.ReconciliationStatus)
	if status == "" {
		status = domain.ReconciliationPending
	}
	reasons := make(domain.ReconciliationReasons, 0, len(in.ReconciliationReasons))
	for _, r := range in.ReconciliationReasons {
		reasons = append(reasons, domain.ReconciliationReason{
			Type:         domain.MismatchType(r.Type),
			Reason:       domain.MismatchReason(r.Reason),
			ConsumerName: r.ConsumerName,
		})
	}
	return &domain.Delivery{
		Date:                    in.Date,
		EmployeeName:            in.EmployeeName,
		CylindersDelivered:      derefInt(in.CylindersDelivered),
		EmptyReceived:           derefInt(in.EmptyReceived),
		OnlinePayments:          derefInt(in.OnlinePayments),
		PaytmPayments:           derefInt(in.PaytmPayments),
		PartialDigitalAmount:    derefFloat(in.PartialDigitalAmount),
		CashCollected:           derefFloat(in.CashCollected),
		CalculatedCashCylinders: derefInt(in.CalculatedCashCylinders),
		CalculatedCashAmount:    derefFloat(in.CalculatedCashAmount),
		CalculatedTotalPayable:  derefFloat(in.CalculatedTotalPayable),
		ReconciliationStatus:    status,
		ReconciliationReasons:   reasons,
	}
}

// DeliveryService defines the delivery record contract.
type DeliveryService interface {
	Create(ctx context.Context, input DeliveryInput) (*domain.Delivery, error)
	ListByDate(ctx context.Context, date string) ([]domain.Delivery, error)
	Replace(ctx context.Context, id uuid.UUID, input DeliveryInput) error
	DailySummary(ctx context.Context, date string) (*domain.DailySummary, error)
}

type deliveryService struct {
	repo    port.DeliveryRepository
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewDeliveryService creates a new DeliveryService implementation.
func NewDeliveryService(repo port.DeliveryRepository, m *metrics.Metrics, log *zap.Logger) DeliveryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &deliveryService{repo: repo, metrics: m, log: log}
}

func (s *deliveryService) Create(ctx context.Context, input DeliveryInput) (*domain.Delivery, error) {
	delivery := input.ToDomain()
	s.checkCalculations(delivery)
	if err := s.repo.Create(ctx, delivery); err != nil {
		return nil, err
	}
	return delivery, nil
}

func (s *deliveryService) ListByDate(ctx context.Context, date string) ([]domain.Delivery, error) {
	return s.repo.ListByDate(ctx, date, domain.MaxListSize)
}

func (s *deliveryService) Replace(ctx context.Context, id uuid.UUID, input DeliveryInput) error {
	delivery := input.ToDomain()
	delivery.ID = id
	s.checkCalculations(delivery)
	return s.repo.Replace(ctx, delivery)
}

func (s *deliveryService) DailySummary(ctx context.Context, date string) (*domain.DailySummary, error) {
	deliveries, err := s.repo.ListByDate(ctx, date, domain.MaxListSize)
	if err != nil {
		return nil, err
	}
	summary := domain.Summarize(deliveries)
	return &summary, nil
}

// checkCalculations reports client arithmetic that disagrees with ours.
// The delivery is stored unchanged either way.
func (s *deliveryService) checkCalculations(d *domain.Delivery) {
	fields := domain.CheckCalculations(d)
	if len(fields) == 0 {
		return
	}
	for _, f := range fields {
		s.metrics.CalcMismatch(f)
	}
	s.log.Warn("delivery calculations disagree with submitted values",
		zap.String("date", d.Date),
		zap.String("employee_name", d.EmployeeName),
		zap.Strings("fields", fields),
	)
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
