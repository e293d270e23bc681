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

const deliveryColumns = `id, date, employee_name, cylinders_delivered, empty_received,
	online_payments, paytm_payments, partial_digital_amount, cash_collected,
	calculated_cash_cylinders, calculated_cash_amount, calculated_total_payable,
	reconciliation_status, reconciliation_reasons, created_at`

type deliveryRepo struct {
	db *sqlx.DB
}

// NewDeliveryRepo creates a new PostgreSQL-backed DeliveryRepository.
func NewDeliveryRepo(db *sqlx.DB) port.DeliveryRepository {
	return &deliveryRepo{db: db}
}

func (r *deliveryRepo) Create(ctx context.Context, delivery *domain.Delivery) error {
	delivery.ID = uuid.New()
	delivery.CreatedAt = time.Now().UTC()
	if delivery.ReconciliationReasons == nil {
		delivery.ReconciliationReasons = domain.ReconciliationReasons{}
	}

	query := `INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES (:id, :date, :employee_name, :cylinders_delivered, :empty_received,
			:online_payments, :paytm_payments, :partial_digital_amount, :cash_collected,
			:calculated_cash_cylinders, :calculated_cash_amount, :calculated_total_payable,
			:reconciliation_status, :reconciliation_reasons, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, delivery)
	if err != nil {
		return fmt.Errorf("deliveryRepo.Create: %w", err)
	}
	return nil
}

func (r *deliveryRepo) ListByDate(ctx context.Context, date string, limit int) ([]domain.Delivery, error) {
	deliveries := []domain.Delivery{}
	err := r.db.SelectContext(ctx, &deliveries,
		"SELECT "+deliveryColumns+" FROM deliveries WHERE date = $1 ORDER BY created_at ASC, id ASC LIMIT $2",
		date, limit)
	if err != nil {
		return nil, fmt.Errorf("deliveryRepo.ListByDate: %w", err)
	}
	return deliveries, nil
}

func (r *deliveryRepo) Replace(ctx context.Context, delivery *domain.Delivery) error {
	if delivery.ReconciliationReasons == nil {
		delivery.ReconciliationReasons = domain.ReconciliationReasons{}
	}

	// A payload identical to the stored row changes nothing and reports not found,
	// the same as an unknown id.
	query := `UPDATE deliveries SET
			date = :date,
			employee_name = :employee_name,
			cylinders_delivered = :cylinders_delivered,
			empty_received = :empty_received,
			online_payments = :online_payments,
			paytm_payments = :paytm_payments,
			partial_digital_amount = :partial_digital_amount,
			cash_collected = :cash_collected,
			calculated_cash_cylinders = :calculated_cash_cylinders,
			calculated_cash_amount = :calculated_cash_amount,
			calculated_total_payable = :calculated_total_payable,
			reconciliation_status = :reconciliation_status,
			reconciliation_reasons = :reconciliation_reasons
		WHERE id = :id AND (
			date, employee_name, cylinders_delivered, empty_received,
			online_payments, paytm_payments, partial_digital_amount, cash_collected,
			calculated_cash_cylinders, calculated_cash_amount, calculated_total_payable,
			reconciliation_status, reconciliation_reasons
		) IS DISTINCT FROM (
			CAST(:date AS TEXT), CAST(:employee_name AS TEXT),
			CAST(:cylinders_delivered AS INTEGER), CAST(:empty_received AS INTEGER),
			CAST(:online_payments AS INTEGER), CAST(:paytm_payments AS INTEGER),
			CAST(:partial_digital_amount AS DOUBLE PRECISION), CAST(:cash_collected AS DOUBLE PRECISION),
			CAST(:calculated_cash_cylinders AS INTEGER), CAST(:calculated_cash_amount AS DOUBLE PRECISION),
			CAST(:calculated_total_payable AS DOUBLE PRECISION),
			CAST(:reconciliation_status AS TEXT), CAST(:reconciliation_reasons AS JSONB)
		)`

	result, err := r.db.NamedExecContext(ctx, query, delivery)
	if err != nil {
		return fmt.Errorf("deliveryRepo.Replace: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
