package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultCylinderPrice is the price the settings singleton starts with.
const DefaultCylinderPrice = 877.5

// SettingsID is the fixed identifier of the settings singleton.
var SettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// MaxListSize caps every list query.
const MaxListSize = 1000

// PriceChange is one entry of the cylinder price history.
type PriceChange struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// PriceHistory is stored as a JSONB array, oldest first.
type PriceHistory []PriceChange

// Value implements driver.Valuer.
func (h PriceHistory) Value() (driver.Value, error) {
	if h == nil {
		h = PriceHistory{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *PriceHistory) Scan(src interface{}) error {
	return scanJSONArray(src, h)
}

// Settings is the singleton pricing record.
type Settings struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	CylinderPrice float64      `db:"cylinder_price" json:"cylinder_price"`
	PriceHistory  PriceHistory `db:"price_history" json:"price_history"`
	UpdatedAt     time.Time    `db:"updated_at" json:"updated_at"`
}

// NewDefaultSettings builds the record created on first read.
func NewDefaultSettings(now time.Time) *Settings {
	return &Settings{
		ID:            SettingsID,
		CylinderPrice: DefaultCylinderPrice,
		PriceHistory:  PriceHistory{{Date: now, Price: DefaultCylinderPrice}},
		UpdatedAt:     now,
	}
}

// Employee is a delivery staff member. Inactive employees are soft-deleted.
type Employee struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReconciliationReason annotates one missing or extra cylinder.
type ReconciliationReason struct {
	Type         MismatchType   `json:"type"`
	Reason       MismatchReason `json:"reason"`
	ConsumerName *string        `json:"consumer_name"`
}

// ReconciliationReasons is stored as a JSONB array in submission order.
type ReconciliationReasons []ReconciliationReason

// Value implements driver.Valuer.
func (r ReconciliationReasons) Value() (driver.Value, error) {
	if r == nil {
		r = ReconciliationReasons{}
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (r *ReconciliationReasons) Scan(src interface{}) error {
	return scanJSONArray(src, r)
}

// Delivery is one employee's delivery round for a day. The calculated_* fields
// are computed by the client and stored as received.
type Delivery struct {
	ID                      uuid.UUID             `db:"id" json:"id"`
	Date                    string                `db:"date" json:"date"`
	EmployeeName            string                `db:"employee_name" json:"employee_name"`
	CylindersDelivered      int                   `db:"cylinders_delivered" json:"cylinders_delivered"`
	EmptyReceived           int                   `db:"empty_received" json:"empty_received"`
	OnlinePayments          int                   `db:"online_payments" json:"online_payments"`
	PaytmPayments           int                   `db:"paytm_payments" json:"paytm_payments"`
	PartialDigitalAmount    float64               `db:"partial_digital_amount" json:"partial_digital_amount"`
	CashCollected           float64               `db:"cash_collected" json:"cash_collected"`
	CalculatedCashCylinders int                   `db:"calculated_cash_cylinders" json:"calculated_cash_cylinders"`
	CalculatedCashAmount    float64               `db:"calculated_cash_amount" json:"calculated_cash_amount"`
	CalculatedTotalPayable  float64               `db:"calculated_total_payable" json:"calculated_total_payable"`
	ReconciliationStatus    ReconciliationStatus  `db:"reconciliation_status" json:"reconciliation_status"`
	ReconciliationReasons   ReconciliationReasons `db:"reconciliation_reasons" json:"reconciliation_reasons"`
	CreatedAt               time.Time             `db:"created_at" json:"created_at"`
}

// DailySummary holds the per-date totals across all deliveries.
type DailySummary struct {
	TotalCylindersDelivered int     `json:"total_cylinders_delivered"`
	TotalEmptyReceived      int     `json:"total_empty_received"`
	TotalOnlinePayments     int     `json:"total_online_payments"`
	TotalPaytmPayments      int     `json:"total_paytm_payments"`
	TotalPartialDigital     float64 `json:"total_partial_digital"`
	TotalCashCollected      float64 `json:"total_cash_collected"`
}

func scanJSONArray(src, dst interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		b = []byte("[]")
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
	if len(b) == 0 || string(b) == "null" {
		b = []byte("[]")
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return errors.Join(errors.New("decoding JSON column"), err)
	}
	return nil
}
