// Package export renders a day's deliveries as CSV or XLSX.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"cylindertrack/internal/domain"
)

// Columns is the header row shared by every export format.
var Columns = []string{
	"S.No",
	"Staff Name",
	"Cylinders Delivered",
	"Empty Received",
	"Online Payments",
	"Paytm Payments",
	"Partial Digital",
	"Cash Collected",
	"Reconciliation",
}

const (
	totalLabel = "TOTAL"
	noMismatch = "No mismatch"
)

// Row is one line of the export. Serial is 0 on the totals row.
type Row struct {
	Serial             int
	StaffName          string
	CylindersDelivered int
	EmptyReceived      int
	OnlinePayments     int
	PaytmPayments      int
	PartialDigital     float64
	CashCollected      float64
	Reconciliation     string
}

// IsTotal reports whether r is the trailing totals row.
func (r Row) IsTotal() bool {
	return r.Serial == 0
}

// Rows builds one row per delivery followed by the totals row.
func Rows(deliveries []domain.Delivery) []Row {
	rows := make([]Row, 0, len(deliveries)+1)
	for i := range deliveries {
		d := &deliveries[i]
		rows = append(rows, Row{
			Serial:             i + 1,
			StaffName:          d.EmployeeName,
			CylindersDelivered: d.CylindersDelivered,
			EmptyReceived:      d.EmptyReceived,
			OnlinePayments:     d.OnlinePayments,
			PaytmPayments:      d.PaytmPayments,
			PartialDigital:     d.PartialDigitalAmount,
			CashCollected:      d.CashCollected,
			Reconciliation:     ReconciliationText(d.ReconciliationReasons),
		})
	}

	s := domain.Summarize(deliveries)
	rows = append(rows, Row{
		CylindersDelivered: s.TotalCylindersDelivered,
		EmptyReceived:      s.TotalEmptyReceived,
		OnlinePayments:     s.TotalOnlinePayments,
		PaytmPayments:      s.TotalPaytmPayments,
		PartialDigital:     s.TotalPartialDigital,
		CashCollected:      s.TotalCashCollected,
	})
	return rows
}

// ReconciliationText renders reasons as "reason[: consumer]" joined by ", ".
func ReconciliationText(reasons domain.ReconciliationReasons) string {
	if len(reasons) == 0 {
		return noMismatch
	}
	parts := make([]string, 0, len(reasons))
	for _, r := range reasons {
		text := string(r.Reason)
		if r.ConsumerName != nil && strings.TrimSpace(*r.ConsumerName) != "" {
			text += ": " + *r.ConsumerName
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}

// Filename returns the attachment name for a date and format.
func Filename(date string, format domain.ExportFormat) string {
	return fmt.Sprintf("deliveries_%s.%s", date, format)
}

func (r Row) cells() []string {
	serial := totalLabel
	reconciliation := ""
	if !r.IsTotal() {
		serial = strconv.Itoa(r.Serial)
		reconciliation = r.Reconciliation
	}
	return []string{
		serial,
		r.StaffName,
		strconv.Itoa(r.CylindersDelivered),
		strconv.Itoa(r.EmptyReceived),
		strconv.Itoa(r.OnlinePayments),
		strconv.Itoa(r.PaytmPayments),
		domain.FormatMoney(r.PartialDigital),
		domain.FormatMoney(r.CashCollected),
		reconciliation,
	}
}

