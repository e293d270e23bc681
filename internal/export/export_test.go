package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cylindertrack/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleDeliveries() []domain.Delivery {
	return []domain.Delivery{
		{
			EmployeeName:         "Ravi",
			CylindersDelivered:   25,
			EmptyReceived:        23,
			OnlinePayments:       15,
			PaytmPayments:        5,
			PartialDigitalAmount: 2500,
			CashCollected:        4387.5,
			ReconciliationReasons: domain.ReconciliationReasons{
				{Type: domain.MismatchMissing, Reason: domain.ReasonNC, ConsumerName: strPtr("Mehta")},
				{Type: domain.MismatchMissing, Reason: domain.ReasonEmptyBaki},
			},
		},
		{
			EmployeeName:         "Suresh",
			CylindersDelivered:   10,
			EmptyReceived:        10,
			OnlinePayments:       2,
			PaytmPayments:        1,
			PartialDigitalAmount: 100.25,
			CashCollected:        6142.5,
		},
	}
}

func TestReconciliationText(t *testing.T) {
	assert.Equal(t, "No mismatch", ReconciliationText(nil))
	assert.Equal(t, "NC: Mehta, Empty baki", ReconciliationText(domain.ReconciliationReasons{
		{Reason: domain.ReasonNC, ConsumerName: strPtr("Mehta")},
		{Reason: domain.ReasonEmptyBaki, ConsumerName: strPtr("  ")},
	}))
}

func TestRows_AppendsTotals(t *testing.T) {
	rows := Rows(sampleDeliveries())
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].Serial)
	assert.Equal(t, "NC: Mehta, Empty baki", rows[0].Reconciliation)
	assert.Equal(t, "No mismatch", rows[1].Reconciliation)

	total := rows[2]
	assert.True(t, total.IsTotal())
	assert.Equal(t, 35, total.CylindersDelivered)
	assert.Equal(t, 33, total.EmptyReceived)
	assert.Equal(t, 17, total.OnlinePayments)
	assert.Equal(t, 6, total.PaytmPayments)
	assert.Equal(t, 2600.25, total.PartialDigital)
	assert.Equal(t, 10530.0, total.CashCollected)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "deliveries_2024-01-15.csv", Filename("2024-01-15", domain.ExportCSV))
	assert.Equal(t, "deliveries_2024-01-15.xlsx", Filename("2024-01-15", domain.ExportXLSX))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Rows(sampleDeliveries())))

	require.True(t, bytes.HasPrefix(buf.Bytes(), BOM))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[len(BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, Columns, records[0])
	assert.Equal(t, []string{"1", "Ravi", "25", "23", "15", "5", "2500.00", "4387.50", "NC: Mehta, Empty baki"}, records[1])
	assert.Equal(t, []string{"2", "Suresh", "10", "10", "2", "1", "100.25", "6142.50", "No mismatch"}, records[2])
	assert.Equal(t, []string{"TOTAL", "", "35", "33", "17", "6", "2600.25", "10530.00", ""}, records[3])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "2024-01-15", Rows(sampleDeliveries())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Columns, rows[0])
	assert.Equal(t, "Ravi", rows[1][1])
	assert.Equal(t, "25", rows[1][2])
	assert.Equal(t, "4387.5", rows[1][7])
	assert.Equal(t, "TOTAL", rows[3][0])
	assert.Equal(t, "35", rows[3][2])
	assert.Equal(t, "10530", rows[3][7])
}
