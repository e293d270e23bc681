package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Deliveries"

// Built-in excelize number format "0.00".
const moneyNumFmt = 2

// WriteXLSX writes rows as a single-sheet workbook titled by date.
func WriteXLSX(w io.Writer, date string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: "Deliveries " + date}); err != nil {
		return fmt.Errorf("setting doc props: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt})
	if err != nil {
		return fmt.Errorf("creating money style: %w", err)
	}
	boldMoney, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: moneyNumFmt})
	if err != nil {
		return fmt.Errorf("creating totals style: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := setRow(f, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, 1, bold); err != nil {
		return err
	}

	for i, r := range rows {
		rowNum := i + 2
		if err := setRow(f, rowNum, r.values()); err != nil {
			return err
		}
		rowStyle, moneyStyle := 0, money
		if r.IsTotal() {
			rowStyle, moneyStyle = bold, boldMoney
		}
		if rowStyle != 0 {
			if err := styleRow(f, rowNum, rowStyle); err != nil {
				return err
			}
		}
		// Partial Digital and Cash Collected are columns G and H.
		if err := f.SetCellStyle(sheetName, cell(7, rowNum), cell(8, rowNum), moneyStyle); err != nil {
			return fmt.Errorf("styling row %d: %w", rowNum, err)
		}
	}

	if err := f.SetColWidth(sheetName, "B", "B", 24); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(sheetName, "I", "I", 40); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (r Row) values() []interface{} {
	if r.IsTotal() {
		return []interface{}{
			totalLabel, r.StaffName,
			r.CylindersDelivered, r.EmptyReceived, r.OnlinePayments, r.PaytmPayments,
			r.PartialDigital, r.CashCollected, "",
		}
	}
	return []interface{}{
		r.Serial, r.StaffName,
		r.CylindersDelivered, r.EmptyReceived, r.OnlinePayments, r.PaytmPayments,
		r.PartialDigital, r.CashCollected, r.Reconciliation,
	}
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	if err := f.SetSheetRow(sheetName, cell(1, rowNum), &values); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}

func styleRow(f *excelize.File, rowNum, style int) error {
	if err := f.SetCellStyle(sheetName, cell(1, rowNum), cell(len(Columns), rowNum), style); err != nil {
		return fmt.Errorf("styling row %d: %w", rowNum, err)
	}
	return nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
