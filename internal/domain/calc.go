package domain

import "github.com/shopspring/decimal"

// moneyPlaces is the precision amounts are compared and reported at.
const moneyPlaces = 2

// Summarize folds deliveries into per-date totals. An empty input yields all zeros.
// Amounts are plain float64 sums.
func Summarize(deliveries []Delivery) DailySummary {
	var s DailySummary
	for i := range deliveries {
		d := &deliveries[i]
		s.TotalCylindersDelivered += d.CylindersDelivered
		s.TotalEmptyReceived += d.EmptyReceived
		s.TotalOnlinePayments += d.OnlinePayments
		s.TotalPaytmPayments += d.PaytmPayments
		s.TotalPartialDigital += d.PartialDigitalAmount
		s.TotalCashCollected += d.CashCollected
	}
	return s
}

// ExpectedCashCylinders is the number of cylinders that should have been paid in cash.
func ExpectedCashCylinders(delivered, online, paytm int) int {
	n := delivered - online - paytm
	if n < 0 {
		return 0
	}
	return n
}

// ExpectedTotalPayable is the cash still owed once partial digital payments are deducted.
func ExpectedTotalPayable(cashAmount, partialDigital float64) float64 {
	return decimal.NewFromFloat(cashAmount).Sub(decimal.NewFromFloat(partialDigital)).InexactFloat64()
}

// MoneyEqual reports whether two amounts agree to the paisa.
func MoneyEqual(a, b float64) bool {
	return decimal.NewFromFloat(a).Round(moneyPlaces).Equal(decimal.NewFromFloat(b).Round(moneyPlaces))
}

// FormatMoney renders an amount with exactly two decimal places.
func FormatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(moneyPlaces)
}

// CheckCalculations recomputes the price-independent client arithmetic and
// returns the names of fields that disagree. It never modifies d.
func CheckCalculations(d *Delivery) []string {
	var mismatched []string
	if d.CalculatedCashCylinders != ExpectedCashCylinders(d.CylindersDelivered, d.OnlinePayments, d.PaytmPayments) {
		mismatched = append(mismatched, "calculated_cash_cylinders")
	}
	if !MoneyEqual(ExpectedTotalPayable(d.CalculatedCashAmount, d.PartialDigitalAmount), d.CalculatedTotalPayable) {
		mismatched = append(mismatched, "calculated_total_payable")
	}
	return mismatched
}
