package domain

// ReconciliationStatus records whether a delivery's mismatches have been accounted for.
// Stored as supplied; only pending and completed are set by clients.
type ReconciliationStatus string

const (
	ReconciliationPending   ReconciliationStatus = "pending"
	ReconciliationCompleted ReconciliationStatus = "completed"
)

// MismatchType says which way a cylinder count is off.
type MismatchType string

const (
	MismatchMissing MismatchType = "missing"
	MismatchExtra   MismatchType = "extra"
)

// MismatchReason is the recorded cause of a cylinder mismatch.
type MismatchReason string

const (
	ReasonNC          MismatchReason = "NC"
	ReasonDBC         MismatchReason = "DBC"
	ReasonTV          MismatchReason = "TV"
	ReasonEmptyBaki   MismatchReason = "Empty baki"
	ReasonEmptyReturn MismatchReason = "Empty Return"
)

// AllowedMismatchTypes lists the accepted reconciliation reason types.
var AllowedMismatchTypes = map[MismatchType]bool{
	MismatchMissing: true,
	MismatchExtra:   true,
}

// AllowedMismatchReasons lists the accepted reconciliation reason codes.
var AllowedMismatchReasons = map[MismatchReason]bool{
	ReasonNC:          true,
	ReasonDBC:         true,
	ReasonTV:          true,
	ReasonEmptyBaki:   true,
	ReasonEmptyReturn: true,
}

// ExportFormat is the file format of a daily delivery export.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ContentTypes maps export formats to their MIME types.
var ContentTypes = map[ExportFormat]string{
	ExportCSV:  "text/csv; charset=utf-8",
	ExportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}
