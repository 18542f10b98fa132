package models

// SheetDiagnostics summarizes what extraction saw in a single sheet.
type SheetDiagnostics struct {
	// SheetName is the sheet the counts belong to.
	SheetName string `json:"sheet_name"`
	// PersonnelCount is the number of records emitted from the sheet.
	PersonnelCount int `json:"personnel_count"`
	// DataRows is the number of rows that produced at least one record.
	DataRows int `json:"data_rows"`
}

// ExtractionResult is the workbook-level container returned by extraction.
type ExtractionResult struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Records holds all extracted records in workbook order: sheets in
	// workbook order, rows top to bottom, personnel columns left to right.
	Records []Record `json:"records"`
	// AccountCounts tallies records per account. Diagnostic only.
	AccountCounts map[string]int `json:"account_counts,omitempty"`
	// SheetCounts holds per-sheet diagnostics in workbook order.
	SheetCounts []SheetDiagnostics `json:"sheet_counts,omitempty"`
	// SkippedSheets lists sheets whose header could not be located.
	SkippedSheets []string `json:"skipped_sheets,omitempty"`
}

// TotalPersonnel returns the total number of extracted records.
func (r *ExtractionResult) TotalPersonnel() int {
	return len(r.Records)
}
