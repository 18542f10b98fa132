package covex

import (
	"errors"
	"fmt"

	"github.com/mgaspar/covex/pkg/covex/parser"
)

// ErrHeaderNotFound indicates a sheet's header block could not be located.
// The sheet is skipped; workbook extraction continues.
var ErrHeaderNotFound = parser.ErrHeaderNotFound

// ErrWorkbookUnreadable indicates the input file could not be opened or
// parsed as an xlsx workbook. Fatal for the whole extraction.
var ErrWorkbookUnreadable = errors.New("workbook unreadable")

// SheetError represents a failure scoped to a single sheet.
type SheetError struct {
	SheetName string
	Stage     string // "header", "rows"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, stage string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       err,
	}
}
