package parser

import (
	"strings"

	"github.com/mgaspar/covex/pkg/covex/models"
)

// RowContext carries the per-sheet state needed to turn data rows into
// records: the resolved header, the role map, and the classifier.
type RowContext struct {
	// SheetName is the current sheet, used as the technology area.
	SheetName string
	// Header is the resolved header block.
	Header SheetHeader
	// Roles resolves role and category per personnel column.
	Roles RoleMap
	// Classifier classifies personnel cells.
	Classifier *Classifier
}

// ExtractRow extracts zero or more records from a single data row. A row
// whose account cell is empty or a placeholder yields nothing. Records are
// emitted in increasing personnel-column order.
func (rc *RowContext) ExtractRow(row []string) []models.Record {
	// The account cell is used whole, never split: a legal name may contain
	// commas or slashes.
	accountName := strings.TrimSpace(cellAt(row, rc.Header.AccountCol))
	if accountName == "" || rc.Classifier.isPlaceholder(accountName) {
		return nil
	}

	clientType := trimmedCellAt(row, rc.Header.ClientTypeCol)
	leader := trimmedCellAt(row, rc.Header.LeaderCol)
	manager := trimmedCellAt(row, rc.Header.ManagerCol)

	var records []models.Record
	for col := rc.Header.FirstPersonnelCol; col < len(row); col++ {
		cell := rc.Classifier.Classify(row[col])
		if cell.Kind != CellNames {
			continue
		}
		for _, person := range cell.Names {
			records = append(records, models.Record{
				Account:        accountName,
				ClientType:     clientType,
				Leader:         leader,
				ATLManager:     manager,
				TechnologyArea: rc.SheetName,
				RoleCategory:   rc.Roles.CategoryAt(col),
				Role:           rc.Roles.RoleAt(col),
				Person:         person,
			})
		}
	}
	return records
}

// cellAt reads a cell tolerating short rows and unresolved (-1) columns.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func trimmedCellAt(row []string, col int) string {
	return strings.TrimSpace(cellAt(row, col))
}
