package parser

import (
	"errors"
	"strings"
)

// ErrHeaderNotFound indicates the header block could not be located in a
// sheet. Callers skip the sheet and continue with the rest of the workbook.
var ErrHeaderNotFound = errors.New("header not found")

// SheetHeader describes the resolved header block of a sheet: which rows hold
// category and role labels, where the management columns sit, and where the
// personnel grid begins.
type SheetHeader struct {
	// CategoryRow is the row holding role-category labels, -1 when the sheet
	// has no row above the role row.
	CategoryRow int
	// RoleRow is the row holding role labels.
	RoleRow int
	// AccountCol is the account-name column.
	AccountCol int
	// ClientTypeCol is the client sub-type column, -1 when not found.
	ClientTypeCol int
	// LeaderCol is the leader column, -1 when not found.
	LeaderCol int
	// ManagerCol is the ATL manager column, -1 when not found.
	ManagerCol int
	// FirstPersonnelCol is the first column of the personnel grid.
	FirstPersonnelCol int
}

// FixedLayout positions the header block at fixed offsets, for workbooks
// whose layout is known to be rigid.
type FixedLayout struct {
	CategoryRow       int
	RoleRow           int
	AccountCol        int
	ClientTypeCol     int
	LeaderCol         int
	ManagerCol        int
	FirstPersonnelCol int
}

// HeaderLabels are the header texts matched by the label-search strategy.
type HeaderLabels struct {
	Account    string
	ClientType string
	Leader     string
	Manager    string
}

// ResolveFixedHeader validates a fixed layout against the sheet dimensions.
// Returns ErrHeaderNotFound when the sheet is too short to hold the header
// block.
func ResolveFixedHeader(rows [][]string, layout FixedLayout) (SheetHeader, error) {
	if len(rows) <= layout.RoleRow {
		return SheetHeader{}, ErrHeaderNotFound
	}
	return SheetHeader{
		CategoryRow:       layout.CategoryRow,
		RoleRow:           layout.RoleRow,
		AccountCol:        layout.AccountCol,
		ClientTypeCol:     layout.ClientTypeCol,
		LeaderCol:         layout.LeaderCol,
		ManagerCol:        layout.ManagerCol,
		FirstPersonnelCol: layout.FirstPersonnelCol,
	}, nil
}

// ResolveHeaderByLabels scans the sheet top-down for a cell matching the
// account label. The matching row becomes the role row and the row directly
// above it (if any) the category row. Remaining management columns are
// resolved by matching their labels in the role row; the personnel grid
// starts one past the highest-indexed management column found.
func ResolveHeaderByLabels(rows [][]string, labels HeaderLabels) (SheetHeader, error) {
	roleRow, accountCol := -1, -1
	for r, row := range rows {
		for c, cell := range row {
			if labelEquals(cell, labels.Account) {
				roleRow, accountCol = r, c
				break
			}
		}
		if roleRow >= 0 {
			break
		}
	}
	if roleRow < 0 {
		return SheetHeader{}, ErrHeaderNotFound
	}

	h := SheetHeader{
		CategoryRow:   roleRow - 1,
		RoleRow:       roleRow,
		AccountCol:    accountCol,
		ClientTypeCol: findLabel(rows[roleRow], labels.ClientType),
		LeaderCol:     findLabel(rows[roleRow], labels.Leader),
		ManagerCol:    findLabel(rows[roleRow], labels.Manager),
	}

	last := h.AccountCol
	for _, col := range []int{h.ClientTypeCol, h.LeaderCol, h.ManagerCol} {
		if col > last {
			last = col
		}
	}
	h.FirstPersonnelCol = last + 1
	return h, nil
}

// findLabel returns the index of the first cell in row matching label, or -1.
func findLabel(row []string, label string) int {
	if label == "" {
		return -1
	}
	for c, cell := range row {
		if labelEquals(cell, label) {
			return c
		}
	}
	return -1
}

func labelEquals(cell, label string) bool {
	return strings.EqualFold(strings.TrimSpace(cell), strings.TrimSpace(label))
}

// RoleMap resolves, per personnel column, the role label and the inherited
// role category. Category labels are sparse in the sheet: a label merged
// across grouped role columns appears only in the leftmost column, so lookup
// scans left for the nearest non-empty label.
type RoleMap struct {
	categories map[int]string
	roles      map[int]string
}

// BuildRoleMap indexes the non-empty cells of the category and role rows.
// categoryRow may be nil when the sheet has no category row.
func BuildRoleMap(categoryRow, roleRow []string) RoleMap {
	return RoleMap{
		categories: indexLabels(categoryRow),
		roles:      indexLabels(roleRow),
	}
}

// RoleAt returns the role label for a personnel column: the nearest non-empty
// role cell at or left of col, or "" when none exists.
func (m RoleMap) RoleAt(col int) string {
	return nearestLeft(m.roles, col)
}

// CategoryAt returns the inherited category for a personnel column, or ""
// when no category appears at or before it.
func (m RoleMap) CategoryAt(col int) string {
	return nearestLeft(m.categories, col)
}

func indexLabels(row []string) map[int]string {
	labels := make(map[int]string)
	for c, cell := range row {
		if v := strings.TrimSpace(cell); v != "" {
			labels[c] = v
		}
	}
	return labels
}

func nearestLeft(labels map[int]string, col int) string {
	for c := col; c >= 0; c-- {
		if v, ok := labels[c]; ok {
			return v
		}
	}
	return ""
}
