// Package covex extracts normalized account-coverage records from Excel workbooks.
package covex

// HeaderStrategy selects how extraction locates the header block in a sheet.
type HeaderStrategy string

const (
	// StrategyFixed assumes a rigid layout: category row 0, role row 1, and
	// management columns at fixed indices.
	StrategyFixed HeaderStrategy = "fixed"
	// StrategyLabelSearch scans the leading rows for known header labels and
	// derives row and column positions from the match.
	StrategyLabelSearch HeaderStrategy = "label-search"
)

// ManagementLabels holds the header texts used to locate the fixed
// management columns under the label-search strategy.
type ManagementLabels struct {
	// Account is the account-name column header.
	Account string
	// ClientType is the client sub-type column header.
	ClientType string
	// Leader is the leader column header.
	Leader string
	// Manager is the ATL manager column header.
	Manager string
}

// Options configures extraction behavior.
type Options struct {
	// Strategy selects the header resolution strategy.
	Strategy HeaderStrategy
	// FixedCategoryRow is the category row index under StrategyFixed.
	FixedCategoryRow int
	// FixedRoleRow is the role row index under StrategyFixed.
	FixedRoleRow int
	// FixedAccountColumn is the account-name column index under StrategyFixed.
	FixedAccountColumn int
	// FixedClientTypeColumn is the client-type column index under StrategyFixed.
	FixedClientTypeColumn int
	// FixedLeaderColumn is the leader column index under StrategyFixed.
	FixedLeaderColumn int
	// FixedManagerColumn is the ATL manager column index under StrategyFixed.
	FixedManagerColumn int
	// FixedFirstPersonnelColumn is the first personnel column index under
	// StrategyFixed.
	FixedFirstPersonnelColumn int
	// Labels are the header texts matched under StrategyLabelSearch.
	Labels ManagementLabels
	// Placeholders are values that signify "not yet assigned", matched
	// case-insensitively against trimmed cell values. A run of one or more
	// hyphens is always treated as a placeholder regardless of this set.
	Placeholders []string
	// MaxDataRows caps how many data rows are scanned per sheet. Zero means
	// no cap.
	MaxDataRows int
	// Parallel extracts sheets concurrently. Record order is restored to
	// workbook order after the fan-in, so output is identical either way.
	Parallel bool
}

// DefaultOptions returns extraction defaults matching the canonical coverage
// workbook layout: management columns B through E, personnel from column H.
func DefaultOptions() Options {
	return Options{
		Strategy:                  StrategyFixed,
		FixedCategoryRow:          0,
		FixedRoleRow:              1,
		FixedAccountColumn:        1,
		FixedClientTypeColumn:     2,
		FixedLeaderColumn:         3,
		FixedManagerColumn:        4,
		FixedFirstPersonnelColumn: 7,
		Labels:                    DefaultLabels(),
		Placeholders:              DefaultPlaceholders(),
	}
}

// DefaultLabels returns the header labels found in the canonical workbook.
func DefaultLabels() ManagementLabels {
	return ManagementLabels{
		Account:    "Coverage Name",
		ClientType: "Client Sub Type",
		Leader:     "Leader",
		Manager:    "ATL Manager",
	}
}

// DefaultPlaceholders returns the placeholder values excluded from personnel
// counts.
func DefaultPlaceholders() []string {
	return []string{"TBD", "N/A", "None", "Select"}
}
