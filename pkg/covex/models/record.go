// Package models defines data structures for coverage extraction.
package models

// Record is one normalized (account, role, person) assignment extracted
// from a coverage workbook.
type Record struct {
	// Account is the client organization name.
	Account string `json:"account"`
	// ClientType is the client sub-type label, empty when absent.
	ClientType string `json:"client_type"`
	// Leader is the account leader, empty when absent.
	Leader string `json:"leader"`
	// ATLManager is the ATL manager, empty when absent.
	ATLManager string `json:"atl_manager"`
	// TechnologyArea is the sheet name the record came from.
	TechnologyArea string `json:"technology_area"`
	// RoleCategory is the broad grouping label spanning adjacent role columns,
	// empty when no category precedes the role column.
	RoleCategory string `json:"role_category"`
	// Role is the specific role column label.
	Role string `json:"role"`
	// Person is the individual filling the role. Always non-empty and never a
	// placeholder value.
	Person string `json:"person"`
	// Allocation is the fractional FTE weight (1/n over n distinct accounts the
	// person serves). Zero until the allocation pass has run.
	Allocation float64 `json:"allocation,omitempty"`
}
