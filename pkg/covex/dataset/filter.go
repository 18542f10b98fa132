// Package dataset provides filtering, aggregation, and export over extracted
// coverage records.
package dataset

import (
	"strings"

	"github.com/mgaspar/covex/pkg/covex/models"
)

// Filter selects records by field. Account, Role, Person, and Leader match as
// case-insensitive substrings; Technology matches the technology area exactly.
// Empty fields match everything.
type Filter struct {
	Account    string
	Technology string
	Role       string
	Person     string
	Leader     string
}

// Apply returns the records matching the filter, preserving input order.
// An all-empty filter returns the input slice unchanged.
func (f Filter) Apply(records []models.Record) []models.Record {
	if f == (Filter{}) {
		return records
	}
	out := make([]models.Record, 0, len(records))
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r models.Record) bool {
	if f.Technology != "" && r.TechnologyArea != f.Technology {
		return false
	}
	return containsFold(r.Account, f.Account) &&
		containsFold(r.Role, f.Role) &&
		containsFold(r.Person, f.Person) &&
		containsFold(r.Leader, f.Leader)
}

// containsFold reports whether s contains substr, ignoring case. An empty
// substr matches anything.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
