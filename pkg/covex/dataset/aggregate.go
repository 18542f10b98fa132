package dataset

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/mgaspar/covex/pkg/covex/models"
)

// FieldCount is one grouped count, sorted descending by count.
type FieldCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountBy groups records by the given key function and returns counts sorted
// by count descending, ties broken by value for a stable order.
func CountBy(records []models.Record, key func(models.Record) string) []FieldCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	out := make([]FieldCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, FieldCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// ByAccount returns record counts per account.
func ByAccount(records []models.Record) []FieldCount {
	return CountBy(records, func(r models.Record) string { return r.Account })
}

// ByTechnology returns record counts per technology area.
func ByTechnology(records []models.Record) []FieldCount {
	return CountBy(records, func(r models.Record) string { return r.TechnologyArea })
}

// ByRole returns record counts per role.
func ByRole(records []models.Record) []FieldCount {
	return CountBy(records, func(r models.Record) string { return r.Role })
}

// FilterValues holds the distinct values of every filterable field, each
// sorted ascending, for populating filter pickers.
type FilterValues struct {
	Accounts       []string `json:"accounts"`
	Technologies   []string `json:"technologies"`
	Roles          []string `json:"roles"`
	RoleCategories []string `json:"role_categories"`
	Leaders        []string `json:"leaders"`
	Managers       []string `json:"managers"`
}

// Distinct collects the distinct values of the filterable fields.
func Distinct(records []models.Record) FilterValues {
	return FilterValues{
		Accounts:       distinct(records, func(r models.Record) string { return r.Account }),
		Technologies:   distinct(records, func(r models.Record) string { return r.TechnologyArea }),
		Roles:          distinct(records, func(r models.Record) string { return r.Role }),
		RoleCategories: distinct(records, func(r models.Record) string { return r.RoleCategory }),
		Leaders:        distinct(records, func(r models.Record) string { return r.Leader }),
		Managers:       distinct(records, func(r models.Record) string { return r.ATLManager }),
	}
}

func distinct(records []models.Record, key func(models.Record) string) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if v := key(r); v != "" {
			seen[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Summary holds workbook-level statistics over the record set.
type Summary struct {
	TotalAccounts    int            `json:"total_accounts"`
	TotalPeople      int            `json:"total_people"`
	AvgPerAccount    float64        `json:"avg_per_account"`
	MedianPerAccount float64        `json:"median_per_account"`
	MaxPerAccount    float64        `json:"max_per_account"`
	TopAccount       string         `json:"top_account"`
	TopAccountCount  int            `json:"top_account_count"`
	TechCounts       map[string]int `json:"tech_counts"`
	RoleCounts       map[string]int `json:"role_counts"`
}

// Summarize computes summary statistics. Role counts are capped at the top
// ten roles. An empty record set produces a zero-valued summary.
func Summarize(records []models.Record) Summary {
	s := Summary{
		TotalPeople: len(records),
		TechCounts:  make(map[string]int),
		RoleCounts:  make(map[string]int),
	}

	accountCounts := ByAccount(records)
	s.TotalAccounts = len(accountCounts)
	if len(accountCounts) == 0 {
		return s
	}
	s.TopAccount = accountCounts[0].Value
	s.TopAccountCount = accountCounts[0].Count

	perAccount := make([]float64, len(accountCounts))
	for i, ac := range accountCounts {
		perAccount[i] = float64(ac.Count)
	}
	// stats errors only on empty input, which is excluded above.
	s.AvgPerAccount, _ = stats.Mean(perAccount)
	s.MedianPerAccount, _ = stats.Median(perAccount)
	s.MaxPerAccount, _ = stats.Max(perAccount)

	for _, tc := range ByTechnology(records) {
		s.TechCounts[tc.Value] = tc.Count
	}
	for i, rc := range ByRole(records) {
		if i >= 10 {
			break
		}
		s.RoleCounts[rc.Value] = rc.Count
	}
	return s
}

// PersonAssignment is one person's appearance on an account, as listed in an
// account detail.
type PersonAssignment struct {
	Person         string  `json:"person"`
	Role           string  `json:"role"`
	TechnologyArea string  `json:"technology_area"`
	Allocation     float64 `json:"allocation,omitempty"`
}

// AccountDetail is the drill-down view of a single account. Breakdown values
// are headcounts, or summed FTE allocations when built by AccountDetailFTE.
type AccountDetail struct {
	Account       string             `json:"account"`
	TotalPeople   int                `json:"total_people"`
	TotalFTE      float64            `json:"total_fte,omitempty"`
	TechBreakdown map[string]float64 `json:"tech_breakdown"`
	RoleBreakdown map[string]float64 `json:"role_breakdown"`
	People        []PersonAssignment `json:"people"`
}

// DetailFor builds the headcount detail of one account.
func DetailFor(records []models.Record, account string) AccountDetail {
	return detail(records, account, false)
}

// DetailForFTE builds the FTE detail of one account. Records must already
// carry allocations (see Allocate).
func DetailForFTE(records []models.Record, account string) AccountDetail {
	return detail(records, account, true)
}

func detail(records []models.Record, account string, fte bool) AccountDetail {
	d := AccountDetail{
		Account:       account,
		TechBreakdown: make(map[string]float64),
		RoleBreakdown: make(map[string]float64),
		People:        []PersonAssignment{},
	}
	for _, r := range records {
		if r.Account != account {
			continue
		}
		d.TotalPeople++
		weight := 1.0
		if fte {
			weight = r.Allocation
			d.TotalFTE += r.Allocation
		}
		d.TechBreakdown[r.TechnologyArea] += weight
		d.RoleBreakdown[r.Role] += weight

		p := PersonAssignment{Person: r.Person, Role: r.Role, TechnologyArea: r.TechnologyArea}
		if fte {
			p.Allocation = r.Allocation
		}
		d.People = append(d.People, p)
	}
	return d
}
