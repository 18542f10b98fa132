package dataset

import "github.com/mgaspar/covex/pkg/covex/models"

// Allocate computes the fractional FTE weight for every record in place: a
// person appearing under n distinct accounts gets allocation 1/n on each of
// their records. Recomputing is idempotent because only (person, account)
// pairs feed the calculation; prior allocation values are ignored. n >= 1 by
// construction, so the division is always safe.
func Allocate(records []models.Record) {
	accounts := make(map[string]map[string]struct{})
	for _, r := range records {
		if accounts[r.Person] == nil {
			accounts[r.Person] = make(map[string]struct{})
		}
		accounts[r.Person][r.Account] = struct{}{}
	}

	for i := range records {
		records[i].Allocation = 1.0 / float64(len(accounts[records[i].Person]))
	}
}
