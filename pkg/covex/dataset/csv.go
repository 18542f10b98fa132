package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mgaspar/covex/pkg/covex/models"
)

// csvHeader is the fixed export header, matching the record field names.
var csvHeader = []string{
	"account", "client_type", "leader", "atl_manager",
	"technology_area", "role_category", "role", "person",
}

// WriteCSV writes records as CSV in dataset order. When withAllocation is
// set, an allocation column is appended. An empty record set still produces
// the header row.
func WriteCSV(w io.Writer, records []models.Record, withAllocation bool) error {
	cw := csv.NewWriter(w)

	header := csvHeader
	if withAllocation {
		header = append(append([]string{}, csvHeader...), "allocation")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Account, r.ClientType, r.Leader, r.ATLManager,
			r.TechnologyArea, r.RoleCategory, r.Role, r.Person,
		}
		if withAllocation {
			row = append(row, strconv.FormatFloat(r.Allocation, 'f', -1, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
