package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgaspar/covex/pkg/covex/models"
)

func TestWriteCSV(t *testing.T) {
	records := []models.Record{
		{
			Account: "RBC", ClientType: "Enterprise", Leader: "J.Smith", ATLManager: "K.Patel",
			TechnologyArea: "Data", RoleCategory: "Analytics", Role: "BI Lead", Person: "Alice",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "account,client_type,leader,atl_manager,technology_area,role_category,role,person", lines[0])
	assert.Equal(t, "RBC,Enterprise,J.Smith,K.Patel,Data,Analytics,BI Lead,Alice", lines[1])
}

func TestWriteCSVWithAllocation(t *testing.T) {
	records := []models.Record{
		rec("A", "Alice"),
		rec("B", "Alice"),
	}
	Allocate(records)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records, true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], ",allocation"))
	assert.True(t, strings.HasSuffix(lines[1], ",0.5"))
}

func TestWriteCSVEmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, false))
	assert.Equal(t, "account,client_type,leader,atl_manager,technology_area,role_category,role,person\n", buf.String())
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	records := []models.Record{{Account: "Smith, Jones & Co", Person: "Alice"}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records, false))
	assert.Contains(t, buf.String(), `"Smith, Jones & Co"`)
}
