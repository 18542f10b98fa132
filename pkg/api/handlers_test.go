package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgaspar/covex/pkg/covex/dataset"
	"github.com/mgaspar/covex/pkg/covex/models"
)

func testServer() *Server {
	return NewServer(&models.ExtractionResult{
		BookName: "coverage.xlsx",
		Records: []models.Record{
			{Account: "RBC", TechnologyArea: "Data", Role: "BI Lead", Person: "Alice", Leader: "J.Smith"},
			{Account: "RBC", TechnologyArea: "Infrastructure", Role: "AWS Lead", Person: "Bob", Leader: "J.Smith"},
			{Account: "Acme", TechnologyArea: "Data", Role: "BI Lead", Person: "Alice", Leader: "M.Jones"},
		},
	})
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestGetDataFiltered(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/data?account=rbc&technology=Data")
	require.Equal(t, http.StatusOK, rr.Code)

	var records []models.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Person)
}

func TestGetDataUnfiltered(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/data")
	require.Equal(t, http.StatusOK, rr.Code)

	var records []models.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	assert.Len(t, records, 3)
}

func TestGetFilters(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/filters")
	require.Equal(t, http.StatusOK, rr.Code)

	var values dataset.FilterValues
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &values))
	assert.Equal(t, []string{"Acme", "RBC"}, values.Accounts)
	assert.Equal(t, []string{"Data", "Infrastructure"}, values.Technologies)
}

func TestGetStats(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/stats")
	require.Equal(t, http.StatusOK, rr.Code)

	var s dataset.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	assert.Equal(t, 2, s.TotalAccounts)
	assert.Equal(t, 3, s.TotalPeople)
	assert.Equal(t, "RBC", s.TopAccount)
}

func TestGetAccountDetails(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/account_details/RBC")
	require.Equal(t, http.StatusOK, rr.Code)

	var d dataset.AccountDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &d))
	assert.Equal(t, 2, d.TotalPeople)
	assert.Zero(t, d.TotalFTE)
}

func TestGetAccountDetailsFTE(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/account_details_fte/RBC")
	require.Equal(t, http.StatusOK, rr.Code)

	var d dataset.AccountDetail
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &d))
	// Alice serves two accounts, Bob one.
	assert.InDelta(t, 1.5, d.TotalFTE, 1e-9)
}

func TestNewServerAllocatesUpFront(t *testing.T) {
	// Allocation happens at construction, never inside a handler: the record
	// slice is shared by every concurrent request and must stay read-only.
	rr := doRequest(t, testServer(), "/api/data")
	require.Equal(t, http.StatusOK, rr.Code)

	var records []models.Record
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 3)
	assert.InDelta(t, 0.5, records[0].Allocation, 1e-9, "Alice serves two accounts")
	assert.Equal(t, 1.0, records[1].Allocation, "Bob serves one account")
}

func TestConcurrentReadersAndFTERequests(t *testing.T) {
	s := testServer()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		for _, path := range []string{
			"/api/data",
			"/api/account_details_fte/RBC",
			"/api/stats",
			"/api/export/csv",
		} {
			wg.Add(1)
			go func(path string) {
				defer wg.Done()
				rr := doRequest(t, s, path)
				assert.Equal(t, http.StatusOK, rr.Code, path)
			}(path)
		}
	}
	wg.Wait()
}

func TestExportCSV(t *testing.T) {
	rr := doRequest(t, testServer(), "/api/export/csv?account=Acme")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(rr.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ",allocation"))
	assert.Contains(t, lines[1], "Acme")
	// Alice is split across RBC and Acme.
	assert.True(t, strings.HasSuffix(lines[1], ",0.5"))
}

func TestEmptyDatasetIsServed(t *testing.T) {
	s := NewServer(&models.ExtractionResult{Records: []models.Record{}})

	for _, path := range []string{"/api/data", "/api/filters", "/api/stats", "/api/export/csv"} {
		rr := doRequest(t, s, path)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := doRequest(t, s, "/api/stats")
	var sum dataset.Summary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sum))
	assert.Zero(t, sum.TotalAccounts)
}

func TestHealthz(t *testing.T) {
	rr := doRequest(t, testServer(), "/healthz")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"ok"`)
}
