package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/mgaspar/covex/pkg/covex/dataset"
)

// filterFromQuery builds a dataset filter from the request query parameters.
// Parameter names match the original dashboard API.
func filterFromQuery(r *http.Request) dataset.Filter {
	q := r.URL.Query()
	return dataset.Filter{
		Account:    q.Get("account"),
		Technology: q.Get("technology"),
		Role:       q.Get("role"),
		Person:     q.Get("person"),
		Leader:     q.Get("leader"),
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("writing response: %v", err)
	}
}

// getData returns the filtered record list.
func (s *Server) getData(w http.ResponseWriter, r *http.Request) {
	records := filterFromQuery(r).Apply(s.result.Records)
	writeJSON(w, records)
}

// getFilters returns the distinct values of every filterable field.
func (s *Server) getFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, dataset.Distinct(s.result.Records))
}

// getStats returns workbook-level summary statistics.
func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, dataset.Summarize(s.result.Records))
}

// getAccountDetails returns the headcount drill-down for one account.
func (s *Server) getAccountDetails(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	writeJSON(w, dataset.DetailFor(s.result.Records, account))
}

// getAccountDetailsFTE returns the FTE drill-down for one account. Records
// carry allocations from construction time.
func (s *Server) getAccountDetailsFTE(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")
	writeJSON(w, dataset.DetailForFTE(s.result.Records, account))
}

// exportCSV streams the filtered record list as a CSV attachment.
func (s *Server) exportCSV(w http.ResponseWriter, r *http.Request) {
	records := filterFromQuery(r).Apply(s.result.Records)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=account_deployment_data.csv`)
	if err := dataset.WriteCSV(w, records, true); err != nil {
		log.Errorf("writing csv export: %v", err)
	}
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":  "ok",
		"records": s.result.TotalPersonnel(),
	})
}
