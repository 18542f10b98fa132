// Package api exposes an extracted coverage dataset over HTTP, mirroring the
// filtering, aggregation, and export surface of the dataset package.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mgaspar/covex/pkg/covex/dataset"
	"github.com/mgaspar/covex/pkg/covex/models"
)

// Server serves a loaded extraction result. The dataset is read-only after
// construction, so handlers can run concurrently without coordination.
type Server struct {
	result *models.ExtractionResult
}

// NewServer creates a server over an extraction result. The FTE allocation
// pass runs here, once, before any handler can observe the records; running
// it lazily would mutate the shared slice under concurrent readers.
func NewServer(result *models.ExtractionResult) *Server {
	dataset.Allocate(result.Records)
	return &Server{result: result}
}

// Router initialises a new http router and applies all routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Get("/data", s.getData)
		r.Get("/filters", s.getFilters)
		r.Get("/stats", s.getStats)
		r.Get("/account_details/{account}", s.getAccountDetails)
		r.Get("/account_details_fte/{account}", s.getAccountDetailsFTE)
		r.Get("/export/csv", s.exportCSV)
	})
	r.Get("/healthz", s.getHealth)

	return r
}
