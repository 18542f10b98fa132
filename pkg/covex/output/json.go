// Package output serializes extraction results for the CLI and API.
package output

import (
	"encoding/json"

	"github.com/mgaspar/covex/pkg/covex/models"
)

// ToJSON serializes a full extraction result.
func ToJSON(result *models.ExtractionResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// RecordsToJSON serializes a record slice on its own, for filtered views.
func RecordsToJSON(records []models.Record, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(records, "", "  ")
	}
	return json.Marshal(records)
}
