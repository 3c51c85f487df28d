// Package output serializes analysis results to JSON.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Envelope wraps a batch of results with run metadata.
type Envelope struct {
	// RunID identifies the run that produced the results.
	RunID string `json:"run_id"`
	// AnalysisDate is the day the analysis ran (YYYY-MM-DD).
	AnalysisDate string `json:"analysis_date"`
	// DocumentsAnalyzed is the number of results.
	DocumentsAnalyzed int `json:"documents_analyzed"`
	// Results holds one entry per analyzed document.
	Results any `json:"results"`
}

// NewEnvelope wraps n results under a fresh run id.
func NewEnvelope(results any, n int, now time.Time) Envelope {
	return Envelope{
		RunID:             uuid.NewString(),
		AnalysisDate:      now.Format(time.DateOnly),
		DocumentsAnalyzed: n,
		Results:           results,
	}
}

// ToJSON serializes v, indenting with two spaces when pretty is set.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteFile serializes v to path, creating parent directories as needed.
func WriteFile(path string, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
