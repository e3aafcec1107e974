package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/floodstat/floodstat/internal/domain"
)

// summaryDoc keeps the total_provinces key of the original summary.json
// for existing consumers; the value counts distinct regions.
type summaryDoc struct {
	TotalProjects    int     `json:"total_projects_analyzed"`
	TotalBudget      float64 `json:"total_budget_analyzed"`
	GlobalAvgDelay   float64 `json:"global_avg_delay"`
	TotalContractors int     `json:"total_contractors"`
	TotalRegions     int     `json:"total_provinces"`
}

// WriteSummary writes the digest to path as indented JSON.
func WriteSummary(path string, s domain.SummaryDigest) error {
	data, err := json.MarshalIndent(summaryDoc(s), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadSummary re-imports a file written by WriteSummary.
func ReadSummary(path string) (domain.SummaryDigest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.SummaryDigest{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc summaryDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.SummaryDigest{}, fmt.Errorf("decoding summary: %w", err)
	}
	return domain.SummaryDigest(doc), nil
}
