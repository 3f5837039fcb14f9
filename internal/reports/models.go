// Package reports renders evaluated scenarios as CSV, PDF, and XLSX
// downloads.
package reports

import (
	"time"

	"carbonpath/well-portal/well-portal-backend/internal/finance"
	"carbonpath/well-portal/well-portal-backend/internal/scenario"
)

// Format identifies a report output format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Report is a fully assembled scenario report ready for rendering.
type Report struct {
	Scenario    string               `json:"scenario"`
	GeneratedAt time.Time            `json:"generated_at"`
	Assumptions finance.Assumptions  `json:"assumptions"`
	Summary     *finance.Summary     `json:"summary"`
	Wells       []finance.WellResult `json:"wells"`
}

// Build assembles a report from an evaluation.
func Build(eval *scenario.Evaluation) *Report {
	return &Report{
		Scenario:    eval.Scenario,
		GeneratedAt: time.Now(),
		Assumptions: eval.Assumptions,
		Summary:     eval.Summary,
		Wells:       eval.Wells,
	}
}
