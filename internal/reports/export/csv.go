// Package export renders well-plugging reports to downloadable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"carbonpath/well-portal/well-portal-backend/internal/finance"
)

// resultColumns is the column order for results exports, shared by the CSV
// and XLSX writers.
var resultColumns = []string{
	"Well Name/API",
	"Leak LPM",
	"Depth (ft)",
	"Credits (tCO2e)",
	"Gross $",
	"Path Fee $",
	"Net $",
	"Total Cost $",
	"Profit $",
	"Breakeven %",
	"Risk Flag",
}

// WriteResultsCSV writes per-well economics followed by a totals row.
func WriteResultsCSV(w io.Writer, results []finance.WellResult, summary *finance.Summary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(resultColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range results {
		if err := writer.Write(resultRow(&results[i])); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if summary != nil {
		totals := []string{
			"TOTAL",
			"",
			"",
			fmt.Sprintf("%.2f", summary.TotalCredits),
			fmt.Sprintf("%.2f", summary.GrossRevenue),
			fmt.Sprintf("%.2f", summary.PathFee),
			fmt.Sprintf("%.2f", summary.NetRevenue),
			fmt.Sprintf("%.2f", summary.TotalCost),
			fmt.Sprintf("%.2f", summary.Profit),
			"",
			"",
		}
		if err := writer.Write(totals); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func resultRow(r *finance.WellResult) []string {
	return []string{
		r.Well.Name,
		fmt.Sprintf("%.1f", r.Well.LeakRateLPM),
		fmt.Sprintf("%.0f", r.Well.DepthFt),
		fmt.Sprintf("%.2f", r.Credits.TotalCredits),
		fmt.Sprintf("%.2f", r.GrossRevenue),
		fmt.Sprintf("%.2f", r.PathFee),
		fmt.Sprintf("%.2f", r.NetRevenue),
		fmt.Sprintf("%.2f", r.TotalCost),
		fmt.Sprintf("%.2f", r.Profit),
		formatBreakeven(r.BreakevenShare),
		string(r.Risk),
	}
}

func formatBreakeven(share float64) string {
	if math.IsInf(share, 1) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f", share*100)
}
