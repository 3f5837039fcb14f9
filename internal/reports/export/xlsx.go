package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"carbonpath/well-portal/well-portal-backend/internal/finance"
)

// Sheet names in the exported workbook.
const (
	sheetWells   = "Wells"
	sheetResults = "Results"
	sheetSummary = "Summary"
)

// WriteXLSX renders the scenario report as a three-sheet workbook: raw well
// inputs, per-well economics, and the portfolio summary.
func WriteXLSX(w io.Writer, results []finance.WellResult, summary *finance.Summary, a finance.Assumptions) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetWells)
	if _, err := f.NewSheet(sheetResults); err != nil {
		return fmt.Errorf("failed to create results sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeWellsSheet(f, headerStyle, results); err != nil {
		return err
	}
	if err := writeResultsSheet(f, headerStyle, results); err != nil {
		return err
	}
	if err := writeSummarySheet(f, headerStyle, summary, a); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeWellsSheet(f *excelize.File, headerStyle int, results []finance.WellResult) error {
	header := []interface{}{"Well Name/API", "Leak LPM", "Depth (ft)", "County", "P&A $", "Reclamation $", "Sensor $", "Other $"}
	if err := writeRow(f, sheetWells, 1, header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetWells, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i := range results {
		well := &results[i].Well
		row := []interface{}{
			well.Name, well.LeakRateLPM, well.DepthFt, well.County,
			well.PlugCost, well.ReclamationCost, well.SensorCost, well.OtherCost,
		}
		if err := writeRow(f, sheetWells, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeResultsSheet(f *excelize.File, headerStyle int, results []finance.WellResult) error {
	header := make([]interface{}, len(resultColumns))
	for i, col := range resultColumns {
		header[i] = col
	}
	if err := writeRow(f, sheetResults, 1, header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetResults, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i := range results {
		r := &results[i]
		row := []interface{}{
			r.Well.Name, r.Well.LeakRateLPM, r.Well.DepthFt,
			r.Credits.TotalCredits, r.GrossRevenue, r.PathFee, r.NetRevenue,
			r.TotalCost, r.Profit, formatBreakeven(r.BreakevenShare), string(r.Risk),
		}
		if err := writeRow(f, sheetResults, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, headerStyle int, s *finance.Summary, a finance.Assumptions) error {
	if err := writeRow(f, sheetSummary, 1, []interface{}{"Metric", "Value"}); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetSummary, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	irr := "undefined"
	if s.IRR != nil {
		irr = fmt.Sprintf("%.2f%%", *s.IRR*100)
	}
	payback := "never within horizon"
	if s.PaybackYears != nil {
		payback = fmt.Sprintf("year %d", *s.PaybackYears)
	}

	rows := [][]interface{}{
		{"Wells", s.WellCount},
		{"Total Credits (tCO2e)", s.TotalCredits},
		{"Gross Revenue ($)", s.GrossRevenue},
		{"CarbonPath Fee ($)", s.PathFee},
		{"Net Revenue ($)", s.NetRevenue},
		{"Total Cost ($)", s.TotalCost},
		{"Profit ($)", s.Profit},
		{"NPV ($)", s.NPV},
		{"IRR", irr},
		{"Payback", payback},
		{"Token Price ($/tCO2e)", a.TokenPrice},
		{"CarbonPath Fee (%)", a.PathFee * 100},
		{"GWP", a.GWP},
		{"Crediting Period (yr)", a.CreditingYears},
		{"Discount Rate (%)", a.DiscountRate * 100},
	}
	for i, row := range rows {
		if err := writeRow(f, sheetSummary, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
