package export

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"

	"carbonpath/well-portal/well-portal-backend/internal/finance"
)

// PDFReport is the input for the PDF renderer.
type PDFReport struct {
	Scenario    string
	GeneratedAt time.Time
	Assumptions finance.Assumptions
	Summary     *finance.Summary
	Wells       []finance.WellResult
}

// WritePDF renders the scenario report: title, KPIs, parameters, risk
// summary, and the per-well table, breaking pages as needed.
func WritePDF(w io.Writer, report *PDFReport) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Well Plugging Carbon Credits Report")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Scenario %s - Generated on: %s",
		report.Scenario, report.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	writeKPIs(pdf, report.Summary)
	writeParameters(pdf, report.Assumptions)
	writeRiskSummary(pdf, report.Summary)
	writeWellTable(pdf, report.Wells)

	pdf.SetY(-20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 5, "Note: This report is generated based on CarbonPath v1.3, Solution 1 (Direct Measurement) methodology.")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

func writeKPIs(pdf *gofpdf.Fpdf, s *finance.Summary) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Key Performance Indicators:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Carbon Credits: %.0f tCO2e", s.TotalCredits))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Gross Revenue: $%.0f", s.GrossRevenue))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Net Profit: $%.0f", s.Profit))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("NPV: $%.2f", s.NPV))
	pdf.Ln(6)
	if s.IRR != nil {
		pdf.Cell(0, 6, fmt.Sprintf("IRR: %.1f%%", *s.IRR*100))
	} else {
		pdf.Cell(0, 6, "IRR: undefined")
	}
	pdf.Ln(6)
	if s.PaybackYears != nil {
		pdf.Cell(0, 6, fmt.Sprintf("Payback: year %d", *s.PaybackYears))
	} else {
		pdf.Cell(0, 6, "Payback: never within horizon")
	}
	pdf.Ln(10)
}

func writeParameters(pdf *gofpdf.Fpdf, a finance.Assumptions) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Parameters:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Token Price: $%.2f / tCO2e", a.TokenPrice))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("CarbonPath Fee: %.1f%%", a.PathFee*100))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("GWP: %.0f, Crediting Period: %d yr, Discount Rate: %.1f%%",
		a.GWP, a.CreditingYears, a.DiscountRate*100))
	pdf.Ln(10)
}

func writeRiskSummary(pdf *gofpdf.Fpdf, s *finance.Summary) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Risk Summary:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Non-viable Wells: %d", s.Risk.NonViable))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Low Credit Wells: %d", s.Risk.LowCredits))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("At Risk Wells: %d", s.Risk.AtRisk))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Good Wells: %d", s.Risk.Good))
	pdf.Ln(10)
}

func writeWellTable(pdf *gofpdf.Fpdf, results []finance.WellResult) {
	widths := []float64{40, 20, 30, 30, 30, 30}
	headers := []string{"Well Name/API", "Leak LPM", "Credits (tCO2e)", "Profit ($)", "Breakeven (%)", "Risk Flag"}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Well Summary:")
	pdf.Ln(8)

	writeTableHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		for i, header := range headers {
			pdf.CellFormat(widths[i], 6, header, "B", 0, "L", false, 0, "")
		}
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 8)
	}
	writeTableHeader()

	for i := range results {
		r := &results[i]
		if pdf.GetY() > 260 {
			pdf.AddPage()
			writeTableHeader()
		}

		breakeven := "n/a"
		if !math.IsInf(r.BreakevenShare, 1) {
			breakeven = fmt.Sprintf("%.1f", r.BreakevenShare*100)
		}
		cells := []string{
			r.Well.Name,
			fmt.Sprintf("%.1f", r.Well.LeakRateLPM),
			fmt.Sprintf("%.0f", r.Credits.TotalCredits),
			fmt.Sprintf("%.0f", r.Profit),
			breakeven,
			string(r.Risk),
		}
		for j, cell := range cells {
			pdf.CellFormat(widths[j], 6, cell, "", 0, "L", false, 0, "")
		}
		pdf.Ln(6)
	}
	pdf.Ln(4)
}
