package reports

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/reports/export"
)

// Service renders assembled reports to their output formats.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new reports service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Render writes the report in the requested format.
func (s *Service) Render(w io.Writer, report *Report, format Format) error {
	switch format {
	case FormatCSV:
		return export.WriteResultsCSV(w, report.Wells, report.Summary)
	case FormatPDF:
		return export.WritePDF(w, &export.PDFReport{
			Scenario:    report.Scenario,
			GeneratedAt: report.GeneratedAt,
			Assumptions: report.Assumptions,
			Summary:     report.Summary,
			Wells:       report.Wells,
		})
	case FormatXLSX:
		return export.WriteXLSX(w, report.Wells, report.Summary, report.Assumptions)
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// ContentType returns the MIME type for a format.
func ContentType(format Format) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
