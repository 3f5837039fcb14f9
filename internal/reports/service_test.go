package reports

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carbonpath/well-portal/well-portal-backend/internal/credits"
	"carbonpath/well-portal/well-portal-backend/internal/finance"
	"carbonpath/well-portal/well-portal-backend/internal/wells"
)

func testReport(t *testing.T) *Report {
	t.Helper()

	a := finance.Assumptions{
		TokenPrice:     20,
		PathFee:        0.02,
		GWP:            28,
		CreditingYears: 50,
		DiscountRate:   0.08,
	}
	ws := []wells.Well{
		{Name: "Well-01", LeakRateLPM: 15, DepthFt: 1500, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
		{Name: "Well-02", LeakRateLPM: 42, DepthFt: 2200, PlugCost: 30000, ReclamationCost: 5000, SensorCost: 12000, OtherCost: 1000},
	}

	results, err := finance.EvaluateWells(credits.NewRegistry(), ws, a)
	require.NoError(t, err)
	summary, err := finance.Summarize(results, a)
	require.NoError(t, err)

	return &Report{
		Scenario:    "A",
		GeneratedAt: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Assumptions: a,
		Summary:     summary,
		Wells:       results,
	}
}

func TestRenderCSV(t *testing.T) {
	service := NewService(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, service.Render(&buf, testReport(t), FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header, two wells, totals
	assert.Contains(t, lines[0], "Well Name/API")
	assert.Contains(t, lines[1], "Well-01")
	assert.True(t, strings.HasPrefix(lines[3], "TOTAL"))
}

func TestRenderPDF(t *testing.T) {
	service := NewService(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, service.Render(&buf, testReport(t), FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestRenderXLSX(t *testing.T) {
	service := NewService(zap.NewNop())
	var buf bytes.Buffer

	require.NoError(t, service.Render(&buf, testReport(t), FormatXLSX))
	// XLSX is a zip container.
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}

func TestRenderUnknownFormat(t *testing.T) {
	service := NewService(zap.NewNop())
	var buf bytes.Buffer

	err := service.Render(&buf, testReport(t), Format("docx"))
	assert.ErrorContains(t, err, "unsupported report format")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", ContentType(FormatCSV))
	assert.Equal(t, "application/pdf", ContentType(FormatPDF))
	assert.Contains(t, ContentType(FormatXLSX), "spreadsheet")
	assert.Equal(t, "application/octet-stream", ContentType(Format("docx")))
}
