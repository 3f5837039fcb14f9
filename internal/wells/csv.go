package wells

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// csvHeader is the canonical column order for well manifests. Import accepts
// the columns in any order but export always writes them in this order.
var csvHeader = []string{
	"name",
	"leak_rate_lpm",
	"depth_ft",
	"county",
	"baseline_date",
	"plug_cost",
	"reclamation_cost",
	"sensor_cost",
	"other_cost",
}

const csvDateFormat = "2006-01-02"

// ImportResult holds the outcome of a CSV import. Malformed rows are
// reported individually; well-formed rows are kept regardless.
type ImportResult struct {
	Wells     []Well  `json:"wells"`
	RowErrors []error `json:"row_errors,omitempty"`
}

// ImportCSV reads a well manifest. The first record must be a header naming
// a subset of the canonical columns; name and leak_rate_lpm are mandatory.
// Each bad data row produces one error keyed to its row number and import
// continues with the next row.
func ImportCSV(r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"name", "leak_rate_lpm"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV header missing required column %q", required)
		}
	}

	result := &ImportResult{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.RowErrors = append(result.RowErrors, fmt.Errorf("row %d: %w", row, err))
			continue
		}

		well, err := parseRecord(record, cols, row)
		if err != nil {
			result.RowErrors = append(result.RowErrors, err)
			continue
		}
		if err := well.Validate(row); err != nil {
			result.RowErrors = append(result.RowErrors, err)
			continue
		}
		result.Wells = append(result.Wells, *well)
	}
	return result, nil
}

func parseRecord(record []string, cols map[string]int, row int) (*Well, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	number := func(name string) (float64, error) {
		raw := field(name)
		if raw == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &ValidationError{Row: row, Field: name, Message: fmt.Sprintf("invalid number %q", raw)}
		}
		return v, nil
	}

	well := &Well{
		Name:   field("name"),
		County: field("county"),
	}

	var err error
	if well.LeakRateLPM, err = number("leak_rate_lpm"); err != nil {
		return nil, err
	}
	if well.DepthFt, err = number("depth_ft"); err != nil {
		return nil, err
	}
	if well.PlugCost, err = number("plug_cost"); err != nil {
		return nil, err
	}
	if well.ReclamationCost, err = number("reclamation_cost"); err != nil {
		return nil, err
	}
	if well.SensorCost, err = number("sensor_cost"); err != nil {
		return nil, err
	}
	if well.OtherCost, err = number("other_cost"); err != nil {
		return nil, err
	}

	if raw := field("baseline_date"); raw != "" {
		t, err := time.Parse(csvDateFormat, raw)
		if err != nil {
			return nil, &ValidationError{Row: row, Field: "baseline_date", Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", raw)}
		}
		well.BaselineDate = &t
	}
	return well, nil
}

// ExportCSV writes wells in the canonical column order. Floats are written
// in their shortest exact form so an export/import cycle reproduces the
// original values bit for bit.
func ExportCSV(w io.Writer, ws []Well) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i := range ws {
		well := &ws[i]
		date := ""
		if well.BaselineDate != nil {
			date = well.BaselineDate.Format(csvDateFormat)
		}
		record := []string{
			well.Name,
			formatFloat(well.LeakRateLPM),
			formatFloat(well.DepthFt),
			well.County,
			date,
			formatFloat(well.PlugCost),
			formatFloat(well.ReclamationCost),
			formatFloat(well.SensorCost),
			formatFloat(well.OtherCost),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
