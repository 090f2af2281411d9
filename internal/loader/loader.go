// Package loader reads a tabular shipment file (CSV or XLSX) into the row
// store. Load failures and missing required headers are fatal: they mean the
// input does not match the expected schema, so no validation is meaningful.
package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// Load reads the file at path into a table, dispatching on extension.
func Load(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xlsm":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// fromRows builds a table from a header row plus data rows. Empty cells
// become missing values, matching how spreadsheet readers surface blanks.
// Short rows are padded with missing values.
func fromRows(header []string, rows [][]string) (*table.Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("input has no header row")
	}

	t := table.New(len(rows))
	for c, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Column %d", c+1)
		}
		values := make([]table.Value, len(rows))
		for r, row := range rows {
			if c >= len(row) || row[c] == "" {
				values[r] = table.Missing()
				continue
			}
			values[r] = table.String(row[c])
		}
		if _, err := t.AddColumn(name, values); err != nil {
			return nil, fmt.Errorf("building table: %w", err)
		}
	}

	if err := checkRequiredColumns(t); err != nil {
		return nil, err
	}
	return t, nil
}

// checkRequiredColumns verifies the expected schema is present.
func checkRequiredColumns(t *table.Table) error {
	var missing []string
	for _, name := range validate.RequiredColumns() {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("input is missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
