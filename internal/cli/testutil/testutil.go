// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ctaps04/shipment-data-validation-pipeline/internal/cli/output"
)

// BatchHeader is the column header of a well-formed shipment batch file, in
// the order the columns appear in CleanRow.
var BatchHeader = []string{
	"Primary Reference", "Status", "Weight", "Create By", "Create Date",
	"Origin State", "Dest State", "Origin Name", "Dest Name",
	"Origin City", "Dest City", "Target Ship (Range)", "Target Delivery (Range)",
}

// Positions of the columns commonly mutated by tests.
const (
	ColReference  = 0
	ColStatus     = 1
	ColWeight     = 2
	ColCreateBy   = 3
	ColCreateDate = 4
	ColOrigin     = 5
	ColDest       = 6
	ColShipRange  = 11
	ColDelivRange = 12
)

// CleanRow returns one batch row with no defects. Callers mutate fields to
// introduce the defect under test.
func CleanRow(ref string) []string {
	return []string{
		ref, "Booked", "1200", "ops@company.com", "2024-03-01",
		"IL", "TX", "Acme Widgets", "Beta Corp",
		"Chicago", "Dallas", "2024-03-05 - 2024-03-07", "2024-03-10 - 2024-03-12",
	}
}

// WriteBatchCSV writes a batch file with the standard header into a temp
// directory and returns its path.
func WriteBatchCSV(t *testing.T, rows ...[]string) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(strings.Join(BatchHeader, ","))
	sb.WriteString("\n")
	for _, row := range rows {
		quoted := make([]string, len(row))
		for i, cell := range row {
			if strings.Contains(cell, ",") {
				cell = `"` + cell + `"`
			}
			quoted[i] = cell
		}
		sb.WriteString(strings.Join(quoted, ","))
		sb.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "batch.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		t.Fatalf("failed to write batch file: %v", err)
	}
	return path
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode.
// Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRenderer(out, errOut, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON)
}

// Output returns the captured stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
