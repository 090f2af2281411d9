// Package output renders validation reports for the terminal. Output adapts
// to the environment: styled tables on a TTY, markdown when piped, and JSON
// for scripting.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// maxRowsShown caps the row-position list in rendered tables; the full list
// is always available in the log sink and the JSON report.
const maxRowsShown = 15

var (
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	advisoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Renderer writes validation output in one resolved mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer, resolving ModeAuto by TTY detection.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			mode = ModeText
		} else {
			mode = ModeMarkdown
		}
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// Report renders the full defect report. severityOf resolves the effective
// severity of a defect kind under the active options.
func (r *Renderer) Report(rep validate.Report, severityOf func(string) validate.Severity) error {
	if r.mode == ModeJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	_, _ = fmt.Fprintf(r.out, "Validated %d records from %s (run %s)\n\n", rep.Records, rep.Source, rep.RunID)

	if rep.Empty() {
		_, _ = fmt.Fprintln(r.out, "No defects found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Domain", "Defect", "Severity", "Count", "Rows"})

	for _, dom := range rep.Domains {
		for _, def := range dom.Defects {
			sev := severityOf(def.Kind)
			t.AppendRow(table.Row{dom.Domain, def.Kind, r.severityLabel(sev), def.Count, formatRows(def.Rows)})
		}
	}

	if r.mode == ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

func (r *Renderer) severityLabel(sev validate.Severity) string {
	if r.mode != ModeText {
		return sev.String()
	}
	switch sev {
	case validate.SeverityCritical:
		return criticalStyle.Render(sev.String())
	default:
		return advisoryStyle.Render(sev.String())
	}
}

// Success writes the terminal success line.
func (r *Renderer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if r.mode == ModeText {
		msg = successStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.out, msg)
}

// Failure writes the terminal failure line to the error stream.
func (r *Renderer) Failure(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if r.mode == ModeText {
		msg = criticalStyle.Render(msg)
	}
	_, _ = fmt.Fprintln(r.errOut, msg)
}

func formatRows(rows []int) string {
	shown := rows
	suffix := ""
	if len(shown) > maxRowsShown {
		shown = shown[:maxRowsShown]
		suffix = fmt.Sprintf(" (+%d more)", len(rows)-maxRowsShown)
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ") + suffix
}
