package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

func sampleReport() validate.Report {
	return validate.Report{
		RunID:   "run-1",
		Source:  "batch.csv",
		Records: 10,
		Domains: []validate.DomainReport{
			{Domain: "weight", Defects: []validate.Defect{
				{Kind: "null_weight", Count: 2, Rows: []int{3, 7}},
			}},
		},
	}
}

func severityOf(kind string) validate.Severity {
	if kind == "null_weight" {
		return validate.SeverityCritical
	}
	return validate.SeverityAdvisory
}

func newTestRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRenderer(out, errOut, mode), out, errOut
}

func TestRendererModeResolution(t *testing.T) {
	r, _, _ := newTestRenderer(ModeJSON)
	assert.Equal(t, ModeJSON, r.Mode())

	// Auto resolves to a concrete mode either way.
	r, _, _ = newTestRenderer(ModeAuto)
	assert.Contains(t, []Mode{ModeText, ModeMarkdown}, r.Mode())
}

func TestRendererReportJSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON)
	require.NoError(t, r.Report(sampleReport(), severityOf))

	var decoded validate.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, 10, decoded.Records)
	require.Len(t, decoded.Domains, 1)
	assert.Equal(t, []int{3, 7}, decoded.Domains[0].Defects[0].Rows)
}

func TestRendererReportMarkdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown)
	require.NoError(t, r.Report(sampleReport(), severityOf))

	s := out.String()
	assert.Contains(t, s, "Validated 10 records from batch.csv")
	assert.Contains(t, s, "null_weight")
	assert.Contains(t, s, "critical")
	assert.Contains(t, s, "3, 7")
	assert.NotContains(t, s, "\x1b[", "markdown output carries no ANSI codes")
}

func TestRendererReportEmpty(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown)
	rep := validate.Report{RunID: "run-1", Source: "batch.csv", Records: 4}
	require.NoError(t, r.Report(rep, severityOf))

	assert.Contains(t, out.String(), "No defects found.")
}

func TestRendererRowTruncation(t *testing.T) {
	rep := sampleReport()
	rows := make([]int, 40)
	for i := range rows {
		rows[i] = i + 2
	}
	rep.Domains[0].Defects[0] = validate.Defect{Kind: "overweight", Count: 40, Rows: rows}

	r, out, _ := newTestRenderer(ModeMarkdown)
	require.NoError(t, r.Report(rep, severityOf))

	assert.Contains(t, out.String(), "(+25 more)")
}

func TestRendererSuccessFailureStreams(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown)

	r.Success("%d records ok", 4)
	r.Failure("run failed")

	assert.Contains(t, out.String(), "4 records ok")
	assert.Contains(t, errOut.String(), "run failed")
	assert.NotContains(t, out.String(), "run failed")
}
