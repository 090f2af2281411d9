package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// col is a named column literal for building test tables.
type col struct {
	name   string
	values []table.Value
}

func strs(ss ...string) []table.Value {
	out := make([]table.Value, len(ss))
	for i, s := range ss {
		out[i] = table.String(s)
	}
	return out
}

func newTable(t *testing.T, cols ...col) *table.Table {
	t.Helper()
	require.NotEmpty(t, cols)
	tbl := table.New(len(cols[0].values))
	for _, c := range cols {
		_, err := tbl.AddColumn(c.name, c.values)
		require.NoError(t, err)
	}
	return tbl
}

// applyStage runs one stage's cleaner then validator over the table and
// returns the findings, keyed by defect kind with zero-based positions.
func applyStage(t *testing.T, stage validate.StageDef, tbl *table.Table, opts validate.Options) validate.Findings {
	t.Helper()
	if stage.Clean != nil {
		require.NoError(t, stage.Clean(tbl, opts))
	}
	if stage.Check == nil {
		return validate.Findings{}
	}
	findings, err := stage.Check(tbl, opts)
	require.NoError(t, err)
	return findings
}
