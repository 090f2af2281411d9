package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

func weightTable(t *testing.T, weights []table.Value, creators []table.Value) *table.Table {
	t.Helper()
	return newTable(t,
		col{validate.ColWeight, weights},
		col{validate.ColCreateBy, creators},
	)
}

func TestWeightCleanCoercion(t *testing.T) {
	tbl := weightTable(t,
		strs("49,500", "$1,200.50", "(300)", "heavy"),
		strs("a", "b", "c", "d"),
	)

	findings := applyStage(t, Weight, tbl, validate.DefaultOptions())

	c, _ := tbl.Column(validate.ColWeight)
	n, ok := c.Values[0].Num()
	require.True(t, ok)
	assert.Equal(t, 49500.0, n)
	n, _ = c.Values[1].Num()
	assert.Equal(t, 1200.5, n)
	n, _ = c.Values[2].Num()
	assert.Equal(t, -300.0, n)
	assert.True(t, c.Values[3].IsMissing())

	// The raw text survives in the shadow column.
	raw, ok := tbl.Column(validate.ColWeightRaw)
	require.True(t, ok)
	s, _ := raw.Values[0].Str()
	assert.Equal(t, "49,500", s)

	// Unparseable weight is reported both as null and as a format defect.
	assert.Equal(t, []int{3}, findings["null_weight"])
	assert.Equal(t, []int{3}, findings["invalid_weight_format"])
	assert.Equal(t, []int{2}, findings["non_positive"])
}

func TestWeightNullVsFormat(t *testing.T) {
	tbl := weightTable(t,
		[]table.Value{table.Missing(), table.String("abc")},
		strs("a", "b"),
	)

	findings := applyStage(t, Weight, tbl, validate.DefaultOptions())

	// A weight absent from the source is null only; a present but
	// malformed one is null and invalid format.
	assert.Equal(t, []int{0, 1}, findings["null_weight"])
	assert.Equal(t, []int{1}, findings["invalid_weight_format"])
}

func TestWeightOverweight(t *testing.T) {
	tbl := weightTable(t,
		strs("49,500", "49000", "48999.99", "60000"),
		strs("ops@company.com", "ops@company.com", "ops@company.com", "OVERWEIGHT_OPS_1@company.com"),
	)

	findings := applyStage(t, Weight, tbl, validate.DefaultOptions())

	// The ceiling is inclusive and the exemption is case-insensitive.
	assert.Equal(t, []int{0, 1}, findings["overweight"])
}

func TestWeightCustomCeiling(t *testing.T) {
	tbl := weightTable(t, strs("1500", "900"), strs("a", "b"))

	opts := validate.DefaultOptions()
	opts.WeightCeiling = 1000

	findings := applyStage(t, Weight, tbl, opts)
	assert.Equal(t, []int{0}, findings["overweight"])
}

func TestWeightCleanIdempotent(t *testing.T) {
	tbl := weightTable(t, strs("49,500", "bad"), strs("a", "b"))
	opts := validate.DefaultOptions()

	first := applyStage(t, Weight, tbl, opts)
	second := applyStage(t, Weight, tbl, opts)

	assert.Equal(t, first, second)

	// The raw column is captured once, not re-shadowed by cleaned values.
	raw, _ := tbl.Column(validate.ColWeightRaw)
	s, ok := raw.Values[0].Str()
	require.True(t, ok)
	assert.Equal(t, "49,500", s)
}
