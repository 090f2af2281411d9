package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

func rangesTable(t *testing.T, ship, delivery []table.Value) *table.Table {
	t.Helper()
	return newTable(t,
		col{validate.ColTargetShip, ship},
		col{validate.ColTargetDelivery, delivery},
	)
}

func TestRangesDerivesColumns(t *testing.T) {
	tbl := rangesTable(t,
		strs("2024-01-05 - 2024-01-10"),
		strs("2024-01-12 - 2024-01-15"),
	)

	findings := applyStage(t, Ranges, tbl, validate.DefaultOptions())
	assert.Empty(t, findings)

	start, ok := tbl.Column(validate.ColShipStart)
	require.True(t, ok)
	ts, ok := start.Values[0].Timestamp()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), ts)

	end, _ := tbl.Column(validate.ColDeliveryEnd)
	ts, _ = end.Values[0].Timestamp()
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), ts)
}

func TestRangesStartAfterEnd(t *testing.T) {
	tbl := rangesTable(t,
		strs("2024-01-10 - 2024-01-05"),
		strs("2024-01-15 - 2024-01-12"),
	)

	findings := applyStage(t, Ranges, tbl, validate.DefaultOptions())

	// Inverted but parseable ranges are ordering defects, not null dates.
	assert.Equal(t, []int{0}, findings["ship_start_after_end"])
	assert.Equal(t, []int{0}, findings["delivery_start_after_end"])
	assert.Nil(t, findings["null_ship_dates"])
	assert.Nil(t, findings["null_delivery_dates"])
}

func TestRangesDeliveryBeforeShipping(t *testing.T) {
	tbl := rangesTable(t,
		strs("2024-01-10 - 2024-01-12"),
		strs("2024-01-05 - 2024-01-08"),
	)

	findings := applyStage(t, Ranges, tbl, validate.DefaultOptions())
	assert.Equal(t, []int{0}, findings["delivery_before_shipping"])
}

func TestRangesMalformed(t *testing.T) {
	tbl := rangesTable(t,
		[]table.Value{
			table.String("2024-01-05"),            // no delimiter
			table.String("a - b - c"),             // too many parts
			table.String("garbage - 2024-01-10"),  // one side unparseable
			table.Missing(),                       // absent entirely
			table.String("2024-01-05 - 2024-01-10"),
		},
		strs(
			"2024-01-12 - 2024-01-15",
			"2024-01-12 - 2024-01-15",
			"2024-01-12 - 2024-01-15",
			"2024-01-12 - 2024-01-15",
			"2024-01-12 - 2024-01-15",
		),
	)

	findings := applyStage(t, Ranges, tbl, validate.DefaultOptions())

	assert.Equal(t, []int{0, 1, 2, 3}, findings["null_ship_dates"])
	assert.Nil(t, findings["null_delivery_dates"])
	// Ordering checks are skipped when either side is missing.
	assert.Nil(t, findings["ship_start_after_end"])
}

func TestRangesCleanIdempotent(t *testing.T) {
	tbl := rangesTable(t,
		strs("2024-01-05 - 2024-01-10", "bad"),
		strs("2024-01-12 - 2024-01-15", "2024-01-12 - 2024-01-15"),
	)
	opts := validate.DefaultOptions()

	first := applyStage(t, Ranges, tbl, opts)
	second := applyStage(t, Ranges, tbl, opts)

	assert.Equal(t, first, second)
}
