package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

func statesTable(t *testing.T, origins, dests []table.Value) *table.Table {
	t.Helper()
	return newTable(t,
		col{validate.ColOriginState, origins},
		col{validate.ColDestState, dests},
	)
}

func TestStatesCleanNormalizes(t *testing.T) {
	tbl := statesTable(t, strs(" il ", "tx"), strs("ON", "bc "))

	findings := applyStage(t, States, tbl, validate.DefaultOptions())

	origin, _ := tbl.Column(validate.ColOriginState)
	s, _ := origin.Values[0].Str()
	assert.Equal(t, "IL", s)
	dest, _ := tbl.Column(validate.ColDestState)
	s, _ = dest.Values[1].Str()
	assert.Equal(t, "BC", s)

	assert.Empty(t, findings)
}

func TestStatesCanadianProvincesAccepted(t *testing.T) {
	tbl := statesTable(t, strs("on", "qc", "nu"), strs("ab", "yt", "pe"))

	findings := applyStage(t, States, tbl, validate.DefaultOptions())
	assert.Empty(t, findings)
}

func TestStatesInvalidAndLength(t *testing.T) {
	tbl := statesTable(t,
		strs("IL", "XX", "Illinois"),
		strs("ZZ", "TX", "T"),
	)

	findings := applyStage(t, States, tbl, validate.DefaultOptions())

	assert.Equal(t, []int{1, 2}, findings["origin_invalid"])
	assert.Equal(t, []int{2}, findings["origin_length"])
	assert.Equal(t, []int{0, 2}, findings["dest_invalid"])
	assert.Equal(t, []int{2}, findings["dest_length"])
}

func TestStatesMissingReportedOnce(t *testing.T) {
	tbl := statesTable(t,
		[]table.Value{table.Missing(), table.String("IL")},
		[]table.Value{table.String("TX"), table.Missing()},
	)

	findings := applyStage(t, States, tbl, validate.DefaultOptions())

	// Missing codes yield only the null kind, never invalid or length.
	assert.Equal(t, []int{0}, findings["origin_null"])
	assert.Equal(t, []int{1}, findings["dest_null"])
	assert.Nil(t, findings["origin_invalid"])
	assert.Nil(t, findings["origin_length"])
	assert.Nil(t, findings["dest_invalid"])
	assert.Nil(t, findings["dest_length"])
}
