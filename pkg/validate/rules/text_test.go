package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

func TestTextColumnsClean(t *testing.T) {
	tbl := newTable(t,
		col{validate.ColOriginName, strs("  acme widgets ")},
		col{validate.ColDestName, strs("beta corp")},
		col{validate.ColOriginCity, []table.Value{table.Missing()}},
		col{validate.ColDestCity, strs("Dallas")},
	)

	findings := applyStage(t, TextColumns, tbl, validate.DefaultOptions())
	assert.Empty(t, findings, "text stage has no validator")

	c, _ := tbl.Column(validate.ColOriginName)
	s, _ := c.Values[0].Str()
	assert.Equal(t, "ACME WIDGETS", s)

	c, _ = tbl.Column(validate.ColDestCity)
	s, _ = c.Values[0].Str()
	assert.Equal(t, "DALLAS", s)

	// Missing stays missing rather than becoming a textual artifact.
	c, _ = tbl.Column(validate.ColOriginCity)
	assert.True(t, c.Values[0].IsMissing())
}

func TestStageRegistration(t *testing.T) {
	stages := validate.Stages()

	var domains []string
	for _, s := range stages {
		domains = append(domains, s.Domain)
	}

	assert.Equal(t, []string{
		"primary_reference", "weight", "create_date", "status",
		"states", "ranges", "text",
	}, domains)
}
