package rules

import (
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// Status checks the status column against the configured enumeration. There
// is no cleaner: status values are matched exactly as they arrive.
var Status = validate.StageDef{
	Domain:      "status",
	Description: "Check the shipment status against the accepted enumeration.",
	Kinds: []validate.KindDef{
		{Kind: "invalid_status", Description: "Status is missing or not in the accepted set.", Severity: validate.SeverityAdvisory},
	},
	Check: checkStatus,
}

func checkStatus(t *table.Table, opts validate.Options) (validate.Findings, error) {
	col, err := t.MustColumn(validate.ColStatus)
	if err != nil {
		return nil, err
	}

	findings := validate.Findings{}
	var invalidRows []int

	for i, v := range col.Values {
		s, ok := v.Str()
		if !ok || !opts.ValidStatuses[s] {
			invalidRows = append(invalidRows, i)
		}
	}

	findings.Add("invalid_status", invalidRows)
	return findings, nil
}
