package rules

import (
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// CreateDate parses the create timestamp and checks it is present, not in
// the future, and not older than the configured cutoff.
var CreateDate = validate.StageDef{
	Domain:      "create_date",
	Description: "Parse the create timestamp and check temporal bounds.",
	Kinds: []validate.KindDef{
		{Kind: "null_date", Description: "Create date is missing or unparseable.", Severity: validate.SeverityCritical},
		{Kind: "future_date", Description: "Create date is after the current processing time.", Severity: validate.SeverityCritical},
		{Kind: "too_old", Description: "Create date is strictly before the cutoff.", Severity: validate.SeverityAdvisory},
	},
	Clean: cleanCreateDate,
	Check: checkCreateDate,
}

func cleanCreateDate(t *table.Table, _ validate.Options) error {
	col, err := t.MustColumn(validate.ColCreateDate)
	if err != nil {
		return err
	}
	for i, v := range col.Values {
		if s, ok := v.Str(); ok {
			col.Set(i, table.ParseDate(s))
		}
	}
	return nil
}

func checkCreateDate(t *table.Table, opts validate.Options) (validate.Findings, error) {
	col, err := t.MustColumn(validate.ColCreateDate)
	if err != nil {
		return nil, err
	}

	now := opts.Clock()
	findings := validate.Findings{}
	var nullRows, futureRows, oldRows []int

	for i, v := range col.Values {
		if v.IsMissing() {
			nullRows = append(nullRows, i)
			continue
		}
		ts, ok := v.Timestamp()
		if !ok {
			continue
		}
		if ts.After(now) {
			futureRows = append(futureRows, i)
		}
		// Strict less-than: a date exactly on the cutoff is accepted.
		if ts.Before(opts.OldestCreateDate) {
			oldRows = append(oldRows, i)
		}
	}

	findings.Add("null_date", nullRows)
	findings.Add("future_date", futureRows)
	findings.Add("too_old", oldRows)
	return findings, nil
}
