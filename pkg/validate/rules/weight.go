package rules

import (
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// Weight coerces the weight column to a number (preserving the raw value in
// a shadow column) and checks presence, format, positivity, and the
// overweight ceiling with its creator exemption list.
var Weight = validate.StageDef{
	Domain:      "weight",
	Description: "Strip grouping separators, coerce weight to a number, and check sanity thresholds.",
	Kinds: []validate.KindDef{
		{Kind: "null_weight", Description: "Cleaned weight is missing.", Severity: validate.SeverityCritical},
		{Kind: "invalid_weight_format", Description: "Weight was present in the source but failed numeric coercion.", Severity: validate.SeverityAdvisory},
		{Kind: "non_positive", Description: "Cleaned weight is zero or negative.", Severity: validate.SeverityAdvisory},
		{Kind: "overweight", Description: "Weight is at or above the ceiling and the creator is not exempt.", Severity: validate.SeverityAdvisory},
	},
	Clean: cleanWeight,
	Check: checkWeight,
}

func cleanWeight(t *table.Table, _ validate.Options) error {
	col, err := t.MustColumn(validate.ColWeight)
	if err != nil {
		return err
	}

	// Preserve the raw values once so re-runs don't shadow cleaned data.
	if !t.HasColumn(validate.ColWeightRaw) {
		raw := make([]table.Value, len(col.Values))
		copy(raw, col.Values)
		if _, err := t.AddColumn(validate.ColWeightRaw, raw); err != nil {
			return err
		}
	}

	for i, v := range col.Values {
		s, ok := v.Str()
		if !ok {
			// Already numeric or missing; coercion is a no-op.
			continue
		}
		col.Set(i, table.ParseNumber(s))
	}
	return nil
}

func checkWeight(t *table.Table, opts validate.Options) (validate.Findings, error) {
	col, err := t.MustColumn(validate.ColWeight)
	if err != nil {
		return nil, err
	}
	rawCol, err := t.MustColumn(validate.ColWeightRaw)
	if err != nil {
		return nil, err
	}
	creatorCol, err := t.MustColumn(validate.ColCreateBy)
	if err != nil {
		return nil, err
	}

	findings := validate.Findings{}
	var nullRows, badFormatRows, nonPositiveRows, overweightRows []int

	for i, v := range col.Values {
		if v.IsMissing() {
			nullRows = append(nullRows, i)
			// Distinguishes present-but-malformed from always absent. The
			// two kinds intentionally overlap for malformed weights.
			if !rawCol.Values[i].IsMissing() {
				badFormatRows = append(badFormatRows, i)
			}
			continue
		}
		w, ok := v.Num()
		if !ok {
			continue
		}
		if w <= 0 {
			nonPositiveRows = append(nonPositiveRows, i)
		}
		if w >= opts.WeightCeiling && !opts.IsExemptCreator(creatorCol.Values[i].String()) {
			overweightRows = append(overweightRows, i)
		}
	}

	findings.Add("null_weight", nullRows)
	findings.Add("invalid_weight_format", badFormatRows)
	findings.Add("non_positive", nonPositiveRows)
	findings.Add("overweight", overweightRows)
	return findings, nil
}
