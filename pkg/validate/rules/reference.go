package rules

import (
	"strings"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// PrimaryReference checks the shipment identifier: it must be present,
// non-empty after trimming, and unique across the batch.
var PrimaryReference = validate.StageDef{
	Domain:      "primary_reference",
	Description: "Trim the shipment identifier and check presence, non-emptiness, and uniqueness.",
	Kinds: []validate.KindDef{
		{Kind: "null_primary_reference", Description: "Identifier is missing.", Severity: validate.SeverityCritical},
		{Kind: "empty_primary_reference", Description: "Identifier is an empty string.", Severity: validate.SeverityCritical},
		{Kind: "duplicate_primary_reference", Description: "Identifier occurs more than once; all occurrences are flagged.", Severity: validate.SeverityCritical},
	},
	Clean: cleanPrimaryReference,
	Check: checkPrimaryReference,
}

func cleanPrimaryReference(t *table.Table, _ validate.Options) error {
	col, err := t.MustColumn(validate.ColPrimaryReference)
	if err != nil {
		return err
	}
	for i, v := range col.Values {
		if s, ok := v.Str(); ok {
			col.Set(i, table.String(strings.TrimSpace(s)))
		}
	}
	return nil
}

func checkPrimaryReference(t *table.Table, _ validate.Options) (validate.Findings, error) {
	col, err := t.MustColumn(validate.ColPrimaryReference)
	if err != nil {
		return nil, err
	}

	findings := validate.Findings{}
	var nullRows, emptyRows []int

	// Missing identifiers are excluded from duplicate detection; they are
	// already reported as null_primary_reference.
	seen := make(map[string]int)
	for i, v := range col.Values {
		if v.IsMissing() {
			nullRows = append(nullRows, i)
			continue
		}
		s, ok := v.Str()
		if !ok {
			s = v.String()
		}
		if s == "" {
			emptyRows = append(emptyRows, i)
		}
		seen[s]++
	}

	var dupRows []int
	for i, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		s, ok := v.Str()
		if !ok {
			s = v.String()
		}
		if seen[s] > 1 {
			dupRows = append(dupRows, i)
		}
	}

	findings.Add("null_primary_reference", nullRows)
	findings.Add("empty_primary_reference", emptyRows)
	findings.Add("duplicate_primary_reference", dupRows)
	return findings, nil
}
