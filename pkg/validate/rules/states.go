package rules

import (
	"strings"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "ID": true, "IL": true, "IN": true, "IA": true,
	"KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true,
	"MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VT": true,
	"VA": true, "WA": true, "WV": true, "WI": true, "WY": true,
}

var canadianProvinces = map[string]bool{
	"AB": true, "BC": true, "MB": true, "NB": true, "NL": true,
	"NS": true, "ON": true, "PE": true, "QC": true, "SK": true,
	"NT": true, "NU": true, "YT": true,
}

func isValidJurisdiction(code string) bool {
	return usStates[code] || canadianProvinces[code]
}

// States normalizes the origin and destination jurisdiction codes and checks
// them against the US state and Canadian province sets.
var States = validate.StageDef{
	Domain:      "states",
	Description: "Trim and upper-case jurisdiction codes, then check validity and length.",
	Kinds: []validate.KindDef{
		{Kind: "origin_null", Description: "Origin jurisdiction code is missing.", Severity: validate.SeverityAdvisory},
		{Kind: "dest_null", Description: "Destination jurisdiction code is missing.", Severity: validate.SeverityAdvisory},
		{Kind: "origin_invalid", Description: "Origin code is not a US state or Canadian province.", Severity: validate.SeverityAdvisory},
		{Kind: "dest_invalid", Description: "Destination code is not a US state or Canadian province.", Severity: validate.SeverityAdvisory},
		{Kind: "origin_length", Description: "Origin code is not exactly two characters.", Severity: validate.SeverityAdvisory},
		{Kind: "dest_length", Description: "Destination code is not exactly two characters.", Severity: validate.SeverityAdvisory},
	},
	Clean: cleanStates,
	Check: checkStates,
}

func cleanStates(t *table.Table, _ validate.Options) error {
	for _, name := range []string{validate.ColOriginState, validate.ColDestState} {
		col, err := t.MustColumn(name)
		if err != nil {
			return err
		}
		for i, v := range col.Values {
			if s, ok := v.Str(); ok {
				col.Set(i, table.String(strings.ToUpper(strings.TrimSpace(s))))
			}
		}
	}
	return nil
}

func checkStates(t *table.Table, _ validate.Options) (validate.Findings, error) {
	findings := validate.Findings{}

	cols := []struct {
		name   string
		prefix string
	}{
		{validate.ColOriginState, "origin"},
		{validate.ColDestState, "dest"},
	}

	for _, c := range cols {
		col, err := t.MustColumn(c.name)
		if err != nil {
			return nil, err
		}

		var nullRows, invalidRows, lengthRows []int
		for i, v := range col.Values {
			// Missing codes are reported once, as *_null only.
			if v.IsMissing() {
				nullRows = append(nullRows, i)
				continue
			}
			s, ok := v.Str()
			if !ok {
				s = v.String()
			}
			if !isValidJurisdiction(s) {
				invalidRows = append(invalidRows, i)
			}
			if len(s) != 2 {
				lengthRows = append(lengthRows, i)
			}
		}

		findings.Add(c.prefix+"_null", nullRows)
		findings.Add(c.prefix+"_invalid", invalidRows)
		findings.Add(c.prefix+"_length", lengthRows)
	}

	return findings, nil
}
