package rules

import (
	"strings"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// rangeDelimiter separates the start and end dates of a target range string,
// e.g. "2024-01-05 - 2024-01-10". The surrounding spaces keep ISO dates with
// internal hyphens intact.
const rangeDelimiter = " - "

// Ranges derives start/end date columns from the two target range strings
// and checks presence and ordering of each pair.
var Ranges = validate.StageDef{
	Domain:      "ranges",
	Description: "Split target ship/delivery ranges into start and end dates and check their ordering.",
	Kinds: []validate.KindDef{
		{Kind: "null_ship_dates", Description: "Ship range start or end is missing or unparseable.", Severity: validate.SeverityAdvisory},
		{Kind: "null_delivery_dates", Description: "Delivery range start or end is missing or unparseable.", Severity: validate.SeverityAdvisory},
		{Kind: "ship_start_after_end", Description: "Ship range starts after it ends.", Severity: validate.SeverityAdvisory},
		{Kind: "delivery_start_after_end", Description: "Delivery range starts after it ends.", Severity: validate.SeverityAdvisory},
		{Kind: "delivery_before_shipping", Description: "Delivery starts before shipping starts.", Severity: validate.SeverityAdvisory},
	},
	Clean: cleanRanges,
	Check: checkRanges,
}

// splitRange parses one range string into its start and end dates. Anything
// other than exactly two parseable parts yields missing sentinels, which the
// validator reports as a null-dates defect.
func splitRange(v table.Value) (table.Value, table.Value) {
	s, ok := v.Str()
	if !ok {
		return table.Missing(), table.Missing()
	}
	parts := strings.Split(s, rangeDelimiter)
	if len(parts) != 2 {
		return table.Missing(), table.Missing()
	}
	return table.ParseDate(parts[0]), table.ParseDate(parts[1])
}

func deriveRange(t *table.Table, source, startName, endName string) error {
	col, err := t.MustColumn(source)
	if err != nil {
		return err
	}

	starts := make([]table.Value, len(col.Values))
	ends := make([]table.Value, len(col.Values))
	for i, v := range col.Values {
		starts[i], ends[i] = splitRange(v)
	}

	// Derived columns are recomputed from the untouched source string, so
	// re-running the cleaner always lands on the same result.
	if startCol, ok := t.Column(startName); ok {
		endCol, _ := t.Column(endName)
		copy(startCol.Values, starts)
		copy(endCol.Values, ends)
		return nil
	}
	if _, err := t.AddColumn(startName, starts); err != nil {
		return err
	}
	if _, err := t.AddColumn(endName, ends); err != nil {
		return err
	}
	return nil
}

func cleanRanges(t *table.Table, _ validate.Options) error {
	if err := deriveRange(t, validate.ColTargetShip, validate.ColShipStart, validate.ColShipEnd); err != nil {
		return err
	}
	return deriveRange(t, validate.ColTargetDelivery, validate.ColDeliveryStart, validate.ColDeliveryEnd)
}

func checkRanges(t *table.Table, _ validate.Options) (validate.Findings, error) {
	shipStart, err := t.MustColumn(validate.ColShipStart)
	if err != nil {
		return nil, err
	}
	shipEnd, err := t.MustColumn(validate.ColShipEnd)
	if err != nil {
		return nil, err
	}
	delStart, err := t.MustColumn(validate.ColDeliveryStart)
	if err != nil {
		return nil, err
	}
	delEnd, err := t.MustColumn(validate.ColDeliveryEnd)
	if err != nil {
		return nil, err
	}

	findings := validate.Findings{}
	var nullShip, nullDelivery, shipOrder, deliveryOrder, deliveryBeforeShip []int

	for i := 0; i < t.Len(); i++ {
		ss, ssOK := shipStart.Values[i].Timestamp()
		se, seOK := shipEnd.Values[i].Timestamp()
		ds, dsOK := delStart.Values[i].Timestamp()
		de, deOK := delEnd.Values[i].Timestamp()

		if !ssOK || !seOK {
			nullShip = append(nullShip, i)
		}
		if !dsOK || !deOK {
			nullDelivery = append(nullDelivery, i)
		}
		// Ordering checks only apply when both sides parsed.
		if ssOK && seOK && ss.After(se) {
			shipOrder = append(shipOrder, i)
		}
		if dsOK && deOK && ds.After(de) {
			deliveryOrder = append(deliveryOrder, i)
		}
		if dsOK && ssOK && ds.Before(ss) {
			deliveryBeforeShip = append(deliveryBeforeShip, i)
		}
	}

	findings.Add("null_ship_dates", nullShip)
	findings.Add("null_delivery_dates", nullDelivery)
	findings.Add("ship_start_after_end", shipOrder)
	findings.Add("delivery_start_after_end", deliveryOrder)
	findings.Add("delivery_before_shipping", deliveryBeforeShip)
	return findings, nil
}
