package rules

import (
	"strings"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// TextColumns normalizes the free-text name and city columns. It has no
// validator; free text carries no defect predicates.
var TextColumns = validate.StageDef{
	Domain:      "text",
	Description: "Trim and upper-case the origin/destination name and city columns.",
	Clean:       cleanTextColumns,
}

func cleanTextColumns(t *table.Table, _ validate.Options) error {
	cols := []string{
		validate.ColOriginName,
		validate.ColDestName,
		validate.ColOriginCity,
		validate.ColDestCity,
	}
	for _, name := range cols {
		col, err := t.MustColumn(name)
		if err != nil {
			return err
		}
		for i, v := range col.Values {
			// Missing values stay missing; only real text is normalized.
			if s, ok := v.Str(); ok {
				col.Set(i, table.String(strings.ToUpper(strings.TrimSpace(s))))
			}
		}
	}
	return nil
}
