package rules

import (
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
)

// Registration order is pipeline execution order: identifiers first, then
// the numeric and date domains, then the cosmetic text pass last.
func init() {
	validate.Register(PrimaryReference)
	validate.Register(Weight)
	validate.Register(CreateDate)
	validate.Register(Status)
	validate.Register(States)
	validate.Register(Ranges)
	validate.Register(TextColumns)
}
