package validate

import (
	"strings"
	"time"
)

// Default thresholds for shipment validation.
const (
	// DefaultWeightCeiling is the weight at or above which a shipment needs
	// an exempted creator.
	DefaultWeightCeiling = 49000.0

	// DefaultHeaderRows is the number of header rows in the source file,
	// used to translate table positions into source-file row numbers.
	DefaultHeaderRows = 1
)

// DefaultOldestCreateDate is the cutoff before which create dates are
// considered stale. Dates exactly on the cutoff are accepted.
var DefaultOldestCreateDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// Options carries the tunable domain rules for one pipeline run. Exemption
// and severity sets are injected here rather than read from process-wide
// globals so deployments can tune them and tests can isolate them.
type Options struct {
	// HeaderRows offsets reported row positions to match the source file's
	// numbering: file row = zero-based position + HeaderRows + 1.
	HeaderRows int

	// WeightCeiling is the overweight threshold in the source's weight unit.
	WeightCeiling float64

	// OverweightExemptions lists creator identities (trimmed, lower-cased)
	// allowed to book shipments at or above the ceiling.
	OverweightExemptions map[string]bool

	// ValidStatuses is the accepted status enumeration (exact match).
	ValidStatuses map[string]bool

	// OldestCreateDate is the stale-date cutoff (strict less-than).
	OldestCreateDate time.Time

	// SeverityOverrides reassigns defect kinds to a severity, overriding the
	// kind's registered default.
	SeverityOverrides map[string]Severity

	// Now supplies the run clock for future-date checks; defaults to
	// time.Now when nil.
	Now func() time.Time
}

// DefaultOptions returns the fixed production rule set.
func DefaultOptions() Options {
	return Options{
		HeaderRows:    DefaultHeaderRows,
		WeightCeiling: DefaultWeightCeiling,
		OverweightExemptions: map[string]bool{
			"overweight_ops_1@company.com": true,
			"overweight_ops_2@company.com": true,
			"overweight_ops_3@company.com": true,
			"overweight_ops_4@company.com": true,
		},
		ValidStatuses: map[string]bool{
			"Booked":     true,
			"In Transit": true,
		},
		OldestCreateDate:  DefaultOldestCreateDate,
		SeverityOverrides: nil,
		Now:               nil,
	}
}

// SeverityOf resolves the effective severity of a defect kind: an explicit
// override wins, then the registered default, then advisory.
func (o Options) SeverityOf(kind string) Severity {
	if s, ok := o.SeverityOverrides[kind]; ok {
		return s
	}
	if def, ok := LookupKind(kind); ok {
		return def.Severity
	}
	return SeverityAdvisory
}

// IsExemptCreator reports whether a creator identity is in the overweight
// exemption set. Comparison is on the trimmed, lower-cased form.
func (o Options) IsExemptCreator(creator string) bool {
	return o.OverweightExemptions[strings.ToLower(strings.TrimSpace(creator))]
}

// Clock returns the run clock.
func (o Options) Clock() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// FileRow translates a zero-based table position into the source file's
// one-based row numbering, past the header rows.
func (o Options) FileRow(pos int) int {
	return pos + o.HeaderRows + 1
}
