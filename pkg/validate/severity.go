package validate

// Severity indicates how the policy gate treats a defect kind.
type Severity int

// Severity levels for defects.
const (
	// SeverityCritical halts the pipeline when present anywhere in the report.
	SeverityCritical Severity = iota
	// SeverityAdvisory is reported and logged but never blocks the pipeline.
	SeverityAdvisory
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityAdvisory:
		return "advisory"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "critical":
		return SeverityCritical, true
	case "advisory":
		return SeverityAdvisory, true
	default:
		return SeverityAdvisory, false
	}
}
