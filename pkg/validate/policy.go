package validate

import (
	"fmt"
	"log/slog"
	"strings"
)

// CriticalDefect is one policy-gate hit: a critical defect kind, the domain
// it was found in, and the number of affected records.
type CriticalDefect struct {
	Domain string
	Kind   string
	Count  int
}

// CriticalError is the pipeline-failure signal raised by the policy gate.
// The message enumerates every critical (domain, kind, count) triple in
// encounter order; full row detail stays in the log sink.
type CriticalError struct {
	Defects []CriticalDefect
}

func (e *CriticalError) Error() string {
	parts := make([]string, len(e.Defects))
	for i, d := range e.Defects {
		parts[i] = fmt.Sprintf("%s.%s (%d rows)", d.Domain, d.Kind, d.Count)
	}
	return "pipeline failed due to critical errors: " + strings.Join(parts, ", ")
}

// EnforcePolicy scans the report, logs one entry per defect kind found, and
// returns a *CriticalError if any critical-severity defect exists anywhere.
// Advisory defects are logged but never block the pipeline.
func EnforcePolicy(report Report, opts Options, logger *slog.Logger) error {
	var critical []CriticalDefect

	for _, dom := range report.Domains {
		for _, def := range dom.Defects {
			sev := opts.SeverityOf(def.Kind)
			logger.Error("defect detected",
				"domain", dom.Domain,
				"kind", def.Kind,
				"severity", sev.String(),
				"count", def.Count,
				"rows", def.Rows,
			)
			if sev == SeverityCritical {
				critical = append(critical, CriticalDefect{
					Domain: dom.Domain,
					Kind:   def.Kind,
					Count:  def.Count,
				})
			}
		}
	}

	if len(critical) > 0 {
		return &CriticalError{Defects: critical}
	}
	return nil
}
