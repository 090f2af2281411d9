package validate

import (
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
)

// =============================================================================
// Stage Definitions
// =============================================================================

// CleanFunc rewrites column values in place. It must be idempotent and must
// never change the table's row count. A returned error is structural (the
// input does not match the expected schema) and aborts the run immediately.
type CleanFunc func(t *table.Table, opts Options) error

// CheckFunc evaluates a domain's predicates over the table and returns the
// zero-based row positions where each defect kind holds. Validators never
// mutate the table. A returned error is structural.
type CheckFunc func(t *table.Table, opts Options) (Findings, error)

// KindDef describes one defect kind a stage can emit.
type KindDef struct {
	Kind        string   // e.g. "null_weight"
	Description string   // human-readable predicate description
	Severity    Severity // default severity; config may override
}

// StageDef is a data-driven pipeline stage: one domain's cleaner and
// validator over the shared table. Stages are stateless; all context arrives
// via the table and options.
type StageDef struct {
	Domain      string  // report domain, e.g. "weight"
	Description string  // what the stage cleans/checks
	Kinds       []KindDef
	Clean       CleanFunc // optional; nil for check-only domains
	Check       CheckFunc // optional; nil for clean-only stages
}

// =============================================================================
// Findings
// =============================================================================

// Findings maps defect kind to the zero-based row positions where its
// predicate evaluated true. Kinds with no affected rows are absent.
type Findings map[string][]int

// Add records positions for a kind; empty position lists are dropped so the
// report only carries defects that actually occurred.
func (f Findings) Add(kind string, rows []int) {
	if len(rows) == 0 {
		return
	}
	f[kind] = rows
}

// =============================================================================
// Report
// =============================================================================

// Defect is one detected data-quality violation: its kind, the number of
// affected records, and their source-file row numbers.
type Defect struct {
	Kind  string `json:"kind" yaml:"kind"`
	Count int    `json:"count" yaml:"count"`
	Rows  []int  `json:"rows" yaml:"rows"`
}

// DomainReport groups the defects found by one domain's validator.
type DomainReport struct {
	Domain  string   `json:"domain" yaml:"domain"`
	Defects []Defect `json:"defects" yaml:"defects"`
}

// Report is the aggregated two-level error structure, in stage encounter
// order. Defect kinds are unique within a domain.
type Report struct {
	RunID   string         `json:"run_id" yaml:"run_id"`
	Source  string         `json:"source,omitempty" yaml:"source,omitempty"`
	Records int            `json:"records" yaml:"records"`
	Domains []DomainReport `json:"domains" yaml:"domains"`
}

// Empty reports whether no defects of any kind were found.
func (r Report) Empty() bool {
	for _, d := range r.Domains {
		if len(d.Defects) > 0 {
			return false
		}
	}
	return true
}

// Defect looks up a defect by domain and kind.
func (r Report) Defect(domain, kind string) (Defect, bool) {
	for _, d := range r.Domains {
		if d.Domain != domain {
			continue
		}
		for _, def := range d.Defects {
			if def.Kind == kind {
				return def, true
			}
		}
	}
	return Defect{}, false
}

// TotalDefects returns the number of distinct (domain, kind) defects.
func (r Report) TotalDefects() int {
	n := 0
	for _, d := range r.Domains {
		n += len(d.Defects)
	}
	return n
}
