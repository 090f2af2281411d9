package validate

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/table"
)

// Runner executes the registered stages over one table: clean then validate
// per domain in fixed order, aggregate, then enforce the policy gate. The
// run is single-threaded; the table is owned exclusively for its duration.
type Runner struct {
	opts   Options
	logger *slog.Logger
	stages []StageDef
}

// NewRunner creates a runner over the globally registered stages.
func NewRunner(opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		opts:   opts,
		logger: logger,
		stages: Stages(),
	}
}

// NewRunnerWithStages creates a runner over an explicit stage list. Used by
// tests that exercise a subset of the pipeline.
func NewRunnerWithStages(opts Options, logger *slog.Logger, stages []StageDef) *Runner {
	r := NewRunner(opts, logger)
	r.stages = stages
	return r
}

// Run executes the full pipeline. The returned report is exhaustive: every
// validator runs to completion regardless of what earlier ones found. The
// error is either structural (schema mismatch, aborts mid-pass) or the
// policy gate's *CriticalError; advisory defects alone return a nil error.
func (r *Runner) Run(t *table.Table, source string) (Report, error) {
	runID := uuid.New().String()
	logger := r.logger.With("run_id", runID)

	report := Report{
		RunID:   runID,
		Source:  source,
		Records: t.Len(),
	}

	logger.Info("starting validation run", "source", source, "records", t.Len(), "stages", len(r.stages))

	rows := t.Len()
	var results []stageResult

	for _, stage := range r.stages {
		if stage.Clean != nil {
			if err := stage.Clean(t, r.opts); err != nil {
				return report, fmt.Errorf("cleaning %s: %w", stage.Domain, err)
			}
			if t.Len() != rows {
				// Cleaners rewrite values in place; a row-count change means
				// a broken stage, not bad data.
				return report, fmt.Errorf("cleaning %s changed row count from %d to %d", stage.Domain, rows, t.Len())
			}
		}
		if stage.Check != nil {
			findings, err := stage.Check(t, r.opts)
			if err != nil {
				return report, fmt.Errorf("validating %s: %w", stage.Domain, err)
			}
			results = append(results, stageResult{domain: stage.Domain, findings: findings})
		}
	}

	report.Domains = aggregate(results, r.opts)

	if err := EnforcePolicy(report, r.opts, logger); err != nil {
		logger.Error("validation run failed", "error", err)
		return report, err
	}

	logger.Info("validation run finished", "defects", report.TotalDefects())
	return report, nil
}
