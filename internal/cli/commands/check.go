package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ctaps04/shipment-data-validation-pipeline/internal/loader"
	"github.com/ctaps04/shipment-data-validation-pipeline/internal/watch"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
	_ "github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate/rules"
)

// NewCheckCommand creates the check command, which runs the full validation
// pipeline over one shipment batch file.
func NewCheckCommand() *cobra.Command {
	var (
		maxWeight  float64
		cutoff     string
		reportPath string
		watchFile  bool
	)

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a shipment batch file",
		Long: `Check cleans and validates a shipment batch file (.csv or .xlsx).

Every validator runs to completion and all defects are reported. The
command exits non-zero when any critical defect is found; advisory
defects are reported but do not fail the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)
			path := args[0]

			opts := cc.Cfg.Options()
			if cmd.Flags().Changed("max-weight") {
				opts.WeightCeiling = maxWeight
			}
			if cmd.Flags().Changed("cutoff") {
				ts, err := time.Parse("2006-01-02", cutoff)
				if err != nil {
					return fmt.Errorf("invalid --cutoff %q: want YYYY-MM-DD", cutoff)
				}
				opts.OldestCreateDate = ts
			}

			run := func() error {
				return checkFile(cc, path, opts, reportPath)
			}

			if watchFile {
				cc.Renderer.Success("watching %s for changes (ctrl-c to stop)", path)
				if err := run(); err != nil {
					cc.Renderer.Failure("%v", err)
				}
				err := watch.File(cmd.Context(), path, run, func(err error) {
					cc.Renderer.Failure("%v", err)
				})
				if errors.Is(err, cmd.Context().Err()) {
					return nil
				}
				return err
			}

			return run()
		},
	}

	cmd.Flags().Float64Var(&maxWeight, "max-weight", validate.DefaultWeightCeiling, "overweight threshold")
	cmd.Flags().StringVar(&cutoff, "cutoff", "", "oldest accepted create date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&reportPath, "report", "", "write the full report to a YAML file")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "re-run validation whenever the file changes")

	return cmd
}

// checkFile runs one validation pass and renders the result.
func checkFile(cc *CommandContext, path string, opts validate.Options, reportPath string) error {
	t, err := loader.Load(path)
	if err != nil {
		return err
	}

	runner := validate.NewRunner(opts, cc.Logger)
	report, runErr := runner.Run(t, path)

	var critErr *validate.CriticalError
	if runErr != nil && !errors.As(runErr, &critErr) {
		// Structural failure: the pipeline aborted before producing a
		// complete report, so there is nothing meaningful to render.
		return runErr
	}

	if err := cc.Renderer.Report(report, opts.SeverityOf); err != nil {
		return err
	}
	if reportPath != "" {
		if err := writeReport(report, reportPath); err != nil {
			return err
		}
		cc.Logger.Info("report written", "path", reportPath)
	}

	if critErr != nil {
		return critErr
	}

	if report.Empty() {
		cc.Renderer.Success("%d records validated, no defects found", report.Records)
	} else {
		cc.Renderer.Success("%d records validated, %d advisory defects", report.Records, report.TotalDefects())
	}
	return nil
}

func writeReport(report validate.Report, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
