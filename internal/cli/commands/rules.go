package commands

import (
	"encoding/json"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/ctaps04/shipment-data-validation-pipeline/internal/cli/output"
	"github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate"
	_ "github.com/ctaps04/shipment-data-validation-pipeline/pkg/validate/rules"
)

// NewRulesCommand creates the rules command, which lists every registered
// validation stage and the defect kinds it can report.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered validation rules",
		Long: `Rules lists every validation stage in execution order, with the
defect kinds each stage can report and their default severities.
Severities can be reassigned per kind in shipcheck.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := NewCommandContext(cmd)
			opts := cc.Cfg.Options()
			stages := validate.Stages()

			if cc.Renderer.Mode() == output.ModeJSON {
				type ruleRow struct {
					Domain      string `json:"domain"`
					Kind        string `json:"kind"`
					Severity    string `json:"severity"`
					Description string `json:"description"`
				}
				var rows []ruleRow
				for _, stage := range stages {
					for _, kind := range stage.Kinds {
						rows = append(rows, ruleRow{
							Domain:      stage.Domain,
							Kind:        kind.Kind,
							Severity:    opts.SeverityOf(kind.Kind).String(),
							Description: kind.Description,
						})
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Domain", "Kind", "Severity", "Description"})
			for _, stage := range stages {
				for _, kind := range stage.Kinds {
					tw.AppendRow(table.Row{stage.Domain, kind.Kind, opts.SeverityOf(kind.Kind).String(), kind.Description})
				}
			}
			if cc.Renderer.Mode() == output.ModeMarkdown {
				tw.RenderMarkdown()
			} else {
				tw.Render()
			}
			return nil
		},
	}
}
