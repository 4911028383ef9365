package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var flags revealFlags
	var html bool
	var output string
	var adjusted []float64

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a stakeholder briefing for the active scenario as markdown or HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reveal, err := flags.options(cmd.Context(), app)
			if err != nil {
				return err
			}
			opts := service.ReportOptions{Reveal: reveal}
			if cmd.Flags().Changed("sentiment") {
				adj, err := adjustmentFromFlag("sentiment", adjusted)
				if err != nil {
					return err
				}
				opts.Adjusted = &adj
			}

			render := app.Reports.Markdown
			if html {
				render = app.Reports.HTML
			}
			doc, err := render(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&html, "html", false, "Render HTML instead of markdown")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().Float64SliceVar(&adjusted, "sentiment", nil, "Include sentiment shifts towards re2030,re2040,coalPhaseoutYear")
	return cmd
}
