package cli

import (
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/spf13/cobra"
)

func newSentimentCmd(app *App) *cobra.Command {
	var base, adjusted []float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Show how stakeholder sentiment shifts between two slider positions",
		Example: `  dialogue sentiment --adjusted 60,80,2040
  dialogue sentiment --base 45,65,2050 --adjusted 30,50,2050`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adj, err := adjustmentFromFlag("adjusted", adjusted)
			if err != nil {
				return err
			}

			var b domain.AdjustmentState
			if cmd.Flags().Changed("base") {
				if b, err = adjustmentFromFlag("base", base); err != nil {
					return err
				}
			} else if b, err = app.Explore.Baseline(cmd.Context()); err != nil {
				return fmt.Errorf("deriving base from the active scenario: %w", err)
			}

			res := app.Explore.Explore(cmd.Context(), b, adj)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSentiment(res))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&base, "base", nil, "Base position as re2030,re2040,coalPhaseoutYear (default: from the active scenario)")
	cmd.Flags().Float64SliceVar(&adjusted, "adjusted", nil, "Adjusted position as re2030,re2040,coalPhaseoutYear")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	_ = cmd.MarkFlagRequired("adjusted")
	return cmd
}

func adjustmentFromFlag(name string, v []float64) (domain.AdjustmentState, error) {
	if len(v) != 3 {
		return domain.AdjustmentState{}, fmt.Errorf("--%s needs three values: re2030,re2040,coalPhaseoutYear", name)
	}
	s := domain.AdjustmentState{REShare2030: v[0], REShare2040: v[1], CoalPhaseout: v[2]}
	if err := validateAdjustment(s); err != nil {
		return s, fmt.Errorf("--%s: %w", name, err)
	}
	return s, nil
}

func validateAdjustment(s domain.AdjustmentState) error {
	for _, share := range []float64{s.REShare2030, s.REShare2040} {
		if share < 0 || share > 100 {
			return fmt.Errorf("RE share %g outside 0-100", share)
		}
	}
	if s.CoalPhaseout < minCoalYear || s.CoalPhaseout > maxCoalYear {
		return fmt.Errorf("coal phase-out %g outside %d-%d", s.CoalPhaseout, minCoalYear, maxCoalYear)
	}
	return nil
}
