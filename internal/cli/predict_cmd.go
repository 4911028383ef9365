package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPredictCmd(app *App) *cobra.Command {
	var text string
	var list bool

	cmd := &cobra.Command{
		Use:               "predict [stakeholder]",
		Short:             "Record your prediction of a stakeholder's reaction before revealing it",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: stakeholderArgs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				preds, err := app.Predictions.List(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprint(out, formatter.FormatPredictions(preds, app.Catalog.Name))
				return nil
			}
			if len(args) == 0 {
				return errors.New("stakeholder ID is required")
			}

			id, err := resolveStakeholder(app, args[0])
			if err != nil {
				return err
			}
			if text == "" {
				if !app.interactive() {
					return errors.New("--text is required when not running in a terminal")
				}
				p, _ := app.Catalog.Get(id)
				if err := predictionForm(p.Name, p.Priorities, &text).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}

			pred, err := app.Predictions.Record(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Recorded prediction for %s. Run `dialogue compare %s` to check it.\n",
				formatter.Bold(app.Catalog.Name(pred.StakeholderID)), pred.StakeholderID)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Prediction text (skips the interactive form)")
	cmd.Flags().BoolVar(&list, "list", false, "List predictions recorded for the active scenario")
	return cmd
}

func newCompareCmd(app *App) *cobra.Command {
	var flags revealFlags

	cmd := &cobra.Command{
		Use:               "compare <stakeholder>",
		Short:             "Compare your latest prediction with the stakeholder's actual reaction",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: stakeholderArgs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Context(), app)
			if err != nil {
				return err
			}
			id, err := resolveStakeholder(app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Predictions.Compare(cmd.Context(), id, opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatComparison(c))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
