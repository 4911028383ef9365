package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/alexanderramin/scenariodialogue/internal/importer"
	"github.com/spf13/cobra"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Import and inspect energy scenarios",
	}

	cmd.AddCommand(
		newScenarioImportCmd(app),
		newScenarioShowCmd(app),
		newScenarioYearsCmd(),
		newScenarioListCmd(app),
		newScenarioActivateCmd(app),
		newScenarioDeleteCmd(app),
	)

	return cmd
}

func newScenarioImportCmd(app *App) *cobra.Command {
	var country, name string
	var years []int

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a scenario from JSON or a SPLAT/generic CSV export and make it active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Scenarios.ImportFile(cmd.Context(), args[0], importer.CSVOptions{
				MilestoneYears: years,
				Country:        country,
				ScenarioName:   name,
			})
			if err != nil {
				return err
			}
			s := res.Stored.Scenario
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s) with %d milestones %s\n",
				formatter.Bold(s.Metadata.ScenarioName), s.Metadata.Country, len(s.Milestones),
				formatter.Dim("["+formatter.ShortID(res.Stored.ID)+"]"))
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "Country name (required for CSV imports)")
	cmd.Flags().StringVar(&name, "name", "", "Scenario name for CSV imports (default: file name)")
	cmd.Flags().IntSliceVar(&years, "years", nil, "Milestone years to aggregate from a CSV (default: suggested)")
	return cmd
}

func newScenarioShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active scenario and its derived metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			active, err := app.Scenarios.Active(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScenario(active.Stored, active.Derived))
			return nil
		},
	}
}

func newScenarioYearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years <file.csv>",
		Short: "List the years in a CSV export and the suggested milestone years",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			available, err := importer.AvailableYears(f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatYears(available, importer.SuggestMilestoneYears(available)))
			return nil
		},
	}
}

func newScenarioListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := app.Scenarios.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatScenarioList(scenarios, time.Now()))
			return nil
		},
	}
}

func newScenarioActivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Make a stored scenario the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveScenarioID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Activate(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activated scenario %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

func newScenarioDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored scenario and its predictions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveScenarioID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Scenarios.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted scenario %s\n", formatter.ShortID(id))
			return nil
		},
	}
}

// resolveScenarioID matches a full scenario id or a unique id prefix.
func resolveScenarioID(ctx context.Context, app *App, input string) (string, error) {
	scenarios, err := app.Scenarios.List(ctx)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range scenarios {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("scenario not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("scenario ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
