package cli

import (
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStakeholdersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "stakeholders [id]",
		Aliases:           []string{"stakeholder"},
		Short:             "List stakeholder archetypes or show one profile",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: stakeholderArgs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprint(out, formatter.FormatStakeholderList(app.Catalog.All()))
				return nil
			}
			id, err := resolveStakeholder(app, args[0])
			if err != nil {
				return err
			}
			p, _ := app.Catalog.Get(id)
			fmt.Fprint(out, formatter.FormatStakeholder(p))
			return nil
		},
	}
}
