package cli

import (
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAICmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Language model enhancement",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which language model tier is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAIStatus(app.Dialogue.AIStatus(cmd.Context())))
			return nil
		},
	})

	return cmd
}
