package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/spf13/cobra"
)

func newDefaultsCmd(app *App) *cobra.Command {
	var contextFlag, variantFlag string
	var reset bool

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Show or store the default context and variant for enhanced responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Preferences == nil {
				return errors.New("preferences are not available")
			}
			ctx := cmd.Context()

			switch {
			case reset:
				if err := app.Preferences.ResetEnhancedDefaults(ctx); err != nil {
					return err
				}
			case contextFlag != "" || variantFlag != "":
				err := app.Preferences.SetEnhancedDefaults(ctx, service.EnhancedDefaults{
					Context: domain.DevelopmentContext(contextFlag),
					Variant: domain.Variant(variantFlag),
				})
				if err != nil {
					return err
				}
			}

			effective, err := app.enhancedDefaults(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n", formatter.Bold("context"), effective.Context)
			fmt.Fprintf(out, "%s  %s\n", formatter.Bold("variant"), effective.Variant)
			return nil
		},
	}

	cmd.Flags().StringVar(&contextFlag, "context", "", "Store a default development context")
	cmd.Flags().StringVar(&variantFlag, "variant", "", "Store a default personality variant")
	cmd.Flags().BoolVar(&reset, "reset", false, "Forget stored defaults and use the config file")
	cmd.MarkFlagsMutuallyExclusive("reset", "context")
	cmd.MarkFlagsMutuallyExclusive("reset", "variant")
	return cmd
}
