package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// revealFlags are shared by every command that generates responses.
type revealFlags struct {
	enhanced bool
	context  string
	variant  string
	ai       bool
}

func (f *revealFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.enhanced, "enhanced", false, "Apply interaction triggers and context/variant modifiers")
	fs.StringVar(&f.context, "context", "", "Development context: least-developed, emerging or developed (implies --enhanced)")
	fs.StringVar(&f.variant, "variant", "", "Personality variant: conservative, progressive or pragmatic (implies --enhanced)")
	fs.BoolVar(&f.ai, "ai", false, "Rewrite responses with a language model when one is reachable")
}

// options validates the flags and fills unset enhanced defaults from the
// stored preferences, then from config.
func (f *revealFlags) options(ctx context.Context, app *App) (service.RevealOptions, error) {
	opts := service.RevealOptions{Enhanced: f.enhanced, AI: f.ai}
	if f.context != "" {
		if !domain.ValidContexts[f.context] {
			return opts, fmt.Errorf("unknown context %q", f.context)
		}
		opts.Enhanced = true
		opts.Context = domain.DevelopmentContext(f.context)
	}
	if f.variant != "" {
		if !domain.ValidVariants[f.variant] {
			return opts, fmt.Errorf("unknown variant %q", f.variant)
		}
		opts.Enhanced = true
		opts.Variant = domain.Variant(f.variant)
	}
	if !opts.Enhanced {
		return opts, nil
	}
	defaults, err := app.enhancedDefaults(ctx)
	if err != nil {
		return opts, err
	}
	if opts.Context == "" {
		opts.Context = defaults.Context
	}
	if opts.Variant == "" {
		opts.Variant = defaults.Variant
	}
	return opts, nil
}

func newRevealCmd(app *App) *cobra.Command {
	var flags revealFlags
	var all, asJSON bool

	cmd := &cobra.Command{
		Use:   "reveal [stakeholder]",
		Short: "Reveal how a stakeholder reacts to the active scenario",
		Long: strings.TrimSpace(`
Reveal generates a stakeholder's reaction to the active scenario: an
initial reaction, what they appreciate, their concerns by severity, the
questions they will ask and advice for engaging them.

With --all every stakeholder is revealed and summarised in a table.`),
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: stakeholderArgs(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Context(), app)
			if err != nil {
				return err
			}
			if all == (len(args) == 1) {
				return fmt.Errorf("pass a stakeholder ID or --all")
			}

			stop := func() {}
			if opts.AI && app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Asking the language model...")
			}

			out := cmd.OutOrStdout()
			if all {
				responses, err := app.Dialogue.RevealAll(cmd.Context(), opts)
				stop()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(out, responses)
				}
				fmt.Fprint(out, formatter.FormatResponseSummary(responses))
				return nil
			}

			id, err := resolveStakeholder(app, args[0])
			if err != nil {
				stop()
				return err
			}
			resp, err := app.Dialogue.Reveal(cmd.Context(), id, opts)
			stop()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(out, resp)
			}
			fmt.Fprint(out, formatter.FormatResponse(*resp))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&all, "all", false, "Reveal every stakeholder")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
