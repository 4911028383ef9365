package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/api"
	"github.com/alexanderramin/scenariodialogue/internal/config"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	Catalog     *profiles.Catalog
	Scenarios   service.ScenarioService
	Dialogue    service.DialogueService
	Predictions service.PredictionService
	Explore     service.ExploreService
	Reports     service.ReportService
	Preferences service.PreferencesService
	Config      *config.Config

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) config() *config.Config {
	if a.Config == nil {
		return config.DefaultConfig()
	}
	return a.Config
}

// enhancedDefaults merges stored preferences over the config file.
func (a *App) enhancedDefaults(ctx context.Context) (service.EnhancedDefaults, error) {
	cfg := a.config().Enhanced
	out := service.EnhancedDefaults{Context: cfg.Context, Variant: cfg.Variant}
	if a.Preferences == nil {
		return out, nil
	}
	stored, err := a.Preferences.EnhancedDefaults(ctx)
	if err != nil {
		return out, err
	}
	if stored.Context != "" {
		out.Context = stored.Context
	}
	if stored.Variant != "" {
		out.Variant = stored.Variant
	}
	return out, nil
}

func (a *App) container() *api.Container {
	return &api.Container{
		Catalog:   a.Catalog,
		Scenarios: a.Scenarios,
		Dialogue:  a.Dialogue,
		Explore:   a.Explore,
	}
}

// NewRootCmd creates the top-level "dialogue" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "dialogue",
		Short:         "Rehearse stakeholder reactions to an energy scenario",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newScenarioCmd(app),
		newStakeholdersCmd(app),
		newRevealCmd(app),
		newPredictCmd(app),
		newCompareCmd(app),
		newSentimentCmd(app),
		newExploreCmd(app),
		newReportCmd(app),
		newAICmd(app),
		newDefaultsCmd(app),
		newServeCmd(app),
	)

	return root
}

// resolveStakeholder accepts a full id or an unambiguous id prefix.
func resolveStakeholder(app *App, input string) (domain.StakeholderID, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("stakeholder ID is required")
	}
	if domain.ValidStakeholderIDs[input] {
		return domain.StakeholderID(input), nil
	}

	var matches []domain.StakeholderID
	for _, id := range app.Catalog.IDs() {
		if strings.HasPrefix(string(id), input) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q (one of %s)", service.ErrUnknownStakeholder, input, stakeholderIDList(app))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("stakeholder prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func stakeholderIDList(app *App) string {
	ids := make([]string, 0, len(app.Catalog.IDs()))
	for _, id := range app.Catalog.IDs() {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return strings.Join(ids, ", ")
}

// stakeholderArgs completes stakeholder ids for positional arguments.
func stakeholderArgs(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var out []string
		for _, p := range app.Catalog.All() {
			if strings.HasPrefix(string(p.ID), toComplete) {
				out = append(out, string(p.ID)+"\t"+p.Name)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
