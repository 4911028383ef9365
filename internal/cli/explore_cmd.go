package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/cli/formatter"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	shareStep   = 5
	coalStep    = 5
	minCoalYear = 2025
	maxCoalYear = 2050
)

func newExploreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Move the three scenario levers and watch stakeholder sentiment shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("explore needs a terminal; use `dialogue sentiment` instead")
			}
			base, err := app.Explore.Baseline(cmd.Context())
			if err != nil {
				return err
			}
			m := newExploreModel(cmd.Context(), app.Explore, base)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// ── keys ─────────────────────────────────────────────────────────────────────

type exploreKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Reset, k.Quit}
}

func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var exploreKeys = exploreKeyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev lever")),
	Down:  key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next lever")),
	Left:  key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
	Right: key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ── model ────────────────────────────────────────────────────────────────────

type lever int

const (
	leverRE2030 lever = iota
	leverRE2040
	leverCoal
	leverCount
)

// exploreModel holds the base position fixed and recomputes sentiment on
// every lever change.
type exploreModel struct {
	ctx      context.Context
	explore  service.ExploreService
	base     domain.AdjustmentState
	adjusted domain.AdjustmentState
	selected lever
	result   *service.ExploreResult
	help     help.Model
}

func newExploreModel(ctx context.Context, explore service.ExploreService, base domain.AdjustmentState) *exploreModel {
	m := &exploreModel{
		ctx:      ctx,
		explore:  explore,
		base:     base,
		adjusted: base,
		help:     help.New(),
	}
	m.recompute()
	return m
}

func (m *exploreModel) Init() tea.Cmd { return nil }

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, exploreKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, exploreKeys.Up):
			m.selected = (m.selected + leverCount - 1) % leverCount
		case key.Matches(msg, exploreKeys.Down):
			m.selected = (m.selected + 1) % leverCount
		case key.Matches(msg, exploreKeys.Left):
			m.nudge(-1)
		case key.Matches(msg, exploreKeys.Right):
			m.nudge(1)
		case key.Matches(msg, exploreKeys.Reset):
			m.adjusted = m.base
			m.recompute()
		}
	}
	return m, nil
}

// nudge moves the selected lever one step, clamped to its range.
func (m *exploreModel) nudge(dir float64) {
	switch m.selected {
	case leverRE2030:
		m.adjusted.REShare2030 = clamp(m.adjusted.REShare2030+dir*shareStep, 0, 100)
	case leverRE2040:
		m.adjusted.REShare2040 = clamp(m.adjusted.REShare2040+dir*shareStep, 0, 100)
	case leverCoal:
		m.adjusted.CoalPhaseout = clamp(m.adjusted.CoalPhaseout+dir*coalStep, minCoalYear, maxCoalYear)
	}
	m.recompute()
}

func (m *exploreModel) recompute() {
	m.result = m.explore.Explore(m.ctx, m.base, m.adjusted)
}

func (m *exploreModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Explore") + "\n\n")

	levers := []struct {
		label       string
		base, value float64
		bar         string
	}{
		{"RE share 2030", m.base.REShare2030, m.adjusted.REShare2030, formatter.RenderShareBar(m.adjusted.REShare2030, 20)},
		{"RE share 2040", m.base.REShare2040, m.adjusted.REShare2040, formatter.RenderShareBar(m.adjusted.REShare2040, 20)},
		{"Coal phase-out", m.base.CoalPhaseout, m.adjusted.CoalPhaseout, coalBar(m.adjusted.CoalPhaseout, 20)},
	}
	for i, l := range levers {
		cursor := "  "
		label := fmt.Sprintf("%-15s", l.label)
		if lever(i) == m.selected {
			cursor = formatter.StyleHeader.Render("▸ ")
			label = formatter.Bold(label)
		}
		fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, label, l.bar, formatter.Dim(fmt.Sprintf("base %g", l.base)))
	}
	b.WriteString("\n")

	if m.adjusted == m.base {
		b.WriteString(formatter.Dim("Move a lever to see how stakeholders react.") + "\n\n")
	} else {
		rows := make([][]string, 0, len(m.result.Changes))
		for _, c := range m.result.Changes {
			rows = append(rows, []string{c.StakeholderName, formatter.SentimentIndicator(c.Direction, c.Magnitude), fmt.Sprintf("%+d", c.NetScore)})
		}
		b.WriteString(formatter.RenderTable([]string{"STAKEHOLDER", "SHIFT", "NET"}, rows) + "\n")
		b.WriteString(formatter.FormatImpacts(m.result.Impacts) + "\n")
	}

	b.WriteString(m.help.View(exploreKeys))
	return b.String()
}

func coalBar(year float64, width int) string {
	pos := int((year - minCoalYear) / (maxCoalYear - minCoalYear) * float64(width-1))
	pos = min(max(pos, 0), width-1)
	track := []rune(strings.Repeat("─", width))
	track[pos] = '●'
	return fmt.Sprintf("[%s] %4.0f", formatter.StyleYellow.Render(string(track)), year)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
