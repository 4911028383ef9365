package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
	"github.com/dustin/go-humanize"
)

// FormatScenario renders the active scenario: metadata, a per-milestone
// summary and the renewable share trajectory.
func FormatScenario(stored *domain.StoredScenario, derived *domain.DerivedMetrics) string {
	s := stored.Scenario
	md := s.Metadata

	var b strings.Builder
	b.WriteString(Bold(md.ScenarioName) + "  " + Dim(md.Country) + "\n")
	var meta []string
	if md.ModelVersion != "" {
		meta = append(meta, "model "+md.ModelVersion)
	}
	meta = append(meta, string(stored.Source)+" import", "updated "+humanize.Time(stored.UpdatedAt))
	b.WriteString(Dim(strings.Join(meta, " · ")) + "\n\n")

	headers := []string{"YEAR", "RE SHARE", "CAPACITY MW", "INVEST m$", "EMISSIONS Mt", "JOBS"}
	rows := make([][]string, 0, len(s.Milestones))
	for _, m := range s.Milestones {
		rows = append(rows, []string{
			fmt.Sprint(m.Year),
			metrics.FormatValue(m.REShare) + "%",
			metrics.FormatValue(derived.Capacity.TotalInstalled[m.Year]),
			metrics.FormatValue(m.Investment.Cumulative),
			metrics.FormatValue(m.Emissions.Total),
			metrics.FormatValue(derived.Jobs.Total[m.Year]),
		})
	}
	b.WriteString(Section("Milestones", RenderNumericTable(headers, rows)))

	lines := make([]string, 0, len(s.Milestones))
	for _, m := range s.Milestones {
		lines = append(lines, fmt.Sprintf("  %d  %s", m.Year, RenderShareBar(m.REShare, 30)))
	}
	b.WriteString(Header("Renewable share") + "\n" + strings.Join(lines, "\n") + "\n")

	if len(s.Milestones) > 1 {
		first, last := s.Milestones[0], s.Milestones[len(s.Milestones)-1]
		if v, ok := derived.Emissions.ReductionPercent[last.Year]; ok {
			b.WriteString("\n" + Dim(fmt.Sprintf("Emissions fall %s%% by %d relative to %d.", metrics.FormatValue(v), last.Year, first.Year)) + "\n")
		}
	}
	return b.String()
}

// FormatScenarioList renders stored scenarios newest first, marking the
// active one.
func FormatScenarioList(scenarios []*domain.StoredScenario, now time.Time) string {
	if len(scenarios) == 0 {
		return Dim("No scenarios imported. Run `dialogue scenario import <file>`.") + "\n"
	}
	rows := make([][]string, 0, len(scenarios))
	for _, st := range scenarios {
		marker := " "
		if st.Active {
			marker = StyleGreen.Render("●")
		}
		rows = append(rows, []string{
			marker,
			Dim(ShortID(st.ID)),
			st.Scenario.Metadata.ScenarioName,
			st.Scenario.Metadata.Country,
			string(st.Source),
			fmt.Sprint(len(st.Scenario.Milestones)),
			humanize.RelTime(st.UpdatedAt, now, "ago", "from now"),
		})
	}
	return RenderTable([]string{"", "ID", "NAME", "COUNTRY", "SOURCE", "MILESTONES", "UPDATED"}, rows)
}

// FormatYears renders the years found in a CSV export and the suggested
// milestone years.
func FormatYears(available, suggested []int) string {
	if len(available) == 0 {
		return Dim("No Year column found; the standard milestones would be used: ") + joinYears(suggested) + "\n"
	}
	var b strings.Builder
	b.WriteString(Bold("Available") + "  " + joinYears(available) + "\n")
	b.WriteString(Bold("Suggested") + "  " + StyleGreen.Render(joinYears(suggested)) + "\n")
	return b.String()
}

func joinYears(years []int) string {
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = fmt.Sprint(y)
	}
	return strings.Join(parts, ", ")
}

// ShortID returns the first eight characters of an id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
