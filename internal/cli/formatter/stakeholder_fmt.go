package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// FormatStakeholderList renders the catalog as an id/name/description table.
func FormatStakeholderList(profiles []domain.StakeholderProfile) string {
	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			Dim(string(p.ID)),
			StakeholderStyle(p.Color).Render(p.Name),
			truncate(p.Description, 60),
		})
	}
	return RenderTable([]string{"ID", "NAME", "DESCRIPTION"}, rows)
}

// FormatStakeholder renders a profile's engagement guidance and the metrics
// that move it.
func FormatStakeholder(p domain.StakeholderProfile) string {
	var b strings.Builder
	b.WriteString(StakeholderStyle(p.Color).Render(p.Name) + "  " + Dim(string(p.ID)) + "\n\n")
	b.WriteString(Wrap(p.Description) + "\n\n")

	if p.WhyEngage != "" {
		b.WriteString(Section("Why engage", Wrap(p.WhyEngage)))
	}
	if p.BenefitForThem != "" {
		b.WriteString(Section("What they gain", Wrap(p.BenefitForThem)))
	}
	b.WriteString(Section("Priorities", Bullets(p.Priorities, StyleGreen, "none listed")))
	b.WriteString(Section("Typical questions", Bullets(p.TypicalQuestions, StyleBlue, "none listed")))
	b.WriteString(Section("Challenges", Bullets(p.Challenges, StyleYellow, "none listed")))
	b.WriteString(Section("Good practices", Bullets(p.GoodPractices, StylePurple, "none listed")))

	rows := make([][]string, 0, len(p.ConcernTriggers)+len(p.PositiveIndicators))
	for _, t := range p.ConcernTriggers {
		rows = append(rows, []string{StyleRed.Render("concern"), t.Metric, triggerCondition(t.Direction, t.Threshold)})
	}
	for _, t := range p.PositiveIndicators {
		rows = append(rows, []string{StyleGreen.Render("praise"), t.Metric, triggerCondition(t.Direction, t.Threshold)})
	}
	if len(rows) > 0 {
		b.WriteString(Header("Triggers") + "\n" + RenderTable([]string{"KIND", "METRIC", "WHEN"}, rows))
	}
	return b.String()
}

func triggerCondition(d domain.Direction, threshold float64) string {
	op := ">"
	if d == domain.Below {
		op = "<"
	}
	return fmt.Sprintf("%s %g", op, threshold)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
