package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// FormatResponse renders one stakeholder's reaction to the active scenario.
func FormatResponse(resp domain.StakeholderResponse) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(strings.ToUpper(resp.StakeholderName)))
	b.WriteString("  " + GenerationBadge(resp.GenerationType))
	if md := resp.Metadata; md != nil {
		var tags []string
		if md.Context != "" {
			tags = append(tags, string(md.Context))
		}
		if md.Variant != "" {
			tags = append(tags, string(md.Variant))
		}
		if md.Model != "" {
			tags = append(tags, md.Model)
		}
		if len(tags) > 0 {
			b.WriteString("  " + Dim(strings.Join(tags, " · ")))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Italic(true).Render(Wrap(fmt.Sprintf("%q", resp.InitialReaction))))
	b.WriteString("\n\n")

	b.WriteString(Section("Appreciation", Bullets(resp.Appreciation, StyleGreen, "nothing stood out")))
	b.WriteString(Section("Concerns", formatConcerns(resp.Concerns)))
	b.WriteString(Section("Questions", Bullets(resp.Questions, StyleBlue, "no questions")))
	b.WriteString(Header("Engagement advice") + "\n" + Bullets(resp.EngagementAdvice, StylePurple, "no advice"))
	b.WriteString("\n")
	return b.String()
}

func formatConcerns(concerns []domain.Concern) string {
	if len(concerns) == 0 {
		return "  " + Dim("no concerns raised")
	}
	lines := make([]string, 0, len(concerns)*2)
	for _, c := range concerns {
		lines = append(lines, fmt.Sprintf("  %s %s", SeverityBadge(c.Severity), c.Text))
		if c.Explanation != "" {
			lines = append(lines, "    "+Dim(c.Explanation))
		}
	}
	return strings.Join(lines, "\n")
}

// FormatResponseSummary renders one row per stakeholder with concern counts
// by severity.
func FormatResponseSummary(responses []domain.StakeholderResponse) string {
	if len(responses) == 0 {
		return Dim("No responses.") + "\n"
	}
	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		counts := map[domain.Severity]int{}
		for _, c := range r.Concerns {
			counts[c.Severity]++
		}
		rows = append(rows, []string{
			r.StakeholderName,
			fmt.Sprint(len(r.Appreciation)),
			SeverityStyle(domain.SeverityHigh).Render(fmt.Sprint(counts[domain.SeverityHigh])),
			SeverityStyle(domain.SeverityMedium).Render(fmt.Sprint(counts[domain.SeverityMedium])),
			SeverityStyle(domain.SeverityLow).Render(fmt.Sprint(counts[domain.SeverityLow])),
			GenerationBadge(r.GenerationType),
		})
	}
	return Table{
		Headers:    []string{"STAKEHOLDER", "PRAISE", "HIGH", "MEDIUM", "LOW", "SOURCE"},
		Rows:       rows,
		RightAlign: map[int]bool{1: true, 2: true, 3: true, 4: true},
	}.Render()
}
