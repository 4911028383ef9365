package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/service"
)

// FormatAdjustment renders a slider position on one line.
func FormatAdjustment(s domain.AdjustmentState) string {
	return fmt.Sprintf("RE 2030 %g%% · RE 2040 %g%% · coal phase-out %g", s.REShare2030, s.REShare2040, s.CoalPhaseout)
}

// FormatSentiment renders the sentiment shift of every stakeholder and the
// directional impacts between two slider positions.
func FormatSentiment(res *service.ExploreResult) string {
	var b strings.Builder
	b.WriteString(Dim("base     ") + FormatAdjustment(res.Base) + "\n")
	b.WriteString(Dim("adjusted ") + FormatAdjustment(res.Adjusted) + "\n\n")

	rows := make([][]string, 0, len(res.Changes))
	for _, c := range res.Changes {
		rows = append(rows, []string{
			c.StakeholderName,
			SentimentIndicator(c.Direction, c.Magnitude),
			fmt.Sprintf("%+d", c.NetScore),
			factorSummary(c),
		})
	}
	b.WriteString(Section("Sentiment shifts", RenderTable([]string{"STAKEHOLDER", "SHIFT", "NET", "DRIVERS"}, rows)))
	b.WriteString(FormatImpacts(res.Impacts))
	return b.String()
}

// FormatImpacts renders the jobs, land use and emissions impacts.
func FormatImpacts(im domain.DirectionalImpacts) string {
	var b strings.Builder
	b.WriteString(Header("Impacts") + "\n")
	for _, row := range []struct {
		label  string
		impact domain.Impact
	}{
		{"Jobs", im.Jobs},
		{"Land use", im.LandUse},
		{"Emissions", im.Emissions},
	} {
		fmt.Fprintf(&b, "  %-10s %s\n", row.label, ImpactIndicator(row.impact))
		if row.impact.Explanation != "" {
			b.WriteString("             " + Dim(row.impact.Explanation) + "\n")
		}
	}
	return b.String()
}

func factorSummary(c domain.SentimentChange) string {
	parts := make([]string, 0, len(c.PositiveFactors)+len(c.NegativeFactors))
	for _, f := range c.PositiveFactors {
		parts = append(parts, StyleGreen.Render("+")+" "+f)
	}
	for _, f := range c.NegativeFactors {
		parts = append(parts, StyleRed.Render("-")+" "+f)
	}
	if len(parts) == 0 {
		return Dim("no change")
	}
	return strings.Join(parts, "; ")
}
