package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/dustin/go-humanize"
)

// FormatComparison sets a recorded prediction against the stakeholder's
// actual concerns.
func FormatComparison(c *service.Comparison) string {
	var b strings.Builder
	total := len(c.MatchedConcerns) + len(c.MissedConcerns)

	b.WriteString(StyleHeader.Render(strings.ToUpper(c.Response.StakeholderName)) + "\n\n")
	b.WriteString(Section("Your prediction", "  "+StyleFg.Italic(true).Render(c.Prediction.Text)+"\n  "+Dim(humanize.Time(c.Prediction.CreatedAt))))
	b.WriteString(Section("Actual reaction", Wrap(c.Response.InitialReaction)))

	b.WriteString(Header(fmt.Sprintf("Concerns anticipated %d/%d", len(c.MatchedConcerns), total)) + "\n")
	b.WriteString(concernChecklist(c.MatchedConcerns, StyleGreen.Render("✓")))
	b.WriteString(concernChecklist(c.MissedConcerns, StyleRed.Render("✗")))
	if total == 0 {
		b.WriteString("  " + Dim("this stakeholder raised no concerns") + "\n")
	}
	return b.String()
}

func concernChecklist(concerns []domain.Concern, mark string) string {
	var b strings.Builder
	for _, c := range concerns {
		fmt.Fprintf(&b, "  %s %s %s\n", mark, c.Text, SeverityStyle(c.Severity).Render("("+string(c.Severity)+")"))
	}
	return b.String()
}

// FormatPredictions lists recorded predictions with the stakeholder name.
func FormatPredictions(preds []*domain.Prediction, name func(domain.StakeholderID) string) string {
	if len(preds) == 0 {
		return Dim("No predictions recorded for the active scenario.") + "\n"
	}
	rows := make([][]string, 0, len(preds))
	for _, p := range preds {
		rows = append(rows, []string{name(p.StakeholderID), truncate(p.Text, 60), Dim(humanize.Time(p.CreatedAt))})
	}
	return RenderTable([]string{"STAKEHOLDER", "PREDICTION", "RECORDED"}, rows)
}
