package service

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
)

const reportCSS = `body{font-family:system-ui,sans-serif;max-width:960px;margin:2rem auto;padding:0 1rem;color:#282828;}
table{border-collapse:collapse;width:100%;font-size:0.9rem;}
th,td{border:1px solid #a89984;padding:0.3rem 0.5rem;text-align:left;}
thead th{background:#ebdbb2;}
blockquote{border-left:4px solid #458588;margin:0;padding-left:1rem;color:#504945;}`

type reportService struct {
	scenarios ScenarioService
	dialogue  DialogueService
	explore   ExploreService
	observer  UseCaseObserver
	markdown  goldmark.Markdown
	now       func() time.Time
}

func NewReportService(scenarios ScenarioService, dialogue DialogueService, explore ExploreService, observers ...UseCaseObserver) ReportService {
	return &reportService{
		scenarios: scenarios,
		dialogue:  dialogue,
		explore:   explore,
		observer:  useCaseObserverOrNoop(observers),
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Markdown builds the stakeholder briefing for the active scenario.
func (s *reportService) Markdown(ctx context.Context, opts ReportOptions) (md string, err error) {
	fields := map[string]any{"format": "markdown"}
	ctx, finish := useCase(ctx, s.observer, "report", fields)
	defer func() { finish(err) }()

	md, err = s.build(ctx, opts)
	fields["bytes"] = len(md)
	return md, err
}

// HTML renders the briefing to a standalone HTML page.
func (s *reportService) HTML(ctx context.Context, opts ReportOptions) (page string, err error) {
	fields := map[string]any{"format": "html"}
	ctx, finish := useCase(ctx, s.observer, "report", fields)
	defer func() { finish(err) }()

	md, err := s.build(ctx, opts)
	if err != nil {
		return "", err
	}
	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	title := html.EscapeString(firstLine(md))
	page = "<!doctype html><html><head><meta charset='utf-8'><title>" + title + "</title>" +
		"<style>" + reportCSS + "</style></head><body>" + body.String() + "</body></html>"
	fields["bytes"] = len(page)
	return page, nil
}

func (s *reportService) build(ctx context.Context, opts ReportOptions) (string, error) {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return "", err
	}
	responses, err := s.dialogue.RevealAll(ctx, opts.Reveal)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	scenario := active.Scenario()
	fmt.Fprintf(&b, "# Stakeholder briefing: %s (%s)\n\n", scenario.Metadata.ScenarioName, scenario.Metadata.Country)
	fmt.Fprintf(&b, "_Generated %s_\n\n", s.now().Format("2 January 2006"))

	writeScenarioSummary(&b, scenario, active.Derived)
	writeResponses(&b, responses)

	if opts.Adjusted != nil {
		base := BaselineState(scenario)
		writeSentiment(&b, s.explore.Explore(ctx, base, *opts.Adjusted))
	}
	return b.String(), nil
}

func writeScenarioSummary(b *strings.Builder, s *domain.ScenarioInput, d *domain.DerivedMetrics) {
	b.WriteString("## Scenario summary\n\n")
	b.WriteString("| Year | RE share (%) | Capacity (MW) | Cumulative investment (m$) | Emissions (Mt CO2) | Jobs |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, m := range s.Milestones {
		jobs := "N/A"
		if v, ok := d.Jobs.Total[m.Year]; ok {
			jobs = metrics.FormatValue(v)
		}
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s |\n",
			m.Year,
			metrics.FormatValue(m.REShare),
			metrics.FormatValue(m.Capacity.Total.Sum()),
			metrics.FormatValue(m.Investment.Cumulative),
			metrics.FormatValue(m.Emissions.Total),
			jobs,
		)
	}
	b.WriteString("\n")
	if final, ok := s.FinalMilestone(); ok {
		if v, ok := d.Emissions.ReductionPercent[final.Year]; ok {
			fmt.Fprintf(b, "Emissions fall %s%% by %d relative to %d.\n\n", metrics.FormatValue(v), final.Year, s.Milestones[0].Year)
		}
	}
}

func writeResponses(b *strings.Builder, responses []domain.StakeholderResponse) {
	b.WriteString("## Stakeholder responses\n\n")
	for _, r := range responses {
		fmt.Fprintf(b, "### %s\n\n", r.StakeholderName)
		fmt.Fprintf(b, "_%s_\n\n", r.GenerationType)
		fmt.Fprintf(b, "> %s\n\n", r.InitialReaction)
		writeList(b, "What they appreciate", r.Appreciation)
		if len(r.Concerns) > 0 {
			b.WriteString("**Concerns**\n\n")
			for _, c := range r.Concerns {
				fmt.Fprintf(b, "- **%s** (%s): %s\n", c.Text, c.Severity, c.Explanation)
			}
			b.WriteString("\n")
		}
		writeList(b, "Questions they will ask", r.Questions)
		writeList(b, "Engagement advice", r.EngagementAdvice)
	}
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", heading)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func writeSentiment(b *strings.Builder, res *ExploreResult) {
	b.WriteString("## Sentiment shifts\n\n")
	fmt.Fprintf(b, "RE share 2030 %s%% to %s%%, 2040 %s%% to %s%%, coal phase-out %d to %d.\n\n",
		metrics.FormatValue(res.Base.REShare2030), metrics.FormatValue(res.Adjusted.REShare2030),
		metrics.FormatValue(res.Base.REShare2040), metrics.FormatValue(res.Adjusted.REShare2040),
		int(res.Base.CoalPhaseout), int(res.Adjusted.CoalPhaseout))
	b.WriteString("| Stakeholder | Direction | Magnitude | Net score |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, c := range res.Changes {
		fmt.Fprintf(b, "| %s | %s | %s | %d |\n", c.StakeholderName, c.Direction, c.Magnitude, c.NetScore)
	}
	b.WriteString("\n")
	fmt.Fprintf(b, "- Jobs: %s (%s). %s\n", res.Impacts.Jobs.Direction, res.Impacts.Jobs.Magnitude, res.Impacts.Jobs.Explanation)
	fmt.Fprintf(b, "- Land use: %s (%s). %s\n", res.Impacts.LandUse.Direction, res.Impacts.LandUse.Magnitude, res.Impacts.LandUse.Explanation)
	fmt.Fprintf(b, "- Emissions: %s (%s). %s\n\n", res.Impacts.Emissions.Direction, res.Impacts.Emissions.Magnitude, res.Impacts.Emissions.Explanation)
}

func firstLine(md string) string {
	line, _, _ := strings.Cut(md, "\n")
	return strings.TrimSpace(strings.TrimLeft(line, "# "))
}
