package formatter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
	"github.com/alexanderramin/scenariodialogue/internal/service"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderNumericTable_RightAlignsValues(t *testing.T) {
	out := stripANSI(RenderNumericTable(
		[]string{"YEAR", "VALUE"},
		[][]string{{"2030", "5"}, {"2050", "1,200"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "YEAR  VALUE", lines[0])
	assert.Equal(t, "────  ─────", lines[1])
	assert.Equal(t, "2030      5", lines[2])
	assert.Equal(t, "2050  1,200", lines[3])
}

func TestRenderTable_PadsShortRows(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"x"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x", strings.TrimRight(lines[2], " "))
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderShareBar_ClampsAndColours(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderShareBar(50, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderShareBar(140, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderShareBar(-3, 10)))
}

func TestSeverityBadge_Labels(t *testing.T) {
	assert.Equal(t, "● HIGH", stripANSI(SeverityBadge(domain.SeverityHigh)))
	assert.Equal(t, "● LOW", stripANSI(SeverityBadge(domain.SeverityLow)))
	assert.Equal(t, "● UNKNOWN", stripANSI(SeverityBadge("")))
}

func TestSentimentIndicator_Directions(t *testing.T) {
	assert.Equal(t, "▲ positive (moderate)", stripANSI(SentimentIndicator(domain.SentimentPositive, domain.MagnitudeModerate)))
	assert.Equal(t, "▼ negative (significant)", stripANSI(SentimentIndicator(domain.SentimentNegative, domain.MagnitudeSignificant)))
	assert.Equal(t, "● neutral", stripANSI(SentimentIndicator(domain.SentimentNeutral, domain.MagnitudeMinor)))
}

func sampleResponse() domain.StakeholderResponse {
	return domain.StakeholderResponse{
		StakeholderID:   domain.StakeholderGridOperators,
		StakeholderName: "Grid Operators",
		InitialReaction: "Ambitious, but the grid needs work.",
		Appreciation:    []string{"Storage grows steadily"},
		Concerns: []domain.Concern{
			{Text: "Variable share reaches 45%", Explanation: "Balancing costs rise", Severity: domain.SeverityHigh},
			{Text: "Peak demand doubles", Severity: domain.SeverityMedium},
		},
		Questions:        []string{"Who pays for reinforcement?"},
		EngagementAdvice: []string{"Bring dispatch studies"},
		GenerationType:   domain.GenerationEnhancedRuleBased,
		Metadata:         &domain.ResponseMetadata{Context: domain.ContextEmerging, Variant: domain.VariantPragmatic},
	}
}

func TestFormatResponse_Sections(t *testing.T) {
	out := stripANSI(FormatResponse(sampleResponse()))

	assert.Contains(t, out, "GRID OPERATORS")
	assert.Contains(t, out, "[enhanced]")
	assert.Contains(t, out, "emerging · pragmatic")
	assert.Contains(t, out, "Ambitious, but the grid needs work.")
	assert.Contains(t, out, "• Storage grows steadily")
	assert.Contains(t, out, "● HIGH Variable share reaches 45%")
	assert.Contains(t, out, "Balancing costs rise")
	assert.Contains(t, out, "● MEDIUM Peak demand doubles")
	assert.Contains(t, out, "• Who pays for reinforcement?")
	assert.Contains(t, out, "ENGAGEMENT ADVICE")
}

func TestFormatResponse_EmptyListsShowPlaceholders(t *testing.T) {
	resp := domain.StakeholderResponse{StakeholderName: "Finance", InitialReaction: "Fine.", GenerationType: domain.GenerationRuleBased}
	out := stripANSI(FormatResponse(resp))
	assert.Contains(t, out, "[rules]")
	assert.Contains(t, out, "no concerns raised")
	assert.Contains(t, out, "nothing stood out")
}

func TestFormatResponseSummary_CountsBySeverity(t *testing.T) {
	out := stripANSI(FormatResponseSummary([]domain.StakeholderResponse{sampleResponse()}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Regexp(t, `^Grid Operators\s+1\s+1\s+1\s+0\s+\[enhanced\]$`, lines[2])
}

func TestFormatStakeholder_ShowsTriggers(t *testing.T) {
	p := domain.StakeholderProfile{
		ID:          domain.StakeholderFinance,
		Name:        "Financial Institutions",
		Color:       "#83a598",
		Description: "Lenders and investors.",
		Priorities:  []string{"Bankable projects"},
		ConcernTriggers: []domain.ConcernTrigger{
			{Metric: "investment.cumulative.2030", Threshold: 5000, Direction: domain.Above},
		},
		PositiveIndicators: []domain.PositiveIndicator{
			{Metric: "reShare.2030", Threshold: 40, Direction: domain.Above},
		},
	}
	out := stripANSI(FormatStakeholder(p))
	assert.Contains(t, out, "Financial Institutions  finance")
	assert.Contains(t, out, "• Bankable projects")
	assert.Regexp(t, `concern\s+investment\.cumulative\.2030\s+> 5000`, out)
	assert.Regexp(t, `praise\s+reShare\.2030\s+> 40`, out)
}

func TestFormatStakeholderList_TruncatesDescription(t *testing.T) {
	p := domain.StakeholderProfile{ID: "public", Name: "General Public", Description: strings.Repeat("a", 80)}
	out := stripANSI(FormatStakeholderList([]domain.StakeholderProfile{p}))
	assert.Contains(t, out, strings.Repeat("a", 59)+"…")
	assert.NotContains(t, out, strings.Repeat("a", 61))
}

func TestFormatScenario_MilestoneTable(t *testing.T) {
	now := time.Now()
	stored := &domain.StoredScenario{
		ID:        "abc",
		Scenario:  *testutil.NewTestScenario(),
		Source:    domain.SourceJSON,
		Active:    true,
		UpdatedAt: now,
	}
	out := stripANSI(FormatScenario(stored, testutil.NewTestDerived()))

	assert.Contains(t, out, "Reference  Testland")
	assert.Contains(t, out, "model SPLAT · json import")
	assert.Regexp(t, `2050\s+80%\s+3,600\s+12,000\s+1\s+7,500`, out)
	assert.Contains(t, out, "Emissions fall 75% by 2050 relative to 2025.")
}

func TestFormatScenarioList_MarksActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scenarios := []*domain.StoredScenario{
		{ID: "0123456789", Scenario: *testutil.NewTestScenario(), Source: domain.SourceCSV, Active: true, UpdatedAt: now.Add(-2 * time.Hour)},
	}
	out := stripANSI(FormatScenarioList(scenarios, now))
	assert.Regexp(t, `●\s+01234567\s+Reference\s+Testland\s+csv\s+4\s+2 hours ago`, out)

	assert.Contains(t, stripANSI(FormatScenarioList(nil, now)), "No scenarios imported")
}

func TestFormatYears(t *testing.T) {
	out := stripANSI(FormatYears([]int{2022, 2025, 2030}, []int{2025, 2030}))
	assert.Contains(t, out, "Available  2022, 2025, 2030")
	assert.Contains(t, out, "Suggested  2025, 2030")

	assert.Contains(t, stripANSI(FormatYears(nil, []int{2025, 2030, 2040, 2050})), "2025, 2030, 2040, 2050")
}

func TestFormatSentiment_ChangesAndImpacts(t *testing.T) {
	res := &service.ExploreResult{
		Base:     domain.AdjustmentState{REShare2030: 45, REShare2040: 65, CoalPhaseout: 2050},
		Adjusted: domain.AdjustmentState{REShare2030: 60, REShare2040: 80, CoalPhaseout: 2040},
		Changes: []domain.SentimentChange{{
			StakeholderName: "CSOs & NGOs",
			Direction:       domain.SentimentPositive,
			Magnitude:       domain.MagnitudeSignificant,
			PositiveFactors: []string{"faster coal exit"},
			NetScore:        6,
		}},
		Impacts: domain.DirectionalImpacts{
			Jobs:      domain.Impact{Direction: domain.ImpactIncrease, Magnitude: domain.ImpactSignificant, Explanation: "More construction"},
			LandUse:   domain.Impact{Direction: domain.ImpactIncrease, Magnitude: domain.ImpactModerate},
			Emissions: domain.Impact{Direction: domain.ImpactUnchanged, Magnitude: domain.ImpactMinimal},
		},
	}
	out := stripANSI(FormatSentiment(res))

	assert.Contains(t, out, "RE 2030 45% · RE 2040 65% · coal phase-out 2050")
	assert.Contains(t, out, "RE 2030 60% · RE 2040 80% · coal phase-out 2040")
	assert.Regexp(t, `CSOs & NGOs\s+▲ positive \(significant\)\s+\+6\s+\+ faster coal exit`, out)
	assert.Contains(t, out, "↑ increase (significant)")
	assert.Contains(t, out, "More construction")
	assert.Contains(t, out, "→ unchanged")
}

func TestFormatComparison_MatchedAndMissed(t *testing.T) {
	c := &service.Comparison{
		Prediction: &domain.Prediction{Text: "They will worry about balancing", CreatedAt: time.Now()},
		Response:   sampleResponse(),
		MatchedConcerns: []domain.Concern{
			{Text: "Variable share reaches 45%", Severity: domain.SeverityHigh},
		},
		MissedConcerns: []domain.Concern{
			{Text: "Peak demand doubles", Severity: domain.SeverityMedium},
		},
	}
	out := stripANSI(FormatComparison(c))
	assert.Contains(t, out, "They will worry about balancing")
	assert.Contains(t, out, "CONCERNS ANTICIPATED 1/2")
	assert.Contains(t, out, "✓ Variable share reaches 45% (high)")
	assert.Contains(t, out, "✗ Peak demand doubles (medium)")
}

func TestFormatPredictions_UsesNames(t *testing.T) {
	preds := []*domain.Prediction{{StakeholderID: domain.StakeholderPublic, Text: "Bills go up", CreatedAt: time.Now()}}
	out := stripANSI(FormatPredictions(preds, func(domain.StakeholderID) string { return "General Public" }))
	assert.Regexp(t, `General Public\s+Bills go up`, out)
	assert.Contains(t, stripANSI(FormatPredictions(nil, nil)), "No predictions recorded")
}

func TestFormatAIStatus(t *testing.T) {
	out := stripANSI(FormatAIStatus(intelligence.Status{Available: true, Method: intelligence.MethodOllama, Model: "gemma2:2b"}))
	assert.Equal(t, "● available  via ollama  gemma2:2b\n", out)

	out = stripANSI(FormatAIStatus(intelligence.Status{Method: intelligence.MethodNone}))
	assert.Contains(t, out, "● unavailable")
	assert.Contains(t, out, "ANTHROPIC_API_KEY")
}

func TestSpinner_StopClearsLine(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "thinking")
	stop()
	stop()
	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}
