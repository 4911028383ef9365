package rules

import (
	"slices"
	"strings"
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEnhanced_InteractionConcernAndFraming(t *testing.T) {
	engine, catalog := newTestEngine()
	s := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "coal", 600))
	resp := engine.GenerateEnhanced(s, testutil.NewTestDerived(), mustProfile(t, catalog, domain.StakeholderPolicyMakers), EnhancedOptions{})

	require.Len(t, resp.Concerns, 3)
	added := resp.Concerns[2]
	assert.Equal(t, "ndc-achievement-risk", added.Metric)
	assert.Equal(t, domain.SeverityMedium, added.Severity)
	assert.True(t, strings.HasPrefix(added.Explanation, "International climate commitments"))
	assert.Contains(t, added.Explanation, " This trajectory puts our NDC at risk.")

	assert.Equal(t, "We need a plan that delivers on multiple fronts and can survive political cycles. This is an ambitious plan. We need to understand the financing strategy.", resp.InitialReaction)
	assert.Equal(t, domain.GenerationEnhancedRuleBased, resp.GenerationType)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, domain.ContextEmerging, resp.Metadata.Context)
	assert.Equal(t, domain.VariantPragmatic, resp.Metadata.Variant)
	assert.Equal(t, 1, resp.Metadata.InteractionTriggersCount)
}

func TestGenerateEnhanced_DoesNotMutateBase(t *testing.T) {
	engine, catalog := newTestEngine()
	s := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "coal", 600))
	p := mustProfile(t, catalog, domain.StakeholderPolicyMakers)
	base := engine.GenerateResponse(s, testutil.NewTestDerived(), p)
	_ = engine.GenerateEnhanced(s, testutil.NewTestDerived(), p, EnhancedOptions{})
	again := engine.GenerateResponse(s, testutil.NewTestDerived(), p)
	assert.Equal(t, base, again)
	assert.Len(t, base.Concerns, 2)
}

func TestGenerateEnhanced_SkipReturnsBase(t *testing.T) {
	engine, catalog := newTestEngine()
	p := mustProfile(t, catalog, domain.StakeholderGridOperators)
	base := engine.GenerateResponse(testutil.NewTestScenario(), testutil.NewTestDerived(), p)
	got := engine.GenerateEnhanced(testutil.NewTestScenario(), testutil.NewTestDerived(), p, EnhancedOptions{SkipInteractionTriggers: true})
	assert.Equal(t, base, got)
	assert.Equal(t, domain.GenerationRuleBased, got.GenerationType)
}

func TestGenerateEnhanced_DeduplicatesByPrefix(t *testing.T) {
	engine, catalog := newTestEngine()
	p := mustProfile(t, catalog, domain.StakeholderPolicyMakers)
	p.ConcernTriggers = append(p.ConcernTriggers, domain.ConcernTrigger{
		Metric: "emissions.reductionPercent2030", Threshold: 20, Direction: domain.Below,
		Text: "MODEST EMISSIONS REDUCTION ALONG the path: only {value}%.",
	})
	s := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "coal", 600))
	resp := engine.GenerateEnhanced(s, testutil.NewTestDerived(), p, EnhancedOptions{})

	assert.Len(t, resp.Concerns, 3)
	for _, c := range resp.Concerns {
		assert.NotEqual(t, "ndc-achievement-risk", c.Metric)
	}
	assert.Equal(t, 1, resp.Metadata.InteractionTriggersCount)
}

func TestGenerateEnhanced_ContextPraise(t *testing.T) {
	engine, catalog := newTestEngine()
	p := mustProfile(t, catalog, domain.StakeholderPublic)
	s := testutil.NewTestScenario(testutil.WithREShare(2030, 40))

	ldc := engine.GenerateEnhanced(s, testutil.NewTestDerived(), p, EnhancedOptions{Context: domain.ContextLeastDeveloped})
	assert.Contains(t, ldc.Appreciation, "Ambitious renewable targets despite development challenges")

	emerging := engine.GenerateEnhanced(s, testutil.NewTestDerived(), p, EnhancedOptions{Context: domain.ContextEmerging})
	assert.NotContains(t, emerging.Appreciation, "Ambitious renewable targets despite development challenges")

	developed := engine.GenerateEnhanced(testutil.NewTestScenario(), testutil.NewTestDerived(testutil.WithReductionPercent(2030, 45)), p,
		EnhancedOptions{Context: domain.ContextDeveloped})
	assert.Contains(t, developed.Appreciation, "Climate leadership with aggressive decarbonization timeline")
}

func TestGenerateEnhanced_AppreciationTrigger(t *testing.T) {
	engine, catalog := newTestEngine()
	s := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "wind", 1200))
	resp := engine.GenerateEnhanced(s, testutil.NewTestDerived(), mustProfile(t, catalog, domain.StakeholderScientific), EnhancedOptions{})
	assert.Contains(t, resp.Appreciation, "Large-scale renewable deployment creates valuable research opportunities on grid integration, forecasting, and optimization.")
	assert.True(t, strings.HasPrefix(resp.InitialReaction, "Let's focus on what's technically achievable"))
}

func TestGenerateEnhanced_ContextPraiseBeforeInteractionAppreciation(t *testing.T) {
	engine, catalog := newTestEngine()
	s := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "wind", 1200))
	resp := engine.GenerateEnhanced(s, testutil.NewTestDerived(), mustProfile(t, catalog, domain.StakeholderScientific),
		EnhancedOptions{Context: domain.ContextLeastDeveloped})

	contextAt := slices.Index(resp.Appreciation, "Ambitious renewable targets despite development challenges")
	triggerAt := slices.Index(resp.Appreciation, "Large-scale renewable deployment creates valuable research opportunities on grid integration, forecasting, and optimization.")
	require.GreaterOrEqual(t, contextAt, 0)
	require.GreaterOrEqual(t, triggerAt, 0)
	assert.Less(t, contextAt, triggerAt)
}

func TestFireInteractions_ContextThenVariantScaling(t *testing.T) {
	r := metrics.NewResolver(testutil.NewTestScenario(), nil)
	triggers := []domain.InteractionTrigger{{
		ID:         "re",
		Conditions: []domain.MetricCondition{{Metric: "renewableShare.2030", Threshold: 40, Direction: domain.Above}},
		Operator:   domain.OperatorAnd,
	}}
	ctx := []domain.ThresholdModifier{{Metric: "renewableShare.2030", Multiplier: 1.0}}
	strict := []domain.ThresholdModifier{{Metric: "renewableShare.2030", Multiplier: 1.2}}
	lenient := []domain.ThresholdModifier{{Metric: "renewableShare.2030", Multiplier: 0.9}}

	assert.Len(t, FireInteractions(r, triggers, ctx, nil), 1)
	assert.Empty(t, FireInteractions(r, triggers, ctx, strict))
	assert.Empty(t, FireInteractions(r, triggers, strict, nil))
	assert.Len(t, FireInteractions(r, triggers, strict, lenient), 1)
}

func TestFireInteractions_Operators(t *testing.T) {
	r := metrics.NewResolver(testutil.NewTestScenario(), nil)
	conds := []domain.MetricCondition{
		{Metric: "supply.capacity.hydro.2040", Threshold: 1, Direction: domain.Above},
		{Metric: "renewableShare.2040", Threshold: 60, Direction: domain.Above},
	}
	or := domain.InteractionTrigger{ID: "or", Conditions: conds, Operator: domain.OperatorOr}
	and := domain.InteractionTrigger{ID: "and", Conditions: conds, Operator: domain.OperatorAnd}
	empty := domain.InteractionTrigger{ID: "empty", Operator: domain.OperatorAnd}

	fired := FireInteractions(r, []domain.InteractionTrigger{or, and, empty}, nil, nil)
	require.Len(t, fired, 1)
	assert.Equal(t, "or", fired[0].ID)
}
