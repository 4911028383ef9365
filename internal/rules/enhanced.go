package rules

import (
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
)

const dedupPrefixLen = 30

// EnhancedOptions selects the development context and personality variant.
// Zero values fall back to emerging and pragmatic.
type EnhancedOptions struct {
	Context                 domain.DevelopmentContext
	Variant                 domain.Variant
	SkipInteractionTriggers bool
}

func (o EnhancedOptions) withDefaults() EnhancedOptions {
	if o.Context == "" {
		o.Context = domain.ContextEmerging
	}
	if o.Variant == "" {
		o.Variant = domain.VariantPragmatic
	}
	return o
}

// GenerateEnhanced layers interaction triggers, variant framing and context
// praise on top of the rule-based response. With SkipInteractionTriggers set
// the rule-based response is returned as is.
func (e *Engine) GenerateEnhanced(scenario *domain.ScenarioInput, derived *domain.DerivedMetrics, profile domain.StakeholderProfile, opts EnhancedOptions) domain.StakeholderResponse {
	base := e.GenerateResponse(scenario, derived, profile)
	if opts.SkipInteractionTriggers {
		return base
	}
	opts = opts.withDefaults()

	r := metrics.NewResolver(scenario, derived)
	vp, hasVariant := e.catalog.Variant(profile.ID, opts.Variant)
	cp, _ := e.catalog.Context(opts.Context)

	fired := FireInteractions(r, e.catalog.Interactions(profile.ID), cp.Modifiers, vp.Modifiers)

	out := base.Clone()
	if praise, ok := contextPraise(r, opts.Context); ok {
		out.Appreciation = append(out.Appreciation, praise)
	}
	for _, t := range fired {
		switch t.Kind {
		case domain.TriggerConcern:
			if !concernMentions(out.Concerns, t.Text) {
				out.Concerns = append(out.Concerns, domain.Concern{
					Text:        t.Text,
					Explanation: t.Explanation + " " + t.SuggestedResponse,
					Metric:      t.ID,
					Severity:    domain.SeverityMedium,
				})
			}
		case domain.TriggerAppreciation:
			if !textMentions(out.Appreciation, t.Text) {
				out.Appreciation = append(out.Appreciation, t.Text)
			}
		}
	}
	if hasVariant {
		out.InitialReaction = vp.Framing + " " + out.InitialReaction
	}
	out.GenerationType = domain.GenerationEnhancedRuleBased
	out.Metadata = &domain.ResponseMetadata{
		Context:                  opts.Context,
		Variant:                  opts.Variant,
		InteractionTriggersCount: len(fired),
	}
	return out
}

// FireInteractions returns the triggers whose conditions hold after scaling
// each threshold by the context multiplier and then the variant multiplier.
// A condition on an unresolvable metric is false.
func FireInteractions(r metrics.Resolver, triggers []domain.InteractionTrigger, contextMods, variantMods []domain.ThresholdModifier) []domain.InteractionTrigger {
	var fired []domain.InteractionTrigger
	for _, t := range triggers {
		if interactionHolds(r, t, contextMods, variantMods) {
			fired = append(fired, t)
		}
	}
	return fired
}

func interactionHolds(r metrics.Resolver, t domain.InteractionTrigger, contextMods, variantMods []domain.ThresholdModifier) bool {
	if len(t.Conditions) == 0 {
		return false
	}
	for _, c := range t.Conditions {
		v, ok := r.Lookup(c.Metric)
		threshold := c.Threshold * multiplier(contextMods, c.Metric) * multiplier(variantMods, c.Metric)
		met := ok && c.Direction.Exceeds(v, threshold)
		if t.Operator == domain.OperatorOr && met {
			return true
		}
		if t.Operator != domain.OperatorOr && !met {
			return false
		}
	}
	return t.Operator != domain.OperatorOr
}

func multiplier(mods []domain.ThresholdModifier, metric string) float64 {
	for _, m := range mods {
		if m.Metric == metric {
			return m.Multiplier
		}
	}
	return 1
}

func contextPraise(r metrics.Resolver, ctx domain.DevelopmentContext) (string, bool) {
	switch ctx {
	case domain.ContextLeastDeveloped:
		if v, ok := r.Lookup("renewableShare.2030"); ok && v > 35 {
			return "Ambitious renewable targets despite development challenges", true
		}
	case domain.ContextDeveloped:
		if v, ok := r.Lookup("emissions.reductionPercent2030"); ok && v > 40 {
			return "Climate leadership with aggressive decarbonization timeline", true
		}
	}
	return "", false
}

func dedupKey(text string) string {
	key := strings.ToLower(text)
	if len(key) > dedupPrefixLen {
		key = key[:dedupPrefixLen]
	}
	return key
}

func concernMentions(concerns []domain.Concern, text string) bool {
	key := dedupKey(text)
	for _, c := range concerns {
		if strings.Contains(strings.ToLower(c.Text), key) {
			return true
		}
	}
	return false
}

func textMentions(items []string, text string) bool {
	key := dedupKey(text)
	for _, s := range items {
		if strings.Contains(strings.ToLower(s), key) {
			return true
		}
	}
	return false
}
