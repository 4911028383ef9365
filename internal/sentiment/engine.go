// Package sentiment estimates how each stakeholder's attitude shifts when the
// three scenario levers (RE share 2030, RE share 2040, coal phase-out year)
// move away from a base position.
package sentiment

import (
	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// Namer resolves a stakeholder display name.
type Namer interface {
	Name(id domain.StakeholderID) string
}

// Engine computes sentiment changes. It holds no mutable state.
type Engine struct {
	names Namer
	th    Thresholds
}

// NewEngine returns an engine using th. Names come from names.
func NewEngine(names Namer, th Thresholds) *Engine {
	return &Engine{names: names, th: th}
}

// Thresholds returns the constants the engine was built with.
func (e *Engine) Thresholds() Thresholds { return e.th }

// deltas is the lever movement between base and adjusted, plus the adjusted
// absolutes some rules compare against.
type deltas struct {
	re2030, re2040, phaseout float64
	adj                      domain.AdjustmentState
}

func newDeltas(base, adjusted domain.AdjustmentState) deltas {
	return deltas{
		re2030:   adjusted.REShare2030 - base.REShare2030,
		re2040:   adjusted.REShare2040 - base.REShare2040,
		phaseout: adjusted.CoalPhaseout - base.CoalPhaseout,
		adj:      adjusted,
	}
}

func (d deltas) zero() bool {
	return d.re2030 == 0 && d.re2040 == 0 && d.phaseout == 0
}

// tally accumulates factors and the running score for one stakeholder.
type tally struct {
	positive []string
	negative []string
	score    int
}

func (t *tally) gain(factor string, points int) {
	t.positive = append(t.positive, factor)
	t.score += points
}

func (t *tally) lose(factor string, points int) {
	t.negative = append(t.negative, factor)
	t.score -= points
}

type ruleFunc func(d deltas, th Thresholds, t *tally)

var ruleSet = map[domain.StakeholderID]ruleFunc{
	domain.StakeholderPolicyMakers:        policyMakers,
	domain.StakeholderGridOperators:       gridOperators,
	domain.StakeholderIndustry:            industry,
	domain.StakeholderPublic:              public,
	domain.StakeholderCSOsNGOs:            csosNGOs,
	domain.StakeholderScientific:          scientific,
	domain.StakeholderFinance:             finance,
	domain.StakeholderRegionalBodies:      regionalBodies,
	domain.StakeholderDevelopmentPartners: developmentPartners,
}

// ComputeChanges returns one SentimentChange per stakeholder in canonical
// order. When base equals adjusted every entry is neutral with no factors.
func (e *Engine) ComputeChanges(base, adjusted domain.AdjustmentState) []domain.SentimentChange {
	d := newDeltas(base, adjusted)
	out := make([]domain.SentimentChange, 0, len(domain.StakeholderOrder))
	for _, id := range domain.StakeholderOrder {
		var t tally
		if !d.zero() {
			ruleSet[id](d, e.th, &t)
		}
		direction, magnitude := e.classify(t.score)
		out = append(out, domain.SentimentChange{
			StakeholderID:   id,
			StakeholderName: e.name(id),
			Direction:       direction,
			Magnitude:       magnitude,
			PositiveFactors: nonNil(t.positive),
			NegativeFactors: nonNil(t.negative),
			NetScore:        t.score,
		})
	}
	return out
}

func (e *Engine) name(id domain.StakeholderID) string {
	if e.names == nil {
		return string(id)
	}
	return e.names.Name(id)
}

func (e *Engine) classify(score int) (domain.SentimentDirection, domain.Magnitude) {
	switch {
	case score > e.th.DirectionScore:
		return domain.SentimentPositive, e.magnitude(score)
	case score < -e.th.DirectionScore:
		return domain.SentimentNegative, e.magnitude(-score)
	default:
		return domain.SentimentNeutral, domain.MagnitudeMinor
	}
}

func (e *Engine) magnitude(abs int) domain.Magnitude {
	switch {
	case abs >= e.th.SignificantScore:
		return domain.MagnitudeSignificant
	case abs >= e.th.ModerateScore:
		return domain.MagnitudeModerate
	default:
		return domain.MagnitudeMinor
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
