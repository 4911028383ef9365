// Package rules turns a scenario and its derived metrics into a stakeholder
// response. Everything here is deterministic and in-memory; unresolvable
// metrics and unknown template conditions contribute nothing.
package rules

import (
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
)

// Engine generates rule-based and enhanced responses.
type Engine struct {
	catalog *profiles.Catalog
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine over catalog. The catalog supplies interaction
// triggers, variants and context profiles for enhanced generation.
func NewEngine(catalog *profiles.Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: catalog, now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateResponse evaluates profile's triggers and templates against the
// scenario and derived metrics. Either input may be nil.
func (e *Engine) GenerateResponse(scenario *domain.ScenarioInput, derived *domain.DerivedMetrics, profile domain.StakeholderProfile) domain.StakeholderResponse {
	r := metrics.NewResolver(scenario, derived)
	tmpl, _ := SelectTemplate(scenario, profile.ResponseTemplates)
	return Compose(profile, Signals{
		Concerns:     EvaluateConcerns(r, profile.ConcernTriggers),
		Appreciation: EvaluatePraises(r, profile.PositiveIndicators),
		Template:     tmpl,
	}, e.now())
}
