package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/rules"
)

// revealConcurrency bounds parallel generation in RevealAll. The rule
// engine is CPU-bound and cheap; the limit matters for the AI stage.
const revealConcurrency = 3

type dialogueService struct {
	catalog   *profiles.Catalog
	engine    *rules.Engine
	scenarios ScenarioService
	enhancer  ResponseEnhancer
	observer  UseCaseObserver
}

// NewDialogueService wires the response pipeline. enhancer may be nil, in
// which case AI requests fall back to the rule-based response.
func NewDialogueService(
	catalog *profiles.Catalog,
	engine *rules.Engine,
	scenarios ScenarioService,
	enhancer ResponseEnhancer,
	observers ...UseCaseObserver,
) DialogueService {
	return &dialogueService{
		catalog:   catalog,
		engine:    engine,
		scenarios: scenarios,
		enhancer:  enhancer,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *dialogueService) Reveal(ctx context.Context, id domain.StakeholderID, opts RevealOptions) (resp *domain.StakeholderResponse, err error) {
	fields := revealFields(opts)
	fields["stakeholder"] = id
	ctx, finish := useCase(ctx, s.observer, "reveal", fields)
	defer func() { finish(err) }()

	profile, ok := s.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStakeholder, id)
	}
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return nil, err
	}

	out := s.generate(ctx, active, profile, opts)
	fields["generation_type"] = out.GenerationType
	return &out, nil
}

// RevealAll generates every stakeholder's response concurrently. The result
// follows catalog order regardless of completion order.
func (s *dialogueService) RevealAll(ctx context.Context, opts RevealOptions) (out []domain.StakeholderResponse, err error) {
	fields := revealFields(opts)
	ctx, finish := useCase(ctx, s.observer, "reveal-all", fields)
	defer func() { finish(err) }()

	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return nil, err
	}

	all := s.catalog.All()
	out = make([]domain.StakeholderResponse, len(all))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(revealConcurrency)
	for i, profile := range all {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.generate(gctx, active, profile, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("revealing responses: %w", err)
	}

	enhanced := 0
	for _, r := range out {
		if r.GenerationType == domain.GenerationAIEnhanced {
			enhanced++
		}
	}
	fields["count"] = len(out)
	fields["ai_enhanced"] = enhanced
	return out, nil
}

func (s *dialogueService) AIStatus(ctx context.Context) intelligence.Status {
	if s.enhancer == nil {
		return intelligence.Status{Method: intelligence.MethodNone}
	}
	return s.enhancer.Status(ctx)
}

func (s *dialogueService) generate(ctx context.Context, active *ActiveScenario, profile domain.StakeholderProfile, opts RevealOptions) domain.StakeholderResponse {
	scenario, derived := active.Scenario(), active.Derived

	var resp domain.StakeholderResponse
	if opts.Enhanced {
		resp = s.engine.GenerateEnhanced(scenario, derived, profile, rules.EnhancedOptions{
			Context: opts.Context,
			Variant: opts.Variant,
		})
	} else {
		resp = s.engine.GenerateResponse(scenario, derived, profile)
	}

	if opts.AI && s.enhancer != nil {
		resp = s.enhancer.Enhance(ctx, resp, profile, scenario, derived)
	}
	return resp
}

func revealFields(opts RevealOptions) map[string]any {
	fields := map[string]any{"enhanced": opts.Enhanced, "ai": opts.AI}
	if opts.Enhanced {
		fields["context"] = opts.Context
		fields["variant"] = opts.Variant
	}
	return fields
}
