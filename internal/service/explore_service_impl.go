package service

import (
	"context"
	"math"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/sentiment"
)

// coalSignificantMW is the installed coal capacity above which coal still
// counts as part of the mix.
const coalSignificantMW = 10

var renewableTechs = []string{"hydro", "solarPV", "wind", "geothermal", "biomass"}

type exploreService struct {
	scenarios ScenarioService
	engine    *sentiment.Engine
	observer  UseCaseObserver
}

func NewExploreService(scenarios ScenarioService, engine *sentiment.Engine, observers ...UseCaseObserver) ExploreService {
	return &exploreService{
		scenarios: scenarios,
		engine:    engine,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Baseline returns the slider starting point for the active scenario.
func (s *exploreService) Baseline(ctx context.Context) (domain.AdjustmentState, error) {
	active, err := s.scenarios.Active(ctx)
	if err != nil {
		return domain.AdjustmentState{}, err
	}
	return BaselineState(active.Scenario()), nil
}

func (s *exploreService) Explore(ctx context.Context, base, adjusted domain.AdjustmentState) *ExploreResult {
	fields := map[string]any{}
	_, finish := useCase(ctx, s.observer, "explore", fields)

	res := &ExploreResult{
		Base:     base,
		Adjusted: adjusted,
		Changes:  s.engine.ComputeChanges(base, adjusted),
		Impacts:  s.engine.ComputeImpacts(base, adjusted),
	}
	moved := 0
	for _, c := range res.Changes {
		if c.Direction != domain.SentimentNeutral {
			moved++
		}
	}
	fields["shifted"] = moved
	finish(nil)
	return res
}

// BaselineState reads the 2030 and 2040 renewable shares and the coal
// phase-out year from a scenario. Shares come from detailed technology
// capacity when present, otherwise from the milestone reShare; both are
// rounded to whole percent. The phase-out year is five years after the last
// milestone with significant coal (capped at 2050), or the first milestone
// year when coal is already gone. Without technology detail, fossil capacity
// stands in for coal.
func BaselineState(s *domain.ScenarioInput) domain.AdjustmentState {
	if s == nil {
		return domain.AdjustmentState{}
	}
	return domain.AdjustmentState{
		REShare2030:  baselineShare(s, 2030),
		REShare2040:  baselineShare(s, 2040),
		CoalPhaseout: coalPhaseout(s),
	}
}

func baselineShare(s *domain.ScenarioInput, year int) float64 {
	if detail := s.DetailedTech[year]; len(detail) > 0 {
		var total, ren float64
		for tech, mw := range detail {
			if tech != "interconnector" {
				total += mw
			}
		}
		for _, tech := range renewableTechs {
			ren += detail[tech]
		}
		if total <= 0 {
			return 0
		}
		return math.Round(ren / total * 100)
	}
	if m, ok := s.MilestoneByYear(year); ok {
		return math.Round(m.REShare)
	}
	return 0
}

func coalPhaseout(s *domain.ScenarioInput) float64 {
	years := s.Years()
	if len(years) == 0 {
		return 0
	}
	for i := len(years) - 1; i >= 0; i-- {
		year := years[i]
		if coalCapacity(s, year) > coalSignificantMW {
			if year < 2050 {
				return float64(year + 5)
			}
			return 2050
		}
	}
	return float64(years[0])
}

func coalCapacity(s *domain.ScenarioInput, year int) float64 {
	if len(s.DetailedTech) > 0 {
		return s.DetailedTech[year]["coal"]
	}
	if m, ok := s.MilestoneByYear(year); ok {
		return m.Capacity.Total.Fossil
	}
	return 0
}
