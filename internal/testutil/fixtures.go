package testutil

import (
	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

func ptr(v float64) *float64 { return &v }

// ScenarioOption customises a test scenario.
type ScenarioOption func(*domain.ScenarioInput)

func WithCumulativeInvestment(year int, v float64) ScenarioOption {
	return func(s *domain.ScenarioInput) {
		if m, ok := s.MilestoneByYear(year); ok {
			m.Investment.Cumulative = v
		}
	}
}

func WithREShare(year int, v float64) ScenarioOption {
	return func(s *domain.ScenarioInput) {
		if m, ok := s.MilestoneByYear(year); ok {
			m.REShare = v
		}
	}
}

func WithStorage(year int, v float64) ScenarioOption {
	return func(s *domain.ScenarioInput) {
		if m, ok := s.MilestoneByYear(year); ok {
			m.Capacity.Total.Storage = ptr(v)
		}
	}
}

func WithEmissions(year int, v float64) ScenarioOption {
	return func(s *domain.ScenarioInput) {
		if m, ok := s.MilestoneByYear(year); ok {
			m.Emissions.Total = v
		}
	}
}

func WithDetailedTech(year int, tech string, mw float64) ScenarioOption {
	return func(s *domain.ScenarioInput) {
		if s.DetailedTech == nil {
			s.DetailedTech = make(map[int]domain.TechCapacity)
		}
		if s.DetailedTech[year] == nil {
			s.DetailedTech[year] = domain.TechCapacity{}
		}
		s.DetailedTech[year][tech] = mw
	}
}

func WithoutMilestones() ScenarioOption {
	return func(s *domain.ScenarioInput) {
		s.Milestones = nil
	}
}

func milestone(year int, ren, fossil, storage, genRen, genFossil, reShare, cumulative, emissions, peak float64) domain.Milestone {
	return domain.Milestone{
		Year: year,
		Capacity: domain.CapacityMix{
			Total: domain.CapacityTotals{Renewables: ren, Fossil: fossil, Storage: ptr(storage)},
			Unit:  "MW",
		},
		Generation: domain.GenerationMix{
			Output: domain.GenerationOutput{Renewables: genRen, Fossil: genFossil},
			Unit:   "GWh",
		},
		REShare:    reShare,
		Investment: domain.Investment{Cumulative: cumulative, Unit: "m$"},
		Emissions:  domain.Emissions{Total: emissions, Unit: "Mt CO2"},
		PeakDemand: domain.UnitValue{Value: peak, Unit: "MW"},
	}
}

// NewTestScenario returns a four-milestone scenario (2025, 2030, 2040, 2050)
// whose 2050 cumulative investment is 12,000 million USD.
func NewTestScenario(opts ...ScenarioOption) *domain.ScenarioInput {
	s := &domain.ScenarioInput{
		Metadata: domain.ScenarioMetadata{
			Country:      "Testland",
			ScenarioName: "Reference",
			ModelVersion: "SPLAT",
			DateCreated:  "2025-01-15T00:00:00Z",
		},
		Milestones: []domain.Milestone{
			milestone(2025, 500, 800, 0, 1500, 3000, 33.3, 0, 4.0, 700),
			milestone(2030, 900, 700, 50, 2800, 2600, 45, 2500, 3.5, 850),
			milestone(2040, 1800, 500, 150, 5200, 1800, 65, 7000, 2.2, 1200),
			milestone(2050, 3000, 300, 300, 8000, 1200, 80, 12000, 1.0, 1600),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DerivedOption customises test derived metrics.
type DerivedOption func(*domain.DerivedMetrics)

func WithJobsTotal(year int, v float64) DerivedOption {
	return func(d *domain.DerivedMetrics) { d.Jobs.Total[year] = v }
}

func WithReductionPercent(year int, v float64) DerivedOption {
	return func(d *domain.DerivedMetrics) { d.Emissions.ReductionPercent[year] = v }
}

func WithLandUse(year int, v float64) DerivedOption {
	return func(d *domain.DerivedMetrics) { d.LandUse.TotalNewLand[year] = v }
}

// NewTestDerived returns hand-set derived metrics matching NewTestScenario.
// Total jobs in 2030 are 1,500.
func NewTestDerived(opts ...DerivedOption) *domain.DerivedMetrics {
	d := &domain.DerivedMetrics{
		RenewableShare: domain.YearSeries{2025: 33.3, 2030: 45, 2040: 65, 2050: 80},
		FossilShare:    domain.YearSeries{2025: 61.5, 2030: 42.4, 2040: 20.4, 2050: 8.3},
		Jobs: domain.JobMetrics{
			Construction: domain.YearSeries{2025: 900, 2030: 1100, 2040: 4000, 2050: 6000},
			Operations:   domain.YearSeries{2025: 300, 2030: 400, 2040: 900, 2050: 1500},
			Total:        domain.YearSeries{2025: 1200, 2030: 1500, 2040: 4900, 2050: 7500},
		},
		LandUse: domain.LandUseMetrics{
			TotalNewLand: domain.YearSeries{2025: 400, 2030: 700, 2040: 1300, 2050: 2000},
			ByTechnology: map[string]domain.YearSeries{
				"solarPV": {2025: 300, 2030: 540, 2040: 1080, 2050: 1800},
				"wind":    {2025: 30, 2030: 54, 2040: 108, 2050: 180},
				"battery": {2025: 0, 2030: 5, 2040: 15, 2050: 30},
			},
		},
		Emissions: domain.EmissionMetrics{
			Absolute:         domain.YearSeries{2025: 4.0, 2030: 3.5, 2040: 2.2, 2050: 1.0},
			ReductionPercent: domain.YearSeries{2025: 0, 2030: 12.5, 2040: 45, 2050: 75},
		},
		Capacity: domain.CapacityMetrics{
			TotalInstalled:         domain.YearSeries{2025: 1300, 2030: 1650, 2040: 2450, 2050: 3600},
			VariableRenewableShare: domain.YearSeries{2025: 19.2, 2030: 27.3, 2040: 36.7, 2050: 41.7},
		},
		Investment: domain.InvestmentMetrics{
			TotalCumulative: domain.YearSeries{2025: 0, 2030: 2500, 2040: 7000, 2050: 12000},
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}
