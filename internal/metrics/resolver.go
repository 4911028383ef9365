package metrics

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// Resolver looks up dot-path metric keys against a scenario first and its
// derived metrics second. Keys outside the known families never resolve.
type Resolver struct {
	scenario *domain.ScenarioInput
	derived  *domain.DerivedMetrics
}

// NewResolver binds a resolver to a scenario and its derived metrics.
// Either argument may be nil.
func NewResolver(scenario *domain.ScenarioInput, derived *domain.DerivedMetrics) Resolver {
	return Resolver{scenario: scenario, derived: derived}
}

// Resolve is shorthand for NewResolver(scenario, derived).Lookup(path).
func Resolve(scenario *domain.ScenarioInput, derived *domain.DerivedMetrics, path string) (float64, bool) {
	return NewResolver(scenario, derived).Lookup(path)
}

// Lookup returns the value behind path and whether it resolved.
func (r Resolver) Lookup(path string) (float64, bool) {
	family, year, ok := splitYear(path)
	if !ok {
		if acc, found := derivedScalars[path]; found && r.derived != nil {
			return acc(r.derived), true
		}
		return 0, false
	}
	if v, ok := r.fromScenario(family, year); ok {
		return v, true
	}
	return r.fromDerived(family, year)
}

func (r Resolver) fromScenario(family string, year int) (float64, bool) {
	if r.scenario == nil {
		return 0, false
	}
	if acc, found := milestoneFamilies[family]; found {
		if m, ok := r.scenario.MilestoneByYear(year); ok {
			if v, ok := acc(m); ok {
				return v, true
			}
		}
	}
	if tech, found := strings.CutPrefix(family, "supply.capacity."); found {
		if byTech, ok := r.scenario.DetailedTech[year]; ok {
			if v, ok := byTech[tech]; ok {
				return v, true
			}
		}
	}
	return 0, false
}

func (r Resolver) fromDerived(family string, year int) (float64, bool) {
	if r.derived == nil {
		return 0, false
	}
	acc, found := derivedFamilies[family]
	if !found {
		return 0, false
	}
	v, ok := acc(r.derived)[year]
	return v, ok
}

// splitYear separates a trailing year from a key. Both "a.b.2030" and the
// fused "a.b2030" forms are accepted.
func splitYear(path string) (string, int, bool) {
	idx := strings.LastIndex(path, ".")
	if idx <= 0 || idx == len(path)-1 {
		return "", 0, false
	}
	prefix, last := path[:idx], path[idx+1:]
	if year, err := strconv.Atoi(last); err == nil {
		return prefix, year, true
	}
	if len(last) > 4 {
		head, tail := last[:len(last)-4], last[len(last)-4:]
		if year, err := strconv.Atoi(tail); err == nil && !strings.ContainsAny(head[len(head)-1:], "0123456789") {
			return prefix + "." + head, year, true
		}
	}
	return "", 0, false
}

type milestoneAccessor func(m *domain.Milestone) (float64, bool)

func always(f func(m *domain.Milestone) float64) milestoneAccessor {
	return func(m *domain.Milestone) (float64, bool) { return f(m), true }
}

func optional(f func(m *domain.Milestone) *float64) milestoneAccessor {
	return func(m *domain.Milestone) (float64, bool) {
		if p := f(m); p != nil {
			return *p, true
		}
		return 0, false
	}
}

func optionalValue(f func(m *domain.Milestone) *domain.UnitValue) milestoneAccessor {
	return func(m *domain.Milestone) (float64, bool) {
		if uv := f(m); uv != nil {
			return uv.Value, true
		}
		return 0, false
	}
}

func additions(f func(c domain.CapacityTotals) float64) milestoneAccessor {
	return func(m *domain.Milestone) (float64, bool) {
		if m.CapacityAdditions == nil {
			return 0, false
		}
		return f(m.CapacityAdditions.Additions), true
	}
}

var milestoneFamilies = map[string]milestoneAccessor{
	"renewableShare":        always(func(m *domain.Milestone) float64 { return m.REShare }),
	"investment.cumulative": always(func(m *domain.Milestone) float64 { return m.Investment.Cumulative }),
	"supply.emissions":      always(func(m *domain.Milestone) float64 { return m.Emissions.Total }),
	"emissions":             always(func(m *domain.Milestone) float64 { return m.Emissions.Total }),
	"demand.peak":           always(func(m *domain.Milestone) float64 { return m.PeakDemand.Value }),

	"supply.capacity.renewables": always(func(m *domain.Milestone) float64 { return m.Capacity.Total.Renewables }),
	"supply.capacity.fossil":     always(func(m *domain.Milestone) float64 { return m.Capacity.Total.Fossil }),
	"supply.capacity.total":      always(func(m *domain.Milestone) float64 { return m.Capacity.Total.Sum() }),
	"supply.capacity.storage":    optional(func(m *domain.Milestone) *float64 { return m.Capacity.Total.Storage }),
	"supply.capacity.battery":    optional(func(m *domain.Milestone) *float64 { return m.Capacity.Total.Storage }),
	"supply.capacity.other":      optional(func(m *domain.Milestone) *float64 { return m.Capacity.Total.Other }),

	"supply.generation.renewables": always(func(m *domain.Milestone) float64 { return m.Generation.Output.Renewables }),
	"supply.generation.fossil":     always(func(m *domain.Milestone) float64 { return m.Generation.Output.Fossil }),
	"supply.generation.other":      always(func(m *domain.Milestone) float64 { return m.Generation.Output.Other }),

	"capacityAdditions.renewables": additions(func(c domain.CapacityTotals) float64 { return c.Renewables }),
	"capacityAdditions.fossil":     additions(func(c domain.CapacityTotals) float64 { return c.Fossil }),
	"capacityAdditions.storage":    additions(func(c domain.CapacityTotals) float64 { return c.StorageOrZero() }),

	"curtailment": optionalValue(func(m *domain.Milestone) *domain.UnitValue { return m.Curtailment }),
	"om.annual":   optionalValue(func(m *domain.Milestone) *domain.UnitValue { return m.AnnualOMCosts }),
	"imports":     optionalValue(func(m *domain.Milestone) *domain.UnitValue { return m.Imports }),
}

type seriesAccessor func(d *domain.DerivedMetrics) domain.YearSeries

func byTechnology(tech string) seriesAccessor {
	return func(d *domain.DerivedMetrics) domain.YearSeries { return d.LandUse.ByTechnology[tech] }
}

var derivedFamilies = map[string]seriesAccessor{
	"renewableShare":                  func(d *domain.DerivedMetrics) domain.YearSeries { return d.RenewableShare },
	"fossilShare":                     func(d *domain.DerivedMetrics) domain.YearSeries { return d.FossilShare },
	"jobs.total":                      func(d *domain.DerivedMetrics) domain.YearSeries { return d.Jobs.Total },
	"jobs.construction":               func(d *domain.DerivedMetrics) domain.YearSeries { return d.Jobs.Construction },
	"jobs.operations":                 func(d *domain.DerivedMetrics) domain.YearSeries { return d.Jobs.Operations },
	"landUse.totalNewLand":            func(d *domain.DerivedMetrics) domain.YearSeries { return d.LandUse.TotalNewLand },
	"land.total":                      func(d *domain.DerivedMetrics) domain.YearSeries { return d.LandUse.TotalNewLand },
	"landUse.byTechnology.solarPV":    byTechnology("solarPV"),
	"landUse.byTechnology.wind":       byTechnology("wind"),
	"landUse.byTechnology.battery":    byTechnology("battery"),
	"emissions.absolute":              func(d *domain.DerivedMetrics) domain.YearSeries { return d.Emissions.Absolute },
	"emissions.reductionPercent":      func(d *domain.DerivedMetrics) domain.YearSeries { return d.Emissions.ReductionPercent },
	"capacity.totalInstalled":         func(d *domain.DerivedMetrics) domain.YearSeries { return d.Capacity.TotalInstalled },
	"capacity.variableRenewableShare": func(d *domain.DerivedMetrics) domain.YearSeries { return d.Capacity.VariableRenewableShare },
	"investment.totalCumulative":      func(d *domain.DerivedMetrics) domain.YearSeries { return d.Investment.TotalCumulative },
}

var derivedScalars = map[string]func(d *domain.DerivedMetrics) float64{
	"investment.annualPeak":    func(d *domain.DerivedMetrics) float64 { return d.Investment.AnnualPeak },
	"investment.averageAnnual": func(d *domain.DerivedMetrics) float64 { return d.Investment.AverageAnnual },
}
