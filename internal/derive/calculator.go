// Package derive computes soft indicators (jobs, land use, emissions
// reduction, capacity mix, investment) from a scenario. The numbers are
// directional estimates, not techno-economic modelling.
package derive

import (
	"math"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/units"
)

// Calculate returns derived metrics for every milestone year of s.
func Calculate(s *domain.ScenarioInput) *domain.DerivedMetrics {
	d := &domain.DerivedMetrics{
		RenewableShare: domain.YearSeries{},
		FossilShare:    domain.YearSeries{},
		Jobs: domain.JobMetrics{
			Construction: domain.YearSeries{},
			Operations:   domain.YearSeries{},
			Total:        domain.YearSeries{},
		},
		LandUse: domain.LandUseMetrics{
			TotalNewLand: domain.YearSeries{},
			ByTechnology: map[string]domain.YearSeries{
				"solarPV": {},
				"wind":    {},
				"battery": {},
			},
		},
		Emissions: domain.EmissionMetrics{
			Absolute:         domain.YearSeries{},
			ReductionPercent: domain.YearSeries{},
		},
		Capacity: domain.CapacityMetrics{
			TotalInstalled:         domain.YearSeries{},
			VariableRenewableShare: domain.YearSeries{},
		},
		Investment: domain.InvestmentMetrics{TotalCumulative: domain.YearSeries{}},
	}
	if s == nil {
		return d
	}
	for i := range s.Milestones {
		m := &s.Milestones[i]
		mix := capacityMix(m, s.DetailedTech[m.Year])
		jobs(d, m.Year, mix)
		landUse(d, m.Year, mix)
		shares(d, m, mix)
		d.Emissions.Absolute[m.Year] = units.Emissions(m.Emissions.Total, m.Emissions.Unit)
		d.Investment.TotalCumulative[m.Year] = units.Money(m.Investment.Cumulative, m.Investment.Unit)
	}
	emissionReductions(d, s)
	investmentPace(d, s)
	return d
}

// yearMix is the capacity of one milestone in MW, by aggregate and by
// technology (estimated when no detail is given).
type yearMix struct {
	renewables, fossil, storage, other float64
	byTech                             map[string]float64
	detailed                           bool
}

func (y yearMix) total() float64 { return y.renewables + y.fossil + y.storage + y.other }

func capacityMix(m *domain.Milestone, detail domain.TechCapacity) yearMix {
	unit := m.Capacity.Unit
	y := yearMix{
		renewables: units.Power(m.Capacity.Total.Renewables, unit),
		fossil:     units.Power(m.Capacity.Total.Fossil, unit),
		storage:    units.Power(m.Capacity.Total.StorageOrZero(), unit),
		other:      units.Power(m.Capacity.Total.OtherOrZero(), unit),
		byTech:     make(map[string]float64),
	}
	if detail != nil {
		y.detailed = true
		for tech, mw := range detail {
			y.byTech[tech] = mw
		}
		return y
	}
	for tech, share := range renewableMix {
		y.byTech[tech] = y.renewables * share
	}
	for tech, share := range fossilMix {
		y.byTech[tech] = y.fossil * share
	}
	y.byTech["battery"] = y.storage
	y.byTech[otherAsTech] += y.other
	return y
}

func jobs(d *domain.DerivedMetrics, year int, mix yearMix) {
	var construction, operations float64
	for _, tech := range domain.Technologies {
		f := jobFactors[tech]
		construction += mix.byTech[tech] * f.construction
		operations += mix.byTech[tech] * f.operations
	}
	d.Jobs.Construction[year] = math.Round(construction)
	d.Jobs.Operations[year] = math.Round(operations)
	d.Jobs.Total[year] = math.Round(construction + operations)
}

func landUse(d *domain.DerivedMetrics, year int, mix yearMix) {
	battery := mix.byTech["battery"]
	if mix.detailed && battery == 0 {
		battery = mix.storage
	}
	solar := mix.byTech["solarPV"] * landFactors["solarPV"]
	wind := mix.byTech["wind"] * landFactors["wind"]
	storage := battery * landFactors["battery"]

	d.LandUse.ByTechnology["solarPV"][year] = math.Round(solar)
	d.LandUse.ByTechnology["wind"][year] = math.Round(wind)
	d.LandUse.ByTechnology["battery"][year] = math.Round(storage)
	d.LandUse.TotalNewLand[year] = math.Round(solar + wind + storage)
}

func shares(d *domain.DerivedMetrics, m *domain.Milestone, mix yearMix) {
	d.RenewableShare[m.Year] = round1(m.REShare)
	total := mix.total()
	d.Capacity.TotalInstalled[m.Year] = math.Round(total)

	vre := mix.renewables * vreShareOfRenewables
	if mix.detailed {
		vre = mix.byTech["solarPV"] + mix.byTech["wind"]
	}
	if total <= 0 {
		d.FossilShare[m.Year] = 0
		d.Capacity.VariableRenewableShare[m.Year] = 0
		return
	}
	d.FossilShare[m.Year] = round1(mix.fossil / total * 100)
	d.Capacity.VariableRenewableShare[m.Year] = round1(vre / total * 100)
}

// emissionReductions measures each year against the first milestone.
func emissionReductions(d *domain.DerivedMetrics, s *domain.ScenarioInput) {
	if len(s.Milestones) == 0 {
		return
	}
	baseline := d.Emissions.Absolute[s.Milestones[0].Year]
	for _, m := range s.Milestones {
		if baseline <= 0 {
			d.Emissions.ReductionPercent[m.Year] = 0
			continue
		}
		d.Emissions.ReductionPercent[m.Year] = round1((baseline - d.Emissions.Absolute[m.Year]) / baseline * 100)
	}
}

// investmentPace estimates annual spend from capacity additions where the
// scenario provides them.
func investmentPace(d *domain.DerivedMetrics, s *domain.ScenarioInput) {
	var annual []float64
	for _, m := range s.Milestones {
		if m.CapacityAdditions == nil {
			continue
		}
		a := m.CapacityAdditions.Additions
		unit := m.CapacityAdditions.Unit
		annual = append(annual,
			units.Power(a.Renewables, unit)*renewableCostPerMW+
				units.Power(a.Fossil, unit)*fossilCostPerMW+
				units.Power(a.StorageOrZero(), unit)*storageCostPerMW)
	}
	if len(annual) == 0 {
		return
	}
	var sum, peak float64
	for _, v := range annual {
		sum += v
		peak = math.Max(peak, v)
	}
	d.Investment.AnnualPeak = peak
	d.Investment.AverageAnnual = math.Round(sum / float64(len(annual)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
