package importer

import (
	"maps"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/units"
)

// Normalize returns a copy of s with every quantity expressed in the
// canonical units (MW, GWh, million USD, Mt CO2). The input is not modified.
func Normalize(s *domain.ScenarioInput) *domain.ScenarioInput {
	if s == nil {
		return nil
	}
	out := &domain.ScenarioInput{
		Metadata:   s.Metadata,
		Milestones: make([]domain.Milestone, len(s.Milestones)),
	}
	for i, m := range s.Milestones {
		out.Milestones[i] = normalizeMilestone(m)
	}
	if s.DetailedTech != nil {
		out.DetailedTech = make(map[int]domain.TechCapacity, len(s.DetailedTech))
		for y, tc := range s.DetailedTech {
			out.DetailedTech[y] = maps.Clone(tc)
		}
	}
	return out
}

func normalizeMilestone(m domain.Milestone) domain.Milestone {
	m.Capacity = domain.CapacityMix{
		Total: powerTotals(m.Capacity.Total, m.Capacity.Unit),
		Unit:  units.MW,
	}
	m.Generation = domain.GenerationMix{
		Output: domain.GenerationOutput{
			Renewables: units.Energy(m.Generation.Output.Renewables, m.Generation.Unit),
			Fossil:     units.Energy(m.Generation.Output.Fossil, m.Generation.Unit),
			Other:      units.Energy(m.Generation.Output.Other, m.Generation.Unit),
		},
		Unit: units.GWh,
	}
	m.Investment = domain.Investment{
		Cumulative: units.Money(m.Investment.Cumulative, m.Investment.Unit),
		Unit:       units.MUSD,
	}
	m.Emissions = domain.Emissions{
		Total: units.Emissions(m.Emissions.Total, m.Emissions.Unit),
		Unit:  units.MtCO2,
	}
	m.PeakDemand = domain.UnitValue{Value: units.Power(m.PeakDemand.Value, m.PeakDemand.Unit), Unit: units.MW}

	if m.CapacityAdditions != nil {
		m.CapacityAdditions = &domain.CapacityAdditions{
			Additions: powerTotals(m.CapacityAdditions.Additions, m.CapacityAdditions.Unit),
			Unit:      units.MW,
		}
	}
	if m.AnnualOMCosts != nil {
		m.AnnualOMCosts = &domain.UnitValue{Value: units.Money(m.AnnualOMCosts.Value, m.AnnualOMCosts.Unit), Unit: units.MUSD}
	}
	if m.Curtailment != nil {
		m.Curtailment = &domain.UnitValue{Value: units.Energy(m.Curtailment.Value, m.Curtailment.Unit), Unit: units.GWh}
	}
	if m.Imports != nil {
		m.Imports = &domain.UnitValue{Value: units.Energy(m.Imports.Value, m.Imports.Unit), Unit: units.GWh}
	}
	return m
}

func powerTotals(t domain.CapacityTotals, unit string) domain.CapacityTotals {
	out := domain.CapacityTotals{
		Renewables: units.Power(t.Renewables, unit),
		Fossil:     units.Power(t.Fossil, unit),
	}
	if t.Storage != nil {
		v := units.Power(*t.Storage, unit)
		out.Storage = &v
	}
	if t.Other != nil {
		v := units.Power(*t.Other, unit)
		out.Other = &v
	}
	return out
}
