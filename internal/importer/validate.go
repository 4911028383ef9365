package importer

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/units"
)

// ValidateScenario checks a scenario before it is stored or analysed.
// Returns every problem found, each prefixed with its field path.
func ValidateScenario(s *domain.ScenarioInput) []error {
	if s == nil {
		return []error{fmt.Errorf("scenario is required")}
	}
	var errs []error

	errs = append(errs, validateMetadata(&s.Metadata)...)

	if len(s.Milestones) == 0 {
		errs = append(errs, fmt.Errorf("milestones: at least one milestone is required"))
	}
	for i := range s.Milestones {
		var prev *domain.Milestone
		if i > 0 {
			prev = &s.Milestones[i-1]
		}
		errs = append(errs, validateMilestone(i, &s.Milestones[i], prev)...)
	}

	errs = append(errs, validateDetailedTech(s)...)
	return errs
}

func validateMetadata(m *domain.ScenarioMetadata) []error {
	var errs []error
	if m.Country == "" {
		errs = append(errs, fmt.Errorf("metadata.country is required"))
	}
	if m.ScenarioName == "" {
		errs = append(errs, fmt.Errorf("metadata.scenarioName is required"))
	}
	return errs
}

func validateMilestone(i int, m, prev *domain.Milestone) []error {
	var errs []error
	path := fmt.Sprintf("milestones[%d]", i)

	if m.Year <= 0 {
		errs = append(errs, fmt.Errorf("%s.year: must be a positive year", path))
	} else if prev != nil && m.Year <= prev.Year {
		errs = append(errs, fmt.Errorf("%s.year: must be greater than %d", path, prev.Year))
	}

	if m.REShare < 0 || m.REShare > 100 {
		errs = append(errs, fmt.Errorf("%s.reShare: must be within [0,100]", path))
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"capacity.total.renewables", m.Capacity.Total.Renewables},
		{"capacity.total.fossil", m.Capacity.Total.Fossil},
		{"capacity.total.storage", m.Capacity.Total.StorageOrZero()},
		{"capacity.total.other", m.Capacity.Total.OtherOrZero()},
		{"generation.output.renewables", m.Generation.Output.Renewables},
		{"generation.output.fossil", m.Generation.Output.Fossil},
		{"generation.output.other", m.Generation.Output.Other},
		{"investment.cumulative", m.Investment.Cumulative},
		{"emissions.total", m.Emissions.Total},
		{"peakDemand.value", m.PeakDemand.Value},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%s.%s: must not be negative", path, f.field))
		}
	}

	errs = append(errs, checkUnit(path+".capacity.unit", units.KindPower, m.Capacity.Unit)...)
	errs = append(errs, checkUnit(path+".generation.unit", units.KindEnergy, m.Generation.Unit)...)
	errs = append(errs, checkUnit(path+".investment.unit", units.KindMoney, m.Investment.Unit)...)
	errs = append(errs, checkUnit(path+".emissions.unit", units.KindEmissions, m.Emissions.Unit)...)
	errs = append(errs, checkUnit(path+".peakDemand.unit", units.KindPower, m.PeakDemand.Unit)...)
	if m.CapacityAdditions != nil {
		errs = append(errs, checkUnit(path+".capacityAdditions.unit", units.KindPower, m.CapacityAdditions.Unit)...)
	}
	if m.AnnualOMCosts != nil {
		errs = append(errs, checkUnit(path+".annualOMCosts.unit", units.KindMoney, m.AnnualOMCosts.Unit)...)
	}
	if m.Curtailment != nil {
		errs = append(errs, checkUnit(path+".curtailment.unit", units.KindEnergy, m.Curtailment.Unit)...)
	}
	if m.Imports != nil {
		errs = append(errs, checkUnit(path+".imports.unit", units.KindEnergy, m.Imports.Unit)...)
	}
	return errs
}

// checkUnit accepts an empty unit as the canonical one.
func checkUnit(path string, kind units.Kind, unit string) []error {
	if unit == "" {
		return nil
	}
	if err := units.Check(kind, unit); err != nil {
		return []error{fmt.Errorf("%s: %w", path, err)}
	}
	return nil
}

func validateDetailedTech(s *domain.ScenarioInput) []error {
	if len(s.DetailedTech) == 0 {
		return nil
	}
	var errs []error
	years := make([]int, 0, len(s.DetailedTech))
	for y := range s.DetailedTech {
		years = append(years, y)
	}
	slices.Sort(years)

	for _, y := range years {
		if _, ok := s.MilestoneByYear(y); !ok {
			errs = append(errs, fmt.Errorf("detailedTech[%d]: no milestone for year %d", y, y))
		}
		techs := make([]string, 0, len(s.DetailedTech[y]))
		for tech := range s.DetailedTech[y] {
			techs = append(techs, tech)
		}
		slices.Sort(techs)
		for _, tech := range techs {
			if !slices.Contains(domain.Technologies, tech) {
				errs = append(errs, fmt.Errorf("detailedTech[%d].%s: unknown technology", y, tech))
				continue
			}
			if s.DetailedTech[y][tech] < 0 {
				errs = append(errs, fmt.Errorf("detailedTech[%d].%s: must not be negative", y, tech))
			}
		}
	}
	return errs
}
