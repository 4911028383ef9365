package domain

// ScenarioInput is a quantified energy scenario: metadata plus an ordered
// list of milestone snapshots. Milestone years are strictly ascending once
// the importer has validated the scenario.
type ScenarioInput struct {
	Metadata     ScenarioMetadata     `json:"metadata"`
	Milestones   []Milestone          `json:"milestones"`
	DetailedTech map[int]TechCapacity `json:"detailedTech,omitempty"`
}

type ScenarioMetadata struct {
	Country      string `json:"country"`
	ScenarioName string `json:"scenarioName"`
	ModelVersion string `json:"modelVersion"`
	DateCreated  string `json:"dateCreated"`
}

type Milestone struct {
	Year              int                `json:"year"`
	Capacity          CapacityMix        `json:"capacity"`
	Generation        GenerationMix      `json:"generation"`
	REShare           float64            `json:"reShare"`
	Investment        Investment         `json:"investment"`
	Emissions         Emissions          `json:"emissions"`
	PeakDemand        UnitValue          `json:"peakDemand"`
	CapacityAdditions *CapacityAdditions `json:"capacityAdditions,omitempty"`
	AnnualOMCosts     *UnitValue         `json:"annualOMCosts,omitempty"`
	Curtailment       *UnitValue         `json:"curtailment,omitempty"`
	Imports           *UnitValue         `json:"imports,omitempty"`
}

// CapacityTotals holds installed capacity per aggregate category.
// Storage and Other are optional in source files.
type CapacityTotals struct {
	Renewables float64  `json:"renewables"`
	Fossil     float64  `json:"fossil"`
	Storage    *float64 `json:"storage,omitempty"`
	Other      *float64 `json:"other,omitempty"`
}

// StorageOrZero returns the storage capacity, or 0 when absent.
func (c CapacityTotals) StorageOrZero() float64 {
	return Float64FromPtrWithDefault(0, c.Storage)
}

// OtherOrZero returns the other capacity, or 0 when absent.
func (c CapacityTotals) OtherOrZero() float64 {
	return Float64FromPtrWithDefault(0, c.Other)
}

// Sum returns the total of all categories.
func (c CapacityTotals) Sum() float64 {
	return c.Renewables + c.Fossil + c.StorageOrZero() + c.OtherOrZero()
}

type CapacityMix struct {
	Total CapacityTotals `json:"total"`
	Unit  string         `json:"unit"`
}

type GenerationOutput struct {
	Renewables float64 `json:"renewables"`
	Fossil     float64 `json:"fossil"`
	Other      float64 `json:"other"`
}

func (g GenerationOutput) Sum() float64 {
	return g.Renewables + g.Fossil + g.Other
}

type GenerationMix struct {
	Output GenerationOutput `json:"output"`
	Unit   string           `json:"unit"`
}

type Investment struct {
	Cumulative float64 `json:"cumulative"`
	Unit       string  `json:"unit"`
}

type Emissions struct {
	Total float64 `json:"total"`
	Unit  string  `json:"unit"`
}

type UnitValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type CapacityAdditions struct {
	Additions CapacityTotals `json:"additions"`
	Unit      string         `json:"unit"`
}

// TechCapacity is installed capacity in MW keyed by technology name
// (hydro, solarPV, wind, geothermal, biomass, coal, naturalGas, diesel,
// hfo, battery, nuclear, interconnector).
type TechCapacity map[string]float64

// Technologies lists every technology known to the job and land factor tables.
var Technologies = []string{
	"hydro", "solarPV", "wind", "geothermal", "biomass",
	"coal", "naturalGas", "diesel", "hfo",
	"battery", "nuclear", "interconnector",
}

// MilestoneByYear returns the milestone for year, if present.
func (s *ScenarioInput) MilestoneByYear(year int) (*Milestone, bool) {
	for i := range s.Milestones {
		if s.Milestones[i].Year == year {
			return &s.Milestones[i], true
		}
	}
	return nil, false
}

// FinalMilestone returns the terminal milestone, if any.
func (s *ScenarioInput) FinalMilestone() (*Milestone, bool) {
	if len(s.Milestones) == 0 {
		return nil, false
	}
	return &s.Milestones[len(s.Milestones)-1], true
}

// Years returns the milestone years in declaration order.
func (s *ScenarioInput) Years() []int {
	years := make([]int, 0, len(s.Milestones))
	for _, m := range s.Milestones {
		years = append(years, m.Year)
	}
	return years
}
