package domain

// YearSeries maps a milestone year to a value.
type YearSeries map[int]float64

// DerivedMetrics are soft indicators computed from a scenario. A fresh value
// is produced whenever the scenario changes; consumers treat it as read-only.
type DerivedMetrics struct {
	RenewableShare YearSeries        `json:"renewableShare"`
	FossilShare    YearSeries        `json:"fossilShare"`
	Jobs           JobMetrics        `json:"jobs"`
	LandUse        LandUseMetrics    `json:"landUse"`
	Emissions      EmissionMetrics   `json:"emissions"`
	Capacity       CapacityMetrics   `json:"capacity"`
	Investment     InvestmentMetrics `json:"investment"`
}

type JobMetrics struct {
	Construction YearSeries `json:"construction"`
	Operations   YearSeries `json:"operations"`
	Total        YearSeries `json:"total"`
}

type LandUseMetrics struct {
	TotalNewLand YearSeries            `json:"totalNewLand"`
	ByTechnology map[string]YearSeries `json:"byTechnology"`
}

type EmissionMetrics struct {
	Absolute         YearSeries `json:"absolute"`
	ReductionPercent YearSeries `json:"reductionPercent"`
}

type CapacityMetrics struct {
	TotalInstalled         YearSeries `json:"totalInstalled"`
	VariableRenewableShare YearSeries `json:"variableRenewableShare"`
}

type InvestmentMetrics struct {
	TotalCumulative YearSeries `json:"totalCumulative"`
	AnnualPeak      float64    `json:"annualPeak"`
	AverageAnnual   float64    `json:"averageAnnual"`
}
