package derive

// jobFactor is jobs per MW installed.
type jobFactor struct {
	construction float64
	operations   float64
}

var jobFactors = map[string]jobFactor{
	"solarPV":        {10, 0.3},
	"wind":           {8, 0.4},
	"hydro":          {12, 0.5},
	"battery":        {3, 0.1},
	"geothermal":     {6, 0.6},
	"biomass":        {8, 1.0},
	"coal":           {4, 0.8},
	"naturalGas":     {4, 0.8},
	"diesel":         {3, 0.5},
	"hfo":            {3, 0.5},
	"nuclear":        {10, 0.7},
	"interconnector": {5, 0.05},
}

// landFactors is hectares per MW. Other technologies are too site-specific.
var landFactors = map[string]float64{
	"solarPV": 2.0,
	"wind":    0.3,
	"battery": 0.1,
}

// Typical technology splits used when a year has no detailed breakdown.
var (
	renewableMix = map[string]float64{"hydro": 0.40, "solarPV": 0.30, "wind": 0.20, "geothermal": 0.05, "biomass": 0.05}
	fossilMix    = map[string]float64{"coal": 0.20, "naturalGas": 0.50, "diesel": 0.15, "hfo": 0.15}
)

// Share of renewables assumed to be solar plus wind without detail.
const vreShareOfRenewables = 0.5

// Rough investment per MW added, in million USD.
const (
	renewableCostPerMW = 1.5
	fossilCostPerMW    = 1.0
	storageCostPerMW   = 2.0
)

// otherAsTech is the factor proxy for the "other" capacity category.
const otherAsTech = "nuclear"
