package domain

// AdjustmentState is the three-lever slider position used to explore
// sentiment shifts.
type AdjustmentState struct {
	REShare2030  float64 `json:"reShare2030" yaml:"reShare2030"`
	REShare2040  float64 `json:"reShare2040" yaml:"reShare2040"`
	CoalPhaseout float64 `json:"coalPhaseout" yaml:"coalPhaseout"`
}

type SentimentDirection string

const (
	SentimentPositive SentimentDirection = "positive"
	SentimentNegative SentimentDirection = "negative"
	SentimentNeutral  SentimentDirection = "neutral"
)

type Magnitude string

const (
	MagnitudeMinor       Magnitude = "minor"
	MagnitudeModerate    Magnitude = "moderate"
	MagnitudeSignificant Magnitude = "significant"
)

type SentimentChange struct {
	StakeholderID   StakeholderID      `json:"stakeholderId"`
	StakeholderName string             `json:"stakeholderName"`
	Direction       SentimentDirection `json:"direction"`
	Magnitude       Magnitude          `json:"magnitude"`
	PositiveFactors []string           `json:"positiveFactors"`
	NegativeFactors []string           `json:"negativeFactors"`
	NetScore        int                `json:"netScore"`
}

type ImpactDirection string

const (
	ImpactIncrease  ImpactDirection = "increase"
	ImpactDecrease  ImpactDirection = "decrease"
	ImpactUnchanged ImpactDirection = "unchanged"
)

type ImpactMagnitude string

const (
	ImpactMinimal     ImpactMagnitude = "minimal"
	ImpactModerate    ImpactMagnitude = "moderate"
	ImpactSignificant ImpactMagnitude = "significant"
)

type Impact struct {
	Direction   ImpactDirection `json:"direction"`
	Magnitude   ImpactMagnitude `json:"magnitude"`
	Explanation string          `json:"explanation"`
}

// DirectionalImpacts is a qualitative read of how jobs, land use and
// emissions move between two adjustment states.
type DirectionalImpacts struct {
	Jobs      Impact `json:"jobs"`
	LandUse   Impact `json:"landUse"`
	Emissions Impact `json:"emissions"`
}
