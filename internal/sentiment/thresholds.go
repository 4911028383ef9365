package sentiment

import (
	"errors"
	"fmt"
)

// ErrInvalidThresholds is returned by Thresholds.Validate.
var ErrInvalidThresholds = errors.New("invalid sentiment thresholds")

// Thresholds holds every tunable constant of the delta rules. Shift values are
// percentage points of RE share; phase-out values are years.
type Thresholds struct {
	MinorShift   float64 `yaml:"minorShift" json:"minorShift"`
	MajorShift   float64 `yaml:"majorShift" json:"majorShift"`
	RapidShift   float64 `yaml:"rapidShift" json:"rapidShift"`
	ExtremeShift float64 `yaml:"extremeShift" json:"extremeShift"`

	PhaseoutShift      float64 `yaml:"phaseoutShift" json:"phaseoutShift"`
	LargePhaseoutShift float64 `yaml:"largePhaseoutShift" json:"largePhaseoutShift"`

	PolicyFeasibility2030    float64 `yaml:"policyFeasibility2030" json:"policyFeasibility2030"`
	GridVRECeiling2040       float64 `yaml:"gridVreCeiling2040" json:"gridVreCeiling2040"`
	ScientificPlausible2030  float64 `yaml:"scientificPlausible2030" json:"scientificPlausible2030"`
	ScientificVRECeiling2040 float64 `yaml:"scientificVreCeiling2040" json:"scientificVreCeiling2040"`
	RegionalVRE2040          float64 `yaml:"regionalVre2040" json:"regionalVre2040"`

	// Net score classification.
	DirectionScore   int `yaml:"directionScore" json:"directionScore"`
	ModerateScore    int `yaml:"moderateScore" json:"moderateScore"`
	SignificantScore int `yaml:"significantScore" json:"significantScore"`

	Impacts ImpactThresholds `yaml:"impacts" json:"impacts"`
}

// ImpactThresholds drive ComputeImpacts. All RE values apply to the sum of
// the 2030 and 2040 deltas.
type ImpactThresholds struct {
	JobsModerate        float64 `yaml:"jobsModerate" json:"jobsModerate"`
	JobsSignificant     float64 `yaml:"jobsSignificant" json:"jobsSignificant"`
	LandModerate        float64 `yaml:"landModerate" json:"landModerate"`
	LandSignificant     float64 `yaml:"landSignificant" json:"landSignificant"`
	EmissionsCombinedRE float64 `yaml:"emissionsCombinedRe" json:"emissionsCombinedRe"`
	EmissionsRE         float64 `yaml:"emissionsRe" json:"emissionsRe"`
	EmissionsPhaseout   float64 `yaml:"emissionsPhaseout" json:"emissionsPhaseout"`
}

// DefaultThresholds returns the stock rule constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinorShift:               5,
		MajorShift:               10,
		RapidShift:               15,
		ExtremeShift:             20,
		PhaseoutShift:            5,
		LargePhaseoutShift:       10,
		PolicyFeasibility2030:    70,
		GridVRECeiling2040:       80,
		ScientificPlausible2030:  60,
		ScientificVRECeiling2040: 85,
		RegionalVRE2040:          70,
		DirectionScore:           1,
		ModerateScore:            3,
		SignificantScore:         5,
		Impacts: ImpactThresholds{
			JobsModerate:        5,
			JobsSignificant:     20,
			LandModerate:        10,
			LandSignificant:     30,
			EmissionsCombinedRE: 10,
			EmissionsRE:         15,
			EmissionsPhaseout:   5,
		},
	}
}

// Validate checks that the shift ladders are positive and ascending.
func (t Thresholds) Validate() error {
	if t.MinorShift <= 0 || t.PhaseoutShift <= 0 {
		return fmt.Errorf("%w: shifts must be positive", ErrInvalidThresholds)
	}
	if !(t.MinorShift < t.MajorShift && t.MajorShift < t.RapidShift && t.RapidShift < t.ExtremeShift) {
		return fmt.Errorf("%w: minor < major < rapid < extreme shift required", ErrInvalidThresholds)
	}
	if t.LargePhaseoutShift <= t.PhaseoutShift {
		return fmt.Errorf("%w: largePhaseoutShift must exceed phaseoutShift", ErrInvalidThresholds)
	}
	if !(0 <= t.DirectionScore && t.DirectionScore < t.ModerateScore && t.ModerateScore < t.SignificantScore) {
		return fmt.Errorf("%w: direction < moderate < significant score required", ErrInvalidThresholds)
	}
	im := t.Impacts
	if im.JobsModerate >= im.JobsSignificant || im.LandModerate >= im.LandSignificant {
		return fmt.Errorf("%w: impact moderate must be below significant", ErrInvalidThresholds)
	}
	return nil
}
