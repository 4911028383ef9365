package sentiment

import "github.com/alexanderramin/scenariodialogue/internal/domain"

// ComputeImpacts gives the qualitative direction of jobs, land use and
// emissions between base and adjusted. Nothing here is a forecast.
func (e *Engine) ComputeImpacts(base, adjusted domain.AdjustmentState) domain.DirectionalImpacts {
	d := newDeltas(base, adjusted)
	totalRE := d.re2030 + d.re2040
	im := e.th.Impacts
	return domain.DirectionalImpacts{
		Jobs:      jobsImpact(totalRE, im),
		LandUse:   landImpact(totalRE, im),
		Emissions: emissionsImpact(totalRE, d.phaseout, im),
	}
}

func impact(dir domain.ImpactDirection, mag domain.ImpactMagnitude, explanation string) domain.Impact {
	return domain.Impact{Direction: dir, Magnitude: mag, Explanation: explanation}
}

func jobsImpact(totalRE float64, im ImpactThresholds) domain.Impact {
	switch {
	case totalRE > im.JobsSignificant:
		return impact(domain.ImpactIncrease, domain.ImpactSignificant,
			"Higher renewable capacity typically creates substantial construction jobs and operational positions.")
	case totalRE > im.JobsModerate:
		return impact(domain.ImpactIncrease, domain.ImpactModerate,
			"Moderate increase in renewable capacity creates additional jobs in construction and operations.")
	case totalRE < -im.JobsSignificant:
		return impact(domain.ImpactDecrease, domain.ImpactSignificant,
			"Lower renewable capacity reduces job creation potential in the clean energy sector.")
	case totalRE < -im.JobsModerate:
		return impact(domain.ImpactDecrease, domain.ImpactModerate,
			"Reduced renewable deployment creates fewer new jobs than the base scenario.")
	default:
		return impact(domain.ImpactUnchanged, domain.ImpactMinimal,
			"Job creation potential remains similar to the base scenario.")
	}
}

func landImpact(totalRE float64, im ImpactThresholds) domain.Impact {
	switch {
	case totalRE > im.LandSignificant:
		return impact(domain.ImpactIncrease, domain.ImpactSignificant,
			"Substantially higher solar and wind capacity requires more land, particularly for utility-scale installations.")
	case totalRE > im.LandModerate:
		return impact(domain.ImpactIncrease, domain.ImpactModerate,
			"Increased renewable capacity requires additional land for solar and wind projects.")
	case totalRE < -im.LandSignificant:
		return impact(domain.ImpactDecrease, domain.ImpactSignificant,
			"Lower renewable deployment reduces land requirements for energy infrastructure.")
	case totalRE < -im.LandModerate:
		return impact(domain.ImpactDecrease, domain.ImpactModerate,
			"Reduced solar and wind capacity requires less land than the base scenario.")
	default:
		return impact(domain.ImpactUnchanged, domain.ImpactMinimal,
			"Land use requirements remain similar to the base scenario.")
	}
}

func emissionsImpact(totalRE, phaseout float64, im ImpactThresholds) domain.Impact {
	switch {
	case phaseout < -im.EmissionsPhaseout && totalRE > im.EmissionsCombinedRE:
		return impact(domain.ImpactDecrease, domain.ImpactSignificant,
			"Earlier coal phaseout combined with higher renewable share substantially reduces emissions.")
	case phaseout < -im.EmissionsPhaseout || totalRE > im.EmissionsRE:
		return impact(domain.ImpactDecrease, domain.ImpactModerate,
			"Faster transition to renewables reduces fossil fuel combustion and associated emissions.")
	case phaseout > im.EmissionsPhaseout && totalRE < -im.EmissionsCombinedRE:
		return impact(domain.ImpactIncrease, domain.ImpactSignificant,
			"Delayed coal phaseout with lower renewable share extends fossil fuel dependency and increases emissions.")
	case phaseout > im.EmissionsPhaseout || totalRE < -im.EmissionsRE:
		return impact(domain.ImpactIncrease, domain.ImpactModerate,
			"Slower decarbonization pace results in higher cumulative emissions.")
	default:
		return impact(domain.ImpactUnchanged, domain.ImpactMinimal,
			"Emissions trajectory remains similar to the base scenario.")
	}
}
