package profiles

import "github.com/alexanderramin/scenariodialogue/internal/domain"

const (
	re2030     = "renewableShare.2030"
	re2040     = "renewableShare.2040"
	inv2030    = "investment.cumulative.2030"
	red2030    = "emissions.reductionPercent2030"
	red2040    = "emissions.reductionPercent2040"
	battery40  = "supply.capacity.battery.2040"
	coalRetire = "supply.capacity.coal.retirementRate"
	intercon40 = "supply.capacity.interconnector.2040"
	elec2030   = "access.electrificationRate.2030"
	privShare  = "investment.privateSectorShare"
	sovShare   = "investment.sovereignGuaranteeShare"
)

func mod(metric string, multiplier float64) domain.ThresholdModifier {
	return domain.ThresholdModifier{Metric: metric, Multiplier: multiplier}
}

func variant(v domain.Variant, description, framing string, mods ...domain.ThresholdModifier) domain.VariantProfile {
	return domain.VariantProfile{Variant: v, Description: description, Modifiers: mods, Framing: framing}
}

func variantSet(conservative, progressive, pragmatic domain.VariantProfile) map[domain.Variant]domain.VariantProfile {
	return map[domain.Variant]domain.VariantProfile{
		domain.VariantConservative: conservative,
		domain.VariantProgressive:  progressive,
		domain.VariantPragmatic:    pragmatic,
	}
}

func variantProfiles() map[domain.StakeholderID]map[domain.Variant]domain.VariantProfile {
	return map[domain.StakeholderID]map[domain.Variant]domain.VariantProfile{
		domain.StakeholderPolicyMakers: variantSet(
			variant(domain.VariantConservative,
				"Prioritizes energy security and affordability, cautious on climate ambition.",
				"We cannot compromise energy security or burden consumers with high costs.",
				mod(inv2030, 0.8), mod(red2030, 0.7), mod("jobs.total.2030", 1.3)),
			variant(domain.VariantProgressive,
				"Champions climate leadership, willing to accept transition costs for long-term benefits.",
				"This is our opportunity to demonstrate climate leadership and attract green investment.",
				mod(re2030, 1.3), mod(red2030, 1.2), mod(inv2030, 1.2)),
			variant(domain.VariantPragmatic,
				"Balances multiple objectives, seeks politically feasible pathways.",
				"We need a plan that delivers on multiple fronts and can survive political cycles.",
				mod(inv2030, 1.0), mod("jobs.total.2030", 1.1), mod(red2030, 1.0)),
		),
		domain.StakeholderGridOperators: variantSet(
			variant(domain.VariantConservative,
				"Emphasizes system security, prefers proven technologies, cautious on transition pace.",
				"System security must not be compromised. We need proven solutions before scaling.",
				mod(re2030, 0.8), mod(battery40, 1.3), mod(coalRetire, 0.7)),
			variant(domain.VariantProgressive,
				"Sees opportunity in transition, open to innovation, willing to accept managed risk.",
				"This transition creates opportunities for grid modernization. We should lead, not follow.",
				mod(re2030, 1.2), mod(battery40, 0.9), mod(intercon40, 1.2)),
			variant(domain.VariantPragmatic,
				"Focuses on costs and practical implementation, seeks balanced solutions.",
				"Let's focus on what's achievable within budget and timeline constraints.",
				mod("investment.transmission.cumulative", 1.1), mod(re2030, 1.0), mod(battery40, 1.0)),
		),
		domain.StakeholderIndustry: variantSet(
			variant(domain.VariantConservative,
				"Prioritizes cost stability and reliability, cautious about transition impacts on competitiveness.",
				"We need stable, affordable energy. Rapid transitions threaten industrial competitiveness.",
				mod(inv2030, 0.8), mod(re2030, 0.9)),
			variant(domain.VariantProgressive,
				"Sees opportunities in clean energy supply chains, early adopter of corporate sustainability.",
				"Clean energy transition creates supply chain opportunities. We want to be manufacturing leaders.",
				mod(re2040, 1.2), mod("supply.capacity.solarPV.2040", 1.3)),
			variant(domain.VariantPragmatic,
				"Balances sustainability goals with business viability, seeks phased transition.",
				"We support clean energy if implementation is gradual and doesn't compromise reliability.",
				mod(re2030, 1.0), mod(inv2030, 1.0)),
		),
		domain.StakeholderPublic: variantSet(
			variant(domain.VariantConservative,
				"Prioritizes affordability and skeptical of infrastructure disruption.",
				"We want clean energy but can't afford higher electricity bills or disrupted communities.",
				mod(inv2030, 0.7), mod("land.total.2040", 0.8)),
			variant(domain.VariantProgressive,
				"Prioritizes health and climate benefits, willing to accept short-term disruption.",
				"Clean air and climate action are worth the investment. Our children's future depends on this.",
				mod(re2040, 1.3), mod(red2040, 1.2)),
			variant(domain.VariantPragmatic,
				"Supports clean energy with safeguards on affordability and community impacts.",
				"We support the transition if vulnerable households are protected and communities benefit.",
				mod(re2030, 1.0), mod(inv2030, 1.0)),
		),
		domain.StakeholderCSOsNGOs: variantSet(
			variant(domain.VariantConservative,
				"Emphasizes just transition and social protection, cautious on pace if workers at risk.",
				"We support transition only if workers and communities are protected.",
				mod(coalRetire, 0.7), mod("jobs.fossilFuel.transition.support", 1.5)),
			variant(domain.VariantProgressive,
				"Champions rapid decarbonization and climate justice, maximalist on ambition.",
				"Climate emergency demands maximum ambition. Half measures are insufficient.",
				mod(re2040, 1.4), mod(red2040, 1.3), mod("supply.capacity.coal.2030", 0.5)),
			variant(domain.VariantPragmatic,
				"Balances climate goals with social considerations, seeks inclusive pathways.",
				"We need ambitious climate action that leaves no one behind.",
				mod(re2030, 1.1), mod(red2030, 1.1)),
		),
		domain.StakeholderScientific: variantSet(
			variant(domain.VariantConservative,
				"Emphasizes rigorous validation, cautious about claims beyond modeling evidence.",
				"We need comprehensive modeling validation before endorsing this trajectory.",
				mod(re2040, 0.9), mod(battery40, 1.2)),
			variant(domain.VariantProgressive,
				"Champions evidence-based climate action, willing to support ambitious scenarios.",
				"The science demands urgent action. This scenario aligns with climate imperatives.",
				mod(re2040, 1.2), mod(red2040, 1.3)),
			variant(domain.VariantPragmatic,
				"Focuses on technical feasibility and practical implementation pathways.",
				"Let's focus on what's technically achievable with available resources and technology.",
				mod(re2030, 1.0), mod(battery40, 1.0)),
		),
		domain.StakeholderFinance: variantSet(
			variant(domain.VariantConservative,
				"Risk-averse, requires strong guarantees and proven business models.",
				"We need strong guarantees and proven track records before deploying capital at scale.",
				mod(inv2030, 0.8), mod("investment.yearOverYearGrowth", 0.7)),
			variant(domain.VariantProgressive,
				"ESG-focused, willing to accept green premium for climate-aligned investments.",
				"Green investments align with our ESG mandates. We're ready to support ambitious climate action.",
				mod(re2040, 1.3), mod(red2040, 1.2)),
			variant(domain.VariantPragmatic,
				"Balances returns with sustainability, seeks blended finance structures.",
				"We can support this if risk-return profiles are acceptable and enabling conditions are met.",
				mod(re2030, 1.0), mod(privShare, 1.1)),
		),
		domain.StakeholderRegionalBodies: variantSet(
			variant(domain.VariantConservative,
				"Prioritizes coordination and avoiding unilateral actions that disrupt regional plans.",
				"National plans must align with regional master plans to avoid suboptimal outcomes.",
				mod(intercon40, 1.3), mod(re2030, 0.9)),
			variant(domain.VariantProgressive,
				"Sees ambitious national plans as catalysts for regional transformation.",
				"Ambitious national plans can drive regional integration and create trade opportunities.",
				mod(re2040, 1.2), mod(intercon40, 1.3)),
			variant(domain.VariantPragmatic,
				"Focuses on practical coordination mechanisms and infrastructure optimization.",
				"Let's coordinate to maximize regional benefits and avoid duplication.",
				mod(re2030, 1.0), mod(intercon40, 1.1)),
		),
		domain.StakeholderDevelopmentPartners: variantSet(
			variant(domain.VariantConservative,
				"Emphasizes debt sustainability and fiscal prudence, cautious on ambitious programs.",
				"Debt sustainability must be preserved. We cannot support programs that create fiscal risks.",
				mod(inv2030, 0.8), mod(sovShare, 0.7)),
			variant(domain.VariantProgressive,
				"Champions climate and access goals, willing to mobilize substantial concessional resources.",
				"This ambition aligns with our mandates. We can mobilize substantial support for dual access-climate goals.",
				mod(re2040, 1.3), mod(elec2030, 1.2)),
			variant(domain.VariantPragmatic,
				"Balances ambition with fiscal realism, seeks efficient resource allocation.",
				"We support this if implementation is realistic and resources are allocated efficiently.",
				mod(re2030, 1.0), mod(elec2030, 1.1)),
		),
	}
}
