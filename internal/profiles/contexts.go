package profiles

import "github.com/alexanderramin/scenariodialogue/internal/domain"

func contextProfiles() []domain.ContextProfile {
	return []domain.ContextProfile{
		{
			ID:          domain.ContextLeastDeveloped,
			Name:        "Least Developed Countries",
			Description: "Low electrification rates, limited grid infrastructure, high reliance on concessional financing.",
			Modifiers: []domain.ThresholdModifier{
				mod(re2030, 0.7),
				mod(inv2030, 0.5),
				mod(elec2030, 0.8),
				mod(battery40, 0.5),
			},
		},
		{
			ID:          domain.ContextEmerging,
			Name:        "Emerging Economies",
			Description: "Growing demand, mixed generation portfolio, increasing private sector participation.",
			Modifiers: []domain.ThresholdModifier{
				mod(re2030, 1.0),
				mod(privShare, 1.0),
				mod(coalRetire, 0.8),
			},
		},
		{
			ID:          domain.ContextDeveloped,
			Name:        "Developed Countries",
			Description: "High electrification, mature markets, focus on decarbonization and system transformation.",
			Modifiers: []domain.ThresholdModifier{
				mod(re2030, 1.3),
				mod(red2030, 1.4),
				mod("supply.capacity.coal.2030", 0.5),
			},
		},
	}
}
