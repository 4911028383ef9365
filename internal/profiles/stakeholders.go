package profiles

import "github.com/alexanderramin/scenariodialogue/internal/domain"

func concern(metric string, threshold float64, dir domain.Direction, text, explanation string) domain.ConcernTrigger {
	return domain.ConcernTrigger{Metric: metric, Threshold: threshold, Direction: dir, Text: text, Explanation: explanation}
}

func praise(metric string, threshold float64, dir domain.Direction, text string) domain.PositiveIndicator {
	return domain.PositiveIndicator{Metric: metric, Threshold: threshold, Direction: dir, Text: text}
}

func baseProfiles() []*domain.StakeholderProfile {
	return []*domain.StakeholderProfile{
		{
			ID:             domain.StakeholderPolicyMakers,
			Name:           "Policy Makers & Regulators",
			Color:          "#c94f4f",
			Description:    "Government officials responsible for laws, policies and regulations across energy, transport, industry, environment, and climate-focused departments.",
			WhyEngage:      "Active involvement throughout scenario development keeps scenarios relevant, realistic and aligned with policy needs.",
			BenefitForThem: "Understanding scenario trade-offs helps decision making and assessment of policy measure implications.",
			Challenges: []string{
				"Limited understanding of scenario concept and purpose",
				"Balancing different political visions and priorities",
				"Not necessarily energy system specialists",
				"Time constraints limit engagement capacity",
			},
			GoodPractices: []string{
				"Prepare succinct briefs addressing direct concerns",
				"Explain what modelling can and cannot do",
				"Use non-biased intermediaries to facilitate",
				"Conduct capacity-building for decision-makers",
			},
			Priorities: []string{
				"Alignment with national development goals",
				"Energy security and reliability",
				"Affordability for consumers",
				"Political feasibility",
				"Job creation and economic development",
				"Climate commitment compliance (e.g., NDCs, net-zero targets)",
			},
			TypicalQuestions: []string{
				"How does this align with our climate commitments?",
				"What are the implications for electricity tariffs?",
				"How many jobs will be created?",
				"What is the timeline for key investment decisions?",
				"How does this compare to regional peers?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("investment.cumulative.2050", 10000, domain.Above,
					"The total investment requirement of {value} million USD is substantial.",
					"Policy makers need to understand financing strategy and fiscal implications."),
				concern("jobs.total.2030", 2000, domain.Below,
					"Job creation appears limited with only {value} jobs by 2030.",
					"Employment is a key political priority."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("jobs.total.2030", 5000, domain.Above,
					"Strong job creation potential of {value} jobs supports employment goals."),
				praise("emissions.reductionPercent2030", 20, domain.Above,
					"Significant emissions reduction of {value}% demonstrates climate leadership."),
			},
			ResponseTemplates: []domain.ResponseTemplate{
				{
					Condition:       "highInvestment",
					InitialReaction: "This is an ambitious plan. We need to understand the financing strategy.",
					AppreciationPoints: []string{
						"Clear long-term vision for the sector",
						"Alignment with regional integration goals",
					},
					ConcernPoints: []string{
						"Total investment requirement needs careful fiscal planning",
						"Timeline for major decisions needs political alignment",
					},
					QuestionsToAsk: []string{
						"What is the proposed financing mix (public/private/concessional)?",
						"What are the tariff implications for households?",
						"How does this align with our fiscal space?",
					},
				},
			},
		},
		{
			ID:             domain.StakeholderGridOperators,
			Name:           "Grid Operators",
			Color:          "#4a90a4",
			Description:    "Entities responsible for operating and developing power networks (transmission and distribution).",
			WhyEngage:      "Deep understanding of grid dynamics, infrastructure limitations and operational challenges. Technical expertise and real-time data make them essential for grid stability.",
			BenefitForThem: "Ensuring their development plans are considered in national planning and that plans are consistent with infrastructure capabilities.",
			Challenges: []string{
				"Established mid-term plans may conflict with scenarios",
				"Weak collaboration across voltage levels",
				"Grid role often underestimated by policy makers",
				"Need to reconcile multiple operator perspectives",
			},
			GoodPractices: []string{
				"Engage early to incorporate existing plans",
				"Include distribution-level operators",
				"Involve regulators for grid permits",
				"Prioritize cost-efficient solutions",
			},
			Priorities: []string{
				"System reliability and security of supply",
				"Manageable renewable integration pace",
				"Transmission infrastructure planning",
				"Interconnector development coordination",
				"Storage and flexibility resources",
			},
			TypicalQuestions: []string{
				"What transmission upgrades are assumed?",
				"What flexibility resources support high renewable shares?",
				"How are interconnector flows coordinated with neighbors?",
				"What is the battery storage deployment timeline?",
				"How will distribution networks handle new loads?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("renewableShare.2040", 70, domain.Above,
					"Variable renewable share of {value}% by 2040 requires significant grid upgrades.",
					"Grid operators need time and investment for infrastructure adaptation."),
				concern("supply.capacity.battery.2035", 100, domain.Below,
					"Limited battery storage of {value} MW may constrain renewable integration.",
					"Flexibility resources are essential for variable renewable management."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("supply.capacity.interconnector.2040", 500, domain.Above,
					"Strong interconnector expansion of {value} MW enables regional balancing."),
				praise("supply.capacity.battery.2040", 300, domain.Above,
					"Adequate battery deployment of {value} MW supports system flexibility."),
			},
		},
		{
			ID:             domain.StakeholderIndustry,
			Name:           "Industry & Business",
			Color:          "#7b8a3e",
			Description:    "Energy-intensive industries, manufacturers, SMEs, renewable energy developers, and energy service providers.",
			WhyEngage:      "Central to energy transition due to significant energy use, emissions, and innovation potential. Technical expertise on decarbonization barriers.",
			BenefitForThem: "Preserve business interests, anticipate policy changes, position competitively, support climate disclosures.",
			Challenges: []string{
				"Diverse interests across industrial sectors",
				"Competitiveness concerns about energy costs",
				"Limited capacity for engagement",
				"Short-term focus vs long-term planning",
			},
			GoodPractices: []string{
				"Segment by industry type for targeted engagement",
				"Highlight opportunities alongside challenges",
				"Involve industry associations",
				"Provide early visibility into policy direction",
			},
			Priorities: []string{
				"Reliable electricity supply",
				"Competitive energy costs",
				"Predictable policy environment",
				"Clean energy supply chain opportunities",
				"Realistic demand growth assumptions",
			},
			TypicalQuestions: []string{
				"What are the projected industrial electricity costs?",
				"How reliable will supply be for continuous operations?",
				"What local manufacturing opportunities exist?",
				"Are industrial demand projections realistic?",
				"What incentives exist for industrial efficiency?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("investment.cumulative.2030", 3000, domain.Above,
					"High investment costs of {value} million USD may translate to higher industrial tariffs.",
					"Industry competitiveness depends on energy costs."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("supply.capacity.solarPV.2030", 500, domain.Above,
					"Large solar pipeline of {value} MW creates opportunities for local businesses."),
				praise("jobs.construction.total", 10000, domain.Above,
					"Significant construction activity of {value} job-years benefits local contractors."),
			},
		},
		{
			ID:             domain.StakeholderPublic,
			Name:           "Public & Communities",
			Color:          "#e8a54b",
			Description:    "General public, local communities affected by infrastructure, indigenous communities, and vulnerable households.",
			WhyEngage:      "Essential for social acceptance and just transition. Local knowledge identifies barriers and opportunities.",
			BenefitForThem: "Ensuring concerns are heard, participating in decisions affecting their lives, benefiting from local opportunities.",
			Challenges: []string{
				"Diverse and fragmented stakeholder landscape",
				"Power imbalances in participation",
				"Limited technical capacity",
				"Time and resource constraints for engagement",
			},
			GoodPractices: []string{
				"Use accessible language and formats",
				"Ensure geographic representation",
				"Provide capacity building support",
				"Demonstrate how input influenced decisions",
			},
			Priorities: []string{
				"Electricity access and affordability",
				"Local jobs and economic benefits",
				"Land use impacts",
				"Fair distribution of costs and benefits",
				"Health and environmental improvements",
			},
			TypicalQuestions: []string{
				"How will this affect electricity bills?",
				"Will there be jobs for local people?",
				"What land will be used for projects?",
				"How will affected communities be supported?",
				"When will our area get electricity?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("landUse.totalNewLand.2040", 10000, domain.Above,
					"Large land requirements of {value} hectares affect many communities.",
					"Land acquisition is often contentious and requires careful consultation."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("jobs.operations.2040", 3000, domain.Above,
					"Permanent jobs of {value} positions provide stable employment for communities."),
				praise("emissions.reductionPercent2040", 50, domain.Above,
					"Major air quality improvements from {value}% emissions reduction benefit public health."),
			},
		},
		{
			ID:             domain.StakeholderCSOsNGOs,
			Name:           "CSOs & NGOs",
			Color:          "#6b4c9a",
			Description:    "Trade unions, environmental groups, humanitarian organizations, charities, and think tanks working on energy, climate, and development.",
			WhyEngage:      "Represent public interests, provide evidence-based research, highlight overlooked issues, can support or oppose projects.",
			BenefitForThem: "Ensuring representation of social and environmental concerns, shaping a just transition.",
			Challenges: []string{
				"Diverse agendas across organizations",
				"May advocate for positions beyond technical feasibility",
				"Resource constraints limit participation",
				"Balancing advocacy with constructive engagement",
			},
			GoodPractices: []string{
				"Engage early and transparently",
				"Acknowledge legitimate concerns",
				"Provide access to technical data",
				"Create space for alternative perspectives",
			},
			Priorities: []string{
				"Climate ambition and Paris alignment",
				"Just transition for workers",
				"Environmental protection",
				"Energy access for vulnerable populations",
				"Transparency in planning",
				"Gender equity",
			},
			TypicalQuestions: []string{
				"Is this scenario Paris-compatible?",
				"What happens to fossil fuel workers?",
				"How were communities consulted?",
				"What environmental assessments are planned?",
				"How does this address energy poverty?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("supply.emissions.2050", 30, domain.Above,
					"Remaining emissions of {value} Mt CO2 in 2050 may be incompatible with net-zero.",
					"CSOs focus on climate ambition and long-term targets."),
				concern("renewableShare.2030", 50, domain.Below,
					"Renewable share of {value}% appears unambitious.",
					"CSOs often advocate for faster transition."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("emissions.reductionPercent.2050", 80, domain.Above,
					"Deep emissions reduction of {value}% shows serious climate commitment."),
				praise("renewableShare.2040", 80, domain.Above,
					"Ambitious renewable share of {value}% aligns with climate science."),
			},
		},
		{
			ID:             domain.StakeholderScientific,
			Name:           "Scientific Institutions",
			Color:          "#3d7ea6",
			Description:    "Universities, research institutions, energy experts, economists, and social scientists.",
			WhyEngage:      "Build modelling capacity, provide expertise and feedback, enable robust scenarios through rigorous methodologies.",
			BenefitForThem: "Policy impact, funding opportunities, data access, partnerships with decision makers.",
			Challenges: []string{
				"Academic timelines vs policy deadlines",
				"Balancing rigor with policy relevance",
				"Limited resources for engagement",
				"Competing research priorities",
			},
			GoodPractices: []string{
				"Involve early in methodology design",
				"Provide access to data and models",
				"Support peer review processes",
				"Acknowledge contributions publicly",
			},
			Priorities: []string{
				"Methodological rigor",
				"Data quality and transparency",
				"Uncertainty quantification",
				"Model validation",
				"Alignment with research findings",
			},
			TypicalQuestions: []string{
				"What are the key uncertainties?",
				"How sensitive are results to assumptions?",
				"What discount rate was used?",
				"Has the model been validated?",
				"What are the technology cost assumptions?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("supply.capacity.solarPV.CAGR", 25, domain.Above,
					"Solar growth rate of {value}% exceeds historical precedents.",
					"Scientists scrutinize whether assumptions are evidence-based."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("methodology.sensitivityIncluded", 1, domain.Above,
					"Sensitivity analysis strengthens confidence in results."),
			},
		},
		{
			ID:             domain.StakeholderFinance,
			Name:           "Financial Institutions",
			Color:          "#2e5a3a",
			Description:    "Banks, DFIs, MDBs, climate funds, private equity, and institutional investors.",
			WhyEngage:      "Critical for mobilizing capital. Risk assessments shape what projects are bankable.",
			BenefitForThem: "Visibility into policy direction and pipeline, opportunity to shape bankable structures.",
			Challenges: []string{
				"Risk aversion and return requirements",
				"Currency and sovereign risk concerns",
				"Limited familiarity with sector specifics",
				"Long approval processes",
			},
			GoodPractices: []string{
				"Present clear project pipelines",
				"Address risk mitigation explicitly",
				"Highlight revenue certainty mechanisms",
				"Involve early in project structuring",
			},
			Priorities: []string{
				"Project bankability",
				"Revenue certainty (PPAs, offtake)",
				"Currency and sovereign risk",
				"Policy stability",
				"ESG compliance",
				"Climate finance eligibility",
			},
			TypicalQuestions: []string{
				"What is the financing gap?",
				"What offtake arrangements are assumed?",
				"How will currency risk be managed?",
				"What guarantees provide revenue certainty?",
				"Are projects IFC/Equator Principles compliant?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("investment.cumulative.2030", 5000, domain.Above,
					"Large financing requirements of {value} million USD need clear mobilization strategy.",
					"Financiers assess whether investment needs are realistic."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("supply.capacity.solarPV.2030", 500, domain.Above,
					"Significant solar pipeline of {value} MW is increasingly bankable."),
			},
		},
		{
			ID:             domain.StakeholderRegionalBodies,
			Name:           "Regional Bodies",
			Color:          "#1a5276",
			Description:    "Regional power pools, economic communities, regional development banks, and integration bodies coordinating cross-border energy cooperation.",
			WhyEngage:      "Essential for cross-border trade, regulatory harmonization, and regional investment optimization.",
			BenefitForThem: "Ensuring national plans align with regional master plans, identifying trade opportunities.",
			Challenges: []string{
				"Coordinating multiple national interests",
				"Varying levels of member state capacity",
				"Limited enforcement mechanisms",
				"Funding constraints for regional infrastructure",
			},
			GoodPractices: []string{
				"Align with regional master plans",
				"Coordinate timing with neighbors",
				"Share data and assumptions",
				"Highlight regional benefits",
			},
			Priorities: []string{
				"Alignment with regional master plans",
				"Cross-border trade optimization",
				"Interconnector coordination",
				"Regional reserve sharing",
				"Technical standard harmonization",
			},
			TypicalQuestions: []string{
				"How do projections align with regional master plans?",
				"What interconnector flows are assumed?",
				"Is there coordination with neighbors on timing?",
				"What regional reserve sharing is assumed?",
				"Are standards compatible with regional codes?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("regional.importDependence.2040", 30, domain.Above,
					"High import dependence of {value}% raises regional coordination questions.",
					"Regional bodies assess interdependencies and security."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("regional.exportPotential.2040", 2000, domain.Above,
					"Export potential of {value} GWh positions country as regional clean energy hub."),
				praise("supply.capacity.interconnector.2040", 500, domain.Above,
					"Strong interconnector capacity of {value} MW enables regional integration."),
			},
		},
		{
			ID:             domain.StakeholderDevelopmentPartners,
			Name:           "Development Partners",
			Color:          "#117a65",
			Description:    "Bilateral agencies, multilateral development banks, climate funds, and technical assistance providers supporting energy transitions.",
			WhyEngage:      "Major source of concessional financing. Their criteria shape what projects receive support.",
			BenefitForThem: "Alignment with country strategies, pipeline visibility, development impact demonstration.",
			Challenges: []string{
				"Multiple partners with different priorities",
				"Complex approval and procurement processes",
				"Coordination across sectors",
				"Balancing development and financial goals",
			},
			GoodPractices: []string{
				"Align with partner country strategies",
				"Demonstrate development impact",
				"Address debt sustainability explicitly",
				"Coordinate across partner agencies",
			},
			Priorities: []string{
				"Universal energy access (SDG7)",
				"Climate impact and Paris alignment",
				"Debt sustainability",
				"Sovereign guarantee requirements",
				"Private sector mobilization",
				"Gender and social inclusion",
				"Institutional capacity building",
			},
			TypicalQuestions: []string{
				"How does this contribute to universal access?",
				"What is the climate mitigation impact?",
				"What is the debt sustainability analysis?",
				"Who is guaranteeing the PPAs?",
				"What sovereign exposure is required?",
				"How will private investment be mobilized?",
				"What capacity building is needed?",
				"How are gender considerations incorporated?",
			},
			ConcernTriggers: []domain.ConcernTrigger{
				concern("investment.cumulative.2030", 4000, domain.Above,
					"Large investment requirements of {value} million USD raise debt sustainability questions.",
					"Development partners assess debt sustainability and guarantee exposure."),
				concern("access.electrificationRate.2030", 80, domain.Below,
					"Electrification trajectory of {value}% may fall short of universal access goals.",
					"Universal access is a core development partner priority."),
				concern("investment.sovereignGuaranteeShare", 50, domain.Above,
					"High sovereign guarantee requirements of {value}% create fiscal risk.",
					"Development partners monitor contingent liabilities closely."),
			},
			PositiveIndicators: []domain.PositiveIndicator{
				praise("emissions.reductionPercent2030", 30, domain.Above,
					"Strong emissions reduction of {value}% supports climate finance eligibility."),
				praise("investment.privateSectorShare", 40, domain.Above,
					"Significant private sector mobilization of {value}% reduces public financing burden."),
			},
		},
	}
}
