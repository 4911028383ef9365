package profiles

import "github.com/alexanderramin/scenariodialogue/internal/domain"

func cond(metric string, threshold float64, dir domain.Direction) domain.MetricCondition {
	return domain.MetricCondition{Metric: metric, Threshold: threshold, Direction: dir}
}

func interactionTriggers() map[domain.StakeholderID][]domain.InteractionTrigger {
	return map[domain.StakeholderID][]domain.InteractionTrigger{
		domain.StakeholderPolicyMakers: {
			{
				ID: "ambitious-but-expensive",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2030", 60, domain.Above),
					cond("investment.cumulative.2030", 5000, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High renewable ambition combined with substantial investment requirements raises affordability and feasibility questions.",
				Explanation:       "Policy makers must balance climate leadership with fiscal constraints and consumer affordability.",
				SuggestedResponse: "We support the renewable ambition, but need a clear financing strategy that doesn't compromise energy access or burden consumers. What instruments can mobilize private capital to reduce fiscal pressure?",
			},
			{
				ID: "jobs-transition-mismatch",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.coal.2030", 50, domain.Below),
					cond("jobs.renewable.2030", 5000, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Rapid coal phase-out without corresponding renewable job creation creates political risks.",
				Explanation:       "Employment is a key political priority. Fossil fuel job losses must be compensated by clean energy job creation.",
				SuggestedResponse: "The coal phase-out pace concerns us politically. Where is the just transition strategy? We need local content requirements and reskilling programs before accelerating thermal retirements.",
			},
			{
				ID: "ndc-achievement-risk",
				Conditions: []domain.MetricCondition{
					cond("emissions.reductionPercent2030", 20, domain.Below),
					cond("supply.capacity.coal.2040", 500, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Modest emissions reduction alongside continued coal expansion jeopardizes NDC compliance and climate commitments.",
				Explanation:       "International climate commitments create reputational and financial risks if not met.",
				SuggestedResponse: "This trajectory puts our NDC at risk. We need clarity on how this aligns with Paris commitments and what it means for climate finance access.",
			},
		},
		domain.StakeholderGridOperators: {
			{
				ID: "intermittency-risk",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 60, domain.Above),
					cond("supply.capacity.battery.2040", 200, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High renewable penetration without adequate storage creates system balancing challenges.",
				Explanation:       "Variable generation requires flexibility resources. Without sufficient battery capacity, curtailment increases and reliability risks emerge.",
				SuggestedResponse: "We support the renewable ambition, but the storage deployment timeline needs acceleration. Consider front-loading battery investments or expanding interconnector capacity for regional balancing.",
			},
			{
				ID: "transmission-bottleneck",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.solarPV.2035", 1000, domain.Above),
					cond("investment.transmission.2035", 500, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Large solar deployment with limited transmission investment risks stranded capacity.",
				Explanation:       "Solar resources are often geographically concentrated. Insufficient grid expansion leads to congestion and curtailment.",
				SuggestedResponse: "The generation buildout is ambitious, but transmission planning appears disconnected. We recommend a coordinated infrastructure roadmap before committing to this solar trajectory.",
			},
			{
				ID: "flexibility-gap",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.coal.retirementRate", 10, domain.Above),
					cond("supply.capacity.battery.CAGR", 15, domain.Below),
					cond("supply.capacity.interconnector.2035", 300, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Rapid thermal retirement without compensating flexibility creates reliability concerns.",
				Explanation:       "Dispatchable capacity provides system inertia and reserves. Retirement pace must align with flexibility resource deployment.",
				SuggestedResponse: "We need a clear flexibility roadmap before accelerating coal retirements. Either battery deployment must increase or interconnector expansion must be prioritized.",
			},
		},
		domain.StakeholderIndustry: {
			{
				ID: "cost-competitiveness-risk",
				Conditions: []domain.MetricCondition{
					cond("investment.cumulative.2030", 5000, domain.Above),
					cond("supply.capacity.battery.2030", 100, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High investment costs without sufficient energy storage could increase tariffs and affect industrial competitiveness.",
				Explanation:       "Industry needs predictable, affordable, and reliable power. High tariffs from expensive transition threaten competitiveness.",
				SuggestedResponse: "We need guarantees that tariff increases will be managed. Consider phased implementation and industrial tariff protections during transition.",
			},
			{
				ID: "supply-chain-opportunity",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.solarPV.2040", 1500, domain.Above),
					cond("supply.capacity.wind.2040", 800, domain.Above),
				},
				Operator:          domain.OperatorOr,
				Kind:              domain.TriggerAppreciation,
				Text:              "Large renewable deployment creates supply chain and manufacturing opportunities if local content policies are implemented.",
				Explanation:       "Significant renewable buildouts can catalyze domestic manufacturing and create high-value jobs.",
				SuggestedResponse: "This renewable trajectory is an opportunity for industrial development. What local content requirements will be mandated? We want to see clear pathways for domestic manufacturing participation.",
			},
			{
				ID: "reliability-concerns",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2030", 50, domain.Above),
					cond("supply.capacity.gas.2030", 200, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High renewable share with limited dispatchable backup raises concerns about supply reliability for industrial processes.",
				Explanation:       "Energy-intensive industries require 24/7 reliable power. VRE growth must be matched with dispatchable capacity or storage.",
				SuggestedResponse: "We support clean energy, but need assurances on power quality and reliability. Our processes cannot tolerate frequent outages or voltage fluctuations.",
			},
		},
		domain.StakeholderPublic: {
			{
				ID: "clean-air-victory",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.coal.2035", 100, domain.Below),
					cond("renewableShare.2035", 60, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerAppreciation,
				Text:              "Rapid coal retirement and renewable growth dramatically improves air quality and public health outcomes.",
				Explanation:       "Coal pollution causes respiratory illness, premature deaths, and healthcare costs. Clean energy transition delivers immediate health benefits.",
				SuggestedResponse: "This is what we've been advocating for! The health benefits from reduced coal pollution will save thousands of lives and reduce healthcare burdens on families.",
			},
			{
				ID: "affordability-threat",
				Conditions: []domain.MetricCondition{
					cond("investment.cumulative.2030", 8000, domain.Above),
					cond("investment.privateSectorShare", 40, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Large public investment could increase electricity tariffs, burdening households.",
				Explanation:       "Consumers are sensitive to electricity price increases, especially low-income households.",
				SuggestedResponse: "We support clean energy, but are worried about affordability. What protections exist for vulnerable households? Will there be lifeline tariffs or subsidy programs?",
			},
			{
				ID: "infrastructure-impacts",
				Conditions: []domain.MetricCondition{
					cond("land.total.2040", 5000, domain.Above),
					cond("supply.capacity.solarPV.2040", 2000, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Large-scale renewable projects require significant land, potentially affecting communities and livelihoods.",
				Explanation:       "Solar and wind farms can displace agricultural land, affect property values, and change community character.",
				SuggestedResponse: "We need to understand where these projects will be located. Have communities been consulted? What compensation and benefit-sharing arrangements are planned?",
			},
		},
		domain.StakeholderCSOsNGOs: {
			{
				ID: "stranded-workers",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.coal.2030", 50, domain.Below),
					cond("jobs.fossilFuel.transition.support", 1, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Rapid coal phase-out without just transition provisions creates social risks.",
				Explanation:       "Workers and communities dependent on fossil fuel industries need retraining, social protection, and economic diversification support.",
				SuggestedResponse: "We support the coal phase-out timeline, but this plan lacks a credible just transition framework. What provisions exist for affected workers and communities?",
			},
			{
				ID: "false-solution-risk",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.gas.2040", 500, domain.Above),
					cond("emissions.reductionPercent2050", 80, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Significant gas expansion alongside weak 2050 targets suggests lock-in risk.",
				Explanation:       "New gas infrastructure has 30-40 year lifetimes. Building now risks stranded assets or continued emissions.",
				SuggestedResponse: "The gas buildout concerns us. What is the decommissioning timeline for this infrastructure, and how does it align with Paris-compatible pathways?",
			},
			{
				ID: "climate-leadership",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 80, domain.Above),
					cond("emissions.reductionPercent2040", 50, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerAppreciation,
				Text:              "This scenario demonstrates strong climate leadership and positions the country as a regional clean energy champion.",
				Explanation:       "Ambitious renewable targets and emissions reductions align with 1.5°C pathways and unlock international support.",
				SuggestedResponse: "This is the kind of climate ambition we need! This plan could position the country as a regional leader and unlock substantial climate finance. We fully support this trajectory.",
			},
		},
		domain.StakeholderScientific: {
			{
				ID: "model-validation-needed",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 75, domain.Above),
					cond("supply.capacity.battery.2040", 200, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "This renewable penetration level exceeds typical flexibility thresholds. Detailed dispatch modeling needed to validate feasibility.",
				Explanation:       "High VRE shares without sufficient storage may encounter stability limits not captured in planning models.",
				SuggestedResponse: "We recommend detailed power system simulations to validate this renewable trajectory. Our institute can support hourly dispatch modeling and grid stability analysis.",
			},
			{
				ID: "research-collaboration-opportunity",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.wind.2040", 1000, domain.Above),
					cond("supply.capacity.solarPV.2040", 2000, domain.Above),
				},
				Operator:          domain.OperatorOr,
				Kind:              domain.TriggerAppreciation,
				Text:              "Large-scale renewable deployment creates valuable research opportunities on grid integration, forecasting, and optimization.",
				Explanation:       "Major transitions generate data and insights valuable for academic research and regional knowledge sharing.",
				SuggestedResponse: "This transition presents significant research opportunities. We propose a collaborative monitoring program to track integration challenges and share lessons regionally.",
			},
			{
				ID: "paris-alignment-check",
				Conditions: []domain.MetricCondition{
					cond("emissions.reductionPercent2040", 40, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Emissions trajectory may be insufficient for 1.5°C alignment. Carbon budget analysis recommended.",
				Explanation:       "Scientific consensus requires steep near-term emissions reductions for Paris alignment.",
				SuggestedResponse: "Our modeling suggests this trajectory exceeds safe carbon budgets. We recommend accelerating the transition timeline or strengthening 2030 milestones.",
			},
		},
		domain.StakeholderFinance: {
			{
				ID: "execution-risk",
				Conditions: []domain.MetricCondition{
					cond("investment.cumulative.2030", 5000, domain.Above),
					cond("investment.yearOverYearGrowth", 50, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Rapid investment scaling creates execution and absorption capacity risks.",
				Explanation:       "Very fast investment ramps can overwhelm institutional capacity, creating project delays and cost overruns.",
				SuggestedResponse: "This investment timeline is aggressive. What evidence exists that the enabling environment (permitting, grid access, skilled labor) can absorb this pace? We need confidence in execution capacity before committing capital.",
			},
			{
				ID: "policy-stability-concern",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2030", 50, domain.Above),
					cond("investment.privateSectorShare", 60, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High private sector reliance for ambitious targets requires stable, long-term policy frameworks.",
				Explanation:       "Private capital requires regulatory certainty and credible offtake agreements.",
				SuggestedResponse: "We can mobilize this capital if the policy framework is credible. Are long-term PPAs available? What revenue guarantees exist? Currency risk hedging?",
			},
			{
				ID: "green-finance-opportunity",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 70, domain.Above),
					cond("emissions.reductionPercent2040", 50, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerAppreciation,
				Text:              "Strong decarbonization trajectory unlocks green bonds, climate funds, and concessional finance opportunities.",
				Explanation:       "Ambitious climate-aligned pathways attract lower-cost capital from ESG-focused investors and climate funds.",
				SuggestedResponse: "This trajectory qualifies for substantial green finance. We see opportunities for green bond issuance and blended finance structures. Let's discuss innovative financial instruments.",
			},
		},
		domain.StakeholderRegionalBodies: {
			{
				ID: "regional-trade-opportunity",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 70, domain.Above),
					cond("supply.capacity.hydro.total", 500, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerAppreciation,
				Text:              "High renewable share with strong hydro resources creates valuable cross-border trading opportunities.",
				Explanation:       "Countries with flexible hydro can provide balancing services to neighbors with high VRE, creating mutual benefits.",
				SuggestedResponse: "This energy mix positions you as a potential regional balancing hub. We should discuss interconnector expansion and wheeling agreements to enable cross-border trade.",
			},
			{
				ID: "interconnection-mismatch",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 65, domain.Above),
					cond("supply.capacity.interconnector.2040", 200, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High renewable ambition without corresponding interconnection investment limits regional integration benefits.",
				Explanation:       "Interconnectors enable resource sharing and system cost reduction but require coordinated planning.",
				SuggestedResponse: "Your renewable ambition aligns with the regional master plan, but interconnection investment appears insufficient. We recommend accelerating cross-border transmission projects.",
			},
			{
				ID: "master-plan-alignment",
				Conditions: []domain.MetricCondition{
					cond("supply.capacity.total.2040", 3000, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Large-scale generation expansion should be coordinated with regional generation planning to avoid overcapacity.",
				Explanation:       "Uncoordinated national plans can lead to regional oversupply and stranded assets.",
				SuggestedResponse: "This expansion is substantial. Let's ensure alignment with the regional generation master plan to optimize investments across borders.",
			},
		},
		domain.StakeholderDevelopmentPartners: {
			{
				ID: "debt-sustainability-risk",
				Conditions: []domain.MetricCondition{
					cond("investment.cumulative.2030", 5000, domain.Above),
					cond("investment.sovereignGuaranteeShare", 40, domain.Above),
					cond("investment.privateSectorShare", 30, domain.Below),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "Large investment needs with high sovereign exposure and limited private participation raises debt sustainability concerns.",
				Explanation:       "Development partners assess fiscal sustainability and contingent liabilities. Heavy reliance on sovereign guarantees constrains future borrowing capacity.",
				SuggestedResponse: "We need to see a credible private sector mobilization strategy before committing concessional resources at this scale. Consider risk mitigation instruments to reduce sovereign exposure.",
			},
			{
				ID: "access-climate-tension",
				Conditions: []domain.MetricCondition{
					cond("access.electrificationRate.2030", 90, domain.Below),
					cond("renewableShare.2030", 70, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerConcern,
				Text:              "High renewable ambition alongside access gaps suggests potential trade-off in resource allocation.",
				Explanation:       "Universal access remains the primary SDG7 goal. Climate ambition should complement, not compete with, access investments.",
				SuggestedResponse: "We appreciate the climate ambition, but need to understand how this aligns with universal access timelines. Are resources being allocated efficiently across both objectives?",
			},
			{
				ID: "climate-finance-opportunity",
				Conditions: []domain.MetricCondition{
					cond("renewableShare.2040", 75, domain.Above),
					cond("access.electrificationRate.2030", 95, domain.Above),
				},
				Operator:          domain.OperatorAnd,
				Kind:              domain.TriggerAppreciation,
				Text:              "Strong performance on both climate and access objectives unlocks significant concessional finance and results-based payments.",
				Explanation:       "Scenarios that achieve both SDG7 and Paris alignment attract substantial development partner support.",
				SuggestedResponse: "This scenario achieves our dual priorities excellently. We can mobilize significant concessional resources, including climate funds and results-based finance. Let's discuss a coordinated support package.",
			},
		},
	}
}
