package domain

// StakeholderID identifies one of the nine stakeholder archetypes.
type StakeholderID string

const (
	StakeholderPolicyMakers        StakeholderID = "policy-makers"
	StakeholderGridOperators       StakeholderID = "grid-operators"
	StakeholderIndustry            StakeholderID = "industry"
	StakeholderPublic              StakeholderID = "public"
	StakeholderCSOsNGOs            StakeholderID = "csos-ngos"
	StakeholderScientific          StakeholderID = "scientific"
	StakeholderFinance             StakeholderID = "finance"
	StakeholderRegionalBodies      StakeholderID = "regional-bodies"
	StakeholderDevelopmentPartners StakeholderID = "development-partners"
)

// StakeholderOrder is the canonical ordering used by every listing.
var StakeholderOrder = []StakeholderID{
	StakeholderPolicyMakers,
	StakeholderGridOperators,
	StakeholderIndustry,
	StakeholderPublic,
	StakeholderCSOsNGOs,
	StakeholderScientific,
	StakeholderFinance,
	StakeholderRegionalBodies,
	StakeholderDevelopmentPartners,
}

// ValidStakeholderIDs is the closed set of accepted stakeholder id strings.
var ValidStakeholderIDs = map[string]bool{
	"policy-makers": true, "grid-operators": true, "industry": true,
	"public": true, "csos-ngos": true, "scientific": true, "finance": true,
	"regional-bodies": true, "development-partners": true,
}

type Direction string

const (
	Above Direction = "above"
	Below Direction = "below"
)

// Exceeds reports whether value crosses threshold in direction d.
func (d Direction) Exceeds(value, threshold float64) bool {
	if d == Above {
		return value > threshold
	}
	return value < threshold
}

// ConcernTrigger fires a concern when Metric crosses Threshold.
// Text carries a single {value} placeholder.
type ConcernTrigger struct {
	Metric      string    `json:"metric"`
	Threshold   float64   `json:"threshold"`
	Direction   Direction `json:"direction"`
	Text        string    `json:"concernText"`
	Explanation string    `json:"explanation,omitempty"`
}

// PositiveIndicator fires a praise when Metric crosses Threshold.
type PositiveIndicator struct {
	Metric    string    `json:"metric"`
	Threshold float64   `json:"threshold"`
	Direction Direction `json:"direction"`
	Text      string    `json:"praiseText"`
}

// ResponseTemplate is a canned response selected by a named condition.
type ResponseTemplate struct {
	Condition          string   `json:"condition"`
	InitialReaction    string   `json:"initialReaction"`
	AppreciationPoints []string `json:"appreciationPoints"`
	ConcernPoints      []string `json:"concernPoints"`
	QuestionsToAsk     []string `json:"questionsToAsk"`
}

// StakeholderProfile is static per-archetype configuration.
type StakeholderProfile struct {
	ID                 StakeholderID       `json:"id"`
	Name               string              `json:"name"`
	Color              string              `json:"color"`
	Description        string              `json:"description"`
	WhyEngage          string              `json:"whyEngage"`
	BenefitForThem     string              `json:"benefitForThem"`
	Challenges         []string            `json:"challenges"`
	GoodPractices      []string            `json:"goodPractices"`
	Priorities         []string            `json:"priorities"`
	TypicalQuestions   []string            `json:"typicalQuestions"`
	ConcernTriggers    []ConcernTrigger    `json:"concernTriggers"`
	PositiveIndicators []PositiveIndicator `json:"positiveIndicators"`
	ResponseTemplates  []ResponseTemplate  `json:"responseTemplates"`
}
