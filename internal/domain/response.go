package domain

import "time"

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type GenerationType string

const (
	GenerationRuleBased         GenerationType = "rule-based"
	GenerationEnhancedRuleBased GenerationType = "enhanced-rule-based"
	GenerationAIEnhanced        GenerationType = "ai-enhanced"
)

type Concern struct {
	Text        string   `json:"text"`
	Explanation string   `json:"explanation"`
	Metric      string   `json:"metric"`
	Severity    Severity `json:"severity"`
}

// ResponseMetadata records how a non-plain response was produced.
type ResponseMetadata struct {
	Context                  DevelopmentContext `json:"context,omitempty"`
	Variant                  Variant            `json:"variant,omitempty"`
	InteractionTriggersCount int                `json:"interactionTriggersCount,omitempty"`
	Provider                 string             `json:"provider,omitempty"`
	Model                    string             `json:"model,omitempty"`
}

// StakeholderResponse is a predicted stakeholder reaction to a scenario.
type StakeholderResponse struct {
	StakeholderID    StakeholderID     `json:"stakeholderId"`
	StakeholderName  string            `json:"stakeholderName"`
	InitialReaction  string            `json:"initialReaction"`
	Appreciation     []string          `json:"appreciation"`
	Concerns         []Concern         `json:"concerns"`
	Questions        []string          `json:"questions"`
	EngagementAdvice []string          `json:"engagementAdvice"`
	GeneratedAt      time.Time         `json:"generatedAt"`
	GenerationType   GenerationType    `json:"generationType"`
	Metadata         *ResponseMetadata `json:"metadata,omitempty"`
}

// Clone returns a deep copy so later stages never mutate an earlier result.
func (r StakeholderResponse) Clone() StakeholderResponse {
	out := r
	out.Appreciation = append([]string(nil), r.Appreciation...)
	out.Concerns = append([]Concern(nil), r.Concerns...)
	out.Questions = append([]string(nil), r.Questions...)
	out.EngagementAdvice = append([]string(nil), r.EngagementAdvice...)
	if r.Metadata != nil {
		md := *r.Metadata
		out.Metadata = &md
	}
	return out
}
