package domain

type DevelopmentContext string

const (
	ContextLeastDeveloped DevelopmentContext = "least-developed"
	ContextEmerging       DevelopmentContext = "emerging"
	ContextDeveloped      DevelopmentContext = "developed"
)

var ValidContexts = map[string]bool{
	"least-developed": true, "emerging": true, "developed": true,
}

type Variant string

const (
	VariantConservative Variant = "conservative"
	VariantProgressive  Variant = "progressive"
	VariantPragmatic    Variant = "pragmatic"
)

var ValidVariants = map[string]bool{
	"conservative": true, "progressive": true, "pragmatic": true,
}

type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

type TriggerKind string

const (
	TriggerConcern      TriggerKind = "concern"
	TriggerAppreciation TriggerKind = "appreciation"
)

type MetricCondition struct {
	Metric    string
	Threshold float64
	Direction Direction
}

// InteractionTrigger fires on a combination of metric conditions.
type InteractionTrigger struct {
	ID                string
	Conditions        []MetricCondition
	Operator          Operator
	Kind              TriggerKind
	Text              string
	Explanation       string
	SuggestedResponse string
}

// ThresholdModifier scales the threshold of any condition on Metric.
type ThresholdModifier struct {
	Metric     string
	Multiplier float64
}

type ContextProfile struct {
	ID          DevelopmentContext
	Name        string
	Description string
	Modifiers   []ThresholdModifier
}

type VariantProfile struct {
	Variant     Variant
	Description string
	Modifiers   []ThresholdModifier
	Framing     string
}
