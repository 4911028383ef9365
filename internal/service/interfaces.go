package service

import (
	"context"
	"io"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/importer"
	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
)

// RevealOptions selects how a stakeholder response is produced. With
// Enhanced unset the plain rule-based response is returned; AI applies the
// enhancer on top of whichever rule-based response was generated.
type RevealOptions struct {
	Enhanced bool
	Context  domain.DevelopmentContext
	Variant  domain.Variant
	AI       bool
}

type DialogueService interface {
	Reveal(ctx context.Context, id domain.StakeholderID, opts RevealOptions) (*domain.StakeholderResponse, error)
	RevealAll(ctx context.Context, opts RevealOptions) ([]domain.StakeholderResponse, error)
	AIStatus(ctx context.Context) intelligence.Status
}

type ScenarioService interface {
	ImportFile(ctx context.Context, path string, csvOpts importer.CSVOptions) (*ImportResult, error)
	ImportJSON(ctx context.Context, r io.Reader) (*ImportResult, error)
	ImportCSV(ctx context.Context, r io.Reader, opts importer.CSVOptions) (*ImportResult, error)
	Active(ctx context.Context) (*ActiveScenario, error)
	List(ctx context.Context) ([]*domain.StoredScenario, error)
	Activate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type PredictionService interface {
	Record(ctx context.Context, id domain.StakeholderID, text string) (*domain.Prediction, error)
	Compare(ctx context.Context, id domain.StakeholderID, opts RevealOptions) (*Comparison, error)
	List(ctx context.Context) ([]*domain.Prediction, error)
}

type ExploreService interface {
	Baseline(ctx context.Context) (domain.AdjustmentState, error)
	Explore(ctx context.Context, base, adjusted domain.AdjustmentState) *ExploreResult
}

type ReportService interface {
	Markdown(ctx context.Context, opts ReportOptions) (string, error)
	HTML(ctx context.Context, opts ReportOptions) (string, error)
}

type PreferencesService interface {
	EnhancedDefaults(ctx context.Context) (EnhancedDefaults, error)
	SetEnhancedDefaults(ctx context.Context, d EnhancedDefaults) error
	ResetEnhancedDefaults(ctx context.Context) error
}

// ResponseEnhancer is the optional AI stage. It never fails; on any problem
// it returns its input.
type ResponseEnhancer interface {
	Enhance(ctx context.Context, resp domain.StakeholderResponse, profile domain.StakeholderProfile, scenario *domain.ScenarioInput, derived *domain.DerivedMetrics) domain.StakeholderResponse
	Status(ctx context.Context) intelligence.Status
}

// EnhancedDefaults are the user's stored context and variant for enhanced
// responses. Empty fields fall back to the config file.
type EnhancedDefaults struct {
	Context domain.DevelopmentContext `json:"context,omitempty"`
	Variant domain.Variant            `json:"variant,omitempty"`
}

// ImportResult is what an import stored.
type ImportResult struct {
	Stored  *domain.StoredScenario
	Derived *domain.DerivedMetrics
}

// ActiveScenario is the active stored scenario with its derived metrics.
type ActiveScenario struct {
	Stored  *domain.StoredScenario
	Derived *domain.DerivedMetrics
}

// Scenario returns the scenario input of the active scenario.
func (a *ActiveScenario) Scenario() *domain.ScenarioInput {
	return &a.Stored.Scenario
}

// Comparison pairs the user's prediction with the revealed response.
type Comparison struct {
	Prediction      *domain.Prediction
	Response        domain.StakeholderResponse
	MatchedConcerns []domain.Concern
	MissedConcerns  []domain.Concern
}

// ExploreResult is the outcome of moving the adjustment sliders.
type ExploreResult struct {
	Base     domain.AdjustmentState
	Adjusted domain.AdjustmentState
	Changes  []domain.SentimentChange
	Impacts  domain.DirectionalImpacts
}

// ReportOptions configures the briefing. Adjusted, when set, adds a
// sentiment section comparing it with the scenario baseline.
type ReportOptions struct {
	Reveal   RevealOptions
	Adjusted *domain.AdjustmentState
}
