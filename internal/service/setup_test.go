package service

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/repository"
	"github.com/alexanderramin/scenariodialogue/internal/rules"
	"github.com/alexanderramin/scenariodialogue/internal/sentiment"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	catalog     *profiles.Catalog
	scenarios   ScenarioService
	dialogue    DialogueService
	predictions PredictionService
	explore     ExploreService
	reports     ReportService
	observer    *recordingObserver
}

func newTestServices(t *testing.T, enhancer ResponseEnhancer) *testServices {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	catalog := profiles.NewCatalog()
	obs := &recordingObserver{}

	scenarios := NewScenarioService(repository.NewSQLiteScenarioRepo(database), uow, obs)
	dialogue := NewDialogueService(catalog, rules.NewEngine(catalog), scenarios, enhancer, obs)
	explore := NewExploreService(scenarios, sentiment.NewEngine(catalog, sentiment.DefaultThresholds()), obs)
	return &testServices{
		catalog:     catalog,
		scenarios:   scenarios,
		dialogue:    dialogue,
		predictions: NewPredictionService(catalog, repository.NewSQLitePredictionRepo(database), scenarios, dialogue, obs),
		explore:     explore,
		reports:     NewReportService(scenarios, dialogue, explore, obs),
		observer:    obs,
	}
}

func importTestScenario(t *testing.T, svc ScenarioService, opts ...testutil.ScenarioOption) *ImportResult {
	t.Helper()
	data, err := json.Marshal(testutil.NewTestScenario(opts...))
	require.NoError(t, err)
	res, err := svc.ImportJSON(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	return res
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) byName(name string) []UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range o.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// fakeEnhancer marks every response ai-enhanced and counts calls.
type fakeEnhancer struct {
	calls atomic.Int32
}

func (f *fakeEnhancer) Enhance(_ context.Context, resp domain.StakeholderResponse, _ domain.StakeholderProfile, _ *domain.ScenarioInput, _ *domain.DerivedMetrics) domain.StakeholderResponse {
	f.calls.Add(1)
	out := resp.Clone()
	out.GenerationType = domain.GenerationAIEnhanced
	out.InitialReaction = "AI: " + resp.InitialReaction
	return out
}

func (f *fakeEnhancer) Status(context.Context) intelligence.Status {
	return intelligence.Status{Available: true, Method: intelligence.MethodOllama, Model: "fake"}
}
