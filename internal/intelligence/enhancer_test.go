package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/llm"
	"github.com/alexanderramin/scenariodialogue/internal/profiles"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseResponse() domain.StakeholderResponse {
	return domain.StakeholderResponse{
		StakeholderID:   domain.StakeholderPolicyMakers,
		StakeholderName: "Policy Makers",
		InitialReaction: "This scenario presents both opportunities and challenges.",
		Appreciation:    []string{"Strong renewable growth."},
		Concerns: []domain.Concern{
			{Text: "Investment is substantial.", Explanation: "Large capital needs.", Metric: "investment.cumulative.2050", Severity: domain.SeverityHigh},
		},
		Questions:        []string{"How will this be financed?"},
		EngagementAdvice: []string{"Lead with economics."},
		GeneratedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		GenerationType:   domain.GenerationRuleBased,
	}
}

func policyProfile(t *testing.T) domain.StakeholderProfile {
	t.Helper()
	p, ok := profiles.NewCatalog().Get(domain.StakeholderPolicyMakers)
	require.True(t, ok)
	return p
}

// ollamaServer answers /api/generate with text after delay, and /api/tags
// with a gemma2 model.
func ollamaServer(t *testing.T, text string, delay time.Duration) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.Write([]byte(`{"models":[{"name":"gemma2:2b"}]}`))
			return
		}
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"model": "gemma2:2b", "response": text})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func ollamaTier(endpoint string, timeout time.Duration) Tier {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 5000
	return Tier{Method: MethodOllama, Client: llm.NewOllamaClient(cfg, llm.NoopObserver{}), Timeout: timeout}
}

type fakeMessager struct {
	text string
}

func (m *fakeMessager) New(context.Context, anthropic.MessageNewParams, ...option.RequestOption) (*anthropic.Message, error) {
	return &anthropic.Message{Content: []anthropic.ContentBlockUnion{{Type: "text", Text: m.text}}}, nil
}

func cloudTier(text string) Tier {
	cfg := llm.DefaultConfig()
	cfg.Cloud.Enabled = true
	cfg.Cloud.APIKey = "test-key"
	return Tier{Method: MethodCloud, Client: llm.NewAnthropicClient(cfg, &fakeMessager{text: text}, nil), Timeout: time.Second}
}

type panicClient struct{}

func (panicClient) Generate(context.Context, llm.GenerateRequest) (*llm.GenerateResponse, error) {
	panic("boom")
}
func (panicClient) Available(context.Context) bool { return true }
func (panicClient) Model() string                  { return "panic" }

func TestEnhancer_Enhance_JSONMerge(t *testing.T) {
	reply := `{"initialReaction":"We are encouraged, with caveats.","concerns":["The investment bill worries us.","extra concern"],"questions":["a","b","c","d","e","f"]}`
	srv := ollamaServer(t, reply, 0)
	e := NewEnhancer(ollamaTier(srv.URL, time.Second))

	base := baseResponse()
	got := e.Enhance(context.Background(), base, policyProfile(t), testutil.NewTestScenario(), testutil.NewTestDerived())

	assert.Equal(t, domain.GenerationAIEnhanced, got.GenerationType)
	assert.Equal(t, "We are encouraged, with caveats.", got.InitialReaction)
	require.Len(t, got.Concerns, 1)
	assert.Equal(t, "The investment bill worries us.", got.Concerns[0].Text)
	assert.Equal(t, "investment.cumulative.2050", got.Concerns[0].Metric)
	assert.Equal(t, domain.SeverityHigh, got.Concerns[0].Severity)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got.Questions)
	assert.Equal(t, base.Appreciation, got.Appreciation)
	require.NotNil(t, got.Metadata)
	assert.Equal(t, "ollama", got.Metadata.Provider)
	assert.Equal(t, "gemma2:2b", got.Metadata.Model)

	assert.Equal(t, baseResponse(), base, "input must not be mutated")
}

func TestEnhancer_Enhance_PlainTextFallback(t *testing.T) {
	long := strings.Repeat("Energy access matters. ", 20)
	srv := ollamaServer(t, long, 0)
	e := NewEnhancer(ollamaTier(srv.URL, time.Second))

	got := e.Enhance(context.Background(), baseResponse(), policyProfile(t), testutil.NewTestScenario(), testutil.NewTestDerived())

	assert.Equal(t, domain.GenerationAIEnhanced, got.GenerationType)
	assert.LessOrEqual(t, len([]rune(got.InitialReaction)), 300)
	assert.True(t, strings.HasPrefix(got.InitialReaction, "Energy access matters."))
	assert.Equal(t, baseResponse().Concerns, got.Concerns)
}

func TestEnhancer_Enhance_TimeoutReturnsInput(t *testing.T) {
	srv := ollamaServer(t, `{"initialReaction":"late"}`, 2*time.Second)
	e := NewEnhancer(ollamaTier(srv.URL, 50*time.Millisecond))

	start := time.Now()
	got := e.Enhance(context.Background(), baseResponse(), policyProfile(t), testutil.NewTestScenario(), testutil.NewTestDerived())

	assert.Equal(t, baseResponse(), got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEnhancer_Enhance_FallsBackToCloud(t *testing.T) {
	srv := ollamaServer(t, "", 2*time.Second)
	e := NewEnhancer(ollamaTier(srv.URL, 50*time.Millisecond), cloudTier(`{"initialReaction":"From the cloud."}`))

	got := e.Enhance(context.Background(), baseResponse(), policyProfile(t), testutil.NewTestScenario(), testutil.NewTestDerived())

	assert.Equal(t, "From the cloud.", got.InitialReaction)
	require.NotNil(t, got.Metadata)
	assert.Equal(t, "cloud", got.Metadata.Provider)
}

func TestEnhancer_Enhance_EmptyReplyTriesNextTier(t *testing.T) {
	srv := ollamaServer(t, "   ", 0)
	e := NewEnhancer(ollamaTier(srv.URL, time.Second), cloudTier("Plain cloud reaction."))

	got := e.Enhance(context.Background(), baseResponse(), policyProfile(t), nil, nil)

	assert.Equal(t, "Plain cloud reaction.", got.InitialReaction)
}

func TestEnhancer_Enhance_PanicReturnsInput(t *testing.T) {
	e := NewEnhancer(Tier{Method: MethodOllama, Client: panicClient{}})

	got := e.Enhance(context.Background(), baseResponse(), policyProfile(t), nil, nil)
	assert.Equal(t, baseResponse(), got)
}

func TestEnhancer_Enhance_NoTiers(t *testing.T) {
	var nilEnhancer *Enhancer
	assert.Equal(t, baseResponse(), nilEnhancer.Enhance(context.Background(), baseResponse(), domain.StakeholderProfile{}, nil, nil))
	assert.Equal(t, baseResponse(), NewEnhancer(Tier{Method: MethodCloud}).Enhance(context.Background(), baseResponse(), domain.StakeholderProfile{}, nil, nil))
}

func TestEnhancer_Status(t *testing.T) {
	srv := ollamaServer(t, "", 0)

	st := NewEnhancer(ollamaTier(srv.URL, time.Second), cloudTier("x")).Status(context.Background())
	assert.Equal(t, Status{Available: true, Method: MethodOllama, Model: "gemma2:2b"}, st)

	st = NewEnhancer(ollamaTier("http://127.0.0.1:1", time.Second), cloudTier("x")).Status(context.Background())
	assert.Equal(t, MethodCloud, st.Method)
	assert.Equal(t, "claude-sonnet-4-20250514", st.Model)

	st = NewEnhancer().Status(context.Background())
	assert.Equal(t, Status{Available: false, Method: MethodNone}, st)
}

func TestSystemPrompt_IncludesScenarioFigures(t *testing.T) {
	p := systemPrompt(policyProfile(t), testutil.NewTestScenario(), testutil.NewTestDerived())

	assert.Contains(t, p, "Policy Makers")
	assert.Contains(t, p, "Country: Testland")
	assert.Contains(t, p, "Renewable share 2030: 45%")
	assert.Contains(t, p, "Estimated jobs (2030): 1,500")
	assert.Contains(t, p, "Emissions reduction: 75%")
}

func TestSystemPrompt_MissingData(t *testing.T) {
	p := systemPrompt(domain.StakeholderProfile{Name: "Public"}, nil, nil)
	assert.Contains(t, p, "Renewable share 2030: N/A")
	assert.Contains(t, p, "Emissions reduction: N/A")
}
