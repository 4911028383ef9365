// Package intelligence layers optional language-model rewriting on top of the
// deterministic stakeholder responses. Every failure path returns the
// deterministic response unchanged.
package intelligence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/llm"
)

// Method names the tier that served an enhancement.
type Method string

const (
	MethodOllama Method = "ollama"
	MethodCloud  Method = "cloud"
	MethodNone   Method = "none"
)

const (
	maxPlainReaction = 300
	maxQuestions     = 5
	maxAdvice        = 3
)

// Tier is one enhancement backend, tried in order.
type Tier struct {
	Method  Method
	Client  llm.LLMClient
	Timeout time.Duration
}

// Status describes the first usable tier.
type Status struct {
	Available bool   `json:"available"`
	Method    Method `json:"method"`
	Model     string `json:"model,omitempty"`
}

// Enhancer rewrites responses through the first tier that answers.
type Enhancer struct {
	tiers []Tier
}

// NewEnhancer builds an enhancer over tiers, skipping any without a client.
func NewEnhancer(tiers ...Tier) *Enhancer {
	e := &Enhancer{}
	for _, t := range tiers {
		if t.Client != nil {
			e.tiers = append(e.tiers, t)
		}
	}
	return e
}

// Enhance returns resp rewritten by the first successful tier with
// generationType ai-enhanced, or resp itself when every tier fails, times
// out or panics.
func (e *Enhancer) Enhance(ctx context.Context, resp domain.StakeholderResponse, profile domain.StakeholderProfile, scenario *domain.ScenarioInput, derived *domain.DerivedMetrics) (out domain.StakeholderResponse) {
	out = resp
	if e == nil || len(e.tiers) == 0 {
		return out
	}
	defer func() {
		if recover() != nil {
			out = resp
		}
	}()

	user, err := userPrompt(resp)
	if err != nil {
		return resp
	}
	req := llm.GenerateRequest{
		Task:         llm.TaskEnhanceResponse,
		SystemPrompt: systemPrompt(profile, scenario, derived),
		UserPrompt:   user,
	}

	for _, tier := range e.tiers {
		if enhanced, ok := e.try(ctx, tier, req, resp); ok {
			return enhanced
		}
		if ctx.Err() != nil {
			break
		}
	}
	return resp
}

func (e *Enhancer) try(ctx context.Context, tier Tier, req llm.GenerateRequest, base domain.StakeholderResponse) (domain.StakeholderResponse, bool) {
	if tier.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, tier.Timeout)
		defer cancel()
	}
	gen, err := tier.Client.Generate(ctx, req)
	if err != nil || gen == nil {
		return base, false
	}
	merged, ok := merge(base, gen.Text)
	if !ok {
		return base, false
	}
	merged.GenerationType = domain.GenerationAIEnhanced
	if merged.Metadata == nil {
		merged.Metadata = &domain.ResponseMetadata{}
	}
	merged.Metadata.Provider = string(tier.Method)
	merged.Metadata.Model = tier.Client.Model()
	return merged, true
}

// Status reports the first tier whose backend is reachable.
func (e *Enhancer) Status(ctx context.Context) Status {
	if e != nil {
		for _, t := range e.tiers {
			if t.Client.Available(ctx) {
				return Status{Available: true, Method: t.Method, Model: t.Client.Model()}
			}
		}
	}
	return Status{Available: false, Method: MethodNone}
}

// aiResponse is the shape asked of the model. Every field is optional.
type aiResponse struct {
	InitialReaction  string      `json:"initialReaction"`
	Appreciation     []string    `json:"appreciation"`
	Concerns         []aiConcern `json:"concerns"`
	Questions        []string    `json:"questions"`
	EngagementAdvice []string    `json:"engagementAdvice"`
}

func (a aiResponse) empty() bool {
	return strings.TrimSpace(a.InitialReaction) == "" && len(a.Appreciation) == 0 &&
		len(a.Concerns) == 0 && len(a.Questions) == 0 && len(a.EngagementAdvice) == 0
}

// aiConcern accepts either a bare string or an object with a text field.
type aiConcern struct {
	Text        string `json:"text"`
	Explanation string `json:"explanation"`
}

func (c *aiConcern) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.Text)
	}
	type plain aiConcern
	return json.Unmarshal(data, (*plain)(c))
}

var errEmptyEnhancement = errors.New("no usable fields")

// merge folds model output into base. JSON output overrides the fields it
// sets; concerns are rewritten in place so their metric and severity
// survive, and extra concerns are dropped. Anything else replaces the
// initial reaction, truncated to 300 characters.
func merge(base domain.StakeholderResponse, text string) (domain.StakeholderResponse, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return base, false
	}
	out := base.Clone()

	if llm.ContainsJSONObject(text) {
		parsed, err := llm.ExtractJSON(text, func(a aiResponse) error {
			if a.empty() {
				return errEmptyEnhancement
			}
			return nil
		})
		if err == nil {
			applyJSON(&out, parsed)
			return out, true
		}
	}

	out.InitialReaction = truncate(text, maxPlainReaction)
	return out, true
}

func applyJSON(out *domain.StakeholderResponse, a aiResponse) {
	if r := strings.TrimSpace(a.InitialReaction); r != "" {
		out.InitialReaction = r
	}
	if len(a.Appreciation) > 0 {
		out.Appreciation = a.Appreciation
	}
	for i := 0; i < len(a.Concerns) && i < len(out.Concerns); i++ {
		if t := strings.TrimSpace(a.Concerns[i].Text); t != "" {
			out.Concerns[i].Text = t
		}
		if x := strings.TrimSpace(a.Concerns[i].Explanation); x != "" {
			out.Concerns[i].Explanation = x
		}
	}
	if len(a.Questions) > 0 {
		out.Questions = capped(a.Questions, maxQuestions)
	}
	if len(a.EngagementAdvice) > 0 {
		out.EngagementAdvice = capped(a.EngagementAdvice, maxAdvice)
	}
}

func capped(s []string, n int) []string {
	if len(s) > n {
		s = s[:n]
	}
	return s
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}
