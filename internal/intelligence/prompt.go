package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
)

const enhanceRules = `TASK:
Rewrite the stakeholder response below so it reads naturally and sounds like this stakeholder, keeping every key point.

RULES:
1. Keep the same structure: initialReaction, appreciation, concerns, questions, engagementAdvice.
2. Preserve every specific concern and appreciation.
3. Do not add new technical claims or calculations.
4. Do not contradict the base response.
5. Professional but accessible tone, at most 200 words in total.
6. Reply with a single JSON object using the same keys as the base response. Concerns may be plain strings.`

// systemPrompt frames the model as the stakeholder and gives it the headline
// figures of the scenario.
func systemPrompt(p domain.StakeholderProfile, s *domain.ScenarioInput, d *domain.DerivedMetrics) string {
	r := metrics.NewResolver(s, d)
	figure := func(path, suffix string) string {
		v, ok := r.Lookup(path)
		if !ok {
			return "N/A"
		}
		return metrics.FormatValue(v) + suffix
	}

	var country, name string
	if s != nil {
		country, name = s.Metadata.Country, s.Metadata.ScenarioName
	}
	reduction := "N/A"
	if s != nil {
		if last, ok := s.FinalMilestone(); ok {
			reduction = figure(fmt.Sprintf("emissions.reductionPercent.%d", last.Year), "%")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are simulating the perspective of a %s stakeholder reviewing an energy scenario.\n\n", p.Name)
	b.WriteString("STAKEHOLDER PROFILE:\n")
	fmt.Fprintf(&b, "- Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Primary concerns: %s\n", strings.Join(p.Priorities, ", "))
	fmt.Fprintf(&b, "- Questions they typically ask: %s\n\n", strings.Join(p.TypicalQuestions, "; "))
	b.WriteString("SCENARIO CONTEXT:\n")
	fmt.Fprintf(&b, "- Country: %s\n", country)
	fmt.Fprintf(&b, "- Scenario: %s\n", name)
	fmt.Fprintf(&b, "- Renewable share 2030: %s\n", figure("renewableShare.2030", "%"))
	fmt.Fprintf(&b, "- Renewable share 2040: %s\n", figure("renewableShare.2040", "%"))
	fmt.Fprintf(&b, "- Estimated jobs (2030): %s\n", figure("jobs.total.2030", ""))
	fmt.Fprintf(&b, "- Emissions reduction: %s\n\n", reduction)
	b.WriteString(enhanceRules)
	return b.String()
}

// userPrompt carries the base response as indented JSON.
func userPrompt(resp domain.StakeholderResponse) (string, error) {
	body := struct {
		InitialReaction  string           `json:"initialReaction"`
		Appreciation     []string         `json:"appreciation"`
		Concerns         []domain.Concern `json:"concerns"`
		Questions        []string         `json:"questions"`
		EngagementAdvice []string         `json:"engagementAdvice"`
	}{resp.InitialReaction, resp.Appreciation, resp.Concerns, resp.Questions, resp.EngagementAdvice}

	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding base response: %w", err)
	}
	return "BASE RESPONSE TO ENHANCE:\n" + string(data) + "\n\nENHANCED VERSION (same JSON keys, more natural language):", nil
}
