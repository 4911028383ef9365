package rules

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

const (
	maxQuestions         = 5
	maxAdvice            = 3
	concernsForQuestions = 2
)

// Tone thresholds on appreciation / (concerns + appreciation + 1).
const (
	positiveToneRatio = 0.7
	mixedToneRatio    = 0.4
)

const (
	mixedReaction   = "This scenario has both strengths and areas that warrant further discussion from our perspective."
	concernReaction = "We have some important questions and concerns about this scenario that we would like to discuss."
)

// questionKeywords maps a metric-name fragment to words that mark a typical
// question as related. Order is the match priority.
var questionKeywords = []struct {
	fragment string
	keywords []string
}{
	{"investment", []string{"financing", "investment", "cost", "funding"}},
	{"emissions", []string{"emissions", "climate", "carbon", "CO2"}},
	{"jobs", []string{"jobs", "employment", "workforce", "labor"}},
	{"renewableShare", []string{"renewable", "RE", "VRE", "solar", "wind"}},
	{"battery", []string{"storage", "battery", "flexibility", "backup"}},
	{"landUse", []string{"land", "space", "area", "footprint"}},
	{"capacity", []string{"capacity", "MW", "installed"}},
	{"generation", []string{"generation", "GWh", "production", "output"}},
}

var keywordPatterns = compileKeywords()

// Short keywords ("RE", "MW") only match as whole words, otherwise "RE"
// would match nearly every question.
func compileKeywords() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp)
	for _, qk := range questionKeywords {
		for _, kw := range qk.keywords {
			expr := `(?i)` + regexp.QuoteMeta(kw)
			if len(kw) <= 3 {
				expr = `(?i)\b` + regexp.QuoteMeta(kw) + `\b`
			}
			out[kw] = regexp.MustCompile(expr)
		}
	}
	return out
}

// Signals are the evaluated inputs of a response.
type Signals struct {
	Concerns     []domain.Concern
	Appreciation []string
	Template     *domain.ResponseTemplate
}

// Compose assembles a rule-based response for profile from evaluated signals.
func Compose(profile domain.StakeholderProfile, sig Signals, at time.Time) domain.StakeholderResponse {
	concerns := sig.Concerns
	if concerns == nil {
		concerns = []domain.Concern{}
	}
	appreciation := sig.Appreciation
	if appreciation == nil {
		appreciation = []string{}
	}
	return domain.StakeholderResponse{
		StakeholderID:    profile.ID,
		StakeholderName:  profile.Name,
		InitialReaction:  InitialReaction(profile.Name, len(concerns), len(appreciation), sig.Template),
		Appreciation:     appreciation,
		Concerns:         concerns,
		Questions:        SelectQuestions(profile.TypicalQuestions, concerns),
		EngagementAdvice: firstN(profile.GoodPractices, maxAdvice),
		GeneratedAt:      at,
		GenerationType:   domain.GenerationRuleBased,
	}
}

// InitialReaction uses the template's reaction verbatim when one matched,
// otherwise picks a tone from the balance of praise and concern.
func InitialReaction(name string, concernCount, appreciationCount int, tmpl *domain.ResponseTemplate) string {
	if tmpl != nil {
		return tmpl.InitialReaction
	}
	ratio := float64(appreciationCount) / float64(concernCount+appreciationCount+1)
	switch {
	case ratio > positiveToneRatio:
		return fmt.Sprintf("As a %s representative, I see several positive aspects in this scenario that align with our priorities.", name)
	case ratio > mixedToneRatio:
		return mixedReaction
	default:
		return concernReaction
	}
}

// SelectQuestions picks at most five questions: one related question for
// each of the first two concerns, then the typical questions in order.
func SelectQuestions(typical []string, concerns []domain.Concern) []string {
	selected := make([]string, 0, maxQuestions)
	seen := make(map[string]bool)
	add := func(q string) {
		if len(selected) < maxQuestions && !seen[q] {
			seen[q] = true
			selected = append(selected, q)
		}
	}

	for _, c := range firstN(concerns, concernsForQuestions) {
		if q, ok := relatedQuestion(c.Metric, typical, seen); ok {
			add(q)
		}
	}
	for _, q := range typical {
		add(q)
	}
	return selected
}

func relatedQuestion(metric string, questions []string, used map[string]bool) (string, bool) {
	for _, qk := range questionKeywords {
		if !strings.Contains(metric, qk.fragment) {
			continue
		}
		for _, q := range questions {
			if used[q] {
				continue
			}
			for _, kw := range qk.keywords {
				if keywordPatterns[kw].MatchString(q) {
					return q, true
				}
			}
		}
	}
	return "", false
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return append([]T{}, items...)
}
