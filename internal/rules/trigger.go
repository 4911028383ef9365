package rules

import (
	"math"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/metrics"
)

// Exceedance ratios above which a concern is graded high or medium.
const (
	highExceedance   = 0.5
	mediumExceedance = 0.2
)

// EvaluateConcerns returns the concerns whose triggers fire against r, in
// trigger order. Triggers on metrics r cannot resolve are skipped.
func EvaluateConcerns(r metrics.Resolver, triggers []domain.ConcernTrigger) []domain.Concern {
	concerns := make([]domain.Concern, 0, len(triggers))
	for _, t := range triggers {
		v, ok := r.Lookup(t.Metric)
		if !ok || !t.Direction.Exceeds(v, t.Threshold) {
			continue
		}
		concerns = append(concerns, domain.Concern{
			Text:        metrics.InsertValue(t.Text, v),
			Explanation: t.Explanation,
			Metric:      t.Metric,
			Severity:    Severity(v, t.Threshold, t.Direction),
		})
	}
	return concerns
}

// EvaluatePraises returns the rendered text of every positive indicator that
// fires against r.
func EvaluatePraises(r metrics.Resolver, indicators []domain.PositiveIndicator) []string {
	praises := make([]string, 0, len(indicators))
	for _, p := range indicators {
		v, ok := r.Lookup(p.Metric)
		if !ok || !p.Direction.Exceeds(v, p.Threshold) {
			continue
		}
		praises = append(praises, metrics.InsertValue(p.Text, v))
	}
	return praises
}

// Severity grades how far value overshoots threshold in direction dir.
// A zero threshold has no meaningful ratio and is graded high.
func Severity(value, threshold float64, dir domain.Direction) domain.Severity {
	if threshold == 0 {
		return domain.SeverityHigh
	}
	ratio := value / threshold
	exceedance := 1 - ratio
	if dir == domain.Above {
		exceedance = ratio - 1
	}
	switch {
	case math.IsNaN(exceedance):
		return domain.SeverityLow
	case exceedance > highExceedance:
		return domain.SeverityHigh
	case exceedance > mediumExceedance:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
