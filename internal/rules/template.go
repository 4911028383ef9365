package rules

import "github.com/alexanderramin/scenariodialogue/internal/domain"

// Reference values for the named template predicates. All are read from the
// scenario's final milestone.
const (
	highInvestmentMUSD = 5000
	lowInvestmentMUSD  = 1000
	highRenewableShare = 70
	highFossilREShare  = 30
)

// Predicate reports whether a named scenario condition holds.
type Predicate func(s *domain.ScenarioInput) bool

type namedPredicate struct {
	name string
	fn   Predicate
}

// predicates is the registry of template conditions. Order here is the
// documented listing order; template selection itself follows template
// declaration order.
var predicates = []namedPredicate{
	{"highInvestment", func(s *domain.ScenarioInput) bool {
		m, ok := s.FinalMilestone()
		return ok && m.Investment.Cumulative > highInvestmentMUSD
	}},
	{"lowInvestment", func(s *domain.ScenarioInput) bool {
		m, ok := s.FinalMilestone()
		return ok && m.Investment.Cumulative != 0 && m.Investment.Cumulative < lowInvestmentMUSD
	}},
	{"highRenewable", func(s *domain.ScenarioInput) bool {
		m, ok := s.FinalMilestone()
		return ok && m.REShare > highRenewableShare
	}},
	{"highFossil", func(s *domain.ScenarioInput) bool {
		m, ok := s.FinalMilestone()
		return ok && m.REShare < highFossilREShare
	}},
}

// PredicateNames lists the template conditions the selector understands.
func PredicateNames() []string {
	names := make([]string, len(predicates))
	for i, p := range predicates {
		names[i] = p.name
	}
	return names
}

// EvalPredicate evaluates the condition called name. Unknown names are false.
func EvalPredicate(name string, s *domain.ScenarioInput) bool {
	if s == nil {
		return false
	}
	for _, p := range predicates {
		if p.name == name {
			return p.fn(s)
		}
	}
	return false
}

// SelectTemplate returns the first template, in declaration order, whose
// condition holds for s.
func SelectTemplate(s *domain.ScenarioInput, templates []domain.ResponseTemplate) (*domain.ResponseTemplate, bool) {
	if s == nil || len(s.Milestones) == 0 {
		return nil, false
	}
	for i := range templates {
		if EvalPredicate(templates[i].Condition, s) {
			return &templates[i], true
		}
	}
	return nil, false
}
