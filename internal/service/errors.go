package service

import "errors"

var (
	// ErrNoActiveScenario is returned when an operation needs a scenario and
	// none has been imported or activated.
	ErrNoActiveScenario = errors.New("no active scenario")
	// ErrUnknownStakeholder is returned for ids outside the catalog.
	ErrUnknownStakeholder = errors.New("unknown stakeholder")
	// ErrInvalidScenario wraps validation failures on import.
	ErrInvalidScenario = errors.New("invalid scenario")
)

// ErrEmptyPrediction is returned when a prediction has no text.
var ErrEmptyPrediction = errors.New("prediction text is empty")

// ErrNoPrediction is returned by Compare when nothing was predicted for the
// stakeholder under the active scenario.
var ErrNoPrediction = errors.New("no prediction recorded")

// ErrInvalidPreference is returned for an unknown context or variant.
var ErrInvalidPreference = errors.New("invalid preference")
