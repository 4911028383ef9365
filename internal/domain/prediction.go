package domain

import "time"

// Prediction is the planner's guess at a stakeholder reaction, recorded
// before the generated response is revealed.
type Prediction struct {
	ID            string        `json:"id"`
	ScenarioID    string        `json:"scenarioId"`
	StakeholderID StakeholderID `json:"stakeholderId"`
	Text          string        `json:"text"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ScenarioSource records how a stored scenario was imported.
type ScenarioSource string

const (
	SourceJSON ScenarioSource = "json"
	SourceCSV  ScenarioSource = "csv"
)

// StoredScenario is a scenario persisted in the local store. At most one
// stored scenario is active.
type StoredScenario struct {
	ID        string         `json:"id"`
	Scenario  ScenarioInput  `json:"scenario"`
	Source    ScenarioSource `json:"source"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Setting is a JSON value stored under a key.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
