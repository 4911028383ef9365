package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// LoadScenario reads and parses a scenario JSON file.
func LoadScenario(path string) (*domain.ScenarioInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeScenario(f)
}

// DecodeScenario parses a scenario JSON document.
func DecodeScenario(r io.Reader) (*domain.ScenarioInput, error) {
	var s domain.ScenarioInput
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	return &s, nil
}
