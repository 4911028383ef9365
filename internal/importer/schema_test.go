package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_RoundTripsFile(t *testing.T) {
	want := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "solarPV", 1000))
	data, err := json.Marshal(want)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scenario.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeScenario_InvalidJSON(t *testing.T) {
	_, err := DecodeScenario(strings.NewReader(`{"metadata": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing scenario file")
}

func TestDecodeScenario_Fields(t *testing.T) {
	doc := `{
	  "metadata": {"country": "Kenya", "scenarioName": "Ambitious", "modelVersion": "SPLAT", "dateCreated": "2025-01-01"},
	  "milestones": [{
	    "year": 2030,
	    "capacity": {"total": {"renewables": 900, "fossil": 700, "storage": 50}, "unit": "MW"},
	    "generation": {"output": {"renewables": 2800, "fossil": 2600, "other": 0}, "unit": "GWh"},
	    "reShare": 45,
	    "investment": {"cumulative": 2500, "unit": "m$"},
	    "emissions": {"total": 3.5, "unit": "Mt CO2"},
	    "peakDemand": {"value": 850, "unit": "MW"}
	  }],
	  "detailedTech": {"2030": {"solarPV": 300}}
	}`
	s, err := DecodeScenario(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "Kenya", s.Metadata.Country)
	require.Len(t, s.Milestones, 1)
	assert.Equal(t, 2030, s.Milestones[0].Year)
	assert.Equal(t, 50.0, s.Milestones[0].Capacity.Total.StorageOrZero())
	assert.Nil(t, s.Milestones[0].Capacity.Total.Other)
	assert.Equal(t, 300.0, s.DetailedTech[2030]["solarPV"])
	assert.Empty(t, ValidateScenario(s))
}
