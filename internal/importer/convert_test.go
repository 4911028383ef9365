package importer

import (
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_ConvertsToCanonicalUnits(t *testing.T) {
	s := testutil.NewTestScenario()
	m := &s.Milestones[1]
	m.Capacity.Unit = "GW"
	m.Capacity.Total.Renewables = 0.9
	storage, other := 0.05, 0.01
	m.Capacity.Total.Storage = &storage
	m.Capacity.Total.Other = &other
	m.Generation.Unit = "TWh"
	m.Generation.Output.Renewables = 2.8
	m.Investment.Unit = "B$"
	m.Investment.Cumulative = 2.5
	m.Emissions.Unit = "kt CO2"
	m.Emissions.Total = 3500
	m.AnnualOMCosts = &domain.UnitValue{Value: 40000, Unit: "k$"}

	out := Normalize(s)
	require.Len(t, out.Milestones, 4)

	got := out.Milestones[1]
	assert.Equal(t, "MW", got.Capacity.Unit)
	assert.InDelta(t, 900, got.Capacity.Total.Renewables, 1e-9)
	require.NotNil(t, got.Capacity.Total.Storage)
	assert.InDelta(t, 50, *got.Capacity.Total.Storage, 1e-9)
	require.NotNil(t, got.Capacity.Total.Other)
	assert.InDelta(t, 10, *got.Capacity.Total.Other, 1e-9)
	assert.Equal(t, "GWh", got.Generation.Unit)
	assert.InDelta(t, 2800, got.Generation.Output.Renewables, 1e-9)
	assert.Equal(t, "m$", got.Investment.Unit)
	assert.InDelta(t, 2500, got.Investment.Cumulative, 1e-9)
	assert.InDelta(t, 3.5, got.Emissions.Total, 1e-9)
	assert.Equal(t, "Mt CO2", got.Emissions.Unit)
	require.NotNil(t, got.AnnualOMCosts)
	assert.InDelta(t, 40, got.AnnualOMCosts.Value, 1e-9)

	// input untouched
	assert.Equal(t, "GW", s.Milestones[1].Capacity.Unit)
	assert.Equal(t, 0.9, s.Milestones[1].Capacity.Total.Renewables)
	assert.Equal(t, 0.05, *s.Milestones[1].Capacity.Total.Storage)
}

func TestNormalize_CopiesDetailedTech(t *testing.T) {
	s := testutil.NewTestScenario(testutil.WithDetailedTech(2040, "wind", 300))

	out := Normalize(s)
	out.DetailedTech[2040]["wind"] = 1

	assert.Equal(t, 300.0, s.DetailedTech[2040]["wind"])
}

func TestNormalize_Nil(t *testing.T) {
	assert.Nil(t, Normalize(nil))
}
