package metrics

import (
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestResolve_ScenarioFamily(t *testing.T) {
	v, ok := Resolve(testutil.NewTestScenario(), testutil.NewTestDerived(), "investment.cumulative.2050")
	assert.True(t, ok)
	assert.Equal(t, 12000.0, v)
}

func TestResolve_DerivedOnlyFamily(t *testing.T) {
	v, ok := Resolve(testutil.NewTestScenario(), testutil.NewTestDerived(), "jobs.total.2030")
	assert.True(t, ok)
	assert.Equal(t, 1500.0, v)
}

func TestResolve_ScenarioTakesPrecedence(t *testing.T) {
	scn := testutil.NewTestScenario(testutil.WithREShare(2030, 47))
	derived := testutil.NewTestDerived()
	derived.RenewableShare[2030] = 12

	v, ok := Resolve(scn, derived, "renewableShare.2030")
	assert.True(t, ok)
	assert.Equal(t, 47.0, v)
}

func TestResolve_FallsBackToDerivedWhenScenarioLacksYear(t *testing.T) {
	derived := testutil.NewTestDerived()
	derived.RenewableShare[2035] = 55

	v, ok := Resolve(testutil.NewTestScenario(), derived, "renewableShare.2035")
	assert.True(t, ok)
	assert.Equal(t, 55.0, v)
}

func TestResolve_FusedYearForm(t *testing.T) {
	scn, derived := testutil.NewTestScenario(), testutil.NewTestDerived()

	fused, ok := Resolve(scn, derived, "emissions.reductionPercent2040")
	assert.True(t, ok)
	dotted, ok2 := Resolve(scn, derived, "emissions.reductionPercent.2040")
	assert.True(t, ok2)
	assert.Equal(t, 45.0, fused)
	assert.Equal(t, fused, dotted)
}

func TestResolve_DetailedTech(t *testing.T) {
	scn := testutil.NewTestScenario(testutil.WithDetailedTech(2030, "solarPV", 650))

	v, ok := Resolve(scn, nil, "supply.capacity.solarPV.2030")
	assert.True(t, ok)
	assert.Equal(t, 650.0, v)

	_, ok = Resolve(scn, nil, "supply.capacity.solarPV.2040")
	assert.False(t, ok)
}

func TestResolve_OptionalStorage(t *testing.T) {
	scn := testutil.NewTestScenario()
	scn.Milestones[1].Capacity.Total.Storage = nil

	_, ok := Resolve(scn, nil, "supply.capacity.battery.2030")
	assert.False(t, ok)

	v, ok := Resolve(scn, nil, "supply.capacity.battery.2040")
	assert.True(t, ok)
	assert.Equal(t, 150.0, v)
}

func TestResolve_Unresolvable(t *testing.T) {
	scn, derived := testutil.NewTestScenario(), testutil.NewTestDerived()
	for _, path := range []string{
		"access.electrificationRate.2030",
		"supply.capacity.solarPV.CAGR",
		"jobs.construction.total",
		"methodology.sensitivityIncluded",
		"investment.cumulative.2099",
		"",
		"renewableShare",
		"renewableShare.",
	} {
		_, ok := Resolve(scn, derived, path)
		assert.False(t, ok, path)
	}
}

func TestResolve_NilInputs(t *testing.T) {
	_, ok := Resolve(nil, nil, "renewableShare.2030")
	assert.False(t, ok)

	_, ok = Resolve(&domain.ScenarioInput{}, &domain.DerivedMetrics{}, "jobs.total.2030")
	assert.False(t, ok)
}

func TestResolve_DerivedScalar(t *testing.T) {
	derived := testutil.NewTestDerived()
	derived.Investment.AnnualPeak = 900

	v, ok := Resolve(nil, derived, "investment.annualPeak")
	assert.True(t, ok)
	assert.Equal(t, 900.0, v)
}
