package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionService_RecordAndCompare(t *testing.T) {
	svcs := newTestServices(t, nil)
	res := importTestScenario(t, svcs.scenarios)
	ctx := context.Background()

	p, err := svcs.predictions.Record(ctx, domain.StakeholderFinance, "  They will worry about investment risk.  ")
	require.NoError(t, err)
	assert.Equal(t, res.Stored.ID, p.ScenarioID)
	assert.Equal(t, "They will worry about investment risk.", p.Text)

	cmp, err := svcs.predictions.Compare(ctx, domain.StakeholderFinance, RevealOptions{})
	require.NoError(t, err)
	assert.Equal(t, p.ID, cmp.Prediction.ID)
	assert.Equal(t, domain.StakeholderFinance, cmp.Response.StakeholderID)
	assert.Len(t, cmp.Response.Concerns, len(cmp.MatchedConcerns)+len(cmp.MissedConcerns))

	list, err := svcs.predictions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, p.ID, list[0].ID)
}

func TestPredictionService_Compare_UsesLatest(t *testing.T) {
	svcs := newTestServices(t, nil)
	importTestScenario(t, svcs.scenarios)
	ctx := context.Background()

	_, err := svcs.predictions.Record(ctx, domain.StakeholderPublic, "first guess")
	require.NoError(t, err)
	second, err := svcs.predictions.Record(ctx, domain.StakeholderPublic, "second guess")
	require.NoError(t, err)

	cmp, err := svcs.predictions.Compare(ctx, domain.StakeholderPublic, RevealOptions{})
	require.NoError(t, err)
	assert.Equal(t, second.ID, cmp.Prediction.ID)
}

func TestPredictionService_Record_Rejects(t *testing.T) {
	svcs := newTestServices(t, nil)
	ctx := context.Background()

	_, err := svcs.predictions.Record(ctx, domain.StakeholderPublic, "no scenario yet")
	assert.ErrorIs(t, err, ErrNoActiveScenario)

	importTestScenario(t, svcs.scenarios)

	_, err = svcs.predictions.Record(ctx, domain.StakeholderPublic, "   ")
	assert.ErrorIs(t, err, ErrEmptyPrediction)

	_, err = svcs.predictions.Record(ctx, "astronauts", "text")
	assert.ErrorIs(t, err, ErrUnknownStakeholder)
}

func TestPredictionService_Compare_NoPrediction(t *testing.T) {
	svcs := newTestServices(t, nil)
	importTestScenario(t, svcs.scenarios)

	_, err := svcs.predictions.Compare(context.Background(), domain.StakeholderScientific, RevealOptions{})
	assert.ErrorIs(t, err, ErrNoPrediction)
}

func TestPredictionService_Compare_ScopedToActiveScenario(t *testing.T) {
	svcs := newTestServices(t, nil)
	ctx := context.Background()

	importTestScenario(t, svcs.scenarios)
	_, err := svcs.predictions.Record(ctx, domain.StakeholderIndustry, "costs")
	require.NoError(t, err)

	importTestScenario(t, svcs.scenarios)
	_, err = svcs.predictions.Compare(ctx, domain.StakeholderIndustry, RevealOptions{})
	assert.ErrorIs(t, err, ErrNoPrediction)
}

func TestMatchConcerns_SharedKeyword(t *testing.T) {
	concerns := []domain.Concern{
		{Text: "Grid stability with high variable renewables"},
		{Text: "Investment requirements are very large"},
		{Text: "Land use for solar farms"},
	}

	matched, missed := matchConcerns("I expect worries about STABILITY and the sheer investment.", concerns)
	require.Len(t, matched, 2)
	assert.Equal(t, concerns[0], matched[0])
	assert.Equal(t, concerns[1], matched[1])
	assert.Equal(t, []domain.Concern{concerns[2]}, missed)
}

func TestMatchConcerns_IgnoresStopWordsAndShortWords(t *testing.T) {
	concerns := []domain.Concern{{Text: "What about the use of land"}}

	matched, missed := matchConcerns("what about use", concerns)
	assert.Empty(t, matched)
	assert.Len(t, missed, 1)
}
