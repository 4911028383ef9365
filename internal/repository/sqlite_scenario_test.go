package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/scenariodialogue/internal/db"
	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedScenario(id string, active bool, updated time.Time) *domain.StoredScenario {
	return &domain.StoredScenario{
		ID:        id,
		Scenario:  *testutil.NewTestScenario(),
		Source:    domain.SourceCSV,
		Active:    active,
		CreatedAt: updated,
		UpdatedAt: updated,
	}
}

func TestScenarioRepo_Upsert_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(database)
	ctx := context.Background()

	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, storedScenario("s1", true, at)))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Testland", got.Scenario.Metadata.Country)
	assert.Len(t, got.Scenario.Milestones, 4)
	assert.Equal(t, domain.SourceCSV, got.Source)
	assert.True(t, got.Active)
	assert.True(t, at.Equal(got.UpdatedAt))

	m, ok := got.Scenario.MilestoneByYear(2030)
	require.True(t, ok)
	require.NotNil(t, m.Capacity.Total.Storage)
	assert.Equal(t, 50.0, *m.Capacity.Total.Storage)
}

func TestScenarioRepo_Upsert_UpdatesExisting(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(database)
	ctx := context.Background()

	s := storedScenario("s1", false, time.Now().UTC())
	require.NoError(t, repo.Upsert(ctx, s))

	s.Scenario.Metadata.ScenarioName = "High RE"
	s.UpdatedAt = s.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Upsert(ctx, s))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "High RE", all[0].Scenario.Metadata.ScenarioName)
}

func TestScenarioRepo_GetActive_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(database)

	_, err := repo.GetActive(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScenarioRepo_SecondActiveRejectedWithoutDeactivate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(database)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Upsert(ctx, storedScenario("s1", true, now)))
	err := repo.Upsert(ctx, storedScenario("s2", true, now))
	assert.Error(t, err)
}

func TestScenarioRepo_DeactivateThenActivate_InTx(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, NewSQLiteScenarioRepo(database).Upsert(ctx, storedScenario("s1", true, now)))

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := NewSQLiteScenarioRepo(tx)
		if err := repo.DeactivateAll(ctx); err != nil {
			return err
		}
		return repo.Upsert(ctx, storedScenario("s2", true, now.Add(time.Second)))
	})
	require.NoError(t, err)

	repo := NewSQLiteScenarioRepo(database)
	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s2", active.ID)

	first, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, first.Active)
}

func TestScenarioRepo_List_NewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(database)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, storedScenario("old", false, base)))
	require.NoError(t, repo.Upsert(ctx, storedScenario("new", false, base.Add(time.Hour))))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[1].ID)
}

func TestScenarioRepo_Delete_RemovesPredictions(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteScenarioRepo(database)
	preds := NewSQLitePredictionRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, storedScenario("s1", true, time.Now().UTC())))
	require.NoError(t, preds.Create(ctx, &domain.Prediction{
		ID: "p1", ScenarioID: "s1", StakeholderID: domain.StakeholderGridOperators, Text: "worried",
	}))

	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	list, err := preds.ListByScenario(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, repo.Delete(ctx, "s1"), ErrNotFound)
}
