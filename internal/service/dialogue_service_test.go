package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/alexanderramin/scenariodialogue/internal/intelligence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogueService_RevealAll_CatalogOrder(t *testing.T) {
	svcs := newTestServices(t, nil)
	importTestScenario(t, svcs.scenarios)

	out, err := svcs.dialogue.RevealAll(context.Background(), RevealOptions{})
	require.NoError(t, err)
	require.Len(t, out, len(domain.StakeholderOrder))
	for i, id := range domain.StakeholderOrder {
		assert.Equal(t, id, out[i].StakeholderID)
		assert.Equal(t, domain.GenerationRuleBased, out[i].GenerationType)
		assert.NotEmpty(t, out[i].InitialReaction)
		assert.LessOrEqual(t, len(out[i].Questions), 5)
		assert.LessOrEqual(t, len(out[i].EngagementAdvice), 3)
	}

	events := svcs.observer.byName("reveal-all")
	require.Len(t, events, 1)
	assert.Equal(t, len(domain.StakeholderOrder), events[0].Fields["count"])
}

func TestDialogueService_Reveal_MatchesRevealAll(t *testing.T) {
	svcs := newTestServices(t, nil)
	importTestScenario(t, svcs.scenarios)
	ctx := context.Background()

	all, err := svcs.dialogue.RevealAll(ctx, RevealOptions{})
	require.NoError(t, err)
	one, err := svcs.dialogue.Reveal(ctx, domain.StakeholderFinance, RevealOptions{})
	require.NoError(t, err)

	var fromAll domain.StakeholderResponse
	for _, r := range all {
		if r.StakeholderID == domain.StakeholderFinance {
			fromAll = r
		}
	}
	assert.Equal(t, fromAll.InitialReaction, one.InitialReaction)
	assert.Equal(t, fromAll.Concerns, one.Concerns)
	assert.Equal(t, fromAll.Questions, one.Questions)
}

func TestDialogueService_Reveal_Enhanced(t *testing.T) {
	svcs := newTestServices(t, nil)
	importTestScenario(t, svcs.scenarios)

	resp, err := svcs.dialogue.Reveal(context.Background(), domain.StakeholderGridOperators, RevealOptions{
		Enhanced: true,
		Context:  domain.ContextDeveloped,
		Variant:  domain.VariantConservative,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GenerationEnhancedRuleBased, resp.GenerationType)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, domain.ContextDeveloped, resp.Metadata.Context)
	assert.Equal(t, domain.VariantConservative, resp.Metadata.Variant)
}

func TestDialogueService_Reveal_UnknownStakeholder(t *testing.T) {
	svcs := newTestServices(t, nil)
	importTestScenario(t, svcs.scenarios)

	_, err := svcs.dialogue.Reveal(context.Background(), "astronauts", RevealOptions{})
	assert.ErrorIs(t, err, ErrUnknownStakeholder)
}

func TestDialogueService_Reveal_NoScenario(t *testing.T) {
	svcs := newTestServices(t, nil)

	_, err := svcs.dialogue.Reveal(context.Background(), domain.StakeholderPublic, RevealOptions{})
	assert.ErrorIs(t, err, ErrNoActiveScenario)

	_, err = svcs.dialogue.RevealAll(context.Background(), RevealOptions{})
	assert.ErrorIs(t, err, ErrNoActiveScenario)
}

func TestDialogueService_RevealAll_AIEnhancesEach(t *testing.T) {
	enh := &fakeEnhancer{}
	svcs := newTestServices(t, enh)
	importTestScenario(t, svcs.scenarios)

	out, err := svcs.dialogue.RevealAll(context.Background(), RevealOptions{AI: true})
	require.NoError(t, err)
	assert.Equal(t, int32(len(domain.StakeholderOrder)), enh.calls.Load())
	for _, r := range out {
		assert.Equal(t, domain.GenerationAIEnhanced, r.GenerationType)
	}
}

func TestDialogueService_Reveal_AIWithoutFlagSkipsEnhancer(t *testing.T) {
	enh := &fakeEnhancer{}
	svcs := newTestServices(t, enh)
	importTestScenario(t, svcs.scenarios)

	resp, err := svcs.dialogue.Reveal(context.Background(), domain.StakeholderPublic, RevealOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.GenerationRuleBased, resp.GenerationType)
	assert.Zero(t, enh.calls.Load())
}

func TestDialogueService_AIStatus(t *testing.T) {
	none := newTestServices(t, nil)
	assert.Equal(t, intelligence.MethodNone, none.dialogue.AIStatus(context.Background()).Method)

	withAI := newTestServices(t, &fakeEnhancer{})
	st := withAI.dialogue.AIStatus(context.Background())
	assert.True(t, st.Available)
	assert.Equal(t, "fake", st.Model)
}
