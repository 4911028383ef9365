package profiles

import (
	"testing"

	"github.com/alexanderramin/scenariodialogue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AllInCanonicalOrder(t *testing.T) {
	c := NewCatalog()
	all := c.All()
	require.Len(t, all, 9)
	for i, id := range domain.StakeholderOrder {
		assert.Equal(t, id, all[i].ID)
	}
}

func TestCatalog_ProfilesAreComplete(t *testing.T) {
	c := NewCatalog()
	for _, p := range c.All() {
		assert.NotEmpty(t, p.Name, p.ID)
		assert.NotEmpty(t, p.TypicalQuestions, p.ID)
		assert.GreaterOrEqual(t, len(p.GoodPractices), 3, p.ID)
		assert.NotEmpty(t, p.ConcernTriggers, p.ID)
		for _, ct := range p.ConcernTriggers {
			assert.Contains(t, ct.Text, "{value}", "%s %s", p.ID, ct.Metric)
		}
	}
}

func TestCatalog_GetUnknown(t *testing.T) {
	c := NewCatalog()
	_, ok := c.Get("nobody")
	assert.False(t, ok)
	assert.Equal(t, "nobody", c.Name("nobody"))
}

func TestCatalog_GetReturnsCopy(t *testing.T) {
	c := NewCatalog()
	p, ok := c.Get(domain.StakeholderPolicyMakers)
	require.True(t, ok)
	p.Name = "changed"
	again, _ := c.Get(domain.StakeholderPolicyMakers)
	assert.Equal(t, "Policy Makers & Regulators", again.Name)
}

func TestCatalog_InteractionsPerStakeholder(t *testing.T) {
	c := NewCatalog()
	for _, id := range domain.StakeholderOrder {
		triggers := c.Interactions(id)
		assert.Len(t, triggers, 3, id)
		for _, tr := range triggers {
			assert.NotEmpty(t, tr.Conditions, tr.ID)
			assert.Contains(t, []domain.Operator{domain.OperatorAnd, domain.OperatorOr}, tr.Operator)
		}
	}
}

func TestCatalog_VariantsPerStakeholder(t *testing.T) {
	c := NewCatalog()
	for _, id := range domain.StakeholderOrder {
		for v := range domain.ValidVariants {
			vp, ok := c.Variant(id, domain.Variant(v))
			require.True(t, ok, "%s/%s", id, v)
			assert.NotEmpty(t, vp.Framing)
			assert.NotEmpty(t, vp.Modifiers)
		}
	}
	_, ok := c.Variant(domain.StakeholderFinance, "radical")
	assert.False(t, ok)
}

func TestCatalog_Contexts(t *testing.T) {
	c := NewCatalog()
	cps := c.Contexts()
	require.Len(t, cps, 3)
	ld, ok := c.Context(domain.ContextLeastDeveloped)
	require.True(t, ok)
	assert.Equal(t, "Least Developed Countries", ld.Name)
	assert.Contains(t, ld.Modifiers, domain.ThresholdModifier{Metric: "renewableShare.2030", Multiplier: 0.7})
}
