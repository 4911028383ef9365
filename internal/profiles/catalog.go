// Package profiles holds the static stakeholder archetype data: the nine
// profiles, their multi-metric interaction triggers, personality variants and
// development-context threshold modifiers.
package profiles

import (
	"github.com/alexanderramin/scenariodialogue/internal/domain"
)

// Catalog is the immutable set of stakeholder profiles and enhancement data.
// Build it once with NewCatalog and share it; nothing mutates it afterwards.
type Catalog struct {
	profiles     map[domain.StakeholderID]*domain.StakeholderProfile
	interactions map[domain.StakeholderID][]domain.InteractionTrigger
	variants     map[domain.StakeholderID]map[domain.Variant]domain.VariantProfile
	contexts     map[domain.DevelopmentContext]domain.ContextProfile
}

// NewCatalog builds the catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		profiles:     make(map[domain.StakeholderID]*domain.StakeholderProfile, len(domain.StakeholderOrder)),
		interactions: interactionTriggers(),
		variants:     variantProfiles(),
		contexts:     make(map[domain.DevelopmentContext]domain.ContextProfile),
	}
	for _, p := range baseProfiles() {
		c.profiles[p.ID] = p
	}
	for _, cp := range contextProfiles() {
		c.contexts[cp.ID] = cp
	}
	return c
}

// Get returns a copy of the profile for id.
func (c *Catalog) Get(id domain.StakeholderID) (domain.StakeholderProfile, bool) {
	p, ok := c.profiles[id]
	if !ok {
		return domain.StakeholderProfile{}, false
	}
	return *p, true
}

// All returns every profile in canonical stakeholder order.
func (c *Catalog) All() []domain.StakeholderProfile {
	out := make([]domain.StakeholderProfile, 0, len(domain.StakeholderOrder))
	for _, id := range domain.StakeholderOrder {
		if p, ok := c.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// IDs returns the stakeholder ids in canonical order.
func (c *Catalog) IDs() []domain.StakeholderID {
	return append([]domain.StakeholderID(nil), domain.StakeholderOrder...)
}

// Name returns the display name for id, falling back to the raw id.
func (c *Catalog) Name(id domain.StakeholderID) string {
	if p, ok := c.profiles[id]; ok {
		return p.Name
	}
	return string(id)
}

// Interactions returns the interaction triggers declared for id.
func (c *Catalog) Interactions(id domain.StakeholderID) []domain.InteractionTrigger {
	return c.interactions[id]
}

// Variant returns the personality variant profile for id.
func (c *Catalog) Variant(id domain.StakeholderID, v domain.Variant) (domain.VariantProfile, bool) {
	vp, ok := c.variants[id][v]
	return vp, ok
}

// Context returns the development context profile.
func (c *Catalog) Context(ctx domain.DevelopmentContext) (domain.ContextProfile, bool) {
	cp, ok := c.contexts[ctx]
	return cp, ok
}

// Contexts returns the development context profiles in declaration order.
func (c *Catalog) Contexts() []domain.ContextProfile {
	return contextProfiles()
}
