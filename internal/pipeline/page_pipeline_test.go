package pipeline

import (
	"context"
	"testing"

	"siteforge/internal/ir"
	"siteforge/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageGenerate_RestaurantLanding(t *testing.T) {
	reg := registry.New(nil, nil)
	p := NewPage(reg, nil)

	specs, err := p.Generate(context.Background(), ir.UserRequirement{
		Description: "landing page for my restaurant",
		Industry:    "restaurant",
		PageType:    "home",
	})

	require.NoError(t, err)
	require.NotEmpty(t, specs)
	assert.Contains(t, specs[0].ID, "hero-with-cta")
	assert.NotEmpty(t, specs[0].ComponentSource)

	// Every generated section resolves through the registry afterwards.
	for _, spec := range specs {
		assert.NotEmpty(t, spec.ContentSchema, "spec %s", spec.ID)
	}
	// Static catalog outranks the synthesized store in resolution order, so
	// the resolved entry is the catalog one even though a synthesized copy
	// was registered alongside it.
	impl, err := reg.Resolve(context.Background(), "menu-showcase")
	require.NoError(t, err)
	require.NotNil(t, impl)
	assert.False(t, impl.Synthesized)
	assert.True(t, reg.IsSynthesized("menu-showcase"))
}

func TestPageGenerate_EmptyBriefYieldsNoSections(t *testing.T) {
	reg := registry.New(nil, nil)
	p := NewPage(reg, nil)

	specs, err := p.Generate(context.Background(), ir.UserRequirement{
		Description: "something vague",
		PageType:    "home",
	})

	require.NoError(t, err)
	assert.Empty(t, specs)
}

func TestPageGenerate_CancelledContext(t *testing.T) {
	reg := registry.New(nil, nil)
	p := NewPage(reg, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, ir.UserRequirement{
		Description: "landing page",
		Industry:    "saas",
		PageType:    "home",
	})

	assert.Error(t, err)
}
