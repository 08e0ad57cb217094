package planner

import (
	"sort"
	"testing"

	"siteforge/internal/ir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_RestaurantLandingPage(t *testing.T) {
	brief := ir.UserRequirement{
		Description: "landing page for my restaurant",
		Industry:    "restaurant",
		PageType:    "home",
	}

	intents := Plan(brief)

	require.NotEmpty(t, intents)
	assert.Equal(t, "hero-with-cta", intents[0].TypeKey)
	assert.Equal(t, 1, intents[0].Priority)

	assert.True(t, sort.SliceIsSorted(intents, func(i, j int) bool {
		return intents[i].Priority < intents[j].Priority
	}))

	var menu *ir.SectionIntent
	for i := range intents {
		if intents[i].TypeKey == "menu-showcase" {
			menu = &intents[i]
		}
	}
	require.NotNil(t, menu, "industry defaults should contribute menu-showcase")
	assert.GreaterOrEqual(t, menu.Priority, 10)
}

func TestPlan_IndustryEntriesDeduplicatedAgainstExplicit(t *testing.T) {
	brief := ir.UserRequirement{
		Description: "homepage with contact section",
		Industry:    "restaurant",
		PageType:    "home",
	}

	intents := Plan(brief)

	count := make(map[string]int)
	for _, in := range intents {
		count[in.TypeKey]++
	}
	for key, n := range count {
		assert.Equal(t, 1, n, "typeKey %q duplicated", key)
	}

	// contact-form was explicit, so it keeps its 1-9 priority.
	for _, in := range intents {
		if in.TypeKey == "contact-form" {
			assert.Equal(t, 8, in.Priority)
		}
	}
}

func TestPlan_ContentEnrichment(t *testing.T) {
	brief := ir.UserRequirement{
		Description:    "landing page",
		Industry:       "saas",
		PageType:       "home",
		TargetAudience: "developers",
	}

	intents := Plan(brief)
	require.NotEmpty(t, intents)

	hero := intents[0]
	require.Equal(t, "hero-with-cta", hero.TypeKey)
	assert.Equal(t, "saas", hero.Content["industry"])
	assert.Equal(t, "home", hero.Content["page_type"])
	assert.Equal(t, "developers", hero.Content["target_audience"])
	assert.Contains(t, hero.Content["fields"], "ctaText")
	assert.Equal(t, "centered", hero.Content["default_variation"])
	assert.Equal(t, ir.HintFullWidth, hero.LayoutHint)
}

func TestPlan_NoCuesNoIndustryIsEmpty(t *testing.T) {
	intents := Plan(ir.UserRequirement{Description: "something vague", PageType: "home"})
	assert.Empty(t, intents)
}

func TestPlan_UnknownIndustryIgnored(t *testing.T) {
	intents := Plan(ir.UserRequirement{
		Description: "landing page",
		Industry:    "zeppelin-repair",
		PageType:    "home",
	})

	require.Len(t, intents, 1)
	assert.Equal(t, "hero-with-cta", intents[0].TypeKey)
}
