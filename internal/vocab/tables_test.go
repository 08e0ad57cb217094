package vocab

import (
	"testing"

	"siteforge/internal/ir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The layout rule order is a versioned contract: last match wins, so the
// position of each rule is observable behavior. This test pins the order.
func TestLayoutRuleOrderIsStable(t *testing.T) {
	want := []ir.Layout{
		ir.LayoutGrid,
		ir.LayoutMasonry,
		ir.LayoutFlex,
		ir.LayoutTwoColumn,
		ir.LayoutThreeColumn,
		ir.LayoutSplit,
		ir.LayoutSidebar,
		ir.LayoutHero,
	}
	require.Len(t, LayoutRules, len(want))
	for i, rule := range LayoutRules {
		assert.Equal(t, want[i], rule.Layout, "rule %d moved", i)
	}
}

func TestStyleRuleOrderIsStable(t *testing.T) {
	want := []ir.Style{
		ir.StyleModern,
		ir.StyleMinimal,
		ir.StyleBold,
		ir.StyleElegant,
		ir.StylePlayful,
		ir.StyleCorporate,
		ir.StyleCreative,
		ir.StyleTechnical,
	}
	require.Len(t, StyleRules, len(want))
	for i, rule := range StyleRules {
		assert.Equal(t, want[i], rule.Style, "rule %d moved", i)
	}
}

func TestIntentRulePrioritiesStayInExplicitBand(t *testing.T) {
	for _, rule := range IntentRules {
		assert.GreaterOrEqual(t, rule.Priority, 1, "typeKey %q", rule.TypeKey)
		assert.LessOrEqual(t, rule.Priority, 9, "typeKey %q", rule.TypeKey)
		assert.NotEmpty(t, rule.Keywords, "typeKey %q", rule.TypeKey)
	}
}

// Every typeKey the planner can produce must have a section template, so
// intent expansion never dead-ends.
func TestEveryPlannableTypeKeyHasATemplate(t *testing.T) {
	for _, rule := range IntentRules {
		_, ok := SectionTemplates[rule.TypeKey]
		assert.True(t, ok, "intent rule %q has no template", rule.TypeKey)
	}
	for industry, keys := range IndustryCatalog {
		for _, key := range keys {
			_, ok := SectionTemplates[key]
			assert.True(t, ok, "industry %q lists %q with no template", industry, key)
		}
	}
}

func TestTemplatesAreInternallyConsistent(t *testing.T) {
	for key, tpl := range SectionTemplates {
		assert.Equal(t, key, tpl.TypeKey, "template key mismatch")
		assert.NotEmpty(t, tpl.Brief, "template %q has no brief", key)
		assert.NotEmpty(t, tpl.Fields, "template %q has no fields", key)
		if len(tpl.Variations) > 0 {
			assert.Contains(t, tpl.Variations, tpl.DefaultVariation, "template %q default variation missing", key)
		}
	}
}
