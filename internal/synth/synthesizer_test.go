package synth

import (
	"strings"
	"testing"

	"siteforge/internal/analyzer"
	"siteforge/internal/ir"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickGenerator_ElementPrecedenceBeatsLayout(t *testing.T) {
	// A tabs element wins even though the layout says grid.
	req := ir.SectionRequirement{
		Layout: ir.LayoutGrid,
		Elements: []ir.ElementSpec{
			{Type: ir.ElementCard},
			{Type: ir.ElementTabs},
		},
	}

	tree := SynthesizeComponent(req, "Panels")(Content{})
	found := false
	tree.walk(func(n *Node) {
		if n.Props["role"] == "tablist" {
			found = true
		}
	})
	assert.True(t, found, "tabs generator should have been dispatched")
}

func TestPickGenerator_FormBeatsCustom(t *testing.T) {
	req := ir.SectionRequirement{
		Layout: ir.LayoutSingleColumn,
		Elements: []ir.ElementSpec{
			{Type: ir.ElementCustom, CustomSource: "<Text>x</Text>"},
			{Type: ir.ElementForm, Form: &ir.FormProps{Fields: []string{"name", "email"}}},
		},
	}

	tree := SynthesizeComponent(req, "Contact")(Content{})
	assert.True(t, tree.containsKind(KindInput))
}

func TestGenerateGrid_CardBranchHonorsFlags(t *testing.T) {
	req := ir.SectionRequirement{
		Layout: ir.LayoutGrid,
		Elements: []ir.ElementSpec{{
			Type:         ir.ElementCard,
			ContentLabel: "team member cards",
			Card:         &ir.CardProps{ShowImage: true, ShowBio: true},
		}},
	}
	content := Content{
		"heading": "Meet the Team",
		"members": []any{
			map[string]any{"name": "Alex", "role": "Founder", "bio": "Bio text", "photo": "/a.jpg"},
			map[string]any{"name": "Sam", "role": "Designer", "bio": "More bio", "photo": "/s.jpg"},
		},
	}

	tree := SynthesizeComponent(req, "Team")(content)

	cards := 0
	avatars := 0
	tree.walk(func(n *Node) {
		switch n.Kind {
		case KindCard:
			cards++
		case KindAvatar:
			avatars++
		}
	})
	assert.Equal(t, 2, cards, "one card per content item")
	assert.Equal(t, 2, avatars, "showImage renders an avatar per card")
}

func TestGenerateGrid_CounterBranch(t *testing.T) {
	req := ir.SectionRequirement{
		Layout:   ir.LayoutGrid,
		Elements: []ir.ElementSpec{{Type: ir.ElementCounter}},
	}
	content := Content{"items": []any{
		map[string]any{"value": "120+", "label": "Clients"},
		map[string]any{"value": "8", "label": "Years"},
	}}

	tree := SynthesizeComponent(req, "Stats")(content)

	stats := 0
	tree.walk(func(n *Node) {
		if n.Props["role"] == "stat" {
			stats++
		}
	})
	assert.Equal(t, 2, stats)
}

func TestHoverInteractionAttachesLift(t *testing.T) {
	req := ir.SectionRequirement{
		Layout:       ir.LayoutGrid,
		Elements:     []ir.ElementSpec{{Type: ir.ElementCard, Card: &ir.CardProps{}}},
		Interactions: []ir.InteractionSpec{{Trigger: ir.TriggerHover, Action: ir.ActionAnimation}},
	}

	tree := SynthesizeComponent(req, "Cards")(Content{})

	lifted := false
	tree.walk(func(n *Node) {
		if n.Kind == KindCard && n.Props["hoverEffect"] == "lift" {
			lifted = true
		}
	})
	assert.True(t, lifted)
}

func TestFormGenerator_TypedFieldsAndSimulatedSubmit(t *testing.T) {
	req := ir.SectionRequirement{
		Layout: ir.LayoutSingleColumn,
		Elements: []ir.ElementSpec{{
			Type: ir.ElementForm,
			Form: &ir.FormProps{Fields: []string{"name", "email", "phone", "budget", "message"}},
		}},
	}

	tree := SynthesizeComponent(req, "Contact")(Content{})

	types := map[string]string{}
	var textareas int
	var submit *Node
	tree.walk(func(n *Node) {
		switch n.Kind {
		case KindInput:
			types[n.Props["name"].(string)] = n.Props["type"].(string)
		case KindTextarea:
			textareas++
		case KindButton:
			if n.Props["type"] == "submit" {
				submit = n
			}
		}
	})

	assert.Equal(t, "text", types["name"])
	assert.Equal(t, "email", types["email"])
	assert.Equal(t, "tel", types["phone"])
	assert.Equal(t, "text", types["budget"], "unknown fields fall back to generic inputs")
	assert.Equal(t, 1, textareas, "message renders as a textarea")

	require.NotNil(t, submit)
	assert.Equal(t, true, submit.Props["simulateSubmit"])
	assert.Equal(t, 2000, submit.Props["resetAfterMs"])
}

func TestFormGenerator_DefaultFields(t *testing.T) {
	req := ir.SectionRequirement{
		Layout:   ir.LayoutSingleColumn,
		Elements: []ir.ElementSpec{{Type: ir.ElementForm}},
	}

	tree := SynthesizeComponent(req, "Contact")(Content{})

	names := []string{}
	tree.walk(func(n *Node) {
		if n.Kind == KindInput || n.Kind == KindTextarea {
			names = append(names, n.Props["name"].(string))
		}
	})
	assert.Equal(t, []string{"name", "email", "message"}, names)
}

func TestStyleProps(t *testing.T) {
	assert.Nil(t, styleProps(ir.StyleModern))
	assert.Nil(t, styleProps(ir.StyleCorporate))
	assert.Equal(t, "#ffffff", styleProps(ir.StyleMinimal)["background"])
	assert.Equal(t, "serif", styleProps(ir.StyleElegant)["fontFamily"])
	assert.Contains(t, styleProps(ir.StyleCreative)["background"], "linear-gradient")
}

func TestSynthesizeComponent_Deterministic(t *testing.T) {
	req := analyzer.Analyze("team gallery with hover effects and a pie chart")
	content := Content{"heading": "About Us"}

	a := SynthesizeComponent(req, "About")(content)
	b := SynthesizeComponent(req, "About")(content)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same inputs produced different trees (-first +second):\n%s", diff)
	}
}

func TestSynthesizeSource_FormEmitsSimulatedSubmission(t *testing.T) {
	req := analyzer.Analyze("contact form with phone")
	src := SynthesizeSource(req, "ContactSection")

	assert.Contains(t, src, "import { useState } from \"react\";")
	assert.Contains(t, src, "export default function ContactSection()")
	assert.Contains(t, src, "setTimeout(() => setSubmitting(false), 2000);")
	assert.Contains(t, src, "Simulated submission")
	assert.Contains(t, src, `onSubmit={handleSubmit}`)
	assert.Contains(t, src, "disabled={submitting}")
}

func TestSynthesizeSource_CustomFragmentPassesThroughVerbatim(t *testing.T) {
	req := analyzer.Analyze("a special promo ribbon")
	src := SynthesizeSource(req, "Promo")

	assert.Contains(t, src, "a special promo ribbon")
	assert.NotContains(t, src, "useState", "no form, no state block")
}

// Every layout/style/element combination reachable from the vocab tables must
// survive source synthesis without panicking.
func TestSynthesizeSource_RoundTripOverVocabulary(t *testing.T) {
	descriptions := []string{
		"team with photos", "testimonials and reviews", "contact form",
		"4 column gallery", "video intro", "pie chart dashboard",
		"company timeline", "faq accordion", "tabbed specs", "image slider",
		"stats counters", "skill progress", "location map",
		"pricing plans", "blog articles", "product catalog", "something unique",
		"just words",
	}
	layoutWords := []string{"", "grid", "masonry", "two column", "three column", "split", "sidebar", "hero", "flex"}
	styleWords := []string{"", "minimal", "bold", "elegant", "playful", "corporate", "creative", "technical", "modern"}

	for _, d := range descriptions {
		for _, l := range layoutWords {
			for _, s := range styleWords {
				desc := strings.TrimSpace(strings.Join([]string{s, l, d}, " "))
				req := analyzer.Analyze(desc)
				src := SynthesizeSource(req, "Section")
				require.NotEmpty(t, src, "description: %q", desc)
				require.Contains(t, src, "export default function Section()", "description: %q", desc)
			}
		}
	}
}

func TestComponentName(t *testing.T) {
	assert.Equal(t, "HeroWithCta", ComponentName("hero-with-cta"))
	assert.Equal(t, "TeamMembers", ComponentName("team members"))
	assert.Equal(t, "GeneratedSection", ComponentName("!!!"))
	assert.Equal(t, "Faq2Section", ComponentName("faq2 section"))
}

func TestPlaceholders(t *testing.T) {
	node := PlaceholderNode("mystery-type")
	require.Len(t, node.Children, 1)
	assert.Contains(t, node.Children[0].Text, "mystery-type")

	src := PlaceholderSource("mystery-type")
	assert.Contains(t, src, "Section type not found: mystery-type")
}
