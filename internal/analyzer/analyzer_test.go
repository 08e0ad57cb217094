package analyzer

import (
	"testing"

	"siteforge/internal/ir"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_UnrecognizedInputDegradesToDefaults(t *testing.T) {
	for _, desc := range []string{"", "hello there", "qwerty asdf"} {
		req := Analyze(desc)

		require.Len(t, req.Elements, 1, "description: %q", desc)
		assert.Equal(t, ir.ElementText, req.Elements[0].Type)
		assert.Equal(t, "flexible content area", req.Elements[0].ContentLabel)
		assert.Equal(t, ir.LayoutSingleColumn, req.Layout)
		assert.Equal(t, ir.StyleModern, req.Style)
		assert.Empty(t, req.Interactions)
	}
}

func TestAnalyze_TeamYieldsSingleCardWithImage(t *testing.T) {
	req := Analyze("a team page")

	require.Len(t, req.Elements, 1)
	assert.Equal(t, ir.ElementCard, req.Elements[0].Type)
	require.NotNil(t, req.Elements[0].Card)
	assert.True(t, req.Elements[0].Card.ShowImage)
}

func TestAnalyze_TeamWithPhotosAndBios(t *testing.T) {
	req := Analyze("Create a team section with member photos and bios")

	assert.Equal(t, ir.LayoutSingleColumn, req.Layout)
	require.Len(t, req.Elements, 1)
	el := req.Elements[0]
	assert.Equal(t, ir.ElementCard, el.Type)
	require.NotNil(t, el.Card)
	assert.True(t, el.Card.ShowImage)
	assert.True(t, el.Card.ShowBio)
}

func TestAnalyze_ColumnCountExtraction(t *testing.T) {
	cases := []struct {
		desc string
		want int
	}{
		{"4 column gallery", 4},
		{"four column gallery", 4},
		{"gallery", 3},
		{"a 2-column gallery of images", 2},
	}
	for _, c := range cases {
		req := Analyze(c.desc)
		require.Len(t, req.Elements, 1, "description: %q", c.desc)
		require.NotNil(t, req.Elements[0].Gallery, "description: %q", c.desc)
		assert.Equal(t, c.want, req.Elements[0].Gallery.Columns, "description: %q", c.desc)
	}
}

// The layout rule list is evaluated in full with last-match-wins semantics.
// "hero" sits after "two column" in the fixed order, so a description with
// both resolves to hero. This pins the rule ordering contract.
func TestAnalyze_LastLayoutRuleWins(t *testing.T) {
	req := Analyze("I need a two column hero with a contact form")

	assert.Equal(t, ir.LayoutHero, req.Layout)

	var form *ir.ElementSpec
	for i := range req.Elements {
		if req.Elements[i].Type == ir.ElementForm {
			form = &req.Elements[i]
		}
	}
	require.NotNil(t, form)
	assert.Equal(t, []string{"name", "email"}, form.Form.Fields)
}

func TestAnalyze_LastStyleRuleWins(t *testing.T) {
	// "minimal" is evaluated before "technical"; the later rule overwrites.
	req := Analyze("a minimal technical docs panel")
	assert.Equal(t, ir.StyleTechnical, req.Style)
}

func TestAnalyze_FormFieldExtraction(t *testing.T) {
	req := Analyze("contact form with phone and budget and a message box")

	require.Len(t, req.Elements, 1)
	require.NotNil(t, req.Elements[0].Form)
	assert.Equal(t, []string{"name", "email", "phone", "budget", "message"}, req.Elements[0].Form.Fields)
}

func TestAnalyze_ChartKindPriority(t *testing.T) {
	cases := []struct {
		desc string
		want ir.ChartKind
	}{
		{"a chart", ir.ChartBar},
		{"a pie chart", ir.ChartPie},
		{"scatter plot graph", ir.ChartScatter},
		// bar outranks line when both appear
		{"bar and line chart", ir.ChartBar},
	}
	for _, c := range cases {
		req := Analyze(c.desc)
		require.NotEmpty(t, req.Elements, "description: %q", c.desc)
		require.NotNil(t, req.Elements[0].Chart, "description: %q", c.desc)
		assert.Equal(t, c.want, req.Elements[0].Chart.Kind, "description: %q", c.desc)
	}
}

func TestAnalyze_PassesAppendInOrder(t *testing.T) {
	req := Analyze("team gallery with a timeline and pricing plans")

	require.Len(t, req.Elements, 4)
	assert.Equal(t, ir.ElementCard, req.Elements[0].Type)     // common: team
	assert.Equal(t, ir.ElementImage, req.Elements[1].Type)    // common: gallery
	assert.Equal(t, ir.ElementTimeline, req.Elements[2].Type) // advanced
	assert.Equal(t, ir.ElementCard, req.Elements[3].Type)     // business: pricing
	assert.Equal(t, "pricing plan cards", req.Elements[3].ContentLabel)
}

func TestAnalyze_InteractionsIndependentOfElements(t *testing.T) {
	req := Analyze("open details in a modal on hover")

	assert.Contains(t, req.Interactions, ir.InteractionSpec{Trigger: ir.TriggerClick, Action: ir.ActionModal})
	assert.Contains(t, req.Interactions, ir.InteractionSpec{Trigger: ir.TriggerHover, Action: ir.ActionAnimation})
}

func TestAnalyze_CustomElementCarriesSourceFragment(t *testing.T) {
	req := Analyze("a unique widget just for us")

	require.Len(t, req.Elements, 1)
	el := req.Elements[0]
	assert.Equal(t, ir.ElementCustom, el.Type)
	assert.Contains(t, el.CustomSource, "a unique widget just for us")
	assert.Contains(t, el.CustomSource, "<Container")
}

func TestAnalyze_FallbackInference(t *testing.T) {
	req := Analyze("display the announcement")
	require.Len(t, req.Elements, 1)
	assert.Equal(t, ir.ElementText, req.Elements[0].Type)
	assert.Equal(t, "content display", req.Elements[0].ContentLabel)

	req = Analyze("a few items to browse")
	require.Len(t, req.Elements, 1)
	assert.Equal(t, ir.ElementList, req.Elements[0].Type)
}

func TestAnalyze_CustomRequirementClauses(t *testing.T) {
	req := Analyze("Gallery. Must load fast; should work on mobile")

	assert.Equal(t, "must load fast; should work on mobile", req.CustomRequirements)
}

func TestAnalyze_NoClausesMeansEmptyString(t *testing.T) {
	req := Analyze("a simple gallery")
	assert.Equal(t, "", req.CustomRequirements)
}
