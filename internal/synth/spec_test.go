package synth

import (
	"testing"
	"time"

	"siteforge/internal/analyzer"
	"siteforge/internal/ir"
	"siteforge/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expandIntent(t *testing.T, typeKey string) (ir.SectionIntent, ir.SectionRequirement) {
	t.Helper()
	tpl, ok := vocab.SectionTemplates[typeKey]
	require.True(t, ok, "template %q missing", typeKey)
	intent := ir.SectionIntent{TypeKey: typeKey, Purpose: tpl.Purpose, LayoutHint: tpl.Hint}
	return intent, analyzer.Analyze(tpl.Brief)
}

func TestGenerateFromIntent_TeamMembers(t *testing.T) {
	intent, req := expandIntent(t, "team-members")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	spec := GenerateFromIntent(intent, req, now)

	assert.Equal(t, "team-members-1772366400000", spec.ID)
	assert.Equal(t, "TeamMembers", spec.Name)
	assert.Contains(t, spec.ComponentSource, "export default function TeamMembers()")

	require.Contains(t, spec.ContentSchema, "members")
	assert.Equal(t, ir.FieldArray, spec.ContentSchema["members"].Kind)
	assert.True(t, spec.ContentSchema["members"].Required)

	assert.Equal(t, "cards", spec.Styling.DefaultVariant)
	assert.Contains(t, spec.Styling.Variants, "circles")
	assert.NotEmpty(t, spec.DefaultContent["members"])
}

func TestGenerateFromIntent_UnknownTypeKeyFallsBack(t *testing.T) {
	intent := ir.SectionIntent{TypeKey: "mystery-widget"}
	req := analyzer.Analyze("mystery widget")

	spec := GenerateFromIntent(intent, req, time.Now())

	assert.Equal(t, "MysteryWidget", spec.Name)
	require.Contains(t, spec.ContentSchema, "heading")
	assert.Equal(t, []string{"default"}, spec.Styling.Variants)
	assert.NotEmpty(t, spec.ComponentSource)
}

// Every template's seed must satisfy the schema derived from its own fields.
func TestTemplateSeedsValidateAgainstTheirSchemas(t *testing.T) {
	for typeKey := range vocab.SectionTemplates {
		intent, req := expandIntent(t, typeKey)
		spec := GenerateFromIntent(intent, req, time.Now())

		require.NoError(t, ValidateSeed(spec), "typeKey %q", typeKey)
	}
}

func TestCompileContentSchema_RejectsBadContent(t *testing.T) {
	intent, req := expandIntent(t, "menu-showcase")
	spec := GenerateFromIntent(intent, req, time.Now())

	sch, err := CompileContentSchema(spec)
	require.NoError(t, err)

	// Missing the required heading, and currency outside its enum.
	err = sch.Validate(map[string]any{"items": []any{}, "currency": "JPY"})
	assert.Error(t, err)
}
