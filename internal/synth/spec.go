package synth

import (
	"fmt"
	"time"

	"siteforge/internal/ir"
	"siteforge/internal/vocab"
)

// GenerateFromIntent builds the final synthesis artifact for one planned
// intent. The requirement is the intent expanded through the analyzer (the
// caller owns that step); template metadata fills in the content schema, the
// default content seed, and the styling variants.
func GenerateFromIntent(intent ir.SectionIntent, req ir.SectionRequirement, now time.Time) ir.GeneratedSectionSpec {
	name := ComponentName(intent.TypeKey)

	spec := ir.GeneratedSectionSpec{
		ID:   fmt.Sprintf("%s-%d", intent.TypeKey, now.UnixMilli()),
		Name: name,
	}

	tpl, ok := vocab.SectionTemplates[intent.TypeKey]
	if ok {
		spec.ContentSchema = schemaFromTemplate(tpl)
		spec.DefaultContent = tpl.Seed
		spec.Styling = ir.StylingVariants{
			Variants:       tpl.Variations,
			DefaultVariant: tpl.DefaultVariation,
		}
		spec.ComponentSource = SynthesizeSourceWithContent(req, name, Content(tpl.Seed))
		return spec
	}

	spec.ContentSchema = map[string]ir.ContentField{
		"heading": {Kind: ir.FieldString, Required: true},
		"items":   {Kind: ir.FieldArray},
	}
	spec.DefaultContent = map[string]any{"heading": name}
	spec.Styling = ir.StylingVariants{
		Variants:       []string{"default"},
		DefaultVariant: "default",
	}
	spec.ComponentSource = SynthesizeSource(req, name)
	return spec
}

func schemaFromTemplate(tpl vocab.SectionTemplate) map[string]ir.ContentField {
	out := make(map[string]ir.ContentField, len(tpl.Fields))
	for _, f := range tpl.Fields {
		out[f.Name] = ir.ContentField{
			Kind:     f.Kind,
			Required: f.Required,
			Enum:     f.Enum,
		}
	}
	return out
}
