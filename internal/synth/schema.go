package synth

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"siteforge/internal/ir"
)

// CompileContentSchema turns a generated section's content schema into a real
// JSON Schema so downstream editors can validate authored content against it.
func CompileContentSchema(spec ir.GeneratedSectionSpec) (*jsonschema.Schema, error) {
	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"additionalProperties": true,
	}

	props := make(map[string]any, len(spec.ContentSchema))
	var required []string
	for name, field := range spec.ContentSchema {
		p := map[string]any{"type": string(field.Kind)}
		if len(field.Enum) > 0 {
			vals := make([]any, 0, len(field.Enum))
			for _, e := range field.Enum {
				vals = append(vals, e)
			}
			p["enum"] = vals
		}
		props[name] = p
		if field.Required {
			required = append(required, name)
		}
	}
	doc["properties"] = props
	if len(required) > 0 {
		doc["required"] = required
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal content schema for %s: %w", spec.ID, err)
	}

	compiler := jsonschema.NewCompiler()
	url := "siteforge://sections/" + spec.ID + ".json"
	if err := compiler.AddResource(url, strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("add schema resource for %s: %w", spec.ID, err)
	}
	sch, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile content schema for %s: %w", spec.ID, err)
	}
	return sch, nil
}

// ValidateSeed checks the default content seed against the compiled content
// schema. A generated spec whose own seed does not validate is a bug in the
// template tables.
func ValidateSeed(spec ir.GeneratedSectionSpec) error {
	sch, err := CompileContentSchema(spec)
	if err != nil {
		return err
	}

	// Round-trip through JSON so the validator sees canonical value types.
	raw, err := json.Marshal(spec.DefaultContent)
	if err != nil {
		return fmt.Errorf("marshal default content for %s: %w", spec.ID, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshal default content for %s: %w", spec.ID, err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("default content for %s does not match its schema: %w", spec.ID, err)
	}
	return nil
}
