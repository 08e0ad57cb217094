package registry

import (
	"context"
	"sort"

	"siteforge/internal/analyzer"
	"siteforge/internal/synth"
	"siteforge/internal/vocab"
)

// canonicalNameExceptions holds the typeKeys whose component names do not
// follow the kebab-to-Pascal-plus-suffix convention. Keep this table small
// and explicit; it is part of the resolution contract.
var canonicalNameExceptions = map[string]string{
	"hero-with-cta": "HeroBanner",
	"faq-accordion": "FAQAccordion",
}

// CanonicalName derives the component name for a catalog typeKey:
// kebab-case to PascalCase plus the Section suffix, with the explicit
// exception table applied first.
func CanonicalName(typeKey string) string {
	if name, ok := canonicalNameExceptions[typeKey]; ok {
		return name
	}
	return synth.ComponentName(typeKey) + "Section"
}

// StaticCatalog is the in-memory catalog source: one factory per known
// section template, keyed by typeKey. The mapping is built from the template
// tables at construction, so an unknown key can never be looked up by name
// derivation at runtime.
type StaticCatalog struct {
	factories map[string]func(ctx context.Context) (*Implementation, error)
}

// NewStaticCatalog builds the catalog over every section template.
func NewStaticCatalog() *StaticCatalog {
	c := &StaticCatalog{factories: make(map[string]func(ctx context.Context) (*Implementation, error), len(vocab.SectionTemplates))}
	for typeKey := range vocab.SectionTemplates {
		c.factories[typeKey] = templateFactory(typeKey)
	}
	return c
}

// Load satisfies CatalogSource. Unknown keys resolve to (nil, nil) so the
// registry can fall through to the synthesized store.
func (c *StaticCatalog) Load(ctx context.Context, typeKey string) (*Implementation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	factory, ok := c.factories[typeKey]
	if !ok {
		return nil, nil
	}
	return factory(ctx)
}

// TypeKeys returns the catalog's keys, sorted.
func (c *StaticCatalog) TypeKeys() []string {
	out := make([]string, 0, len(c.factories))
	for k := range c.factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// templateFactory expands the template's brief through the analyzer and
// synthesizes the implementation on first load.
func templateFactory(typeKey string) func(ctx context.Context) (*Implementation, error) {
	return func(ctx context.Context) (*Implementation, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tpl := vocab.SectionTemplates[typeKey]
		name := CanonicalName(typeKey)
		req := analyzer.Analyze(tpl.Brief)
		return &Implementation{
			TypeKey:     typeKey,
			Name:        name,
			Construct:   synth.SynthesizeComponent(req, name),
			Source:      synth.SynthesizeSourceWithContent(req, name, synth.Content(tpl.Seed)),
			Requirement: req,
		}, nil
	}
}
