package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"siteforge/internal/analyzer"
	"siteforge/internal/ir"
	"siteforge/internal/planner"
	"siteforge/internal/registry"
	"siteforge/internal/synth"
	"siteforge/internal/vocab"
)

// Page expands a page-level brief into generated section specs and registers
// each one so the assembly layer can resolve them by type key.
type Page struct {
	reg *registry.Registry
	log *zap.Logger
	now func() time.Time
}

// NewPage builds the page pipeline. A nil logger logs nowhere.
func NewPage(reg *registry.Registry, log *zap.Logger) *Page {
	if log == nil {
		log = zap.NewNop()
	}
	return &Page{reg: reg, log: log, now: time.Now}
}

// Generate plans the brief, expands each intent into a requirement, and
// synthesizes one generated spec per intent. Specs whose seed content fails
// its own schema are logged and still returned; the schema check guards the
// template tables, not the caller.
func (p *Page) Generate(ctx context.Context, brief ir.UserRequirement) ([]ir.GeneratedSectionSpec, error) {
	intents := planner.Plan(brief)

	specs := make([]ir.GeneratedSectionSpec, 0, len(intents))
	for _, intent := range intents {
		if err := ctx.Err(); err != nil {
			return specs, err
		}

		req := expandIntent(intent)
		spec := synth.GenerateFromIntent(intent, req, p.now())

		if err := synth.ValidateSeed(spec); err != nil {
			p.log.Warn("generated seed content failed its schema",
				zap.String("type_key", intent.TypeKey), zap.Error(err))
		}

		p.reg.Register(&registry.Implementation{
			TypeKey:     intent.TypeKey,
			Name:        spec.Name,
			Construct:   synth.SynthesizeComponent(req, spec.Name),
			Source:      spec.ComponentSource,
			Requirement: req,
		})
		specs = append(specs, spec)
	}

	p.log.Info("page plan generated",
		zap.Int("sections", len(specs)),
		zap.String("industry", brief.Industry))
	return specs, nil
}

// expandIntent turns a planned intent into a full requirement, preferring
// the template's canned brief over the bare type key.
func expandIntent(intent ir.SectionIntent) ir.SectionRequirement {
	if tpl, ok := vocab.SectionTemplates[intent.TypeKey]; ok {
		return analyzer.Analyze(tpl.Brief)
	}
	return analyzer.Analyze(intent.TypeKey)
}
