// Package analyzer turns a free-text section description into a typed
// SectionRequirement. The analysis is deterministic keyword matching over the
// vocab tables; there is no statistical NLP anywhere in it.
package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"siteforge/internal/ir"
	"siteforge/internal/vocab"
)

var (
	digitColumnsRe = regexp.MustCompile(`(\d+)\s*-?\s*columns?`)
	wordColumnsRe  = regexp.MustCompile(`\b(one|two|three|four|five|six)\s*-?\s*columns?`)

	mustClauseRe   = regexp.MustCompile(`must[^.;!?]*`)
	needClauseRe   = regexp.MustCompile(`need[^.;!?]*`)
	shouldClauseRe = regexp.MustCompile(`should[^.;!?]*`)
)

// customFragmentTemplate is the placeholder source attached to a custom
// element. The original description is interpolated verbatim.
const customFragmentTemplate = `<Container padding="lg">
  <Heading level={2}>Custom Section</Heading>
  <Text>%s</Text>
</Container>`

// Analyze never fails: empty or unrecognized input degrades to a single
// flexible text element with default layout and style.
func Analyze(description string) ir.SectionRequirement {
	lower := strings.ToLower(description)

	req := ir.SectionRequirement{
		SourceText: description,
		Layout:     inferLayout(lower),
		Style:      inferStyle(lower),
	}

	req.Elements = append(req.Elements, detectCommonElements(lower)...)
	req.Elements = append(req.Elements, detectAdvancedElements(lower)...)
	req.Interactions = detectInteractions(lower)
	req.Elements = append(req.Elements, detectBusinessElements(lower, description)...)

	if len(req.Elements) == 0 {
		req.Elements = fallbackElements(lower)
	}

	req.CustomRequirements = extractCustomRequirements(lower)
	return req
}

// inferLayout evaluates every rule in order; the last match overwrites the
// running value. Short-circuiting here changes observable behavior.
func inferLayout(lower string) ir.Layout {
	layout := ir.LayoutSingleColumn
	for _, rule := range vocab.LayoutRules {
		if containsAny(lower, rule.Keywords) {
			layout = rule.Layout
		}
	}
	return layout
}

func inferStyle(lower string) ir.Style {
	style := ir.StyleModern
	for _, rule := range vocab.StyleRules {
		if containsAny(lower, rule.Keywords) {
			style = rule.Style
		}
	}
	return style
}

// detectCommonElements is the first detection pass: team, reviews, contact
// forms, galleries, video. Passes only ever append, so a description can
// legitimately produce several elements.
func detectCommonElements(lower string) []ir.ElementSpec {
	var out []ir.ElementSpec

	if containsAny(lower, []string{"team", "staff"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementCard,
			ContentLabel: "team member cards",
			Card: &ir.CardProps{
				ShowImage: true,
				ShowBio:   strings.Contains(lower, "bio"),
			},
		})
	}

	if containsAny(lower, []string{"review", "testimonial"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementCard,
			ContentLabel: "customer testimonial cards",
			Card:         &ir.CardProps{ShowRating: true},
		})
	}

	if containsAny(lower, []string{"contact", "form"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementForm,
			ContentLabel: "contact form",
			Form:         &ir.FormProps{Fields: extractFormFields(lower)},
		})
	}

	if containsAny(lower, []string{"gallery", "images"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementImage,
			ContentLabel: "image gallery",
			Gallery:      &ir.GalleryProps{Columns: extractColumns(lower)},
		})
	}

	if strings.Contains(lower, "video") {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementVideo,
			ContentLabel: "embedded video player",
		})
	}

	return out
}

// detectAdvancedElements is the second pass: charts, timelines, accordions,
// tabs, carousels, counters, progress bars, maps.
func detectAdvancedElements(lower string) []ir.ElementSpec {
	var out []ir.ElementSpec

	if containsAny(lower, []string{"chart", "graph"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementChart,
			ContentLabel: "data chart",
			Chart:        &ir.ChartProps{Kind: chartKind(lower)},
		})
	}
	if containsAny(lower, []string{"timeline", "milestones", "journey"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementTimeline, ContentLabel: "event timeline"})
	}
	if containsAny(lower, []string{"accordion", "faq", "collapsible"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementAccordion, ContentLabel: "expandable question list"})
	}
	if containsAny(lower, []string{"tabs", "tabbed"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementTabs, ContentLabel: "tabbed content panels"})
	}
	if containsAny(lower, []string{"carousel", "slider", "slideshow"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementCarousel, ContentLabel: "content carousel"})
	}
	if containsAny(lower, []string{"counter", "statistic", "stats"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementCounter, ContentLabel: "animated stat counters"})
	}
	if containsAny(lower, []string{"progress", "skill"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementProgress, ContentLabel: "progress indicators"})
	}
	if containsAny(lower, []string{"map", "location", "directions"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementMap, ContentLabel: "embedded location map"})
	}

	return out
}

// chartKind picks the sub-type by ordered keyword priority, default bar.
func chartKind(lower string) ir.ChartKind {
	for _, p := range vocab.ChartKindPriority {
		if strings.Contains(lower, p.Keyword) {
			return p.Kind
		}
	}
	return ir.ChartBar
}

// detectInteractions is the third pass. It populates interactions, not
// elements, and runs regardless of what the element passes found.
func detectInteractions(lower string) []ir.InteractionSpec {
	var out []ir.InteractionSpec

	if containsAny(lower, []string{"modal", "popup", "lightbox"}) {
		out = append(out, ir.InteractionSpec{Trigger: ir.TriggerClick, Action: ir.ActionModal})
	}
	if strings.Contains(lower, "hover") {
		out = append(out, ir.InteractionSpec{Trigger: ir.TriggerHover, Action: ir.ActionAnimation})
	}
	if containsAny(lower, []string{"scroll", "appear"}) {
		out = append(out, ir.InteractionSpec{Trigger: ir.TriggerScroll, Action: ir.ActionAnimation})
	}
	if strings.Contains(lower, "submit") {
		out = append(out, ir.InteractionSpec{Trigger: ir.TriggerClick, Action: ir.ActionFormSubmit})
	}
	if containsAny(lower, []string{"load", "fetch", "api"}) {
		out = append(out, ir.InteractionSpec{Trigger: ir.TriggerLoad, Action: ir.ActionAPICall})
	}

	return out
}

// detectBusinessElements is the fourth pass: pricing, blog, products, plus
// the final generic custom cue that carries a placeholder source fragment.
func detectBusinessElements(lower, original string) []ir.ElementSpec {
	var out []ir.ElementSpec

	if containsAny(lower, []string{"pricing", "plan"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementCard,
			ContentLabel: "pricing plan cards",
			Card:         &ir.CardProps{},
		})
	}
	if containsAny(lower, []string{"blog", "article"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementList, ContentLabel: "article previews"})
	}
	if containsAny(lower, []string{"product", "catalog"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementCard,
			ContentLabel: "product cards",
			Card:         &ir.CardProps{ShowImage: true, AddToCart: true},
		})
	}
	if containsAny(lower, []string{"custom", "unique", "special"}) {
		out = append(out, ir.ElementSpec{
			Type:         ir.ElementCustom,
			ContentLabel: "custom content block",
			CustomSource: fmt.Sprintf(customFragmentTemplate, original),
		})
	}

	return out
}

// fallbackElements runs only when all four passes produced nothing.
func fallbackElements(lower string) []ir.ElementSpec {
	var out []ir.ElementSpec

	if containsAny(lower, []string{"show", "display"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementText, ContentLabel: "content display"})
	}
	if containsAny(lower, []string{"list", "items"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementList, ContentLabel: "item list"})
	}
	if containsAny(lower, []string{"button", "click", "action"}) {
		out = append(out, ir.ElementSpec{Type: ir.ElementButton, ContentLabel: "action button"})
	}
	if len(out) == 0 {
		out = append(out, ir.ElementSpec{Type: ir.ElementText, ContentLabel: "flexible content area"})
	}
	return out
}

// extractFormFields always includes name and email, then appends each
// optional field whose keyword appears in the description.
func extractFormFields(lower string) []string {
	fields := []string{"name", "email"}
	for _, f := range vocab.OptionalFormFields {
		if strings.Contains(lower, f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// extractColumns prefers a digit count ("4 column"), then a spelled-out one
// ("four column"), then the default.
func extractColumns(lower string) int {
	if m := digitColumnsRe.FindStringSubmatch(lower); m != nil {
		n := 0
		fmt.Sscanf(m[1], "%d", &n)
		if n > 0 {
			return n
		}
	}
	if m := wordColumnsRe.FindStringSubmatch(lower); m != nil {
		if n, ok := vocab.NumberWords[m[1]]; ok {
			return n
		}
	}
	return vocab.DefaultGalleryColumns
}

// extractCustomRequirements joins all must/need/should clauses with "; ".
// It runs independently of the element passes.
func extractCustomRequirements(lower string) string {
	var clauses []string
	for _, re := range []*regexp.Regexp{mustClauseRe, needClauseRe, shouldClauseRe} {
		for _, m := range re.FindAllString(lower, -1) {
			m = strings.TrimSpace(m)
			if m != "" {
				clauses = append(clauses, m)
			}
		}
	}
	return strings.Join(clauses, "; ")
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
