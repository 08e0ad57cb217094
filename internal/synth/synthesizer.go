package synth

import (
	"strings"
	"unicode"

	"siteforge/internal/ir"
)

// generatorFunc is one pure layout generator.
type generatorFunc func(req ir.SectionRequirement, content Content, st interactionState, name string) *Node

// SynthesizeComponent returns a constructor that renders the requirement as a
// component tree. The constructor is pure: same requirement and content bag,
// same tree.
func SynthesizeComponent(req ir.SectionRequirement, name string) ComponentConstructor {
	gen := pickGenerator(req)
	componentName := ComponentName(name)

	return func(content Content) *Node {
		if content == nil {
			content = Content{}
		}
		return gen(req, content, newInteractionState(req), componentName)
	}
}

// pickGenerator checks element-driven generators in a fixed precedence order
// before falling back to the declared layout. The precedence is a contract:
// a tabs element wins over everything, including the layout field.
func pickGenerator(req ir.SectionRequirement) generatorFunc {
	switch {
	case hasElement(req, ir.ElementTabs):
		return generateTabs
	case hasElement(req, ir.ElementAccordion):
		return generateAccordion
	case hasElement(req, ir.ElementTimeline):
		return generateTimeline
	case hasElement(req, ir.ElementCarousel):
		return generateCarousel
	case hasElement(req, ir.ElementForm):
		return generateForm
	case hasElement(req, ir.ElementCustom):
		return generateCustom
	}

	switch req.Layout {
	case ir.LayoutGrid, ir.LayoutMasonry:
		return generateGrid
	case ir.LayoutTwoColumn, ir.LayoutSplit:
		return generateTwoColumn
	case ir.LayoutThreeColumn:
		return generateThreeColumn
	case ir.LayoutHero:
		return generateHero
	case ir.LayoutSidebar:
		return generateSidebar
	case ir.LayoutCustom:
		return generateCustom
	default:
		return generateSingleColumn
	}
}

func hasElement(req ir.SectionRequirement, t ir.ElementType) bool {
	for _, el := range req.Elements {
		if el.Type == t {
			return true
		}
	}
	return false
}

// ComponentName normalizes an arbitrary name or typeKey into a PascalCase
// component identifier.
func ComponentName(name string) string {
	var b strings.Builder
	upper := true
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			if upper {
				b.WriteRune(unicode.ToUpper(r))
				upper = false
			} else {
				b.WriteRune(r)
			}
		case unicode.IsDigit(r):
			b.WriteRune(r)
			upper = true
		default:
			upper = true
		}
	}
	if b.Len() == 0 {
		return "GeneratedSection"
	}
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
