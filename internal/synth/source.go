package synth

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"siteforge/internal/ir"
)

// frameworkImport is the framework's versioned import surface. The named
// primitives are a stability contract with the framework side.
const frameworkImport = `import { Container, Heading, Text, Button, Grid, Card, Icon, Avatar, Input, Textarea } from "@siteforge/ui";`

var kindTags = map[string]string{
	KindContainer: "Container",
	KindHeading:   "Heading",
	KindText:      "Text",
	KindButton:    "Button",
	KindGrid:      "Grid",
	KindCard:      "Card",
	KindIcon:      "Icon",
	KindAvatar:    "Avatar",
	KindInput:     "Input",
	KindTextarea:  "Textarea",
}

// SynthesizeSource emits component source text for the requirement. The text
// is serialized from the same tree the component constructor builds; it is
// never parsed, compiled, or otherwise validated here — a malformed fragment
// in a custom element passes through untouched. That gap is deliberate.
func SynthesizeSource(req ir.SectionRequirement, name string) string {
	return SynthesizeSourceWithContent(req, name, Content{})
}

// SynthesizeSourceWithContent emits source with the given content bag baked
// in as literal defaults.
func SynthesizeSourceWithContent(req ir.SectionRequirement, name string, content Content) string {
	componentName := ComponentName(name)
	tree := SynthesizeComponent(req, componentName)(content)
	hasForm := tree.containsKind(KindInput) || tree.containsKind(KindTextarea)

	var b strings.Builder
	if hasForm {
		b.WriteString("import { useState } from \"react\";\n")
	}
	b.WriteString(frameworkImport)
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("export default function %s() {\n", componentName))
	if hasForm {
		b.WriteString("  const [submitting, setSubmitting] = useState(false);\n")
		b.WriteString("  const handleSubmit = (event) => {\n")
		b.WriteString("    event.preventDefault();\n")
		b.WriteString("    setSubmitting(true);\n")
		b.WriteString("    // Simulated submission: no request is sent.\n")
		b.WriteString("    setTimeout(() => setSubmitting(false), 2000);\n")
		b.WriteString("  };\n\n")
	}
	b.WriteString("  return (\n")
	renderNode(&b, tree, 2)
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}

// PlaceholderSource is the source-text form of the "type not found" fallback.
func PlaceholderSource(typeKey string) string {
	var b strings.Builder
	b.WriteString(frameworkImport)
	b.WriteString("\n\n")
	b.WriteString("export default function MissingSection() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <Container role=\"placeholder\">\n")
	b.WriteString(fmt.Sprintf("      <Text>Section type not found: %s</Text>\n", typeKey))
	b.WriteString("    </Container>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n")
	return b.String()
}

func renderNode(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	pad := strings.Repeat("  ", depth)

	// Custom fragments pass through verbatim.
	if src, ok := n.Props["source"].(string); ok && n.Props["role"] == "custom" {
		for _, line := range strings.Split(strings.TrimRight(src, "\n"), "\n") {
			b.WriteString(pad + line + "\n")
		}
		return
	}

	tag := kindTags[n.Kind]
	if tag == "" {
		tag = "Container"
	}

	attrs := renderAttrs(n)
	open := "<" + tag + attrs

	submitButton := n.Kind == KindButton && n.Props["type"] == "submit"

	if len(n.Children) == 0 && n.Text == "" && !submitButton {
		b.WriteString(pad + open + " />\n")
		return
	}

	b.WriteString(pad + open + ">\n")
	if submitButton {
		b.WriteString(pad + "  {submitting ? \"Submitting...\" : " + jsString(buttonLabel(n)) + "}\n")
	} else {
		if n.Text != "" {
			b.WriteString(pad + "  " + n.Text + "\n")
		}
		for _, c := range n.Children {
			renderNode(b, c, depth+1)
		}
	}
	b.WriteString(pad + "</" + tag + ">\n")
}

// renderAttrs serializes props in sorted key order for deterministic output.
// Tree-mode simulation flags become the submitting state binding instead of
// literal attributes.
func renderAttrs(n *Node) string {
	if len(n.Props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(n.Props))
	for k := range n.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	if n.Kind == KindContainer && n.Props["role"] == "form" {
		b.WriteString(` as="form" onSubmit={handleSubmit}`)
	}
	for _, k := range keys {
		v := n.Props[k]
		switch k {
		case "simulateSubmit":
			b.WriteString(" disabled={submitting}")
			continue
		case "resetAfterMs":
			continue
		case "source":
			continue
		}
		switch val := v.(type) {
		case string:
			if val == "" {
				continue
			}
			b.WriteString(fmt.Sprintf(" %s=%s", k, jsString(val)))
		case bool:
			if val {
				b.WriteString(" " + k)
			}
		case int:
			b.WriteString(fmt.Sprintf(" %s={%d}", k, val))
		default:
			raw, err := json.Marshal(val)
			if err != nil {
				continue
			}
			b.WriteString(fmt.Sprintf(" %s={%s}", k, raw))
		}
	}
	return b.String()
}

func buttonLabel(n *Node) string {
	for _, c := range n.Children {
		if c.Text != "" {
			return c.Text
		}
	}
	return "Submit"
}

func jsString(s string) string {
	raw, err := json.Marshal(s)
	if err != nil {
		return `"Submit"`
	}
	return string(raw)
}
