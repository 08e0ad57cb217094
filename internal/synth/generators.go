package synth

import (
	"fmt"

	"siteforge/internal/ir"
)

// interactionState carries the interaction-derived rendering decisions local
// to one synthesis call. It never leaks outside the generated tree.
type interactionState struct {
	hoverLift bool
}

func newInteractionState(req ir.SectionRequirement) interactionState {
	st := interactionState{}
	for _, in := range req.Interactions {
		if in.Trigger == ir.TriggerHover {
			st.hoverLift = true
		}
	}
	return st
}

// contentItemKeys are checked in order when a generator needs a list of
// content items from the bag.
var contentItemKeys = []string{
	"items", "members", "products", "plans", "reviews", "projects",
	"services", "images", "questions",
}

func contentItems(content Content) []map[string]any {
	for _, key := range contentItemKeys {
		raw, ok := content[key].([]any)
		if !ok {
			continue
		}
		out := make([]map[string]any, 0, len(raw))
		for _, r := range raw {
			if m, ok := r.(map[string]any); ok {
				out = append(out, m)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	// Plausible placeholders so an empty bag still renders a full section.
	return []map[string]any{
		{"title": "First item", "description": "Placeholder content"},
		{"title": "Second item", "description": "Placeholder content"},
		{"title": "Third item", "description": "Placeholder content"},
	}
}

func contentString(content Content, key, fallback string) string {
	if s, ok := content[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func itemString(item map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := item[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// sectionRoot is the shared outer container every generator starts from.
func sectionRoot(req ir.SectionRequirement, name string, children ...*Node) *Node {
	props := map[string]any{"section": name}
	props = mergeProps(props, styleProps(req.Style))
	return newNode(KindContainer, props, children...)
}

// --- layout generators -------------------------------------------------------

func generateSingleColumn(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	children := []*Node{headingNode(2, contentString(content, "heading", name))}
	for _, el := range req.Elements {
		children = append(children, elementNode(el, content, st))
	}
	return sectionRoot(req, name, children...)
}

func generateTwoColumn(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	return generateColumns(req, content, st, name, 2)
}

func generateThreeColumn(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	return generateColumns(req, content, st, name, 3)
}

func generateColumns(req ir.SectionRequirement, content Content, st interactionState, name string, columns int) *Node {
	cells := make([]*Node, 0, len(req.Elements))
	for _, el := range req.Elements {
		cells = append(cells, elementNode(el, content, st))
	}
	grid := newNode(KindGrid, map[string]any{"columns": columns}, cells...)
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		grid,
	)
}

// generateGrid branches on the dominant element: cards render one card per
// content item, counters render one stat block per item, anything else gets
// the generic grid.
func generateGrid(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	dominant := dominantElement(req)
	items := contentItems(content)

	var cells []*Node
	switch {
	case dominant != nil && dominant.Type == ir.ElementCard:
		for _, item := range items {
			cells = append(cells, cardNode(*dominant, item, st))
		}
	case dominant != nil && dominant.Type == ir.ElementCounter:
		for _, item := range items {
			cells = append(cells, statNode(item))
		}
	default:
		for _, item := range items {
			cells = append(cells, newNode(KindCard, cardProps(st),
				headingNode(3, itemString(item, "title", "name")),
				textNode(itemString(item, "description", "text")),
			))
		}
	}

	columns := gridColumns(req)
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		newNode(KindGrid, map[string]any{"columns": columns}, cells...),
	)
}

func generateHero(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	children := []*Node{
		headingNode(1, contentString(content, "title", contentString(content, "heading", name))),
		textNode(contentString(content, "subtitle", "")),
		newNode(KindButton, map[string]any{
			"href":    contentString(content, "ctaLink", "#"),
			"variant": "primary",
		}, textNode(contentString(content, "ctaText", "Learn More"))),
	}
	root := sectionRoot(req, name, children...)
	root.Props = mergeProps(root.Props, map[string]any{"fullWidth": true, "align": "center"})
	if bg := contentString(content, "backgroundImage", ""); bg != "" {
		root.Props["backgroundImage"] = bg
	}
	return root
}

func generateSidebar(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	var aside, main []*Node
	for i, el := range req.Elements {
		node := elementNode(el, content, st)
		if i == 0 {
			aside = append(aside, node)
			continue
		}
		main = append(main, node)
	}
	if len(main) == 0 {
		main = append(main, textNode(contentString(content, "heading", name)))
	}
	return sectionRoot(req, name,
		newNode(KindGrid, map[string]any{"columns": 2, "template": "sidebar"},
			newNode(KindContainer, map[string]any{"role": "sidebar"}, aside...),
			newNode(KindContainer, map[string]any{"role": "main"}, main...),
		),
	)
}

func generateTabs(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	items := contentItems(content)

	bar := make([]*Node, 0, len(items))
	panels := make([]*Node, 0, len(items))
	for i, item := range items {
		label := itemString(item, "title", "name", "q")
		if label == "" {
			label = fmt.Sprintf("Tab %d", i+1)
		}
		bar = append(bar, newNode(KindButton, map[string]any{"role": "tab", "index": i}, textNode(label)))
		panels = append(panels, newNode(KindContainer, map[string]any{"role": "tabpanel", "index": i},
			textNode(itemString(item, "description", "text", "a")),
		))
	}
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		newNode(KindContainer, map[string]any{"role": "tablist", "activeIndex": 0}, bar...),
		newNode(KindContainer, nil, panels...),
	)
}

func generateAccordion(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	items := contentItems(content)

	rows := make([]*Node, 0, len(items))
	for i, item := range items {
		rows = append(rows, newNode(KindContainer, map[string]any{"role": "accordion-item", "collapsed": true},
			newNode(KindButton, map[string]any{"role": "accordion-toggle", "index": i},
				textNode(itemString(item, "q", "title", "name")),
			),
			textNode(itemString(item, "a", "description", "text")),
		))
	}
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		newNode(KindContainer, map[string]any{"role": "accordion"}, rows...),
	)
}

func generateTimeline(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	items := contentItems(content)

	entries := make([]*Node, 0, len(items))
	for _, item := range items {
		entries = append(entries, newNode(KindContainer, map[string]any{"role": "timeline-entry"},
			newNode(KindIcon, map[string]any{"name": "dot"}),
			headingNode(3, itemString(item, "title", "name", "date")),
			textNode(itemString(item, "description", "text")),
		))
	}
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		newNode(KindContainer, map[string]any{"role": "timeline"}, entries...),
	)
}

func generateCarousel(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	items := contentItems(content)

	slides := make([]*Node, 0, len(items))
	for i, item := range items {
		slides = append(slides, newNode(KindCard, map[string]any{"role": "slide", "index": i},
			headingNode(3, itemString(item, "title", "name", "author")),
			textNode(itemString(item, "description", "text")),
		))
	}
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		newNode(KindContainer, map[string]any{"role": "carousel", "activeIndex": 0},
			newNode(KindButton, map[string]any{"role": "carousel-prev"}, newNode(KindIcon, map[string]any{"name": "chevron-left"})),
			newNode(KindContainer, map[string]any{"role": "track"}, slides...),
			newNode(KindButton, map[string]any{"role": "carousel-next"}, newNode(KindIcon, map[string]any{"name": "chevron-right"})),
		),
	)
}

// generateForm derives its field list from the form element, defaulting to
// name/email/message. Submission is simulated: the tree carries flags and the
// emitted source resets a local flag after two seconds. No network call is
// ever made.
func generateForm(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	fields := []string{"name", "email", "message"}
	for _, el := range req.Elements {
		if el.Type == ir.ElementForm && el.Form != nil && len(el.Form.Fields) > 0 {
			fields = el.Form.Fields
			break
		}
	}

	children := []*Node{headingNode(2, contentString(content, "heading", name))}
	for _, f := range fields {
		children = append(children, fieldNode(f))
	}
	children = append(children, newNode(KindButton, map[string]any{
		"type":           "submit",
		"simulateSubmit": true,
		"resetAfterMs":   2000,
	}, textNode(contentString(content, "submitText", "Submit"))))

	return sectionRoot(req, name,
		newNode(KindContainer, map[string]any{"role": "form"}, children...),
	)
}

// fieldNode renders one typed input, recognizing the conventional field names
// and falling back to a generic labeled input.
func fieldNode(field string) *Node {
	switch field {
	case "name":
		return newNode(KindInput, map[string]any{"type": "text", "name": "name", "label": "Name", "required": true})
	case "email":
		return newNode(KindInput, map[string]any{"type": "email", "name": "email", "label": "Email", "required": true})
	case "phone":
		return newNode(KindInput, map[string]any{"type": "tel", "name": "phone", "label": "Phone"})
	case "message":
		return newNode(KindTextarea, map[string]any{"name": "message", "label": "Message", "rows": 5})
	default:
		return newNode(KindInput, map[string]any{"type": "text", "name": field, "label": titleCase(field)})
	}
}

func generateCustom(req ir.SectionRequirement, content Content, st interactionState, name string) *Node {
	for _, el := range req.Elements {
		if el.Type == ir.ElementCustom && el.CustomSource != "" {
			return sectionRoot(req, name,
				newNode(KindContainer, map[string]any{"role": "custom", "source": el.CustomSource}),
			)
		}
	}
	// Custom layout with no custom element: fall back to the original text.
	return sectionRoot(req, name,
		headingNode(2, contentString(content, "heading", name)),
		textNode(req.SourceText),
	)
}

// --- element rendering -------------------------------------------------------

// elementNode renders one detected element inside a column layout.
func elementNode(el ir.ElementSpec, content Content, st interactionState) *Node {
	switch el.Type {
	case ir.ElementCard:
		items := contentItems(content)
		cells := make([]*Node, 0, len(items))
		for _, item := range items {
			cells = append(cells, cardNode(el, item, st))
		}
		return newNode(KindGrid, map[string]any{"columns": 3}, cells...)
	case ir.ElementImage:
		return galleryNode(el, content, st)
	case ir.ElementForm:
		fields := []string{"name", "email", "message"}
		if el.Form != nil && len(el.Form.Fields) > 0 {
			fields = el.Form.Fields
		}
		children := make([]*Node, 0, len(fields)+1)
		for _, f := range fields {
			children = append(children, fieldNode(f))
		}
		children = append(children, newNode(KindButton, map[string]any{
			"type":           "submit",
			"simulateSubmit": true,
			"resetAfterMs":   2000,
		}, textNode("Submit")))
		return newNode(KindContainer, map[string]any{"role": "form"}, children...)
	case ir.ElementVideo:
		return newNode(KindContainer, map[string]any{"role": "video", "src": contentString(content, "videoUrl", "")},
			newNode(KindIcon, map[string]any{"name": "play"}),
		)
	case ir.ElementMap:
		return newNode(KindContainer, map[string]any{"role": "map", "address": contentString(content, "address", "")},
			newNode(KindIcon, map[string]any{"name": "map-pin"}),
			textNode(contentString(content, "address", "")),
		)
	case ir.ElementChart:
		kind := ir.ChartBar
		if el.Chart != nil {
			kind = el.Chart.Kind
		}
		return newNode(KindContainer, map[string]any{"role": "chart", "chartKind": string(kind)})
	case ir.ElementCounter:
		items := contentItems(content)
		cells := make([]*Node, 0, len(items))
		for _, item := range items {
			cells = append(cells, statNode(item))
		}
		return newNode(KindGrid, map[string]any{"columns": len(cells)}, cells...)
	case ir.ElementProgress:
		return newNode(KindContainer, map[string]any{"role": "progress", "animateOnScroll": true})
	case ir.ElementButton:
		return newNode(KindButton, map[string]any{"variant": "primary"}, textNode(el.ContentLabel))
	case ir.ElementList:
		items := contentItems(content)
		rows := make([]*Node, 0, len(items))
		for _, item := range items {
			rows = append(rows, textNode(itemString(item, "title", "name", "text")))
		}
		return newNode(KindContainer, map[string]any{"role": "list"}, rows...)
	case ir.ElementCustom:
		return newNode(KindContainer, map[string]any{"role": "custom", "source": el.CustomSource})
	default:
		return textNode(el.ContentLabel)
	}
}

// cardNode honors the per-property flags and attaches the hover lift when the
// requirement asked for hover feedback.
func cardNode(el ir.ElementSpec, item map[string]any, st interactionState) *Node {
	var children []*Node
	props := el.Card
	if props == nil {
		props = &ir.CardProps{}
	}

	if props.ShowImage {
		children = append(children, newNode(KindAvatar, map[string]any{
			"src": itemString(item, "image", "photo", "src"),
			"alt": itemString(item, "name", "title"),
		}))
	}
	children = append(children, headingNode(3, itemString(item, "name", "title", "author")))
	if role := itemString(item, "role", "price"); role != "" {
		children = append(children, textNode(role))
	}
	if props.ShowBio {
		children = append(children, textNode(itemString(item, "bio", "description")))
	} else if desc := itemString(item, "description", "text"); desc != "" {
		children = append(children, textNode(desc))
	}
	if props.ShowRating {
		children = append(children, newNode(KindIcon, map[string]any{
			"name":  "star",
			"count": itemString(item, "rating"),
		}))
	}
	if props.AddToCart {
		children = append(children, newNode(KindButton, map[string]any{"variant": "primary", "action": "add-to-cart"},
			textNode("Add to Cart"),
		))
	}

	return newNode(KindCard, cardProps(st), children...)
}

func cardProps(st interactionState) map[string]any {
	if !st.hoverLift {
		return nil
	}
	// Cosmetic only: visual feedback on hover, no data-model effect.
	return map[string]any{"hoverEffect": "lift"}
}

func statNode(item map[string]any) *Node {
	return newNode(KindContainer, map[string]any{"role": "stat"},
		headingNode(3, itemString(item, "value", "title", "name")),
		textNode(itemString(item, "label", "description")),
	)
}

func galleryNode(el ir.ElementSpec, content Content, st interactionState) *Node {
	columns := 3
	if el.Gallery != nil && el.Gallery.Columns > 0 {
		columns = el.Gallery.Columns
	}
	items := contentItems(content)
	cells := make([]*Node, 0, len(items))
	for _, item := range items {
		cells = append(cells, newNode(KindCard, mergeProps(cardProps(st), map[string]any{
			"media": itemString(item, "src", "image"),
			"alt":   itemString(item, "alt", "title"),
		})))
	}
	return newNode(KindGrid, map[string]any{"columns": columns}, cells...)
}

// dominantElement is the most frequent element type, first occurrence
// breaking ties.
func dominantElement(req ir.SectionRequirement) *ir.ElementSpec {
	if len(req.Elements) == 0 {
		return nil
	}
	counts := make(map[ir.ElementType]int, len(req.Elements))
	for _, el := range req.Elements {
		counts[el.Type]++
	}
	best := 0
	var dominant *ir.ElementSpec
	for i := range req.Elements {
		if counts[req.Elements[i].Type] > best {
			best = counts[req.Elements[i].Type]
			dominant = &req.Elements[i]
		}
	}
	return dominant
}

func gridColumns(req ir.SectionRequirement) int {
	for _, el := range req.Elements {
		if el.Gallery != nil && el.Gallery.Columns > 0 {
			return el.Gallery.Columns
		}
	}
	if req.Layout == ir.LayoutMasonry {
		return 4
	}
	return 3
}
