// Package vocab holds the static lookup tables the synthesis pipeline is
// driven by: ordered layout/style rules, element-detection keywords, the
// industry catalog, section templates, and the chat vocabularies. Pure data,
// no logic. The rule ordering is a versioned contract: layout and style
// inference evaluates every rule and the last match wins, so reordering
// entries changes observable results.
package vocab

import "siteforge/internal/ir"

// LayoutRule maps a keyword set to a layout. Rules are evaluated in slice
// order; every matching rule overwrites the running value.
type LayoutRule struct {
	Keywords []string
	Layout   ir.Layout
}

// LayoutRules is the fixed inference order. A description containing both
// "two column" and "hero" resolves to hero because the hero rule is last.
var LayoutRules = []LayoutRule{
	{Keywords: []string{"grid", "tiles"}, Layout: ir.LayoutGrid},
	{Keywords: []string{"masonry"}, Layout: ir.LayoutMasonry},
	{Keywords: []string{"flex", "flexible layout"}, Layout: ir.LayoutFlex},
	{Keywords: []string{"two column", "two-column", "2 column", "side by side"}, Layout: ir.LayoutTwoColumn},
	{Keywords: []string{"three column", "three-column", "3 column"}, Layout: ir.LayoutThreeColumn},
	{Keywords: []string{"split"}, Layout: ir.LayoutSplit},
	{Keywords: []string{"sidebar"}, Layout: ir.LayoutSidebar},
	{Keywords: []string{"hero", "banner", "jumbotron"}, Layout: ir.LayoutHero},
}

// StyleRule maps a keyword set to a style, same last-wins evaluation.
type StyleRule struct {
	Keywords []string
	Style    ir.Style
}

var StyleRules = []StyleRule{
	{Keywords: []string{"modern", "contemporary"}, Style: ir.StyleModern},
	{Keywords: []string{"minimal", "clean", "simple"}, Style: ir.StyleMinimal},
	{Keywords: []string{"bold", "strong", "striking"}, Style: ir.StyleBold},
	{Keywords: []string{"elegant", "luxury", "sophisticated"}, Style: ir.StyleElegant},
	{Keywords: []string{"playful", "fun", "quirky"}, Style: ir.StylePlayful},
	{Keywords: []string{"corporate", "professional", "business-like"}, Style: ir.StyleCorporate},
	{Keywords: []string{"creative", "artistic"}, Style: ir.StyleCreative},
	{Keywords: []string{"technical", "developer"}, Style: ir.StyleTechnical},
}

// ChartKindPriority is the ordered keyword priority for chart sub-types.
// First match wins; bar is the default.
var ChartKindPriority = []struct {
	Keyword string
	Kind    ir.ChartKind
}{
	{Keyword: "bar", Kind: ir.ChartBar},
	{Keyword: "line", Kind: ir.ChartLine},
	{Keyword: "pie", Kind: ir.ChartPie},
	{Keyword: "donut", Kind: ir.ChartDonut},
	{Keyword: "area", Kind: ir.ChartArea},
	{Keyword: "scatter", Kind: ir.ChartScatter},
}

// OptionalFormFields are form field names added when their keyword appears in
// the description. Name and email are always included and are not listed here.
var OptionalFormFields = []string{
	"phone", "company", "website", "budget", "timeline", "message", "address", "subject",
}

// NumberWords resolves spelled-out column counts.
var NumberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6,
}

// DefaultGalleryColumns is used when no column count is stated.
const DefaultGalleryColumns = 3

// IntentRule maps description keywords to an explicit section intent.
// Priorities are hand-assigned within 1-9, not detection order.
type IntentRule struct {
	Keywords []string
	TypeKey  string
	Purpose  string
	Hint     ir.LayoutHint
	Priority int
}

// IntentRules is evaluated in order; each rule fires at most once.
var IntentRules = []IntentRule{
	{Keywords: []string{"landing", "homepage", "home page"}, TypeKey: "hero-with-cta", Purpose: "lead with the main message and call to action", Hint: ir.HintFullWidth, Priority: 1},
	{Keywords: []string{"menu", "food", "dishes"}, TypeKey: "menu-showcase", Purpose: "present the menu", Hint: ir.HintGrid, Priority: 2},
	{Keywords: []string{"products", "shop", "store"}, TypeKey: "product-grid", Purpose: "show purchasable products", Hint: ir.HintGrid, Priority: 2},
	{Keywords: []string{"portfolio", "gallery", "our work"}, TypeKey: "portfolio-gallery", Purpose: "show past work", Hint: ir.HintGrid, Priority: 2},
	{Keywords: []string{"services", "offerings"}, TypeKey: "services-grid", Purpose: "explain what is offered", Hint: ir.HintGrid, Priority: 3},
	{Keywords: []string{"team", "staff", "people"}, TypeKey: "team-members", Purpose: "introduce the people", Hint: ir.HintGrid, Priority: 4},
	{Keywords: []string{"pricing", "plans"}, TypeKey: "pricing-table", Purpose: "compare plans and prices", Hint: ir.HintContained, Priority: 5},
	{Keywords: []string{"testimonials", "reviews"}, TypeKey: "customer-reviews", Purpose: "build trust with social proof", Hint: ir.HintContained, Priority: 6},
	{Keywords: []string{"location", "address", "directions"}, TypeKey: "location-map", Purpose: "help visitors find the place", Hint: ir.HintSplit, Priority: 7},
	{Keywords: []string{"contact", "get in touch", "reach us"}, TypeKey: "contact-form", Purpose: "capture inquiries", Hint: ir.HintContained, Priority: 8},
}

// IndustryCatalog lists the ordered default sections per industry. Index in
// the list becomes priority 10+index when blended into a plan.
var IndustryCatalog = map[string][]string{
	"restaurant": {"hero-with-cta", "menu-showcase", "customer-reviews", "location-map", "contact-form"},
	"ecommerce":  {"hero-with-cta", "product-grid", "customer-reviews", "faq-accordion", "contact-form"},
	"agency":     {"hero-with-cta", "services-grid", "portfolio-gallery", "team-members", "contact-form"},
	"saas":       {"hero-with-cta", "services-grid", "pricing-table", "customer-reviews", "faq-accordion"},
	"medical":    {"hero-with-cta", "services-grid", "team-members", "location-map", "contact-form"},
	"education":  {"hero-with-cta", "services-grid", "team-members", "customer-reviews", "contact-form"},
}

// TemplateField describes one content field a section template expects.
type TemplateField struct {
	Name     string
	Kind     ir.FieldKind
	Required bool
	Enum     []string
}

// SectionTemplate is the content contract for one known section type.
// Brief is a canned description that reproduces the section through the
// requirement analyzer when an intent must be expanded into a full IR.
type SectionTemplate struct {
	TypeKey          string
	Purpose          string
	Brief            string
	Hint             ir.LayoutHint
	Fields           []TemplateField
	Variations       []string
	DefaultVariation string
	Seed             map[string]any
}

// SectionTemplates is keyed by typeKey.
var SectionTemplates = map[string]SectionTemplate{
	"hero-with-cta": {
		TypeKey: "hero-with-cta",
		Purpose: "lead with the main message and call to action",
		Brief:   "bold hero banner with a heading, supporting text and a call to action button",
		Hint:    ir.HintFullWidth,
		Fields: []TemplateField{
			{Name: "title", Kind: ir.FieldString, Required: true},
			{Name: "subtitle", Kind: ir.FieldString},
			{Name: "ctaText", Kind: ir.FieldString, Required: true},
			{Name: "ctaLink", Kind: ir.FieldString},
			{Name: "backgroundImage", Kind: ir.FieldString},
		},
		Variations:       []string{"centered", "left-aligned", "split"},
		DefaultVariation: "centered",
		Seed: map[string]any{
			"title":    "Welcome to Our Site",
			"subtitle": "Everything you need, in one place",
			"ctaText":  "Get Started",
			"ctaLink":  "#contact",
		},
	},
	"menu-showcase": {
		TypeKey: "menu-showcase",
		Purpose: "present the menu",
		Brief:   "grid of menu item cards with images and prices",
		Hint:    ir.HintGrid,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "items", Kind: ir.FieldArray, Required: true},
			{Name: "currency", Kind: ir.FieldString, Enum: []string{"USD", "EUR", "GBP"}},
		},
		Variations:       []string{"cards", "list", "two-column"},
		DefaultVariation: "cards",
		Seed: map[string]any{
			"heading": "Our Menu",
			"items": []any{
				map[string]any{"name": "House Special", "price": "14.00", "description": "Chef's daily pick"},
				map[string]any{"name": "Seasonal Salad", "price": "9.50", "description": "Fresh local greens"},
			},
			"currency": "USD",
		},
	},
	"product-grid": {
		TypeKey: "product-grid",
		Purpose: "show purchasable products",
		Brief:   "grid of product cards with images, prices and add to cart buttons",
		Hint:    ir.HintGrid,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "products", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"three-up", "four-up", "featured"},
		DefaultVariation: "three-up",
		Seed: map[string]any{
			"heading": "Featured Products",
			"products": []any{
				map[string]any{"name": "Starter Kit", "price": "29.00"},
				map[string]any{"name": "Pro Bundle", "price": "79.00"},
			},
		},
	},
	"portfolio-gallery": {
		TypeKey: "portfolio-gallery",
		Purpose: "show past work",
		Brief:   "masonry image gallery of portfolio projects",
		Hint:    ir.HintGrid,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "projects", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"masonry", "grid", "carousel"},
		DefaultVariation: "grid",
		Seed: map[string]any{
			"heading": "Selected Work",
			"projects": []any{
				map[string]any{"title": "Rebrand, 2025", "image": "/img/work-1.jpg"},
				map[string]any{"title": "Product Launch", "image": "/img/work-2.jpg"},
			},
		},
	},
	"services-grid": {
		TypeKey: "services-grid",
		Purpose: "explain what is offered",
		Brief:   "three column grid of service cards with icons",
		Hint:    ir.HintGrid,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "services", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"cards", "icon-list", "alternating"},
		DefaultVariation: "cards",
		Seed: map[string]any{
			"heading": "What We Do",
			"services": []any{
				map[string]any{"title": "Consulting", "description": "Practical advice that ships"},
				map[string]any{"title": "Design", "description": "Interfaces people enjoy"},
				map[string]any{"title": "Development", "description": "Robust, maintained builds"},
			},
		},
	},
	"team-members": {
		TypeKey: "team-members",
		Purpose: "introduce the people",
		Brief:   "team section with member photos and bios",
		Hint:    ir.HintGrid,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "members", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"cards", "circles", "compact"},
		DefaultVariation: "cards",
		Seed: map[string]any{
			"heading": "Meet the Team",
			"members": []any{
				map[string]any{"name": "Alex Rivera", "role": "Founder", "bio": "Keeps the ship pointed forward."},
				map[string]any{"name": "Sam Chen", "role": "Lead Designer", "bio": "Sweats the details so users don't."},
			},
		},
	},
	"pricing-table": {
		TypeKey: "pricing-table",
		Purpose: "compare plans and prices",
		Brief:   "three column pricing plan cards with a highlighted plan",
		Hint:    ir.HintContained,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "plans", Kind: ir.FieldArray, Required: true},
			{Name: "billingPeriod", Kind: ir.FieldString, Enum: []string{"monthly", "yearly"}},
		},
		Variations:       []string{"three-tier", "two-tier", "comparison"},
		DefaultVariation: "three-tier",
		Seed: map[string]any{
			"heading": "Simple Pricing",
			"plans": []any{
				map[string]any{"name": "Basic", "price": "9", "features": []any{"1 project", "Email support"}},
				map[string]any{"name": "Pro", "price": "29", "features": []any{"Unlimited projects", "Priority support"}},
			},
			"billingPeriod": "monthly",
		},
	},
	"customer-reviews": {
		TypeKey: "customer-reviews",
		Purpose: "build trust with social proof",
		Brief:   "customer testimonials with ratings in a carousel",
		Hint:    ir.HintContained,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "reviews", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"carousel", "grid", "single"},
		DefaultVariation: "carousel",
		Seed: map[string]any{
			"heading": "What Customers Say",
			"reviews": []any{
				map[string]any{"author": "J. Park", "rating": "5", "text": "Exactly what we needed."},
				map[string]any{"author": "M. Osei", "rating": "5", "text": "Fast, friendly, flawless."},
			},
		},
	},
	"location-map": {
		TypeKey: "location-map",
		Purpose: "help visitors find the place",
		Brief:   "split section with an embedded map and address details",
		Hint:    ir.HintSplit,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "address", Kind: ir.FieldString, Required: true},
			{Name: "hours", Kind: ir.FieldObject},
		},
		Variations:       []string{"map-left", "map-right", "map-only"},
		DefaultVariation: "map-right",
		Seed: map[string]any{
			"heading": "Find Us",
			"address": "123 Main St, Springfield",
			"hours":   map[string]any{"mon-fri": "9am-6pm", "sat": "10am-4pm"},
		},
	},
	"contact-form": {
		TypeKey: "contact-form",
		Purpose: "capture inquiries",
		Brief:   "contact form with name, email and message fields",
		Hint:    ir.HintContained,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "fields", Kind: ir.FieldArray, Required: true},
			{Name: "submitText", Kind: ir.FieldString},
		},
		Variations:       []string{"stacked", "two-column", "inline"},
		DefaultVariation: "stacked",
		Seed: map[string]any{
			"heading":    "Get in Touch",
			"fields":     []any{"name", "email", "message"},
			"submitText": "Send Message",
		},
	},
	"image-gallery": {
		TypeKey: "image-gallery",
		Purpose: "show a collection of images",
		Brief:   "3 column image gallery with hover effects",
		Hint:    ir.HintGrid,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString},
			{Name: "images", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"grid", "masonry", "carousel"},
		DefaultVariation: "grid",
		Seed: map[string]any{
			"heading": "Gallery",
			"images": []any{
				map[string]any{"src": "/img/gallery-1.jpg", "alt": "Gallery image 1"},
				map[string]any{"src": "/img/gallery-2.jpg", "alt": "Gallery image 2"},
				map[string]any{"src": "/img/gallery-3.jpg", "alt": "Gallery image 3"},
			},
		},
	},
	"faq-accordion": {
		TypeKey: "faq-accordion",
		Purpose: "answer common questions",
		Brief:   "faq accordion with expandable questions",
		Hint:    ir.HintList,
		Fields: []TemplateField{
			{Name: "heading", Kind: ir.FieldString, Required: true},
			{Name: "questions", Kind: ir.FieldArray, Required: true},
		},
		Variations:       []string{"single-open", "multi-open"},
		DefaultVariation: "single-open",
		Seed: map[string]any{
			"heading": "Frequently Asked Questions",
			"questions": []any{
				map[string]any{"q": "How do I get started?", "a": "Reach out through the contact form."},
				map[string]any{"q": "Do you offer refunds?", "a": "Yes, within 30 days."},
			},
		},
	},
}

// ChatActionWords and ChatContentWords are the two fixed vocabularies a
// message must each hit at least once to count as a generation request.
var ChatActionWords = []string{
	"section", "add", "create", "need", "want", "show", "display", "include", "page", "component",
}

var ChatContentWords = []string{
	"team", "members", "staff", "about", "gallery", "images", "contact", "form",
	"reviews", "testimonials", "services", "products", "pricing", "features",
	"hero", "banner", "portfolio", "projects", "blog", "news", "events",
	"careers", "jobs", "faq", "help", "support",
}
