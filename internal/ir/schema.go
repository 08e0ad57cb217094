// Package ir defines the intermediate representation produced from free-text
// section descriptions before any rendering decision is made.
package ir

// ElementType classifies one inferred UI element.
type ElementType string

const (
	ElementText      ElementType = "text"
	ElementImage     ElementType = "image"
	ElementButton    ElementType = "button"
	ElementList      ElementType = "list"
	ElementGrid      ElementType = "grid"
	ElementForm      ElementType = "form"
	ElementVideo     ElementType = "video"
	ElementMap       ElementType = "map"
	ElementRating    ElementType = "rating"
	ElementSocial    ElementType = "social"
	ElementCard      ElementType = "card"
	ElementChart     ElementType = "chart"
	ElementTimeline  ElementType = "timeline"
	ElementAccordion ElementType = "accordion"
	ElementTabs      ElementType = "tabs"
	ElementCarousel  ElementType = "carousel"
	ElementCounter   ElementType = "counter"
	ElementProgress  ElementType = "progress"
	ElementCustom    ElementType = "custom"
)

// Layout is the section-level arrangement inferred from the description.
type Layout string

const (
	LayoutSingleColumn Layout = "single-column"
	LayoutTwoColumn    Layout = "two-column"
	LayoutThreeColumn  Layout = "three-column"
	LayoutGrid         Layout = "grid"
	LayoutFlex         Layout = "flex"
	LayoutHero         Layout = "hero"
	LayoutSidebar      Layout = "sidebar"
	LayoutMasonry      Layout = "masonry"
	LayoutSplit        Layout = "split"
	LayoutCustom       Layout = "custom"
)

// Style is the visual treatment inferred from the description.
type Style string

const (
	StyleModern    Style = "modern"
	StyleMinimal   Style = "minimal"
	StyleBold      Style = "bold"
	StyleElegant   Style = "elegant"
	StylePlayful   Style = "playful"
	StyleCorporate Style = "corporate"
	StyleCreative  Style = "creative"
	StyleTechnical Style = "technical"
)

// Trigger is the user event that starts an interaction.
type Trigger string

const (
	TriggerClick  Trigger = "click"
	TriggerHover  Trigger = "hover"
	TriggerScroll Trigger = "scroll"
	TriggerLoad   Trigger = "load"
)

// Action is what an interaction does once triggered.
type Action string

const (
	ActionModal      Action = "modal"
	ActionAnimation  Action = "animation"
	ActionNavigation Action = "navigation"
	ActionFormSubmit Action = "form_submit"
	ActionAPICall    Action = "api_call"
)

// ChartKind is the chart sub-type picked by ordered keyword priority.
type ChartKind string

const (
	ChartBar     ChartKind = "bar"
	ChartLine    ChartKind = "line"
	ChartPie     ChartKind = "pie"
	ChartDonut   ChartKind = "donut"
	ChartArea    ChartKind = "area"
	ChartScatter ChartKind = "scatter"
)

// LayoutHint is the coarse page-planning arrangement for a SectionIntent.
type LayoutHint string

const (
	HintFullWidth LayoutHint = "full-width"
	HintContained LayoutHint = "contained"
	HintSplit     LayoutHint = "split"
	HintGrid      LayoutHint = "grid"
	HintList      LayoutHint = "list"
)

// CardProps are the typed conventions card-like elements carry.
type CardProps struct {
	ShowImage  bool `json:"show_image,omitempty"`
	ShowBio    bool `json:"show_bio,omitempty"`
	ShowRating bool `json:"show_rating,omitempty"`
	AddToCart  bool `json:"add_to_cart,omitempty"`
}

// GalleryProps are the typed conventions image/grid gallery elements carry.
type GalleryProps struct {
	Columns int `json:"columns"`
}

// FormProps are the typed conventions form elements carry.
type FormProps struct {
	Fields []string `json:"fields"`
}

// ChartProps are the typed conventions chart elements carry.
type ChartProps struct {
	Kind ChartKind `json:"kind"`
}

// ElementSpec is one inferred UI element. The variant pointers are the typed
// replacement for an open property bag: only the variants matching Type are
// set, anything nonstandard rides in Extra. Consumers must tolerate absent
// variants and absent Extra keys.
type ElementSpec struct {
	Type         ElementType    `json:"type"`
	ContentLabel string         `json:"content_label"`
	Card         *CardProps     `json:"card,omitempty"`
	Gallery      *GalleryProps  `json:"gallery,omitempty"`
	Form         *FormProps     `json:"form,omitempty"`
	Chart        *ChartProps    `json:"chart,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`

	// CustomSource is used verbatim when Type == ElementCustom.
	CustomSource string `json:"custom_source,omitempty"`
}

// InteractionSpec is one inferred behavior, detected independently of
// elements.
type InteractionSpec struct {
	Trigger Trigger `json:"trigger"`
	Action  Action  `json:"action"`
	Target  string  `json:"target,omitempty"`
}

// SectionRequirement is the IR for one section. It is constructed once per
// analysis call and never mutated or merged afterwards. Element order is
// detection-pass order: later passes append, they never reorder earlier
// entries.
type SectionRequirement struct {
	SourceText         string            `json:"source_text"`
	Elements           []ElementSpec     `json:"elements"`
	Layout             Layout            `json:"layout"`
	Style              Style             `json:"style"`
	Interactions       []InteractionSpec `json:"interactions,omitempty"`
	CustomRequirements string            `json:"custom_requirements,omitempty"`
}

// UserRequirement is a page-level brief handed to the intent planner.
type UserRequirement struct {
	Description    string   `json:"description"`
	Industry       string   `json:"industry,omitempty"`
	PageType       string   `json:"page_type"`
	TargetAudience string   `json:"target_audience,omitempty"`
	BusinessGoals  []string `json:"business_goals,omitempty"`
}

// SectionIntent is a page-planning unit, coarser than a SectionRequirement.
// Explicit user-detected intents carry priorities 1-9; industry-sourced
// intents carry 10+index so they always sort after explicit ones.
type SectionIntent struct {
	TypeKey    string         `json:"type_key"`
	Purpose    string         `json:"purpose"`
	Content    map[string]any `json:"content,omitempty"`
	LayoutHint LayoutHint     `json:"layout_hint"`
	Priority   int            `json:"priority"`

	// Dependencies is declared but inert: nothing in the pipeline reads it.
	Dependencies []string `json:"dependencies,omitempty"`
}

// FieldKind classifies one content-schema field.
type FieldKind string

const (
	FieldString FieldKind = "string"
	FieldArray  FieldKind = "array"
	FieldObject FieldKind = "object"
)

// ContentField describes one field of a generated section's content schema.
type ContentField struct {
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
	Enum     []string  `json:"enum,omitempty"`
}

// StylingVariants lists the visual variants a generated section supports.
type StylingVariants struct {
	Variants       []string `json:"variants"`
	DefaultVariant string   `json:"default_variant"`
	CustomCSS      string   `json:"custom_css,omitempty"`
}

// GeneratedSectionSpec is the final synthesis artifact for one SectionIntent.
// Created once, never mutated.
type GeneratedSectionSpec struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	ComponentSource string                  `json:"component_source"`
	ContentSchema   map[string]ContentField `json:"content_schema"`
	DefaultContent  map[string]any          `json:"default_content"`
	Styling         StylingVariants         `json:"styling"`
}
