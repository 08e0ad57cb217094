// Package synth turns a SectionRequirement into either a renderable component
// tree or serialized component source text. Both modes target the UI
// framework's fixed primitive vocabulary and perform no I/O.
package synth

import "fmt"

// Primitive kinds, matching the framework's versioned import surface. The
// tree never reaches outside this vocabulary.
const (
	KindContainer = "container"
	KindHeading   = "heading"
	KindText      = "text"
	KindButton    = "button"
	KindGrid      = "grid"
	KindCard      = "card"
	KindIcon      = "icon"
	KindAvatar    = "avatar"
	KindInput     = "input"
	KindTextarea  = "textarea"
)

// Content is the open content bag a constructor renders from.
type Content map[string]any

// Node is one node of the renderable structure.
type Node struct {
	Kind     string         `json:"kind"`
	Props    map[string]any `json:"props,omitempty"`
	Text     string         `json:"text,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// ComponentConstructor builds a section tree from a content bag.
type ComponentConstructor func(content Content) *Node

func newNode(kind string, props map[string]any, children ...*Node) *Node {
	return &Node{Kind: kind, Props: props, Children: children}
}

func textNode(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

func headingNode(level int, text string) *Node {
	return &Node{Kind: KindHeading, Props: map[string]any{"level": level}, Text: text}
}

// PlaceholderNode is the visible fallback callers render for an unresolved
// section type. It must never be silently dropped.
func PlaceholderNode(typeKey string) *Node {
	return newNode(KindContainer, map[string]any{"role": "placeholder"},
		textNode(fmt.Sprintf("Section type not found: %s", typeKey)),
	)
}

// walk visits the tree depth-first.
func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

// containsKind reports whether any node in the tree has the given kind.
func (n *Node) containsKind(kind string) bool {
	found := false
	n.walk(func(c *Node) {
		if c.Kind == kind {
			found = true
		}
	})
	return found
}
