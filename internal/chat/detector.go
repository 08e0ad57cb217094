// Package chat decides whether an inbound message is a section generation
// request and extracts a seed request for the synthesis pipeline. It is a
// thin heuristic layer over two fixed vocabularies.
package chat

import (
	"strings"

	"siteforge/internal/vocab"
)

// SeedRequest is the starting point handed to the analyzer/synthesizer when
// a chat message asks for a section.
type SeedRequest struct {
	TypeKey     string         `json:"type_key"`
	Name        string         `json:"name"`
	SeedContent map[string]any `json:"seed_content,omitempty"`
}

// IsGenerationRequest holds when the message contains at least one action
// word and at least one content word from the fixed vocabularies.
func IsGenerationRequest(message string) bool {
	lower := strings.ToLower(message)
	return containsAny(lower, vocab.ChatActionWords) && containsAny(lower, vocab.ChatContentWords)
}

// ExtractSeedRequest maps the message to a known seed via a fixed first-match
// chain, falling back to a generic custom seed.
func ExtractSeedRequest(message string) SeedRequest {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "team"):
		return seedFromTemplate("team-members", "Team")
	case containsAny(lower, []string{"gallery", "images", "photos"}):
		return seedFromTemplate("image-gallery", "Gallery")
	case containsAny(lower, []string{"contact", "form"}):
		return seedFromTemplate("contact-form", "Contact")
	case containsAny(lower, []string{"review", "testimonial"}):
		return seedFromTemplate("customer-reviews", "Reviews")
	case containsAny(lower, []string{"service", "offering"}):
		return seedFromTemplate("services-grid", "Services")
	case containsAny(lower, []string{"pricing", "price", "plan"}):
		return seedFromTemplate("pricing-table", "Pricing")
	default:
		return SeedRequest{
			TypeKey: "custom",
			Name:    "Custom",
			SeedContent: map[string]any{
				"heading": "New Section",
				"text":    message,
			},
		}
	}
}

func seedFromTemplate(typeKey, name string) SeedRequest {
	req := SeedRequest{TypeKey: typeKey, Name: name}
	if tpl, ok := vocab.SectionTemplates[typeKey]; ok {
		req.SeedContent = tpl.Seed
	}
	return req
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
