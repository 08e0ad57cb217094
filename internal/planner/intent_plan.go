// Package planner expands a page-level brief into an ordered list of section
// intents, blending explicit textual cues with industry defaults.
package planner

import (
	"sort"
	"strings"

	"siteforge/internal/ir"
	"siteforge/internal/vocab"
)

// Plan returns intents sorted ascending by priority. The ordering is a
// contract: explicit intents keep their hand-assigned 1-9 priorities,
// industry-sourced intents get 10+index, and the sort is stable so ties keep
// detection order.
func Plan(brief ir.UserRequirement) []ir.SectionIntent {
	intents := explicitIntents(brief.Description)

	if brief.Industry != "" {
		seen := make(map[string]bool, len(intents))
		for _, in := range intents {
			seen[in.TypeKey] = true
		}
		for _, in := range industryIntents(brief.Industry) {
			if seen[in.TypeKey] {
				continue
			}
			seen[in.TypeKey] = true
			intents = append(intents, in)
		}
	}

	sort.SliceStable(intents, func(i, j int) bool {
		return intents[i].Priority < intents[j].Priority
	})

	for i := range intents {
		enrichContent(&intents[i], brief)
	}
	return intents
}

// explicitIntents scans the description against the fixed intent rule table.
// Each rule fires at most once.
func explicitIntents(description string) []ir.SectionIntent {
	lower := strings.ToLower(description)

	var out []ir.SectionIntent
	for _, rule := range vocab.IntentRules {
		if !containsAny(lower, rule.Keywords) {
			continue
		}
		out = append(out, ir.SectionIntent{
			TypeKey:    rule.TypeKey,
			Purpose:    rule.Purpose,
			LayoutHint: rule.Hint,
			Priority:   rule.Priority,
		})
	}
	return out
}

// industryIntents converts the industry's ordered default section list into
// intents priced after any explicit intent.
func industryIntents(industry string) []ir.SectionIntent {
	keys := vocab.IndustryCatalog[strings.ToLower(industry)]

	out := make([]ir.SectionIntent, 0, len(keys))
	for i, key := range keys {
		intent := ir.SectionIntent{
			TypeKey:  key,
			Purpose:  "standard " + industry + " section",
			Priority: 10 + i,
		}
		if tpl, ok := vocab.SectionTemplates[key]; ok {
			intent.Purpose = tpl.Purpose
			intent.LayoutHint = tpl.Hint
		}
		out = append(out, intent)
	}
	return out
}

// enrichContent layers template metadata and page-level context into the
// intent's content bag.
func enrichContent(intent *ir.SectionIntent, brief ir.UserRequirement) {
	if intent.Content == nil {
		intent.Content = make(map[string]any)
	}

	if tpl, ok := vocab.SectionTemplates[intent.TypeKey]; ok {
		fields := make([]string, 0, len(tpl.Fields))
		for _, f := range tpl.Fields {
			fields = append(fields, f.Name)
		}
		intent.Content["fields"] = fields
		intent.Content["variations"] = tpl.Variations
		intent.Content["default_variation"] = tpl.DefaultVariation
		if intent.LayoutHint == "" {
			intent.LayoutHint = tpl.Hint
		}
	}

	if brief.Industry != "" {
		intent.Content["industry"] = brief.Industry
	}
	if brief.PageType != "" {
		intent.Content["page_type"] = brief.PageType
	}
	if brief.TargetAudience != "" {
		intent.Content["target_audience"] = brief.TargetAudience
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
