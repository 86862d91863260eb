// Package vocab holds the closed set of assessment categories and the trait
// tokens selectable within each. Catalog criteria are validated against it at
// load time so a misspelled token fails fast instead of silently scoring zero.
package vocab

import "sort"

// Category identifiers.
const (
	Interests = "interests"
	Skills    = "skills"
	WorkStyle = "work_style"
	Values    = "values"
	Technical = "technical"
)

var tokensByCategory = map[string][]string{
	Interests: {
		"analyzing_data",
		"building_things",
		"creative_expression",
		"exploring_ideas",
		"helping_people",
		"leading_teams",
		"organizing_systems",
		"problem_solving",
		"teaching_others",
		"understanding_people",
	},
	Skills: {
		"budgeting",
		"communication",
		"data_analysis",
		"design_thinking",
		"negotiation",
		"project_management",
		"public_speaking",
		"research",
		"technical_programming",
		"writing",
	},
	WorkStyle: {
		"big_picture",
		"collaborative",
		"detail_oriented",
		"fast_paced",
		"flexible",
		"independent",
		"structured",
	},
	Values: {
		"autonomy",
		"continuous_learning",
		"high_earnings",
		"impact",
		"recognition",
		"stability",
		"work_life_balance",
	},
	Technical: {
		"automation",
		"cloud_platforms",
		"databases",
		"machine_learning",
		"networking",
		"programming",
		"security",
		"spreadsheets",
	},
}

// Categories returns all category identifiers in sorted order.
func Categories() []string {
	out := make([]string, 0, len(tokensByCategory))
	for c := range tokensByCategory {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Tokens returns the tokens of a category, or nil for an unknown category.
func Tokens(category string) []string {
	src := tokensByCategory[category]
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// HasCategory reports whether category is part of the vocabulary.
func HasCategory(category string) bool {
	_, ok := tokensByCategory[category]
	return ok
}

// Contains reports whether token belongs to category.
func Contains(category, token string) bool {
	for _, t := range tokensByCategory[category] {
		if t == token {
			return true
		}
	}
	return false
}
