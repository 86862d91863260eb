package catalog

import (
	"fmt"
	"strings"

	"github.com/pathwise/career-fit-engine/internal/domain"
	"github.com/pathwise/career-fit-engine/internal/vocab"
)

// Validate checks a catalog at load time. It rejects empty or duplicate
// titles, non-positive weights, and match criteria referencing categories or
// tokens outside the trait vocabulary. Single-answer criteria carry free-form
// answer levels rather than vocabulary tokens, so only their weights are
// checked. A violation is a configuration error: fail at startup, never at
// request time.
func Validate(careers []domain.CareerProfile) error {
	titles := make(map[string]bool, len(careers))
	for i, c := range careers {
		title := strings.TrimSpace(c.Title)
		if title == "" {
			return fmt.Errorf("catalog[%d]: title is required", i)
		}
		if titles[title] {
			return fmt.Errorf("catalog[%d]: duplicate title %q", i, title)
		}
		titles[title] = true

		for category, weights := range c.MatchCriteria {
			if !vocab.HasCategory(category) {
				return fmt.Errorf("catalog %q: unknown category %q", title, category)
			}
			for token, weight := range weights {
				if !vocab.Contains(category, token) {
					return fmt.Errorf("catalog %q: unknown token %q in category %q", title, token, category)
				}
				if weight <= 0 {
					return fmt.Errorf("catalog %q: weight for %s/%s must be positive, got %d", title, category, token, weight)
				}
			}
		}

		for question, crit := range c.SimpleCriteria {
			if crit.Weight <= 0 || crit.Weight > 1 {
				return fmt.Errorf("catalog %q: weight for question %q must be in (0,1], got %g", title, question, crit.Weight)
			}
			if len(crit.Accepted) == 0 {
				return fmt.Errorf("catalog %q: question %q has no accepted answers", title, question)
			}
		}
	}
	return nil
}
