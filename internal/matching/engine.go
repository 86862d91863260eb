package matching

import (
	"sort"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

// Fit scores are capped below 100 so the output never claims certainty.
const maxFitScore = 98

// Engine ranks a catalog of career profiles against one response profile.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	strategy Strategy
}

// NewEngine creates an engine using the given scoring strategy. A nil
// strategy selects the canonical overlap scorer.
func NewEngine(s Strategy) *Engine {
	if s == nil {
		s = OverlapStrategy{}
	}
	return &Engine{strategy: s}
}

// Strategy returns the engine's scoring strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Rank scores every career in the catalog, sorts descending by fit score
// with stable ties (equal scores keep catalog order), and returns the top
// results. A non-positive limit falls back to the strategy default.
func (e *Engine) Rank(resp domain.ResponseProfile, catalog []domain.CareerProfile, limit int) []domain.MatchResult {
	out := make([]domain.MatchResult, 0, len(catalog))

	for _, career := range catalog {
		details, raw := e.strategy.Score(resp, career)
		fit := raw
		if fit > maxFitScore {
			fit = maxFitScore
		}
		expl := Explain(career, details)
		out = append(out, domain.MatchResult{
			Career:       career,
			FitScore:     fit,
			RawScore:     raw,
			MatchDetails: details,
			Explanation:  expl.Explanation,
			Reasons:      expl.Reasons,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].FitScore > out[j].FitScore })

	if limit <= 0 {
		limit = e.strategy.DefaultTopN()
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
