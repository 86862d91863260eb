package matching

import (
	"fmt"
	"math"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

// Strategy names accepted by StrategyByName.
const (
	StrategyOverlap      = "overlap"
	StrategySingleAnswer = "single_answer"
)

// Share of a category's weight awarded in single-answer mode when the answer
// misses the accepted list. Topical relevance still counts for something;
// this is a product decision, not a bug.
const partialCreditRatio = 0.3

// Strategy scores one response against one career profile. It returns the
// per-category breakdown and the uncapped aggregate percentage.
type Strategy interface {
	Name() string
	DefaultTopN() int
	Score(resp domain.ResponseProfile, career domain.CareerProfile) (map[string]domain.MatchDetail, int)
}

// StrategyByName resolves a strategy identifier. An empty name selects the
// canonical overlap strategy.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "", StrategyOverlap:
		return OverlapStrategy{}, nil
	case StrategySingleAnswer:
		return SingleAnswerStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring strategy: %q", name)
	}
}

// OverlapStrategy is the canonical weighted set-overlap scorer: every
// criteria token present in the response adds its weight, every declared
// token adds to the maximum.
type OverlapStrategy struct{}

func (OverlapStrategy) Name() string { return StrategyOverlap }

func (OverlapStrategy) DefaultTopN() int { return 8 }

func (OverlapStrategy) Score(resp domain.ResponseProfile, career domain.CareerProfile) (map[string]domain.MatchDetail, int) {
	details := make(map[string]domain.MatchDetail, len(career.MatchCriteria))
	var sum, sumMax float64

	for category, weights := range career.MatchCriteria {
		var score, max float64
		for token, weight := range weights {
			max += float64(weight)
			if resp.Has(category, token) {
				score += float64(weight)
			}
		}
		details[category] = domain.MatchDetail{
			Score:      score,
			MaxScore:   max,
			Percentage: percentage(score, max),
		}
		sum += score
		sumMax += max
	}

	return details, percentage(sum, sumMax)
}

// SingleAnswerStrategy is the legacy scorer for one-answer-per-question
// assessments. An answer on the accepted list earns the question's full
// weight; any other state, including no answer at all, earns the partial
// credit share.
type SingleAnswerStrategy struct{}

func (SingleAnswerStrategy) Name() string { return StrategySingleAnswer }

func (SingleAnswerStrategy) DefaultTopN() int { return 5 }

func (SingleAnswerStrategy) Score(resp domain.ResponseProfile, career domain.CareerProfile) (map[string]domain.MatchDetail, int) {
	details := make(map[string]domain.MatchDetail, len(career.SimpleCriteria))
	var sum, sumMax float64

	for question, crit := range career.SimpleCriteria {
		max := crit.Weight * 100
		score := max * partialCreditRatio
		if answer := resp.First(question); answer != "" && contains(crit.Accepted, answer) {
			score = max
		}
		details[question] = domain.MatchDetail{
			Score:      score,
			MaxScore:   max,
			Percentage: percentage(score, max),
		}
		sum += score
		sumMax += max
	}

	return details, percentage(sum, sumMax)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// percentage rounds 100*score/max, resolving an empty maximum to 0 rather
// than dividing by zero.
func percentage(score, max float64) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(100 * score / max))
}
