package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/career-fit-engine/internal/catalog"
	"github.com/pathwise/career-fit-engine/internal/domain"
)

func dataScientistProfile() domain.CareerProfile {
	return domain.CareerProfile{
		Title: "Data Scientist",
		MatchCriteria: map[string]map[string]int{
			"interests": {"analyzing_data": 4, "problem_solving": 4},
			"skills":    {"data_analysis": 4, "technical_programming": 3},
		},
	}
}

func TestRankPerfectMatchIsCappedAt98(t *testing.T) {
	ds := dataScientistProfile()
	other := domain.CareerProfile{
		Title: "Technical Writer",
		MatchCriteria: map[string]map[string]int{
			"interests": {"problem_solving": 2, "teaching_others": 4},
			"skills":    {"writing": 4},
		},
	}

	resp := domain.ResponseProfile{
		"interests": {"problem_solving", "analyzing_data"},
		"skills":    {"data_analysis", "technical_programming"},
	}

	results := NewEngine(OverlapStrategy{}).Rank(resp, []domain.CareerProfile{other, ds}, 0)
	require.Len(t, results, 2)

	top := results[0]
	assert.Equal(t, "Data Scientist", top.Career.Title)
	assert.Equal(t, 98, top.FitScore)
	assert.Equal(t, 100, top.RawScore)

	interests := top.MatchDetails["interests"]
	assert.Equal(t, 8.0, interests.Score)
	assert.Equal(t, 8.0, interests.MaxScore)
	assert.Equal(t, 100, interests.Percentage)

	skills := top.MatchDetails["skills"]
	assert.Equal(t, 7.0, skills.Score)
	assert.Equal(t, 7.0, skills.MaxScore)
	assert.Equal(t, 100, skills.Percentage)

	assert.Greater(t, top.FitScore, results[1].FitScore)
}

func TestRankEmptyResponseKeepsCatalogOrder(t *testing.T) {
	careers := catalog.BuiltIn()
	engine := NewEngine(OverlapStrategy{})

	results := engine.Rank(domain.ResponseProfile{}, careers, len(careers))
	require.Len(t, results, len(careers))

	for i, r := range results {
		assert.Equal(t, 0, r.FitScore, "career %q should score 0", r.Career.Title)
		assert.Equal(t, careers[i].Title, r.Career.Title, "ties must keep catalog order")
	}
}

func TestRankIsDeterministic(t *testing.T) {
	careers := catalog.BuiltIn()
	engine := NewEngine(OverlapStrategy{})
	resp := domain.ResponseProfile{
		"interests": {"analyzing_data"},
		"skills":    {"communication"},
	}

	first := engine.Rank(resp, careers, 0)
	second := engine.Rank(resp, careers, 0)
	assert.Equal(t, first, second)
}

func TestRankFitScoreRange(t *testing.T) {
	careers := catalog.BuiltIn()
	engine := NewEngine(OverlapStrategy{})

	responses := []domain.ResponseProfile{
		{},
		{"interests": {"analyzing_data", "problem_solving", "building_things"}},
		{
			"interests":  {"analyzing_data", "problem_solving", "exploring_ideas"},
			"skills":     {"data_analysis", "technical_programming", "research"},
			"work_style": {"independent", "detail_oriented"},
			"values":     {"continuous_learning", "high_earnings"},
			"technical":  {"machine_learning", "programming", "databases"},
		},
		{"unknown_category": {"whatever"}},
	}

	for _, resp := range responses {
		for _, r := range engine.Rank(resp, careers, len(careers)) {
			assert.GreaterOrEqual(t, r.FitScore, 0)
			assert.LessOrEqual(t, r.FitScore, 98)
		}
	}
}

func TestRankMonotonicity(t *testing.T) {
	ds := dataScientistProfile()
	engine := NewEngine(OverlapStrategy{})

	without := domain.ResponseProfile{"interests": {"problem_solving"}}
	with := domain.ResponseProfile{"interests": {"problem_solving", "analyzing_data"}}

	before := engine.Rank(without, []domain.CareerProfile{ds}, 1)[0]
	after := engine.Rank(with, []domain.CareerProfile{ds}, 1)[0]

	assert.GreaterOrEqual(t,
		after.MatchDetails["interests"].Percentage,
		before.MatchDetails["interests"].Percentage,
	)
	assert.GreaterOrEqual(t, after.FitScore, before.FitScore)
}

func TestRankTruncationAndDefaults(t *testing.T) {
	careers := catalog.BuiltIn()
	resp := domain.ResponseProfile{"interests": {"problem_solving"}}

	assert.Len(t, NewEngine(OverlapStrategy{}).Rank(resp, careers, 3), 3)
	// Default topN: 8 for overlap, 5 for single-answer.
	assert.Len(t, NewEngine(OverlapStrategy{}).Rank(resp, careers, 0), 8)
	assert.Len(t, NewEngine(SingleAnswerStrategy{}).Rank(resp, careers, 0), 5)
}

func TestRankEmptyCatalog(t *testing.T) {
	results := NewEngine(nil).Rank(domain.ResponseProfile{"interests": {"problem_solving"}}, nil, 5)
	assert.Empty(t, results)
}

func TestRankCareerWithoutCriteriaScoresZero(t *testing.T) {
	bare := domain.CareerProfile{Title: "Mystery Role"}
	resp := domain.ResponseProfile{"interests": {"problem_solving"}}

	results := NewEngine(OverlapStrategy{}).Rank(resp, []domain.CareerProfile{bare}, 1)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].FitScore)
	assert.NotEmpty(t, results[0].Reasons)
}
