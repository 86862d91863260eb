package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

func TestNormalizeWrapsBareStrings(t *testing.T) {
	profile := Normalize(map[string]any{"interests": "problem_solving"})
	assert.Equal(t, domain.ResponseProfile{"interests": {"problem_solving"}}, profile)
}

func TestNormalizeKeepsListsAndDedupes(t *testing.T) {
	profile := Normalize(map[string]any{
		"skills": []any{"data_analysis", "writing", "data_analysis", "  ", ""},
	})
	assert.Equal(t, []string{"data_analysis", "writing"}, profile["skills"])
}

func TestNormalizeDropsEmptyAnswers(t *testing.T) {
	profile := Normalize(map[string]any{
		"interests": "",
		"skills":    []any{},
		"values":    nil,
	})
	assert.Empty(t, profile)
}

func TestNormalizeCoercesScalars(t *testing.T) {
	profile := Normalize(map[string]any{"experience_years": 42})
	assert.Equal(t, []string{"42"}, profile["experience_years"])
}

func TestNormalizeSkipsUncoercibleValues(t *testing.T) {
	profile := Normalize(map[string]any{
		"interests": map[string]any{"nested": "object"},
		"skills":    "writing",
	})
	assert.NotContains(t, profile, "interests")
	assert.Equal(t, []string{"writing"}, profile["skills"])
}

func TestNormalizePassesUnknownTokensThrough(t *testing.T) {
	profile := Normalize(map[string]any{"interests": []any{"made_up_token"}})
	assert.Equal(t, []string{"made_up_token"}, profile["interests"])
}
