package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

func allCategories(report domain.SkillsReport) []domain.SkillCategory {
	out := append([]domain.SkillCategory{}, report.Strong...)
	out = append(out, report.Developing...)
	return append(out, report.Growth...)
}

func TestAnalyzeSkillsBucketCompleteness(t *testing.T) {
	responses := []domain.ResponseProfile{
		{},
		{"interests": {"analyzing_data"}, "skills": {"communication"}},
		{
			"skills":    {"technical_programming", "data_analysis"},
			"technical": {"programming", "databases", "cloud_platforms", "automation", "machine_learning", "security"},
		},
	}

	for _, resp := range responses {
		report := AnalyzeSkills(resp)

		seen := make(map[string]int)
		for _, c := range allCategories(report) {
			seen[c.Name]++
		}
		require.Len(t, seen, len(skillRelevances))
		for name, count := range seen {
			assert.Equal(t, 1, count, "category %q must appear exactly once", name)
		}
	}
}

func TestAnalyzeSkillsEmptyResponseIsAllGrowth(t *testing.T) {
	report := AnalyzeSkills(domain.ResponseProfile{})

	assert.Empty(t, report.Strong)
	assert.Empty(t, report.Developing)
	assert.Len(t, report.Growth, len(skillRelevances))
	for _, c := range report.Growth {
		assert.Equal(t, 0, c.Level)
		assert.Equal(t, domain.BucketGrowth, c.Bucket)
	}
	assert.Contains(t, report.Summary, "Growth areas")
}

func TestAnalyzeSkillsFullTechnicalSignalIsStrong(t *testing.T) {
	resp := domain.ResponseProfile{
		"skills":    {"technical_programming"},
		"technical": {"programming", "databases", "cloud_platforms", "automation", "machine_learning", "security"},
	}

	report := AnalyzeSkills(resp)

	require.NotEmpty(t, report.Strong)
	top := report.Strong[0]
	assert.Equal(t, "Technical Skills", top.Name)
	assert.Equal(t, 100, top.Level)
	assert.NotEmpty(t, top.RepresentativeSkills)
}

func TestAnalyzeSkillsLevelIsClamped(t *testing.T) {
	// The same token selected in several categories counts once per
	// occurrence, so the raw ratio can exceed 1. The level must not.
	resp := domain.ResponseProfile{
		"skills":    {"technical_programming"},
		"legacy":    {"technical_programming", "programming", "databases"},
		"technical": {"programming", "databases", "cloud_platforms", "automation", "machine_learning", "security"},
	}

	report := AnalyzeSkills(resp)
	for _, c := range allCategories(report) {
		assert.GreaterOrEqual(t, c.Level, 0)
		assert.LessOrEqual(t, c.Level, 100)
	}
}

func TestAnalyzeSkillsSummaryNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, AnalyzeSkills(domain.ResponseProfile{}).Summary)
	assert.NotEmpty(t, AnalyzeSkills(domain.ResponseProfile{"interests": {"helping_people"}}).Summary)
}

func TestAnalyzeSkillsDeterministicOrdering(t *testing.T) {
	resp := domain.ResponseProfile{
		"interests": {"analyzing_data", "leading_teams"},
		"skills":    {"communication", "data_analysis", "project_management"},
	}

	first := AnalyzeSkills(resp)
	second := AnalyzeSkills(resp)
	assert.Equal(t, first, second)
}
