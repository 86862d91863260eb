package matching

import (
	"sort"
	"strings"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

const (
	strongLevel     = 70
	developingLevel = 40
)

// skillRelevance maps one output skill category to the trait tokens that
// count as evidence for it. Tokens come from any assessment category and may
// serve more than one skill category.
type skillRelevance struct {
	name           string
	representative []string
	tokens         []string
}

var skillRelevances = []skillRelevance{
	{
		name:           "Technical Skills",
		representative: []string{"Programming", "Cloud & Infrastructure", "Automation"},
		tokens:         []string{"technical_programming", "programming", "databases", "cloud_platforms", "automation", "machine_learning", "security"},
	},
	{
		name:           "Analytical Skills",
		representative: []string{"Data Analysis", "Research", "Critical Thinking"},
		tokens:         []string{"analyzing_data", "data_analysis", "problem_solving", "research", "detail_oriented", "spreadsheets"},
	},
	{
		name:           "Communication Skills",
		representative: []string{"Writing", "Presenting", "Active Listening"},
		tokens:         []string{"communication", "writing", "public_speaking", "teaching_others", "understanding_people"},
	},
	{
		name:           "Leadership Skills",
		representative: []string{"Team Leadership", "Decision Making", "Delegation"},
		tokens:         []string{"leading_teams", "project_management", "negotiation", "big_picture", "impact"},
	},
	{
		name:           "Creative Skills",
		representative: []string{"Design", "Ideation", "Storytelling"},
		tokens:         []string{"creative_expression", "design_thinking", "building_things", "exploring_ideas", "flexible"},
	},
	{
		name:           "Organizational Skills",
		representative: []string{"Planning", "Prioritization", "Process Design"},
		tokens:         []string{"organizing_systems", "structured", "detail_oriented", "project_management", "budgeting"},
	},
}

// AnalyzeSkills derives a proficiency level per skill category from the full
// response and buckets each into strong, developing, or growth. A token
// selected anywhere in the response counts toward every skill category whose
// relevance set contains it.
func AnalyzeSkills(resp domain.ResponseProfile) domain.SkillsReport {
	selected := make(map[string]int)
	for _, tokens := range resp {
		for _, t := range tokens {
			selected[t]++
		}
	}

	var report domain.SkillsReport
	for _, rel := range skillRelevances {
		matched := 0
		for _, t := range rel.tokens {
			matched += selected[t]
		}
		level := percentage(float64(matched), float64(len(rel.tokens)))
		if level > 100 {
			level = 100
		}

		sc := domain.SkillCategory{
			Name:                 rel.name,
			Level:                level,
			RepresentativeSkills: append([]string(nil), rel.representative...),
			Bucket:               bucketFor(level),
		}
		switch sc.Bucket {
		case domain.BucketStrong:
			report.Strong = append(report.Strong, sc)
		case domain.BucketDeveloping:
			report.Developing = append(report.Developing, sc)
		default:
			report.Growth = append(report.Growth, sc)
		}
	}

	sortByLevel(report.Strong)
	sortByLevel(report.Developing)
	sortByLevel(report.Growth)
	report.Summary = summarize(report)
	return report
}

func bucketFor(level int) string {
	switch {
	case level >= strongLevel:
		return domain.BucketStrong
	case level >= developingLevel:
		return domain.BucketDeveloping
	default:
		return domain.BucketGrowth
	}
}

func sortByLevel(categories []domain.SkillCategory) {
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Level != categories[j].Level {
			return categories[i].Level > categories[j].Level
		}
		return categories[i].Name < categories[j].Name
	})
}

func summarize(report domain.SkillsReport) string {
	var parts []string
	if names := categoryNames(report.Strong); names != "" {
		parts = append(parts, "You show real strength in "+names+".")
	}
	if names := categoryNames(report.Developing); names != "" {
		parts = append(parts, "You are developing "+names+".")
	}
	if names := categoryNames(report.Growth); names != "" {
		parts = append(parts, "Growth areas to explore: "+names+".")
	}
	if len(parts) == 0 {
		return "Your assessment did not surface enough signal to profile your skills yet."
	}
	return strings.Join(parts, " ")
}

func categoryNames(categories []domain.SkillCategory) string {
	if len(categories) == 0 {
		return ""
	}
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return joinNames(names)
}
