package domain

// Bucket names for skill proficiency levels.
const (
	BucketStrong     = "strong"
	BucketDeveloping = "developing"
	BucketGrowth     = "growth"
)

// CareerMetadata carries descriptive fields for a role. It is passed through
// to output unchanged and never used in scoring.
type CareerMetadata struct {
	SalaryRange      string   `json:"salary_range"`
	GrowthRate       string   `json:"growth_rate"`
	Description      string   `json:"description"`
	ExampleEmployers []string `json:"example_employers"`
	KeySkills        []string `json:"key_skills"`
}

// SimpleCriterion is the legacy single-answer criterion shape: a list of
// accepted answers for a question plus the fixed share of the overall score
// that question carries. Weights across a profile sum to 1.
type SimpleCriterion struct {
	Accepted []string `json:"accepted"`
	Weight   float64  `json:"weight"`
}

// CareerProfile describes one candidate role. MatchCriteria maps a category
// to trait-token weights for the weighted-overlap strategy; SimpleCriteria
// maps a question id to accepted answers for the single-answer strategy.
// Profiles are loaded once and never mutated.
type CareerProfile struct {
	Title          string                     `json:"title"`
	MatchCriteria  map[string]map[string]int  `json:"match_criteria"`
	SimpleCriteria map[string]SimpleCriterion `json:"simple_criteria,omitempty"`
	Metadata       CareerMetadata             `json:"metadata"`
}

// Clone returns a deep copy of the profile. The criteria maps and metadata
// slices of the copy are not shared with the receiver.
func (p CareerProfile) Clone() CareerProfile {
	out := p
	if p.MatchCriteria != nil {
		out.MatchCriteria = make(map[string]map[string]int, len(p.MatchCriteria))
		for category, weights := range p.MatchCriteria {
			cw := make(map[string]int, len(weights))
			for token, w := range weights {
				cw[token] = w
			}
			out.MatchCriteria[category] = cw
		}
	}
	if p.SimpleCriteria != nil {
		out.SimpleCriteria = make(map[string]SimpleCriterion, len(p.SimpleCriteria))
		for question, crit := range p.SimpleCriteria {
			crit.Accepted = append([]string(nil), crit.Accepted...)
			out.SimpleCriteria[question] = crit
		}
	}
	out.Metadata.ExampleEmployers = append([]string(nil), p.Metadata.ExampleEmployers...)
	out.Metadata.KeySkills = append([]string(nil), p.Metadata.KeySkills...)
	return out
}

// ResponseProfile maps a category to the distinct trait tokens the user
// selected there. A missing category means the user gave no signal.
type ResponseProfile map[string][]string

// Has reports whether token was selected in category.
func (r ResponseProfile) Has(category, token string) bool {
	for _, t := range r[category] {
		if t == token {
			return true
		}
	}
	return false
}

// First returns the first selected token in category, or "".
func (r ResponseProfile) First(category string) string {
	if tokens := r[category]; len(tokens) > 0 {
		return tokens[0]
	}
	return ""
}

// TotalSelections counts selected tokens across all categories.
func (r ResponseProfile) TotalSelections() int {
	n := 0
	for _, tokens := range r {
		n += len(tokens)
	}
	return n
}

// MatchDetail is the per-category score breakdown for one career.
type MatchDetail struct {
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage int     `json:"percentage"`
}

// MatchResult is one ranked career. FitScore is capped below 100; RawScore
// is the same aggregate without the cap.
type MatchResult struct {
	Career       CareerProfile          `json:"career"`
	FitScore     int                    `json:"fit_score"`
	RawScore     int                    `json:"raw_score"`
	MatchDetails map[string]MatchDetail `json:"match_details"`
	Explanation  string                 `json:"explanation"`
	Reasons      []string               `json:"reasons"`
}

// SkillCategory is one derived proficiency area.
type SkillCategory struct {
	Name                 string   `json:"name"`
	Level                int      `json:"level"`
	RepresentativeSkills []string `json:"representative_skills"`
	Bucket               string   `json:"bucket"`
}

// SkillsReport groups skill categories by bucket.
type SkillsReport struct {
	Strong     []SkillCategory `json:"strong"`
	Developing []SkillCategory `json:"developing"`
	Growth     []SkillCategory `json:"growth"`
	Summary    string          `json:"summary"`
}
