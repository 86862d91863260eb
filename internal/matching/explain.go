package matching

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pathwise/career-fit-engine/internal/domain"
)

const (
	strengthThreshold      = 70
	considerationThreshold = 40
	maxReasons             = 3
)

const fallbackReason = "This role touches several areas from your assessment."

// Explanation is the human-readable justification for one match.
type Explanation struct {
	Explanation string
	Reasons     []string
}

// Explain derives the narrative for a match from its per-category breakdown.
// Categories at or above 70% are strengths, categories strictly between 0%
// and 40% are worth developing, and categories at exactly 0% stay out of the
// narrative. Pure formatting: scores are never altered here.
func Explain(career domain.CareerProfile, details map[string]domain.MatchDetail) Explanation {
	type scored struct {
		category   string
		percentage int
	}

	var strengths, considerations []scored
	for category, d := range details {
		switch {
		case d.Percentage >= strengthThreshold:
			strengths = append(strengths, scored{category, d.Percentage})
		case d.Percentage > 0 && d.Percentage < considerationThreshold:
			considerations = append(considerations, scored{category, d.Percentage})
		}
	}

	// Strongest first; names break ties so output is deterministic.
	sort.Slice(strengths, func(i, j int) bool {
		if strengths[i].percentage != strengths[j].percentage {
			return strengths[i].percentage > strengths[j].percentage
		}
		return strengths[i].category < strengths[j].category
	})
	sort.Slice(considerations, func(i, j int) bool { return considerations[i].category < considerations[j].category })

	var sb strings.Builder
	if len(strengths) > 0 {
		names := make([]string, len(strengths))
		for i, s := range strengths {
			names[i] = humanize(s.category)
		}
		fmt.Fprintf(&sb, "Your strengths in %s closely match what a %s needs.", joinNames(names), career.Title)
	} else {
		fmt.Fprintf(&sb, "Your profile shares some common ground with a %s role.", career.Title)
	}
	if len(considerations) > 0 {
		names := make([]string, len(considerations))
		for i, c := range considerations {
			names[i] = humanize(c.category)
		}
		fmt.Fprintf(&sb, " Developing your %s would strengthen the fit.", joinNames(names))
	}

	reasons := make([]string, 0, maxReasons)
	for _, s := range strengths {
		if len(reasons) == maxReasons {
			break
		}
		reasons = append(reasons, fmt.Sprintf("Your answers on %s strongly align with this role.", humanize(s.category)))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, fallbackReason)
	}

	return Explanation{Explanation: sb.String(), Reasons: reasons}
}

// humanize turns a category identifier into a readable phrase,
// e.g. "work_style" -> "work style".
func humanize(category string) string {
	return strings.ToLower(strings.ReplaceAll(category, "_", " "))
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
