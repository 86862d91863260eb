package vocab

// Question describes one assessment prompt tied to a category. Multi-select
// questions accept any number of tokens; single-select exactly one.
type Question struct {
	Category string
	Prompt   string
	Multi    bool
}

var questions = []Question{
	{Category: Interests, Prompt: "Which activities do you enjoy most?", Multi: true},
	{Category: Skills, Prompt: "Which skills do you feel confident in?", Multi: true},
	{Category: WorkStyle, Prompt: "How do you prefer to work?", Multi: true},
	{Category: Values, Prompt: "What matters most to you in a job?", Multi: true},
	{Category: Technical, Prompt: "Which technical areas have you worked with?", Multi: true},
}

// Questions returns the assessment question set in presentation order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
