package vocab

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesAreSorted(t *testing.T) {
	categories := Categories()
	require.Len(t, categories, 5)
	assert.True(t, sort.StringsAreSorted(categories))
	assert.Contains(t, categories, WorkStyle)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(Interests, "problem_solving"))
	assert.True(t, Contains(Skills, "technical_programming"))
	assert.False(t, Contains(Interests, "technical_programming"))
	assert.False(t, Contains("hobbies", "problem_solving"))
}

func TestTokensReturnsACopy(t *testing.T) {
	tokens := Tokens(Interests)
	require.NotEmpty(t, tokens)
	tokens[0] = "mutated"
	assert.NotEqual(t, "mutated", Tokens(Interests)[0])

	assert.Nil(t, Tokens("hobbies"))
}

func TestQuestionsCoverVocabularyCategories(t *testing.T) {
	for _, q := range Questions() {
		assert.True(t, HasCategory(q.Category), "question category %q must exist", q.Category)
		assert.NotEmpty(t, q.Prompt)
	}
}
