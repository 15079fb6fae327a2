package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy() []Category {
	return []Category{
		{Name: "OFFICE", Keywords: []string{"email", "spreadsheets", "word"}},
		{Name: "MECHANICAL", Keywords: []string{"tools", "mechanical", "robot inspection"}},
	}
}

func TestNewSkillCategorizer_EmptyKeywordsRejected(t *testing.T) {
	_, err := NewSkillCategorizer([]Category{{Name: "EMPTY"}})
	assert.Error(t, err)
}

func TestSkillCategorizer_CountsWholeWordsOnly(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	// "wordsmith" must not count as "word"
	scores := cat.Categorize("Send email, update spreadsheets, email again. A wordsmith.")
	assert.Equal(t, 3, scores["OFFICE"]) // email x2 + spreadsheets
	assert.Equal(t, 0, scores["MECHANICAL"])
}

func TestSkillCategorizer_CaseInsensitive(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	scores := cat.Categorize("MECHANICAL aptitude with Robot Inspection")
	assert.Equal(t, 2, scores["MECHANICAL"])
}

func TestSkillCategorizer_EmptyTextYieldsEmptyScores(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	assert.Empty(t, cat.Categorize(""))
}

func TestTopCategory_PicksHighestCount(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	top, ok := cat.TopCategory(map[string]int{"OFFICE": 1, "MECHANICAL": 4})
	require.True(t, ok)
	assert.Equal(t, "MECHANICAL", top)
}

func TestTopCategory_TieGoesToTaxonomyOrder(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	top, ok := cat.TopCategory(map[string]int{"OFFICE": 2, "MECHANICAL": 2})
	require.True(t, ok)
	assert.Equal(t, "OFFICE", top)
}

func TestTopCategory_AllZeroStillPicksFirst(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	top, ok := cat.TopCategory(cat.Categorize("nothing relevant here"))
	require.True(t, ok)
	assert.Equal(t, "OFFICE", top)
}

func TestTopCategory_EmptyScoresYieldsSentinel(t *testing.T) {
	cat, err := NewSkillCategorizer(testTaxonomy())
	require.NoError(t, err)

	top, ok := cat.TopCategory(map[string]int{})
	assert.False(t, ok)
	assert.Equal(t, NoCategory, top)
}

func TestDefaultTaxonomiesCompile(t *testing.T) {
	_, err := NewSkillCategorizer(RequiredSkillsTaxonomy())
	assert.NoError(t, err)

	_, err = NewSkillCategorizer(RequiredExperienceTaxonomy())
	assert.NoError(t, err)
}
