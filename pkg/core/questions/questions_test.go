package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhewson/rolematch/pkg/core/matching"
)

func TestTotal(t *testing.T) {
	assert.Equal(t, 11, Total())
}

func TestCatalogAlignsWithScoringRules(t *testing.T) {
	// Question ids must match the engine's question dispatch one to one
	assert.Equal(t, matching.TotalQuestions, Total())

	for i, q := range All() {
		assert.Equal(t, i, q.ID, "question %q", q.Key)
	}
}

func TestGet(t *testing.T) {
	q, err := Get(0)
	require.NoError(t, err)
	assert.Equal(t, "age", q.Key)
	assert.Equal(t, TypeDropdown, q.Type)
	assert.Len(t, q.Options, 3)
}

func TestGet_OutOfRange(t *testing.T) {
	_, err := Get(-1)
	assert.ErrorIs(t, err, ErrUnknownQuestion)

	_, err = Get(Total())
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestByKey(t *testing.T) {
	q, ok := ByKey("availability")
	require.True(t, ok)
	assert.Equal(t, 4, q.ID)
	assert.Equal(t, TypeMultiSelect, q.Type)

	_, ok = ByKey("missing")
	assert.False(t, ok)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(0))
	assert.True(t, IsValidID(10))
	assert.False(t, IsValidID(11))
	assert.False(t, IsValidID(-1))
}

func TestBinaryQuestionsOfferYesNo(t *testing.T) {
	for _, q := range All() {
		if q.Type == TypeSelect2 {
			assert.Equal(t, []string{"Yes", "No"}, q.Options, "question %q", q.Key)
		}
	}
}
