package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriorExperience(t *testing.T) {
	assert.Equal(t, levelNotRequired, parsePriorExperience("FALSE"))
	assert.Equal(t, levelRequired, parsePriorExperience("true"))
	assert.Equal(t, levelPreferred, parsePriorExperience("Preferred"))
	assert.Equal(t, levelRequired, parsePriorExperience("2 years minimum"))
	assert.Equal(t, levelPreferred, parsePriorExperience("helpful but not essential"))
	assert.Equal(t, levelUnknown, parsePriorExperience(""))
	assert.Equal(t, levelUnknown, parsePriorExperience("see role description"))
}

func TestScorePriorExperience_HasExperience(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", PriorExperience: "2 years refereeing required"},
		{Name: "Judge", PriorExperience: "recommended"},
		{Name: "Gate", PriorExperience: "FALSE"},
	}, false)

	require.NoError(t, e.Process(7, "yes", ProcessOptions{}))

	assert.Equal(t, ScoreExperienceRequired, e.Score("Ref"))
	assert.Equal(t, ScoreExperiencePreferred, e.Score("Judge"))
	assert.Equal(t, ScoreExperienceBaseline, e.Score("Gate"))
}

func TestScorePriorExperience_NoExperience(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", PriorExperience: "required"},
		{Name: "Judge", PriorExperience: "recommended"},
		{Name: "Gate", PriorExperience: "FALSE"},
	}, false)

	require.NoError(t, e.Process(7, "no", ProcessOptions{}))

	assert.Equal(t, 0, e.Score("Ref"))
	assert.Equal(t, PenaltyNoExperiencePreferred, e.Score("Judge"))
	assert.Equal(t, ScoreNoExperienceNotRequired, e.Score("Gate"))
}

func TestScorePriorExperience_NeverEliminates(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", PriorExperience: "required"},
	}, false)

	require.NoError(t, e.Process(7, "no", ProcessOptions{Eliminate: true}))

	assert.Empty(t, e.EliminatedRoles())
}

func TestScorePriorExperience_StrictBinaryAnswer(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", PriorExperience: "required"},
	}, false)

	err := e.Process(7, "no preference", ProcessOptions{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestParseGameKnowledge(t *testing.T) {
	assert.Equal(t, tierIndex("NONE"), parseGameKnowledge("FALSE"))
	assert.Equal(t, tierIndex("LIMITED"), parseGameKnowledge("TRUE"))
	assert.Equal(t, tierIndex("THOROUGH"), parseGameKnowledge("In-depth rule knowledge"))
	assert.Equal(t, tierIndex("AVERAGE"), parseGameKnowledge("familiar with the game"))
	assert.Equal(t, tierIndex("LIMITED"), parseGameKnowledge("can learn on the day"))
	assert.Equal(t, -1, parseGameKnowledge(""))
	assert.Equal(t, -1, parseGameKnowledge("see handbook"))
}

func TestScoreGameKnowledge_ExactAndAbove(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", GameKnowledge: "thorough understanding"},
		{Name: "Queue", GameKnowledge: "basic"},
		{Name: "Gate", GameKnowledge: "FALSE"},
	}, false)

	require.NoError(t, e.Process(8, "THOROUGH", ProcessOptions{}))

	assert.Equal(t, ScoreKnowledgeExact, e.Score("Ref"))
	assert.Equal(t, ScoreKnowledgeAbove, e.Score("Queue"))
	assert.Equal(t, ScoreKnowledgeAbove, e.Score("Gate"))
}

func TestScoreGameKnowledge_BelowRequirementEliminatesInMode(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", GameKnowledge: "thorough understanding"},
	}, false)

	require.NoError(t, e.Process(8, "limited", ProcessOptions{Eliminate: true}))

	assert.Equal(t, []string{"Ref"}, e.EliminatedRoles())
}

func TestScoreGameKnowledge_UnclassifiableSkipped(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Odd", GameKnowledge: "see handbook"},
	}, false)

	require.NoError(t, e.Process(8, "none", ProcessOptions{Eliminate: true}))

	assert.Equal(t, 0, e.Score("Odd"))
	assert.Empty(t, e.EliminatedRoles())
}

func TestScoreGameKnowledge_InvalidTier(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Ref", GameKnowledge: "basic"},
	}, false)

	err := e.Process(8, "EXPERT", ProcessOptions{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
