package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePhysicalActivity_AgreementScores(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Active", PhysicalReq: "Must be able to lift heavy equipment"},
		{Name: "Desk", PhysicalReq: "false"},
	}, false)

	require.NoError(t, e.Process(1, "yes", ProcessOptions{}))

	assert.Equal(t, ScoreAbilityMatch, e.Score("Active"))
	assert.Equal(t, 0, e.Score("Desk"))
}

func TestScorePhysicalActivity_NoAnswerMatchesNoRequirement(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Active", PhysicalReq: "true"},
		{Name: "Desk", PhysicalReq: ""},
	}, false)

	require.NoError(t, e.Process(1, "no", ProcessOptions{Eliminate: true}))

	assert.Equal(t, 0, e.Score("Active"))
	assert.Equal(t, ScoreAbilityMatch, e.Score("Desk"))
	assert.Equal(t, []string{"Active"}, e.EliminatedRoles())
}

func TestScorePhysicalActivity_NoPreferenceIsNoop(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Active", PhysicalReq: "true"},
	}, false)

	require.NoError(t, e.Process(1, "no preference", ProcessOptions{Eliminate: true}))

	assert.Equal(t, 0, e.Score("Active"))
	assert.Empty(t, e.EliminatedRoles())
}

func TestScoreStanding_MatchesMovementTerms(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Gate", PhysicalReq: "Standing for long periods"},
		{Name: "Scorer", PhysicalReq: "Seated at scoring table"},
	}, false)

	require.NoError(t, e.Process(2, "yes", ProcessOptions{}))

	assert.Equal(t, ScoreMovementMatch, e.Score("Gate"))
	assert.Equal(t, 0, e.Score("Scorer"))
}

func TestScoreMobility_BroaderTermList(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Crew", PhysicalReq: "Carry field elements between matches"},
		{Name: "Scorer", PhysicalReq: "Seated at scoring table"},
	}, false)

	require.NoError(t, e.Process(3, "no", ProcessOptions{Eliminate: true}))

	// "Carry" marks Crew as requiring mobility, which the user lacks
	assert.Equal(t, 0, e.Score("Crew"))
	assert.Equal(t, ScoreMovementMatch, e.Score("Scorer"))
	assert.Equal(t, []string{"Crew"}, e.EliminatedRoles())
}

func TestScorePhysical_InvalidAnswer(t *testing.T) {
	e := newTestEngine(t, []RoleRecord{
		{Name: "Crew", PhysicalReq: "true"},
	}, false)

	err := e.Process(1, "sometimes", ProcessOptions{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
