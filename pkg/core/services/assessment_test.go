package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mhewson/rolematch/pkg/core/matching"
	"github.com/mhewson/rolematch/pkg/db"
)

type fakeStore struct {
	sessions  map[string]*db.Session
	answers   map[string][]db.Answer
	completed []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions: make(map[string]*db.Session),
		answers:  make(map[string][]db.Answer),
	}
}

func (s *fakeStore) GetSession(_ context.Context, sessionID string) (*db.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, db.ErrSessionNotFound
	}
	return session, nil
}

func (s *fakeStore) GetAnswers(_ context.Context, sessionID string) ([]db.Answer, error) {
	return s.answers[sessionID], nil
}

func (s *fakeStore) CompleteSession(_ context.Context, sessionID string) error {
	if _, ok := s.sessions[sessionID]; !ok {
		return db.ErrSessionNotFound
	}
	s.sessions[sessionID].Status = db.StatusCompleted
	s.completed = append(s.completed, sessionID)
	return nil
}

func (s *fakeStore) addSession(sessionID string) {
	s.sessions[sessionID] = &db.Session{
		ID:        sessionID,
		CreatedAt: time.Now(),
		Status:    db.StatusInProgress,
	}
}

func (s *fakeStore) addAnswer(sessionID string, questionID int, answer string) {
	s.answers[sessionID] = append(s.answers[sessionID], db.Answer{
		SessionID:  sessionID,
		QuestionID: questionID,
		Answer:     answer,
	})
}

type staticProvider []matching.RoleRecord

func (p staticProvider) Records() []matching.RoleRecord {
	return p
}

func testRoles() staticProvider {
	return staticProvider{
		{Name: "Referee", AgeMin: "18", LeadershipPref: "true", WorkPref: "FRONT", DistrictDayCommitment: "FRI SAT"},
		{Name: "Pit Admin", AgeMin: "16", LeadershipPref: "false", WorkPref: "BTS", DistrictDayCommitment: "FRI"},
		{Name: "Field Resetter", AgeMin: "13", LeadershipPref: "false", WorkPref: "FRONT", DistrictDayCommitment: "SAT SUN"},
	}
}

func TestSubmitAssessment_ScoresStoredAnswers(t *testing.T) {
	store := newFakeStore()
	store.addSession("s1")
	store.addAnswer("s1", 0, "18 and older")
	store.addAnswer("s1", 6, "no")
	store.addAnswer("s1", 5, "BTS")

	result, err := SubmitAssessment(context.Background(), store, testRoles(), ScoringOptions{}, zap.NewNop(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "s1", result.SessionID)
	// Pit Admin: age 5 + leadership 5 + work pref 5 = 15, ahead of the rest
	assert.Equal(t, "Pit Admin, Field Resetter, Referee", result.Results.BestFit)
	assert.Equal(t, 3, result.RemainingCount)
	assert.Equal(t, []string{"s1"}, store.completed)
}

func TestSubmitAssessment_UnknownSession(t *testing.T) {
	store := newFakeStore()

	_, err := SubmitAssessment(context.Background(), store, testRoles(), ScoringOptions{}, zap.NewNop(), "missing")
	assert.ErrorIs(t, err, db.ErrSessionNotFound)
}

func TestSubmitAssessment_NoAnswers(t *testing.T) {
	store := newFakeStore()
	store.addSession("s1")

	_, err := SubmitAssessment(context.Background(), store, testRoles(), ScoringOptions{}, zap.NewNop(), "s1")
	assert.ErrorIs(t, err, ErrNoAnswers)
	assert.Empty(t, store.completed)
}

func TestSubmitAssessment_InvalidStoredAnswerAborts(t *testing.T) {
	store := newFakeStore()
	store.addSession("s1")
	store.addAnswer("s1", 0, "not an age bracket")

	_, err := SubmitAssessment(context.Background(), store, testRoles(), ScoringOptions{}, zap.NewNop(), "s1")
	assert.ErrorIs(t, err, matching.ErrInvalidResponse)
	assert.Empty(t, store.completed)
}

func TestSubmitAssessment_EliminationMode(t *testing.T) {
	store := newFakeStore()
	store.addSession("s1")
	store.addAnswer("s1", 5, "FRONT")

	opts := ScoringOptions{EliminateUnqualified: true}
	result, err := SubmitAssessment(context.Background(), store, testRoles(), opts, zap.NewNop(), "s1")
	require.NoError(t, err)

	assert.Equal(t, 2, result.RemainingCount)
	assert.Equal(t, []string{"Pit Admin"}, result.Eliminated)
}

func TestScoreAnswer_MultiSelectDaysJoined(t *testing.T) {
	engine, err := matching.New(testRoles(), false)
	require.NoError(t, err)

	err = ScoreAnswer(engine, 4, `["Friday", "Saturday"]`, matching.ProcessOptions{})
	require.NoError(t, err)

	// Referee requires FRI SAT, both covered
	assert.Equal(t, matching.ScoreFullDayCoverage, engine.Score("Referee"))
}

func TestScoreAnswer_MultiSelectCategoriesScoredIndividually(t *testing.T) {
	provider := staticProvider{
		{Name: "Inspector", RequiredSkills: "mechanical skills and robot inspection"},
		{Name: "Scorekeeper", RequiredSkills: "spreadsheets and email"},
	}
	engine, err := matching.New(provider, false)
	require.NoError(t, err)

	err = ScoreAnswer(engine, 9, `["MECHANICAL/TECHNICAL SKILLS", "BASIC COMPUTER SKILLS"]`, matching.ProcessOptions{})
	require.NoError(t, err)

	assert.Equal(t, matching.ScoreSkillCategoryMatch, engine.Score("Inspector"))
	assert.Equal(t, matching.ScoreSkillCategoryMatch, engine.Score("Scorekeeper"))
}

func TestScoreAnswer_PlainStringPassedThrough(t *testing.T) {
	engine, err := matching.New(testRoles(), false)
	require.NoError(t, err)

	require.NoError(t, ScoreAnswer(engine, 6, "yes", matching.ProcessOptions{}))
	assert.Equal(t, matching.ScoreAbilityMatch, engine.Score("Referee"))
}
