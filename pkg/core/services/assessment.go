package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mhewson/rolematch/pkg/core/matching"
	"github.com/mhewson/rolematch/pkg/db"
)

// ErrNoAnswers is returned when a session is submitted before any answer
// was saved.
var ErrNoAnswers = errors.New("no answers saved for session")

// AssessmentStore defines the database operations needed to score a session
type AssessmentStore interface {
	GetSession(ctx context.Context, sessionID string) (*db.Session, error)
	GetAnswers(ctx context.Context, sessionID string) ([]db.Answer, error)
	CompleteSession(ctx context.Context, sessionID string) error
}

// RoleProvider supplies the current role catalog. roles.Catalog implements it.
type RoleProvider interface {
	Records() []matching.RoleRecord
}

// ScoringOptions control how a session's answers are scored
type ScoringOptions struct {
	// StudentStatus is applied to the engine's student-only age override.
	StudentStatus bool

	// CommitmentType selects the competition calendar for availability
	// answers. Empty defaults to district.
	CommitmentType matching.CommitmentType

	// EliminateUnqualified removes roles that fail a rule instead of just
	// not scoring them.
	EliminateUnqualified bool

	// EngineOptions are passed through to engine construction.
	EngineOptions []matching.Option
}

// SubmitResult contains the outcome of a completed assessment
type SubmitResult struct {
	SessionID      string
	Results        matching.Results
	RemainingCount int
	Eliminated     []string
}

// SubmitAssessment scores a session from its persisted answers and marks it
// completed. A fresh engine is built per call, so concurrent submissions for
// different sessions never share scoring state.
func SubmitAssessment(
	ctx context.Context,
	store AssessmentStore,
	provider RoleProvider,
	opts ScoringOptions,
	logger *zap.Logger,
	sessionID string,
) (*SubmitResult, error) {
	logger.Debug("Starting assessment submission", zap.String("session_id", sessionID))

	if _, err := store.GetSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	answers, err := store.GetAnswers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers: %w", err)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNoAnswers)
	}
	logger.Debug("Found answers", zap.Int("count", len(answers)))

	engine, err := matching.New(provider.Records(), opts.StudentStatus, opts.EngineOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build matching engine: %w", err)
	}

	processOpts := matching.ProcessOptions{
		CommitmentType: opts.CommitmentType,
		Eliminate:      opts.EliminateUnqualified,
	}

	for _, answer := range answers {
		if err := ScoreAnswer(engine, answer.QuestionID, answer.Answer, processOpts); err != nil {
			return nil, fmt.Errorf("failed to score question %d: %w", answer.QuestionID, err)
		}
	}

	if err := store.CompleteSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	result := &SubmitResult{
		SessionID:      sessionID,
		Results:        engine.TopMatches(matching.DefaultTopMatches),
		RemainingCount: engine.RemainingCount(),
		Eliminated:     engine.EliminatedRoles(),
	}

	logger.Info("Assessment scored",
		zap.String("session_id", sessionID),
		zap.Int("answers", len(answers)),
		zap.Int("remaining_roles", result.RemainingCount),
	)

	return result, nil
}

// ScoreAnswer feeds one stored answer into the engine. Multi-select answers
// arrive as JSON arrays; day selections are flattened into one
// space-separated token list, while category selections are scored one
// element at a time.
func ScoreAnswer(engine *matching.Engine, questionID int, rawAnswer string, opts matching.ProcessOptions) error {
	selections := decodeSelections(rawAnswer)

	if questionID == dayAvailabilityQuestion {
		return engine.Process(questionID, strings.Join(selections, " "), opts)
	}

	for _, selection := range selections {
		if err := engine.Process(questionID, selection, opts); err != nil {
			return err
		}
	}
	return nil
}

// dayAvailabilityQuestion is the id of the multi-day availability question.
const dayAvailabilityQuestion = 4

// decodeSelections splits a stored answer into its selected values. Answers
// saved from multi-select inputs are JSON string arrays; everything else is
// a single plain string.
func decodeSelections(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal([]byte(trimmed), &values); err == nil {
			return values
		}
	}
	return []string{trimmed}
}
