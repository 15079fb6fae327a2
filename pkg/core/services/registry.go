package services

import (
	"fmt"
	"sync"

	"github.com/mhewson/rolematch/pkg/core/matching"
)

// EngineRegistry keeps one live matching engine per in-flight session for
// incremental scoring (answer-by-answer feedback before submission). Access
// to each engine is serialized through the registry lock, so one registry
// can serve concurrent requests for different sessions.
type EngineRegistry struct {
	mu       sync.Mutex
	engines  map[string]*matching.Engine
	provider RoleProvider
	opts     ScoringOptions
}

// NewEngineRegistry creates an empty registry that builds engines from the
// given role provider on first use per session.
func NewEngineRegistry(provider RoleProvider, opts ScoringOptions) *EngineRegistry {
	return &EngineRegistry{
		engines:  make(map[string]*matching.Engine),
		provider: provider,
		opts:     opts,
	}
}

// engineFor returns the session's engine, creating it on first use.
// Caller must hold the lock.
func (r *EngineRegistry) engineFor(sessionID string) (*matching.Engine, error) {
	if engine, ok := r.engines[sessionID]; ok {
		return engine, nil
	}

	engine, err := matching.New(r.provider.Records(), r.opts.StudentStatus, r.opts.EngineOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build matching engine: %w", err)
	}
	r.engines[sessionID] = engine
	return engine, nil
}

// ProcessAnswer scores one answer against the session's engine.
func (r *EngineRegistry) ProcessAnswer(sessionID string, questionID int, answer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	engine, err := r.engineFor(sessionID)
	if err != nil {
		return err
	}

	return ScoreAnswer(engine, questionID, answer, matching.ProcessOptions{
		CommitmentType: r.opts.CommitmentType,
		Eliminate:      r.opts.EliminateUnqualified,
	})
}

// TopMatches returns the session's current ranked recommendations.
func (r *EngineRegistry) TopMatches(sessionID string, n int) (matching.Results, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	engine, err := r.engineFor(sessionID)
	if err != nil {
		return matching.Results{}, err
	}
	return engine.TopMatches(n), nil
}

// Reset restores a session's engine to its initial state.
func (r *EngineRegistry) Reset(sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	engine, ok := r.engines[sessionID]
	if !ok {
		return nil
	}
	engine.Reset()
	return nil
}

// Remove drops a session's engine, releasing its scoring state.
func (r *EngineRegistry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.engines, sessionID)
}

// Clear drops every live engine. Used after the role catalog is replaced
// so new answers score against the fresh dataset.
func (r *EngineRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engines = make(map[string]*matching.Engine)
}

// Active returns the number of sessions with live engines.
func (r *EngineRegistry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}
