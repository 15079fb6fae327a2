package db

import "context"

// SessionStore defines the interface for assessment session persistence.
// The postgres.DB implements this interface.
type SessionStore interface {
	CreateSession(ctx context.Context, sessionID string) error
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	CompleteSession(ctx context.Context, sessionID string) error
	SaveAnswer(ctx context.Context, answer *Answer) error
	// GetAnswers returns a session's answers ordered by arrival.
	GetAnswers(ctx context.Context, sessionID string) ([]Answer, error)
}
