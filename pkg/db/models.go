package db

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a session id has no record.
var ErrSessionNotFound = errors.New("session not found")

// Session statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Session represents an assessment session record
type Session struct {
	ID        string
	CreatedAt time.Time
	Status    string
}

// Answer represents one saved answer within a session. QuestionID is unique
// per session; re-answering a question replaces the stored answer but keeps
// the original arrival position.
type Answer struct {
	SessionID  string
	QuestionID int
	Question   string
	Answer     string
	CreatedAt  time.Time
}
