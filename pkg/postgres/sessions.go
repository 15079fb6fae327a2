package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mhewson/rolematch/pkg/db"
)

// CreateSession inserts a new in-progress assessment session
func (d *DB) CreateSession(ctx context.Context, sessionID string) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO assessment_session (session_id)
		VALUES ($1)
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by id
func (d *DB) GetSession(ctx context.Context, sessionID string) (*db.Session, error) {
	var session db.Session
	err := d.pool.QueryRow(ctx, `
		SELECT session_id, created_at, status
		FROM assessment_session
		WHERE session_id = $1
	`, sessionID).Scan(&session.ID, &session.CreatedAt, &session.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}
	return &session, nil
}

// CompleteSession marks a session as completed
func (d *DB) CompleteSession(ctx context.Context, sessionID string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE assessment_session
		SET status = $1
		WHERE session_id = $2
	`, db.StatusCompleted, sessionID)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrSessionNotFound
	}
	return nil
}

// SaveAnswer stores one answer, replacing any previous answer to the same
// question in the same session. The original created_at is kept so the
// arrival order of answers survives re-answering.
func (d *DB) SaveAnswer(ctx context.Context, answer *db.Answer) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO user_answer (session_id, question_id, question, answer)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id, question_id)
		DO UPDATE SET question = EXCLUDED.question, answer = EXCLUDED.answer
	`, answer.SessionID, answer.QuestionID, answer.Question, answer.Answer)
	if err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

// GetAnswers retrieves a session's answers ordered by arrival
func (d *DB) GetAnswers(ctx context.Context, sessionID string) ([]db.Answer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT session_id, question_id, question, answer, created_at
		FROM user_answer
		WHERE session_id = $1
		ORDER BY created_at, question_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var answers []db.Answer
	for rows.Next() {
		var a db.Answer
		if err := rows.Scan(&a.SessionID, &a.QuestionID, &a.Question, &a.Answer, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer: %w", err)
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answers: %w", err)
	}

	return answers, nil
}
