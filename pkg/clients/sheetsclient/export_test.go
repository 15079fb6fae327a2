package sheetsclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSessionRows(t *testing.T) {
	export := &SessionExport{
		SessionID:   "abc-123",
		CompletedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Answers: []AnswerExport{
			{Question: "What is your age?", Answer: "18 and older"},
			{Question: "Do you have prior FIRST experience?", Answer: "yes"},
		},
		BestFit:  []string{"Referee", "Field Supervisor"},
		NextBest: []string{"Pit Admin"},
	}

	rows := buildSessionRows(export)
	require.Len(t, rows, 2)

	assert.Equal(t, []interface{}{
		"abc-123", "2026-03-14 09:30:00",
		"What is your age?", "18 and older",
		"Referee, Field Supervisor", "Pit Admin",
	}, rows[0])

	// Results only appear on the first row
	assert.Equal(t, []interface{}{
		"abc-123", "2026-03-14 09:30:00",
		"Do you have prior FIRST experience?", "yes",
		"", "",
	}, rows[1])
}

func TestBuildSessionRows_EmptyResults(t *testing.T) {
	export := &SessionExport{
		SessionID:   "abc-123",
		CompletedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Answers: []AnswerExport{
			{Question: "What is your age?", Answer: "13 to 15 years old"},
		},
	}

	rows := buildSessionRows(export)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0][4])
	assert.Equal(t, "", rows[0][5])
}
