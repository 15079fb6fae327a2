package sheetsclient

import (
	"fmt"
	"strings"
	"time"
)

// SessionExport is one completed assessment ready to be written to the
// results spreadsheet
type SessionExport struct {
	SessionID   string
	CompletedAt time.Time
	Answers     []AnswerExport
	BestFit     []string
	NextBest    []string
}

// AnswerExport pairs a question with the answer the volunteer gave
type AnswerExport struct {
	Question string
	Answer   string
}

var exportHeader = []interface{}{
	"Session ID", "Completed at", "Question", "Answer", "Best fit", "Next best",
}

// ExportSession appends a completed assessment to the given tab, creating
// the tab with a header row if it does not exist yet. The first answer row
// carries the match results, the remaining rows only the question/answer
// pair.
func (c *Client) ExportSession(spreadsheetID, tabTitle string, export *SessionExport) error {
	if len(export.Answers) == 0 {
		return fmt.Errorf("session %s has no answers to export", export.SessionID)
	}

	exists, err := c.tabExists(spreadsheetID, tabTitle)
	if err != nil {
		return err
	}

	if !exists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return err
		}
		if err := c.AppendRows(spreadsheetID, tabTitle, [][]interface{}{exportHeader}); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
	}

	return c.AppendRows(spreadsheetID, tabTitle, buildSessionRows(export))
}

// buildSessionRows flattens a session into spreadsheet rows
func buildSessionRows(export *SessionExport) [][]interface{} {
	completedAt := export.CompletedAt.Format("2006-01-02 15:04:05")

	rows := make([][]interface{}, 0, len(export.Answers))
	for i, answer := range export.Answers {
		bestFit := ""
		nextBest := ""
		if i == 0 {
			bestFit = strings.Join(export.BestFit, ", ")
			nextBest = strings.Join(export.NextBest, ", ")
		}

		rows = append(rows, []interface{}{
			export.SessionID,
			completedAt,
			answer.Question,
			answer.Answer,
			bestFit,
			nextBest,
		})
	}

	return rows
}
