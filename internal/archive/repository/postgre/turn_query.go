package postgre

import (
	"fmt"
	"strings"

	"ai-therapist/internal/model"
)

const listTurnsQuery = `SELECT role, content, created_at FROM conversation_turns WHERE session_id = $1 ORDER BY id`

// buildInsertTurns writes every turn in one statement so a pair is stored atomically.
func buildInsertTurns(sessionID string, turns []model.Turn) (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO conversation_turns (session_id, role, content, created_at) VALUES ")

	args := make([]any, 0, len(turns)*4)
	for i, t := range turns {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args, sessionID, string(t.Role), t.Content, t.Timestamp)
	}
	return b.String(), args
}
