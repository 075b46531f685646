package postgre

import (
	"context"
	"fmt"
	"time"

	"ai-therapist/internal/model"
)

// SaveTurns appends turns to the session transcript.
func (r *implRepository) SaveTurns(ctx context.Context, sessionID string, turns []model.Turn) error {
	if len(turns) == 0 {
		return nil
	}

	query, args := buildInsertTurns(sessionID, turns)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		r.l.Errorf(ctx, "archive.postgre.SaveTurns: %v", err)
		return fmt.Errorf("insert turns: %w", err)
	}
	return nil
}

// ListTurns returns the transcript in insertion order.
func (r *implRepository) ListTurns(ctx context.Context, sessionID string) ([]model.Turn, error) {
	rows, err := r.db.Query(ctx, listTurnsQuery, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "archive.postgre.ListTurns: %v", err)
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	turns := make([]model.Turn, 0)
	for rows.Next() {
		var (
			role    string
			content string
			ts      time.Time
		)
		if err := rows.Scan(&role, &content, &ts); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		turns = append(turns, model.Turn{Role: model.Role(role), Content: content, Timestamp: ts})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turns: %w", err)
	}
	return turns, nil
}
