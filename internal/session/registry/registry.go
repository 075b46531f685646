package registry

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"time"

	"github.com/google/uuid"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/session"
)

// Create builds a chat session outside the lock, then registers it under a fresh v4 id.
func (r *implRegistry) Create(ctx context.Context, input session.CreateInput) (session.Record, error) {
	cs, err := r.factory(ctx)
	if err != nil {
		if errors.Is(err, session.ErrMissingCredentials) {
			return session.Record{}, err
		}
		return session.Record{}, fmt.Errorf("build chat session: %w", err)
	}

	now := r.now()
	rec := session.Record{
		SessionID:    uuid.NewString(),
		UserID:       input.UserID,
		Metadata:     maps.Clone(input.Metadata),
		CreatedAt:    now,
		LastActivity: now,
	}

	r.mu.Lock()
	r.sessions[rec.SessionID] = &entry{record: rec, chat: cs}
	total := len(r.sessions)
	r.mu.Unlock()

	r.l.Infof(ctx, "registry.Create: session %s created (active: %d)", rec.SessionID, total)
	return copyRecord(rec), nil
}

func (r *implRegistry) Get(ctx context.Context, sessionID string) (*chat.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[sessionID]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	e.record.LastActivity = r.now()
	return e.chat, nil
}

func (r *implRegistry) Record(ctx context.Context, sessionID string) (session.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[sessionID]
	if !ok {
		return session.Record{}, session.ErrSessionNotFound
	}
	return copyRecord(e.record), nil
}

// Delete removes the record and closes its chat session. It reports whether anything was removed.
func (r *implRegistry) Delete(ctx context.Context, sessionID string) bool {
	r.mu.Lock()
	e, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if !ok {
		return false
	}
	r.closeChat(ctx, sessionID, e.chat)
	r.l.Infof(ctx, "registry.Delete: session %s deleted", sessionID)
	return true
}

func (r *implRegistry) IncrementMessageCount(ctx context.Context, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[sessionID]; ok {
		e.record.MessageCount++
		e.record.LastActivity = r.now()
	}
}

// EvictExpired deletes every session idle for at least maxAge and returns how many went.
func (r *implRegistry) EvictExpired(ctx context.Context, maxAge time.Duration) int {
	cutoff := r.now().Add(-maxAge)

	r.mu.Lock()
	expired := make(map[string]*chat.Session)
	for id, e := range r.sessions {
		if !e.record.LastActivity.After(cutoff) {
			expired[id] = e.chat
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for id, cs := range expired {
		r.closeChat(ctx, id, cs)
	}
	if len(expired) > 0 {
		r.l.Infof(ctx, "registry.EvictExpired: evicted %d expired sessions", len(expired))
	}
	return len(expired)
}

// ListAll returns a snapshot ordered by creation time.
func (r *implRegistry) ListAll(ctx context.Context) []session.Record {
	r.mu.RLock()
	out := make([]session.Record, 0, len(r.sessions))
	for _, e := range r.sessions {
		out = append(out, copyRecord(e.record))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].SessionID < out[j].SessionID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// StartJanitor evicts idle sessions every interval until ctx is done.
func (r *implRegistry) StartJanitor(ctx context.Context, interval, maxAge time.Duration) {
	if interval <= 0 {
		r.l.Warnf(ctx, "registry.StartJanitor: non-positive interval %s, janitor disabled", interval)
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.EvictExpired(ctx, maxAge)
			}
		}
	}()
}

func (r *implRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close closes every chat session and empties the registry.
func (r *implRegistry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*entry)
	r.mu.Unlock()

	ctx := context.Background()
	for id, e := range sessions {
		r.closeChat(ctx, id, e.chat)
	}
}

func (r *implRegistry) closeChat(ctx context.Context, sessionID string, cs *chat.Session) {
	if cs == nil {
		return
	}
	if err := cs.Close(); err != nil {
		r.l.Warnf(ctx, "registry: close session %s: %v", sessionID, err)
	}
}

func copyRecord(rec session.Record) session.Record {
	rec.Metadata = maps.Clone(rec.Metadata)
	return rec
}
