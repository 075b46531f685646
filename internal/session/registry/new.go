package registry

import (
	"sync"
	"time"

	"ai-therapist/internal/chat"
	"ai-therapist/internal/session"
	"ai-therapist/pkg/log"
)

type entry struct {
	record session.Record
	chat   *chat.Session
}

type implRegistry struct {
	l       log.Logger
	factory Factory
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

// Option customises the registry.
type Option func(*implRegistry)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *implRegistry) { r.now = now }
}

// New returns an empty registry that builds chat sessions with factory.
func New(l log.Logger, factory Factory, opts ...Option) *implRegistry {
	r := &implRegistry{
		l:        l,
		factory:  factory,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
