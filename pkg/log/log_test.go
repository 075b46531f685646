package log_test

import (
	"context"
	"testing"

	"ai-therapist/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "not-a-level", Mode: log.ModeProduction, Encoding: log.EncodingJSON})
	if l == nil {
		t.Fatal("expected logger")
	}
	// Must not panic with or without a request id.
	l.Infof(context.Background(), "hello %s", "world")
	l.Debug(log.WithRequestID(context.Background(), "abc"), "debug line")

	log.NewNop().Error(context.Background(), "discarded")
}
