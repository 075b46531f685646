package safety

import (
	"context"
	"math"
	"testing"

	"ai-therapist/pkg/log"
)

func TestCheck(t *testing.T) {
	c := New(log.NewNop())

	tests := []struct {
		name       string
		text       string
		wantCrisis bool
		wantType   string
		wantConf   float64
	}{
		{"ordinary message", "I had a stressful day at work", false, "", 0},
		{"suicide keyword", "I keep thinking about suicide", true, CrisisSuicide, 0.4},
		{"suicide two patterns", "I want to end my life, I don't want to live anymore", true, CrisisSuicide, 0.8},
		{"self harm", "Sometimes I hurt myself when I'm upset", true, CrisisSelfHarm, 0.4},
		{"immediate danger", "I have the pills next to me", true, CrisisImmediateDanger, 0.4},
		{"case insensitive", "SUICIDE", true, CrisisSuicide, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Check(context.Background(), tt.text)
			if got.IsCrisis != tt.wantCrisis {
				t.Fatalf("IsCrisis = %v, want %v", got.IsCrisis, tt.wantCrisis)
			}
			if got.CrisisType != tt.wantType {
				t.Errorf("CrisisType = %q, want %q", got.CrisisType, tt.wantType)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if tt.wantCrisis {
				if len(got.Resources) != 3 {
					t.Errorf("expected 3 crisis resources, got %d", len(got.Resources))
				}
				if len(got.Recommendations) != 8 {
					t.Errorf("expected 8 recommendations, got %d", len(got.Recommendations))
				}
			}
		})
	}
}

func TestCheck_ConfidenceIsCapped(t *testing.T) {
	c := New(log.NewNop())

	got := c.Check(context.Background(), "suicide, I will kill myself and end my life, I don't want to live, planning my suicide")
	if got.Confidence != 1.0 {
		t.Errorf("expected confidence capped at 1, got %v", got.Confidence)
	}
}
