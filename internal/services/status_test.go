package services

import (
	"errors"
	"testing"
)

func TestStatusTrackerTransitions(t *testing.T) {
	tracker := NewStatusTracker()

	if phase, _ := tracker.Snapshot(); phase != PhaseIdle {
		t.Fatalf("initial phase = %v, want idle", phase)
	}

	if err := tracker.Begin(); err != nil {
		t.Fatalf("Begin() from idle error = %v", err)
	}
	if !tracker.InFlight() {
		t.Errorf("InFlight() = false while submitting")
	}

	// Re-entrant submission is impossible while in flight
	if err := tracker.Begin(); !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("Begin() while submitting error = %v, want ErrSubmissionInFlight", err)
	}

	tracker.Succeed("All users marked present")
	phase, message := tracker.Snapshot()
	if phase != PhaseSucceeded || message != "All users marked present" {
		t.Errorf("after Succeed: phase = %v, message = %q", phase, message)
	}

	// A finished attempt can be followed by a new one
	if err := tracker.Begin(); err != nil {
		t.Fatalf("Begin() after success error = %v", err)
	}
	tracker.Fail("nope")
	if phase, _ := tracker.Snapshot(); phase != PhaseFailed {
		t.Errorf("after Fail: phase = %v, want failed", phase)
	}
	if tracker.InFlight() {
		t.Errorf("InFlight() = true after failure")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "idle"},
		{PhaseSubmitting, "submitting"},
		{PhaseSucceeded, "succeeded"},
		{PhaseFailed, "failed"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
