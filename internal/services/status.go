package services

import (
	"errors"
	"sync"
)

// ErrSubmissionInFlight is returned by Begin while a submission is running.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Phase is the tagged state of the submission affordance
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseSubmitting:
		return "submitting"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// StatusTracker holds the UI status as an explicit tagged state so that
// an outcome can never be displayed while a submission is still running.
// The status is replaced on every attempt; no history is kept.
type StatusTracker struct {
	mu      sync.Mutex
	phase   Phase
	message string
}

// NewStatusTracker creates a tracker in the Idle phase
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{phase: PhaseIdle}
}

// Begin moves the tracker into Submitting, failing if already in flight
func (t *StatusTracker) Begin() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == PhaseSubmitting {
		return ErrSubmissionInFlight
	}
	t.phase = PhaseSubmitting
	t.message = ""
	return nil
}

// Succeed records a successful outcome
func (t *StatusTracker) Succeed(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phase = PhaseSucceeded
	t.message = message
}

// Fail records a failed outcome
func (t *StatusTracker) Fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phase = PhaseFailed
	t.message = message
}

// InFlight reports whether a submission is currently running
func (t *StatusTracker) InFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase == PhaseSubmitting
}

// Snapshot returns the current phase and banner message
func (t *StatusTracker) Snapshot() (Phase, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.phase, t.message
}
