package camera

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
)

// Session owns one device stream plus its zoom state and sampling loop.
// It is created by the UI screen that scans and destroyed when scanning is
// toggled off. Invariant: a sampler is bound iff the stream is active.
type Session struct {
	drv Driver

	mu         sync.Mutex
	active     bool
	caps       ZoomCaps
	hasZoom    bool
	zoom       float64
	stopSample func()
}

// NewSession creates a session over the given driver; nothing is acquired
// until Start.
func NewSession(drv Driver) *Session {
	return &Session{drv: drv}
}

// Start acquires the device stream and, if the device reports a zoom
// capability, initializes the live zoom to its minimum.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return nil
	}
	if err := s.drv.Open(ctx); err != nil {
		log.Printf("📷 Camera open failed: %v", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.active = true

	if caps, ok := s.drv.ZoomCaps(); ok {
		s.caps = caps
		s.hasZoom = true
		s.zoom = caps.Min
		if err := s.drv.ApplyZoom(caps.Min); err != nil {
			// Zoom rejection never fails the session
			log.Printf("📷 Initial zoom constraint rejected: %v", err)
		}
	}

	log.Printf("📷 Camera session started (zoom capability: %v)", s.hasZoom)
	return nil
}

// Stop halts sampling and releases the device stream. Safe to call when
// already stopped. The sampler stop waits for an in-flight tick, and a
// tick entering Grab takes the session mutex, so teardown must run
// outside the lock.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	stopSample := s.stopSample
	s.stopSample = nil
	s.mu.Unlock()

	if stopSample != nil {
		stopSample()
	}
	// The driver is closed only once the sampling goroutine has exited,
	// so no grab can hit a closed device.
	if err := s.drv.Close(); err != nil {
		log.Printf("📷 Camera close error: %v", err)
	}
	log.Printf("📷 Camera session stopped")
}

// BindSampler registers the sampling loop's stop function so that Stop
// tears both down on every exit path.
func (s *Session) BindSampler(stop func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopSample = stop
}

// Grab returns the current frame; part of the capture loop's frame source.
func (s *Session) Grab(ctx context.Context) (image.Image, error) {
	s.mu.Lock()
	active := s.active
	s.mu.Unlock()

	if !active {
		return nil, ErrUnavailable
	}
	return s.drv.Grab(ctx)
}

// ZoomCaps reports the bounds recorded at Start
func (s *Session) ZoomCaps() (ZoomCaps, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caps, s.hasZoom
}

// Zoom returns the current (optimistic) zoom value
func (s *Session) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// SetZoom clamps the value to the device bounds and applies it. A driver
// rejection is logged and swallowed; the recorded value stays optimistic
// and may not reflect hardware truth.
func (s *Session) SetZoom(value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || !s.hasZoom {
		return
	}
	if value < s.caps.Min {
		value = s.caps.Min
	}
	if value > s.caps.Max {
		value = s.caps.Max
	}
	s.zoom = value
	if err := s.drv.ApplyZoom(value); err != nil {
		log.Printf("📷 Zoom constraint rejected (kept %.1f): %v", value, err)
	}
}

// Active reports whether the stream is currently acquired
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
