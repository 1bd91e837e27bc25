// Package camera manages the capture device lifecycle and its zoom state
package camera

import (
	"context"
	"errors"
	"image"
)

var (
	// ErrUnavailable means the capture device could not be acquired or the
	// session is not active. The only error this package propagates to the UI.
	ErrUnavailable = errors.New("camera unavailable")

	// ErrNoFrame means the device has not produced a frame yet; the caller
	// should skip this sampling tick.
	ErrNoFrame = errors.New("no frame ready")
)

// ZoomCaps is the device-reported zoom capability
type ZoomCaps struct {
	Min  float64
	Max  float64
	Step float64
}

// Driver is the high-level interface over a concrete capture device,
// regardless of how it is controlled (V4L2, file playback, test fake).
type Driver interface {
	// Open acquires the device stream at the preferred resolution.
	Open(ctx context.Context) error
	// Grab returns the current frame at the device's native resolution.
	// Returns ErrNoFrame when no frame has been produced yet.
	Grab(ctx context.Context) (image.Image, error)
	// ZoomCaps reports the zoom capability; ok is false when the device
	// exposes none.
	ZoomCaps() (caps ZoomCaps, ok bool)
	// ApplyZoom requests a zoom constraint on the active stream.
	ApplyZoom(value float64) error
	// Close releases the device stream.
	Close() error
}
