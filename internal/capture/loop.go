// Package capture polls camera frames and emits the first decoded symbol
package capture

import (
	"context"
	"errors"
	"image"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"attendance-kiosk/internal/camera"
	"attendance-kiosk/internal/decoder"
)

// DefaultInterval is the fixed frame sampling period
const DefaultInterval = 300 * time.Millisecond

// FrameSource supplies the current video frame
type FrameSource interface {
	Grab(ctx context.Context) (image.Image, error)
}

// Loop samples frames on a fixed period and feeds them to the decoder.
// The first successful decode fires the scan callback exactly once per
// loop lifetime; the loop does not stop itself, the owner stops it
// through the camera session lifecycle.
type Loop struct {
	frames   FrameSource
	dec      decoder.Decoder
	onScan   func(text string)
	interval time.Duration

	started  atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	fired    bool
}

// NewLoop creates a capture loop; interval <= 0 selects DefaultInterval
func NewLoop(frames FrameSource, dec decoder.Decoder, interval time.Duration, onScan func(string)) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		frames:   frames,
		dec:      dec,
		onScan:   onScan,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sampling goroutine
func (l *Loop) Start(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	go l.run(ctx)
}

// Stop halts sampling and waits for the current tick to finish.
// Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
	if l.started.Load() {
		<-l.done
	}
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Each tick is a bounded synchronous grab-and-decode, so no
			// two decode attempts are ever in flight together.
			l.tick(ctx)
		}
	}
}

func (l *Loop) tick(ctx context.Context) {
	img, err := l.frames.Grab(ctx)
	if err != nil {
		if !errors.Is(err, camera.ErrNoFrame) {
			log.Printf("🔍 Frame grab error: %v", err)
		}
		// No frame buffered yet: skip the tick entirely
		return
	}

	text, err := l.dec.Decode(img)
	if err != nil {
		// Decode errors never stop the loop; the next tick retries
		if !errors.Is(err, decoder.ErrNotFound) {
			log.Printf("🔍 Decode error: %v", err)
		}
		return
	}

	if l.fired {
		return
	}
	l.fired = true
	log.Printf("🔍 Symbol decoded: %s", text)
	l.onScan(text)
}
