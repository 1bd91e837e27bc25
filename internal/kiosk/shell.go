// Package kiosk implements the single-screen terminal shell: text entry,
// scan toggle, status banner.
package kiosk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"attendance-kiosk/internal/camera"
	"attendance-kiosk/internal/capture"
	"attendance-kiosk/internal/decoder"
	"attendance-kiosk/internal/services"
)

const promptEmptyInput = "Please enter a task"

// Shell composes submission, camera session and capture loop into an
// interactive prompt. All state transitions run on the shell's event loop.
type Shell struct {
	in     io.Reader
	out    io.Writer
	submit services.SubmitProcessor
	status *services.StatusTracker

	drv      camera.Driver // nil when no camera is configured
	dec      decoder.Decoder
	interval time.Duration

	scanning  bool
	sess      *camera.Session
	loop      *capture.Loop
	lastInput string
	scanCh    chan string
}

// NewShell creates the kiosk shell; drv may be nil for manual-entry-only use
func NewShell(in io.Reader, out io.Writer, submit services.SubmitProcessor, drv camera.Driver, dec decoder.Decoder) *Shell {
	return &Shell{
		in:       in,
		out:      out,
		submit:   submit,
		status:   services.NewStatusTracker(),
		drv:      drv,
		dec:      dec,
		interval: capture.DefaultInterval,
		scanCh:   make(chan string, 1),
	}
}

// Run drives the prompt until quit, EOF or context cancellation. Any active
// camera session is released on every exit path.
func (s *Shell) Run(ctx context.Context) error {
	defer s.stopScanning()

	fmt.Fprintln(s.out, "🏷️  Attendance kiosk. Type an attendance ID and press Enter.")
	fmt.Fprintln(s.out, "Commands: scan (toggle camera), zoom <value>, retry, quit")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	s.prompt()
	for {
		select {
		case <-ctx.Done():
			return nil

		case code := <-s.scanCh:
			// A scanned value stops the capture session and is submitted
			// immediately.
			s.stopScanning()
			fmt.Fprintf(s.out, "Scanned: %s\n", code)
			s.submitInput(ctx, code)
			s.prompt()

		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if done := s.handleLine(ctx, line); done {
				return nil
			}
			s.prompt()
		}
	}
}

func (s *Shell) prompt() {
	fmt.Fprint(s.out, "> ")
}

// handleLine processes one typed line; returns true on quit
func (s *Shell) handleLine(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "quit" || trimmed == "exit":
		return true

	case trimmed == "scan":
		s.toggleScan(ctx)

	// Match the zoom command exactly so IDs like "zoom-team-7" still submit.
	case trimmed == "zoom" || strings.HasPrefix(trimmed, "zoom "):
		s.handleZoom(strings.TrimSpace(strings.TrimPrefix(trimmed, "zoom")))

	case trimmed == "retry":
		s.submitInput(ctx, s.lastInput)

	default:
		s.submitInput(ctx, line)
	}
	return false
}

// submitInput runs one submission attempt and renders the outcome. The
// prompt loop is synchronous, so the in-flight guard can never trip from
// the keyboard; it still backs the state machine invariant.
func (s *Shell) submitInput(ctx context.Context, raw string) {
	if err := s.status.Begin(); err != nil {
		fmt.Fprintln(s.out, "⏳ A submission is already in flight")
		return
	}

	outcome, err := s.submit.Submit(ctx, raw)
	switch {
	case errors.Is(err, services.ErrEmptyInput):
		s.status.Fail(promptEmptyInput)
	case err != nil:
		s.status.Fail(outcome.Message)
	case outcome.OK:
		// Success clears the input
		s.lastInput = ""
		s.status.Succeed(outcome.Message)
	default:
		// Validation failure keeps the input so the user may retry it
		s.lastInput = strings.TrimSpace(raw)
		s.status.Fail(outcome.Message)
	}
	s.renderStatus()
}

func (s *Shell) renderStatus() {
	phase, message := s.status.Snapshot()
	switch phase {
	case services.PhaseSucceeded:
		fmt.Fprintf(s.out, "✅ %s\n", message)
	case services.PhaseFailed:
		fmt.Fprintf(s.out, "❌ %s\n", message)
	case services.PhaseSubmitting:
		fmt.Fprintln(s.out, "⏳ Submitting...")
	}
}

// toggleScan starts or stops the camera session. Only one session exists
// at a time, gated by the scanning flag.
func (s *Shell) toggleScan(ctx context.Context) {
	if s.scanning {
		s.stopScanning()
		fmt.Fprintln(s.out, "Scanning stopped")
		return
	}
	if s.drv == nil || s.dec == nil {
		fmt.Fprintln(s.out, "📷 No camera configured; enter the ID manually")
		return
	}

	sess := camera.NewSession(s.drv)
	if err := sess.Start(ctx); err != nil {
		// Terminal for the session; manual entry remains usable
		fmt.Fprintln(s.out, "📷 Camera unavailable; enter the ID manually")
		return
	}

	loop := capture.NewLoop(sess, s.dec, s.interval, func(text string) {
		select {
		case s.scanCh <- text:
		default:
		}
	})
	loop.Start(ctx)
	sess.BindSampler(loop.Stop)

	s.sess = sess
	s.loop = loop
	s.scanning = true

	fmt.Fprintln(s.out, "📷 Scanning... point the camera at a QR code (type scan to stop)")
	if caps, ok := sess.ZoomCaps(); ok {
		fmt.Fprintf(s.out, "Zoom available: %.1f–%.1f (step %.1f), currently %.1f\n",
			caps.Min, caps.Max, caps.Step, sess.Zoom())
	}
}

func (s *Shell) stopScanning() {
	if !s.scanning {
		return
	}
	s.sess.Stop()
	s.sess = nil
	s.loop = nil
	s.scanning = false
}

func (s *Shell) handleZoom(arg string) {
	if !s.scanning {
		fmt.Fprintln(s.out, "Start scanning first")
		return
	}
	if _, ok := s.sess.ZoomCaps(); !ok {
		fmt.Fprintln(s.out, "This camera has no zoom control")
		return
	}
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		fmt.Fprintln(s.out, "Usage: zoom <value>")
		return
	}
	s.sess.SetZoom(value)
	fmt.Fprintf(s.out, "Zoom set to %.1f\n", s.sess.Zoom())
}
