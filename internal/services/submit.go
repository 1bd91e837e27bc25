// Package services implements business logic for the application
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"attendance-kiosk/internal/models"
	"attendance-kiosk/internal/repository"
)

// ErrEmptyInput is returned when the submitted identifier is empty after trimming.
var ErrEmptyInput = errors.New("attendance identifier is empty")

// emailDisplayLen is how many leading characters of an email appear in
// failure lines. Display rule only, no domain meaning.
const emailDisplayLen = 11

// SubmitProcessor defines the interface for attendance submission
type SubmitProcessor interface {
	Submit(ctx context.Context, input string) (models.Outcome, error)
}

// OutcomeNotifier defines the interface for outcome notifications
type OutcomeNotifier interface {
	SendNotification(message string)
}

// SubmitService handles attendance submission business logic
type SubmitService struct {
	attendanceRepo repository.AttendanceRepository
	botNotifier    OutcomeNotifier // may be nil
}

// NewSubmitService creates a new submit service
func NewSubmitService(attendanceRepo repository.AttendanceRepository, botNotifier OutcomeNotifier) *SubmitService {
	return &SubmitService{
		attendanceRepo: attendanceRepo,
		botNotifier:    botNotifier,
	}
}

// Submit sends one attendance identifier to the backend and classifies the
// per-user summary. Empty input returns ErrEmptyInput without issuing a
// request. Transport failures map to a single generic failure outcome; no
// retry is attempted.
func (s *SubmitService) Submit(ctx context.Context, input string) (models.Outcome, error) {
	id := strings.TrimSpace(input)
	if id == "" {
		return models.Outcome{}, ErrEmptyInput
	}

	summary, err := s.attendanceRepo.MarkAllPresent(ctx, id)
	if err != nil {
		log.Printf("❌ Submission failed for %s: %v", id, err)
		s.notify(fmt.Sprintf("❌ Mark-all-present failed for `%s`", id))
		return models.Outcome{OK: false, Message: "Failed to mark all present. Please try again."}, nil
	}

	failures := failureLines(summary)
	if len(failures) == 0 {
		log.Printf("✅ All %d users marked present for %s", len(summary), id)
		s.notify(fmt.Sprintf("✅ All marked present for `%s` (%d users)", id, len(summary)))
		return models.Outcome{OK: true, Message: "All users marked present"}, nil
	}

	log.Printf("⚠️ %d of %d users rejected for %s", len(failures), len(summary), id)
	message := "Some users could not be marked present:\n" + strings.Join(failures, "\n")
	s.notify(fmt.Sprintf("⚠️ %d users rejected for `%s`", len(failures), id))
	return models.Outcome{OK: false, Message: message}, nil
}

func (s *SubmitService) notify(message string) {
	if s.botNotifier != nil {
		s.botNotifier.SendNotification(message)
	}
}

// failureLines formats one line per rejected summary entry
func failureLines(summary []models.SummaryEntry) []string {
	var lines []string
	for _, entry := range summary {
		if entry.Failed() {
			lines = append(lines, formatFailureLine(entry))
		}
	}
	return lines
}

func formatFailureLine(entry models.SummaryEntry) string {
	email := entry.Email
	if len(email) > emailDisplayLen {
		email = email[:emailDisplayLen]
	}
	return fmt.Sprintf("%s: %s", strings.ToUpper(email), entry.Code())
}
