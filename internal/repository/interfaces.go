// Package repository defines data access against the remote attendance backend
package repository

import (
	"context"

	"attendance-kiosk/internal/models"
)

// AttendanceRepository defines the interface for attendance submission
type AttendanceRepository interface {
	// MarkAllPresent submits one attendance identifier and returns the
	// per-user summary reported by the backend.
	MarkAllPresent(ctx context.Context, attendanceID string) ([]models.SummaryEntry, error)
}
