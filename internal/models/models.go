// Package models contains data structures for the application
package models

// CodeAttendanceNotValid is the per-user rejection code reported by the backend.
const CodeAttendanceNotValid = "ATTENDANCE_NOT_VALID"

// MarkAllPresentRequest is the body sent to the mark-all-present endpoint
type MarkAllPresentRequest struct {
	AttendanceID string `json:"attendanceId"`
}

// MarkAllPresentResponse is the backend response for one submission
type MarkAllPresentResponse struct {
	Summary []SummaryEntry `json:"summary"`
}

// SummaryEntry is one server-reported outcome for a single user
type SummaryEntry struct {
	Email string     `json:"email"`
	Data  *EntryData `json:"data,omitempty"`
}

// EntryData wraps the nested result payload of a summary entry
type EntryData struct {
	Output *EntryOutput `json:"output,omitempty"`
}

type EntryOutput struct {
	Data *EntryResult `json:"data,omitempty"`
}

type EntryResult struct {
	Code string `json:"code"`
}

// Code walks the nested payload and returns the result code, or "" when
// any level of the nesting is absent.
func (e SummaryEntry) Code() string {
	if e.Data == nil || e.Data.Output == nil || e.Data.Output.Data == nil {
		return ""
	}
	return e.Data.Output.Data.Code
}

// Failed reports whether this entry is a validation failure
func (e SummaryEntry) Failed() bool {
	return e.Code() == CodeAttendanceNotValid
}

// Outcome is the result of one submission attempt, shown on the status banner
type Outcome struct {
	OK      bool
	Message string
}
