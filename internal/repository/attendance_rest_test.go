package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"attendance-kiosk/internal/models"
)

func TestMarkAllPresentRequestShape(t *testing.T) {
	var requests int
	var gotPath, gotMethod, gotContentType string
	var gotBody models.MarkAllPresentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("request body decode error: %v", err)
		}
		json.NewEncoder(w).Encode(models.MarkAllPresentResponse{
			Summary: []models.SummaryEntry{{Email: "alice@example.com"}},
		})
	}))
	defer server.Close()

	repo := NewRESTAttendanceRepository(server.URL + "/")
	summary, err := repo.MarkAllPresent(context.Background(), "task-42")
	if err != nil {
		t.Fatalf("MarkAllPresent() error = %v", err)
	}

	if requests != 1 {
		t.Errorf("requests = %d, want exactly 1", requests)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/api/mark-all-present" {
		t.Errorf("path = %s, want /api/mark-all-present", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %s, want application/json", gotContentType)
	}
	if gotBody.AttendanceID != "task-42" {
		t.Errorf("attendanceId = %q, want %q", gotBody.AttendanceID, "task-42")
	}
	if len(summary) != 1 || summary[0].Email != "alice@example.com" {
		t.Errorf("summary = %+v, want one entry for alice@example.com", summary)
	}
}

func TestMarkAllPresentNestedCodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary":[
			{"email":"alice@example.com","data":{"output":{"data":{"code":"ATTENDANCE_NOT_VALID"}}}},
			{"email":"bob@example.com"}
		]}`))
	}))
	defer server.Close()

	repo := NewRESTAttendanceRepository(server.URL)
	summary, err := repo.MarkAllPresent(context.Background(), "task-1")
	if err != nil {
		t.Fatalf("MarkAllPresent() error = %v", err)
	}
	if len(summary) != 2 {
		t.Fatalf("len(summary) = %d, want 2", len(summary))
	}
	if !summary[0].Failed() {
		t.Errorf("alice entry should be a validation failure, code = %q", summary[0].Code())
	}
	if summary[1].Failed() || summary[1].Code() != "" {
		t.Errorf("bob entry should pass with empty code, got %q", summary[1].Code())
	}
}

func TestMarkAllPresentTransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "HTTP 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "Malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			repo := NewRESTAttendanceRepository(server.URL)
			if _, err := repo.MarkAllPresent(context.Background(), "task-1"); err == nil {
				t.Errorf("MarkAllPresent() error = nil, want transport error")
			}
		})
	}
}

func TestMarkAllPresentNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	repo := NewRESTAttendanceRepository(server.URL)
	if _, err := repo.MarkAllPresent(context.Background(), "task-1"); err == nil {
		t.Errorf("MarkAllPresent() error = nil, want connection error")
	}
}
