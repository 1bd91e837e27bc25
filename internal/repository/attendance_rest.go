package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"attendance-kiosk/internal/models"
)

// RESTAttendanceRepository implements AttendanceRepository against the
// mark-all-present HTTP endpoint
type RESTAttendanceRepository struct {
	baseURL    string
	httpClient *http.Client
}

// NewRESTAttendanceRepository creates repository
func NewRESTAttendanceRepository(baseURL string) *RESTAttendanceRepository {
	return &RESTAttendanceRepository{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RESTAttendanceRepository) MarkAllPresent(ctx context.Context, attendanceID string) ([]models.SummaryEntry, error) {
	apiURL := fmt.Sprintf("%s/api/mark-all-present", r.baseURL)

	jsonData, err := json.Marshal(models.MarkAllPresentRequest{AttendanceID: attendanceID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ HTTP error marking attendance: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to mark all present: %s - %s", resp.Status, string(body))
	}

	var result models.MarkAllPresentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("❌ JSON decode error: %v", err)
		return nil, err
	}

	return result.Summary, nil
}
