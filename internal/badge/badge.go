// Package badge renders attendance identifiers as scannable QR images
package badge

import (
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the rendered image edge in pixels
const DefaultSize = 256

var ErrEmptyID = errors.New("attendance identifier is empty")

// Render encodes an attendance ID as a QR PNG
func Render(attendanceID string, size int) ([]byte, error) {
	id := strings.TrimSpace(attendanceID)
	if id == "" {
		return nil, ErrEmptyID
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(id, qrcode.Medium, size)
}

// WriteFile renders a badge straight to disk
func WriteFile(attendanceID string, size int, path string) error {
	id := strings.TrimSpace(attendanceID)
	if id == "" {
		return ErrEmptyID
	}
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.WriteFile(id, qrcode.Medium, size, path)
}
