// Package decoder extracts encoded text from still images
package decoder

import (
	"errors"
	"image"
)

// ErrNotFound means the frame holds no decodable symbol; the caller should
// try again with the next frame.
var ErrNotFound = errors.New("no symbol found")

// Decoder defines the interface for symbol decoding
type Decoder interface {
	// Decode returns the decoded text, ErrNotFound when the image holds no
	// symbol, or another error for a malformed frame.
	Decode(img image.Image) (string, error)
}
