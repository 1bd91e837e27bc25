package decoder

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"testing"

	"github.com/skip2/go-qrcode"
)

func TestQRDecoderRoundTrip(t *testing.T) {
	png, err := qrcode.Encode("kiosk-task-42", qrcode.Medium, 256)
	if err != nil {
		t.Fatalf("qrcode.Encode() error = %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(png))
	if err != nil {
		t.Fatalf("image.Decode() error = %v", err)
	}

	dec := NewQRDecoder()
	got, err := dec.Decode(img)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "kiosk-task-42" {
		t.Errorf("Decode() = %q, want %q", got, "kiosk-task-42")
	}
}

func TestQRDecoderNotFound(t *testing.T) {
	// A blank frame carries no symbol
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.White)
		}
	}

	dec := NewQRDecoder()
	if _, err := dec.Decode(img); !errors.Is(err, ErrNotFound) {
		t.Errorf("Decode() error = %v, want ErrNotFound", err)
	}
}
