package decoder

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
)

// QRDecoder locates and decodes a QR symbol in a frame
type QRDecoder struct {
	reader gozxing.Reader
}

// NewQRDecoder creates a QR decoder
func NewQRDecoder() *QRDecoder {
	return &QRDecoder{reader: zxqrcode.NewQRCodeReader()}
}

func (d *QRDecoder) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("frame buffer: %w", err)
	}

	result, err := d.reader.Decode(bmp, nil)
	if err != nil {
		if _, ok := err.(gozxing.NotFoundException); ok {
			return "", ErrNotFound
		}
		return "", err
	}
	return result.GetText(), nil
}

var _ Decoder = (*QRDecoder)(nil)
