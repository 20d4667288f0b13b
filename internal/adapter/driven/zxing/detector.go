// Package zxing adapts the gozxing QR reader as the standard detector
// backend: slower than the quirc port but the most robust against blur,
// perspective skew, and partial damage.
package zxing

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DetectorBackend = (*Detector)(nil)

// Detector wraps a shared gozxing QR reader. The reader is created once
// and is safe for concurrent use.
type Detector struct {
	reader gozxing.Reader
	hints  map[gozxing.DecodeHintType]interface{}
}

// NewDetector creates the standard detector backend with the try-harder
// hint enabled.
func NewDetector() *Detector {
	return &Detector{
		reader: qrcode.NewQRCodeReader(),
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

// Name identifies the backend in attempt logs and detection info.
func (d *Detector) Name() string {
	return "zxing"
}

// Detect locates and decodes a QR symbol in the image. A miss on a clean
// image is an ordinary per-image error, not a backend failure.
func (d *Detector) Detect(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("build binary bitmap: %w", err)
	}

	result, err := d.reader.Decode(bmp, d.hints)
	if err != nil {
		return "", fmt.Errorf("zxing decode: %w", err)
	}

	return result.GetText(), nil
}
