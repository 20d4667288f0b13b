// Package imageutil provides the pixel-level primitives of the detection
// pipeline: decoding raw bytes into images and building the preprocessing
// variants the attempt ladder runs over.
package imageutil

import (
	"bytes"
	"fmt"
	"image"

	// Raster formats accepted from uploads and camera-frame captures.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// DecodeBytes turns raw image bytes into pixels. The caller is responsible
// for transport-level decoding (multipart, base64); this function only ever
// sees raw bytes. Any decode failure, including empty input, maps to
// ErrUnreadableImage and is fatal for the whole scan.
func DecodeBytes(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty input: %w", driven.ErrUnreadableImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %d bytes: %w", len(data), driven.ErrUnreadableImage)
	}

	return img, nil
}
