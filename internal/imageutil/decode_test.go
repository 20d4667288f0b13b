package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// testImage builds a small two-tone image for encode round trips.
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if (x/8+y/8)%2 == 0 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestDecodeBytes(t *testing.T) {
	src := testImage()

	encoders := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"png", func(buf *bytes.Buffer) error { return png.Encode(buf, src) }},
		{"jpeg", func(buf *bytes.Buffer) error { return jpeg.Encode(buf, src, nil) }},
		{"bmp", func(buf *bytes.Buffer) error { return bmp.Encode(buf, src) }},
		{"tiff", func(buf *bytes.Buffer) error { return tiff.Encode(buf, src, nil) }},
	}

	for _, enc := range encoders {
		t.Run(enc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, enc.encode(&buf))

			img, err := DecodeBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, 32, img.Bounds().Dx())
			assert.Equal(t, 32, img.Bounds().Dy())
		})
	}
}

func TestDecodeBytes_Unreadable(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"plain text", []byte("not an image at all")},
		{"truncated png header", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D}},
		{"random bytes", []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01, 0x02, 0x03}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeBytes(tt.data)
			assert.Nil(t, img)
			assert.ErrorIs(t, err, driven.ErrUnreadableImage)
		})
	}
}
