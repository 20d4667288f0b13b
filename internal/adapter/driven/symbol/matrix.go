// Package symbol renders asset identity payloads into QR artifacts.
// Each renderer handles one output format; all of them encode the exact
// payload string and share the same module matrix, so format choice
// never changes what a scanner reads back.
package symbol

import (
	"fmt"
	"image"
	"strings"

	qrc "github.com/skip2/go-qrcode"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Rendering defaults, applied when a spec leaves them unset.
const (
	defaultScale     = 8
	defaultQuietZone = 4
)

// recoveryLevel maps the error correction tier to the encoder's recovery
// level. The encoder names differ from the standard tier letters: its
// "High" is tier Q and "Highest" is tier H.
func recoveryLevel(ec model.ErrorCorrection) qrc.RecoveryLevel {
	switch ec {
	case model.ErrorCorrectionL:
		return qrc.Low
	case model.ErrorCorrectionM:
		return qrc.Medium
	case model.ErrorCorrectionQ:
		return qrc.High
	default:
		return qrc.Highest
	}
}

// buildMatrix encodes the payload string into a module matrix without a
// quiet zone, plus the symbol version that was needed to fit it. A payload
// that overflows the requested tier maps to ErrCapacityExceeded; the tier
// is never downgraded and the payload is never split.
func buildMatrix(content string, ec model.ErrorCorrection) ([][]bool, int, error) {
	code, err := qrc.New(content, recoveryLevel(ec))
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, 0, fmt.Errorf("encode %d bytes at tier %s: %w",
				len(content), ec, driven.ErrCapacityExceeded)
		}
		return nil, 0, fmt.Errorf("build symbol: %w", err)
	}

	code.DisableBorder = true
	return code.Bitmap(), code.VersionNumber, nil
}

// normalizeSpec fills in rendering defaults.
func normalizeSpec(spec model.RenderSpec) model.RenderSpec {
	if spec.Scale <= 0 {
		spec.Scale = defaultScale
	}
	if spec.QuietZone < 0 {
		spec.QuietZone = defaultQuietZone
	}
	return spec
}

// rasterize paints the matrix into an 8-bit grayscale image at the given
// pixels-per-module scale, surrounded by a white quiet zone.
func rasterize(matrix [][]bool, quietZone, scale int) *image.Gray {
	total := len(matrix) + 2*quietZone
	side := total * scale

	img := image.NewGray(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := (quietZone + x) * scale
			py := (quietZone + y) * scale
			for dy := 0; dy < scale; dy++ {
				rowStart := (py+dy)*img.Stride + px
				for dx := 0; dx < scale; dx++ {
					img.Pix[rowStart+dx] = 0
				}
			}
		}
	}

	return img
}
