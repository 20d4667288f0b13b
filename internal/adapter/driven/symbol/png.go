package symbol

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SymbolRenderer = (*PNGRenderer)(nil)

// PNGRenderer produces the raster form used for previews and on-screen
// display. Output bytes are stable for identical specs.
type PNGRenderer struct{}

// NewPNGRenderer creates the PNG renderer.
func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{}
}

// Format returns the rendered symbol format.
func (r *PNGRenderer) Format() model.SymbolFormat {
	return model.FormatPNG
}

// Render encodes the payload string and paints it at Scale pixels per
// module with a white quiet zone.
func (r *PNGRenderer) Render(spec model.RenderSpec) (*model.RenderedSymbol, error) {
	spec = normalizeSpec(spec)

	matrix, version, err := buildMatrix(spec.Content, spec.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rasterize(matrix, spec.QuietZone, spec.Scale)); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return &model.RenderedSymbol{
		Data:        buf.Bytes(),
		QRVersion:   version,
		ModuleCount: len(matrix) + 2*spec.QuietZone,
	}, nil
}
