package symbol

import (
	"bytes"

	svg "github.com/ajstarks/svgo"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SymbolRenderer = (*SVGRenderer)(nil)

// SVGRenderer produces the vector form for laser engraving. Dimensions
// are emitted in physical millimeters, Scale millimeters per module, so
// the engraved symbol size is known up front.
type SVGRenderer struct{}

// NewSVGRenderer creates the SVG renderer.
func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{}
}

// Format returns the rendered symbol format.
func (r *SVGRenderer) Format() model.SymbolFormat {
	return model.FormatSVG
}

// Render encodes the payload string as one white background rectangle
// plus one black rectangle per dark module.
func (r *SVGRenderer) Render(spec model.RenderSpec) (*model.RenderedSymbol, error) {
	spec = normalizeSpec(spec)

	matrix, version, err := buildMatrix(spec.Content, spec.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	total := len(matrix) + 2*spec.QuietZone
	side := total * spec.Scale

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startunit(side, side, "mm")
	canvas.Rect(0, 0, side, side, "fill:white")
	for y, row := range matrix {
		for x, dark := range row {
			if dark {
				canvas.Rect((spec.QuietZone+x)*spec.Scale, (spec.QuietZone+y)*spec.Scale,
					spec.Scale, spec.Scale, "fill:black")
			}
		}
	}
	canvas.End()

	return &model.RenderedSymbol{
		Data:        buf.Bytes(),
		QRVersion:   version,
		ModuleCount: total,
	}, nil
}
