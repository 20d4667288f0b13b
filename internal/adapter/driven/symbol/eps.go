package symbol

import (
	"bytes"
	"fmt"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SymbolRenderer = (*EPSRenderer)(nil)

// EPSRenderer produces Encapsulated PostScript for professional print
// workflows. The emitted program is Level 2 PostScript: a white
// background rectangle and one rectfill per dark module, Scale points
// per module. No timestamp comments are written, so output bytes are
// stable for identical specs.
type EPSRenderer struct{}

// NewEPSRenderer creates the EPS renderer.
func NewEPSRenderer() *EPSRenderer {
	return &EPSRenderer{}
}

// Format returns the rendered symbol format.
func (r *EPSRenderer) Format() model.SymbolFormat {
	return model.FormatEPS
}

// Render encodes the payload string into a self-contained EPS document.
// PostScript places the origin at the bottom-left corner, so module rows
// are emitted bottom-up.
func (r *EPSRenderer) Render(spec model.RenderSpec) (*model.RenderedSymbol, error) {
	spec = normalizeSpec(spec)

	matrix, version, err := buildMatrix(spec.Content, spec.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	total := len(matrix) + 2*spec.QuietZone
	side := total * spec.Scale

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "%!PS-Adobe-3.0 EPSF-3.0")
	fmt.Fprintf(&buf, "%%%%BoundingBox: 0 0 %d %d\n", side, side)
	fmt.Fprintln(&buf, "%%Pages: 1")
	fmt.Fprintln(&buf, "%%EndComments")
	fmt.Fprintln(&buf, "1 setgray")
	fmt.Fprintf(&buf, "0 0 %d %d rectfill\n", side, side)
	fmt.Fprintln(&buf, "0 setgray")

	for y, row := range matrix {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := (spec.QuietZone + x) * spec.Scale
			py := (total - 1 - spec.QuietZone - y) * spec.Scale
			fmt.Fprintf(&buf, "%d %d %d %d rectfill\n", px, py, spec.Scale, spec.Scale)
		}
	}

	fmt.Fprintln(&buf, "showpage")
	fmt.Fprintln(&buf, "%%EOF")

	return &model.RenderedSymbol{
		Data:        buf.Bytes(),
		QRVersion:   version,
		ModuleCount: total,
	}, nil
}
