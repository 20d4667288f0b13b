package symbol

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SymbolRenderer = (*PDFRenderer)(nil)

// A4 page layout in millimeters.
const (
	pdfMargin     = 20.0
	pdfSymbolSize = 100.0
	pdfLabelWidth = 45.0
	pdfLineHeight = 6.0
)

// tempRasterScale is the pixels-per-module resolution of the intermediate
// raster embedded in the document. Fixed independently of the requested
// scale because the symbol is always placed at 100mm.
const tempRasterScale = 10

// PDFRenderer produces a paginated A4 document: title, the symbol at
// 100mm, labeled asset detail rows, and a generation timestamp. The
// document embeds an intermediate PNG raster written to a temporary file
// that is removed before Render returns, on success and failure alike.
type PDFRenderer struct{}

// NewPDFRenderer creates the PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Format returns the rendered symbol format.
func (r *PDFRenderer) Format() model.SymbolFormat {
	return model.FormatPDF
}

// Render encodes the payload string and lays out the asset document.
func (r *PDFRenderer) Render(spec model.RenderSpec) (*model.RenderedSymbol, error) {
	spec = normalizeSpec(spec)

	matrix, version, err := buildMatrix(spec.Content, spec.ErrorCorrection)
	if err != nil {
		return nil, err
	}

	var raster bytes.Buffer
	if err := png.Encode(&raster, rasterize(matrix, spec.QuietZone, tempRasterScale)); err != nil {
		return nil, fmt.Errorf("encode temp raster: %w", err)
	}

	tmp, err := os.CreateTemp("", "qr_*_temp.png")
	if err != nil {
		return nil, fmt.Errorf("create temp raster: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(raster.Bytes()); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("write temp raster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp raster: %w", err)
	}

	generatedAt := spec.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}

	data, err := buildDocument(tmpPath, spec, generatedAt)
	if err != nil {
		return nil, err
	}

	return &model.RenderedSymbol{
		Data:        data,
		QRVersion:   version,
		ModuleCount: len(matrix) + 2*spec.QuietZone,
	}, nil
}

// buildDocument lays out the A4 page around the raster at rasterPath.
func buildDocument(rasterPath string, spec model.RenderSpec, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(generatedAt)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Railway Asset QR Code", "", 1, "L", false, 0, "")
	pdf.Ln(10)

	symbolY := pdf.GetY()
	pdf.ImageOptions(rasterPath, pdfMargin, symbolY, pdfSymbolSize, pdfSymbolSize,
		false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.SetY(symbolY + pdfSymbolSize + 10)

	for _, row := range detailRows(spec) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(pdfLabelWidth, pdfLineHeight, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, pdfLineHeight, row.value, "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, pdfLineHeight,
		"Generated on: "+generatedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("build pdf document: %w", err)
	}

	return buf.Bytes(), nil
}

type detailRow struct {
	label string
	value string
}

// detailRows assembles the labeled rows printed under the symbol. Absent
// values print as N/A; an absent installation date prints as Not
// Installed since that is an expected state for stocked assets.
func detailRows(spec model.RenderSpec) []detailRow {
	p := spec.Payload

	installed := p.InstallationDate
	if installed == "" {
		installed = "Not Installed"
	}

	return []detailRow{
		{"Asset ID", orNA(p.AssetID)},
		{"Type", orNA(p.AssetType)},
		{"Manufacturer ID", orNA(p.ManufacturerID)},
		{"Manufacturing Date", orNA(p.ManufacturingDate)},
		{"Status", orNA(spec.Status)},
		{"Installation Date", installed},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
