package model

import "fmt"

// ErrorCorrection represents the QR error correction tier. Higher tiers
// survive more symbol damage at the cost of payload capacity.
type ErrorCorrection string

const (
	ErrorCorrectionL ErrorCorrection = "L" // ~7% recoverable damage
	ErrorCorrectionM ErrorCorrection = "M" // ~15% recoverable damage
	ErrorCorrectionQ ErrorCorrection = "Q" // ~25% recoverable damage
	ErrorCorrectionH ErrorCorrection = "H" // ~30% recoverable damage
)

// ParseErrorCorrection maps a tier letter (case-insensitive) to an
// ErrorCorrection. An empty string selects ErrorCorrectionH, the default
// for field-worn outdoor assets.
func ParseErrorCorrection(s string) (ErrorCorrection, error) {
	switch s {
	case "":
		return ErrorCorrectionH, nil
	case "L", "l":
		return ErrorCorrectionL, nil
	case "M", "m":
		return ErrorCorrectionM, nil
	case "Q", "q":
		return ErrorCorrectionQ, nil
	case "H", "h":
		return ErrorCorrectionH, nil
	default:
		return "", fmt.Errorf("unknown error correction tier %q", s)
	}
}

// SymbolFormat represents the output format of a rendered symbol.
type SymbolFormat string

const (
	FormatPNG SymbolFormat = "png" // raster, preview and general use
	FormatSVG SymbolFormat = "svg" // vector in mm units, laser engraving
	FormatEPS SymbolFormat = "eps" // vector, professional print workflows
	FormatPDF SymbolFormat = "pdf" // paginated A4 document with asset details
)

// ParseSymbolFormat maps a format name (case-insensitive) to a SymbolFormat.
// An empty string selects FormatPNG.
func ParseSymbolFormat(s string) (SymbolFormat, error) {
	switch s {
	case "":
		return FormatPNG, nil
	case "png", "PNG":
		return FormatPNG, nil
	case "svg", "SVG":
		return FormatSVG, nil
	case "eps", "EPS":
		return FormatEPS, nil
	case "pdf", "PDF":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unknown symbol format %q", s)
	}
}

// Ext returns the file extension for the format, including the dot.
func (f SymbolFormat) Ext() string {
	return "." + string(f)
}

// VerifyStatus represents the integrity verdict for a scanned payload.
type VerifyStatus string

const (
	VerifyValid             VerifyStatus = "valid"
	VerifyMissingSignature  VerifyStatus = "missing_signature"
	VerifyInvalidJSON       VerifyStatus = "invalid_json"
	VerifySignatureMismatch VerifyStatus = "signature_mismatch"
)

// PayloadKind distinguishes structured JSON payloads from opaque text.
type PayloadKind string

const (
	PayloadStructured PayloadKind = "structured" // JSON object, mapping available
	PayloadOpaque     PayloadKind = "opaque"     // free text, raw string only
)
