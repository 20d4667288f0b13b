package application

import (
	"context"
	"image"
	"log/slog"
	"strings"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
	"github.com/DhruvGohel46/QRail-3/internal/imageutil"
)

// ScanService locates symbols in captured images and validates their
// payloads. Detection walks a fixed ladder: each image variant, cheapest
// first, is probed by every configured backend before the next variant is
// built. It depends only on port interfaces.
type ScanService struct {
	backends []driven.DetectorBackend
}

// NewScanService creates a new ScanService with the given detector backends.
// Backend order is probe order. An empty list disables detection; every
// Scan call then fails with driven.ErrNoDetectorAvailable.
func NewScanService(backends []driven.DetectorBackend) *ScanService {
	return &ScanService{
		backends: backends,
	}
}

// Scan decodes the image bytes, runs the detection ladder, and validates
// whatever text was found. Bytes that cannot be decoded into pixels fail
// with driven.ErrUnreadableImage. A readable image containing no symbol is
// a normal outcome with Found = false, not an error.
func (s *ScanService) Scan(ctx context.Context, imageBytes []byte) (model.ScanOutcome, error) {
	if len(s.backends) == 0 {
		return model.ScanOutcome{}, driven.ErrNoDetectorAvailable
	}

	img, err := imageutil.DecodeBytes(imageBytes)
	if err != nil {
		return model.ScanOutcome{}, err
	}

	frame := s.detect(img)
	if !frame.Found {
		slog.Debug("detection ladder exhausted", "bytes", len(imageBytes))
		return model.ScanOutcome{}, nil
	}

	return s.evaluate(frame.RawText), nil
}

// ScanText validates already-decoded symbol text without an image. Blank
// text is treated as nothing found.
func (s *ScanService) ScanText(ctx context.Context, rawText string) model.ScanOutcome {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return model.ScanOutcome{}
	}

	return s.evaluate(rawText)
}

// DetectionInfo reports the configured backend names in probe order and
// whether detection is enabled at all.
func (s *ScanService) DetectionInfo() model.DetectionInfo {
	info := model.DetectionInfo{Enabled: len(s.backends) > 0}
	for _, backend := range s.backends {
		info.Backends = append(info.Backends, backend.Name())
	}

	return info
}

// detect runs the variant x backend ladder. Variants are built lazily so
// enhancement cost is only paid when cheaper attempts have already failed.
// The first non-blank decoded text short-circuits everything.
func (s *ScanService) detect(img image.Image) model.DecodedFrame {
	variants := []struct {
		name  string
		build func() image.Image
	}{
		{"original", func() image.Image { return img }},
		{"grayscale", func() image.Image { return imageutil.Grayscale(img) }},
		{"threshold", func() image.Image { return imageutil.AdaptiveThreshold(img) }},
	}

	for _, variant := range variants {
		frame := variant.build()
		for _, backend := range s.backends {
			text, err := backend.Detect(frame)
			if err != nil {
				slog.Debug("detection attempt failed",
					"variant", variant.name, "backend", backend.Name(), "error", err)
				continue
			}

			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}

			slog.Debug("symbol decoded", "variant", variant.name, "backend", backend.Name())
			return model.DecodedFrame{Found: true, RawText: text}
		}
	}

	return model.DecodedFrame{}
}

// evaluate runs the payload validator chain over decoded text.
func (s *ScanService) evaluate(rawText string) model.ScanOutcome {
	outcome := model.ScanOutcome{Found: true, RawText: rawText}

	parsed := ParsePayload(rawText)
	if parsed.Kind == model.PayloadOpaque {
		outcome.Verify = model.VerifyInvalidJSON
		return outcome
	}

	outcome.Payload = NormalizePayload(parsed.Mapping)
	outcome.Verify = VerifyPayload(parsed.Mapping)
	outcome.Recognized = IsRecognizedSchema(parsed.Mapping)

	return outcome
}
