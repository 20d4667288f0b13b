package application

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhruvGohel46/QRail-3/internal/adapter/driven/quirc"
	"github.com/DhruvGohel46/QRail-3/internal/adapter/driven/symbol"
	"github.com/DhruvGohel46/QRail-3/internal/adapter/driven/zxing"
	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// TestEncodeScanRoundTrip drives the whole pipeline with real components:
// record in, signed payload rendered to a PNG on disk, file bytes back
// through detection, validation out the other end.
func TestEncodeScanRoundTrip(t *testing.T) {
	ctx := context.Background()

	encode := NewEncodeService(
		[]driven.SymbolRenderer{symbol.NewPNGRenderer()},
		nil, t.TempDir(), model.ErrorCorrectionH, 8, 4,
	)
	scan := NewScanService([]driven.DetectorBackend{
		quirc.NewDetector(), zxing.NewDetector(),
	})

	artifact, err := encode.Encode(ctx, trackRecord(), model.FormatPNG, "")
	require.NoError(t, err)
	require.NotEmpty(t, artifact.FilePath)

	saved, err := os.ReadFile(artifact.FilePath)
	require.NoError(t, err)

	outcome, err := scan.Scan(ctx, saved)
	require.NoError(t, err)

	assert.True(t, outcome.Found)
	assert.Equal(t, artifact.PayloadJSON, outcome.RawText)
	assert.Equal(t, model.VerifyValid, outcome.Verify)
	assert.True(t, outcome.Recognized)
	assert.Equal(t, "TRK202501010001", outcome.Payload["aid"])
	assert.Equal(t, "track", outcome.Payload["tp"])
	assert.Equal(t, "MFG-101", outcome.Payload["mfg"])
	assert.Equal(t, "2025-01-01", outcome.Payload["mfd"])
	assert.Equal(t, "2025-02-10", outcome.Payload["inst"])
}

// TestEncodeScanRoundTrip_AllTiers renders the same record at every
// error-correction tier and decodes each one back.
func TestEncodeScanRoundTrip_AllTiers(t *testing.T) {
	ctx := context.Background()
	scan := NewScanService([]driven.DetectorBackend{
		quirc.NewDetector(), zxing.NewDetector(),
	})

	for _, tier := range []model.ErrorCorrection{
		model.ErrorCorrectionL, model.ErrorCorrectionM,
		model.ErrorCorrectionQ, model.ErrorCorrectionH,
	} {
		t.Run(string(tier), func(t *testing.T) {
			encode := NewEncodeService(
				[]driven.SymbolRenderer{symbol.NewPNGRenderer()},
				nil, "", model.ErrorCorrectionH, 8, 4,
			)

			artifact, err := encode.Encode(ctx, trackRecord(), model.FormatPNG, tier)
			require.NoError(t, err)

			outcome, err := scan.Scan(ctx, artifact.Content)
			require.NoError(t, err)

			assert.True(t, outcome.Found)
			assert.Equal(t, artifact.PayloadJSON, outcome.RawText)
			assert.Equal(t, model.VerifyValid, outcome.Verify)
		})
	}
}

// TestScanRoundTrip_LegacyKeys proves a symbol printed with legacy key names
// still verifies after alias normalization.
func TestScanRoundTrip_LegacyKeys(t *testing.T) {
	ctx := context.Background()

	sig := GenerateTag(map[string]string{
		model.KeyAssetID:           "SLP202391847392",
		model.KeyAssetType:         "sleeper",
		model.KeyManufacturerID:    "MFG-208",
		model.KeyManufacturingDate: "2023-11-20",
	})
	legacy := `{"assetId":"SLP202391847392","asset_type":"sleeper","manufacturer_id":"MFG-208","manufacturing_date":"2023-11-20","sig":"` + sig + `"}`

	renderer := symbol.NewPNGRenderer()
	rendered, err := renderer.Render(model.RenderSpec{
		Content:         legacy,
		ErrorCorrection: model.ErrorCorrectionQ,
		Scale:           8,
		QuietZone:       4,
	})
	require.NoError(t, err)

	scan := NewScanService([]driven.DetectorBackend{
		quirc.NewDetector(), zxing.NewDetector(),
	})
	outcome, err := scan.Scan(ctx, rendered.Data)
	require.NoError(t, err)

	assert.True(t, outcome.Found)
	assert.Equal(t, model.VerifyValid, outcome.Verify)
	assert.True(t, outcome.Recognized)
	assert.Equal(t, "SLP202391847392", outcome.Payload["aid"])
	assert.Equal(t, "sleeper", outcome.Payload["tp"])
}
