package symbol

import (
	"bytes"
	"image/png"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

const testContent = `{"v":1,"aid":"TRK202501010001","tp":"track","mfg":"MFG-101","mfd":"2025-01-01","sig":"ZDM5N2Q5N2RlMDMw"}`

func testSpec() model.RenderSpec {
	return model.RenderSpec{
		Content:         testContent,
		ErrorCorrection: model.ErrorCorrectionH,
		Scale:           8,
		QuietZone:       4,
		Payload: model.AssetPayload{
			Version:           1,
			AssetID:           "TRK202501010001",
			AssetType:         "track",
			ManufacturerID:    "MFG-101",
			ManufacturingDate: "2025-01-01",
			Signature:         "ZDM5N2Q5N2RlMDMw",
		},
		Status:      "in-service",
		GeneratedAt: time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
}

func TestBuildMatrix(t *testing.T) {
	t.Run("square matrix with valid version", func(t *testing.T) {
		matrix, version, err := buildMatrix(testContent, model.ErrorCorrectionH)
		require.NoError(t, err)

		require.GreaterOrEqual(t, version, 1)
		require.LessOrEqual(t, version, 40)

		// Module width is fixed by the version: 17 + 4*version.
		want := 17 + 4*version
		require.Len(t, matrix, want)
		for _, row := range matrix {
			require.Len(t, row, want)
		}
	})

	t.Run("higher tier needs a larger symbol", func(t *testing.T) {
		_, low, err := buildMatrix(testContent, model.ErrorCorrectionL)
		require.NoError(t, err)
		_, high, err := buildMatrix(testContent, model.ErrorCorrectionH)
		require.NoError(t, err)

		assert.Greater(t, high, low)
	})

	t.Run("oversized payload maps to capacity error", func(t *testing.T) {
		_, _, err := buildMatrix(strings.Repeat("x", 3000), model.ErrorCorrectionH)
		assert.ErrorIs(t, err, driven.ErrCapacityExceeded)
	})

	t.Run("capacity depends on the tier", func(t *testing.T) {
		// 1500 bytes fit tier L but overflow tier H; the tier is never
		// silently downgraded.
		content := strings.Repeat("x", 1500)

		_, _, err := buildMatrix(content, model.ErrorCorrectionL)
		require.NoError(t, err)

		_, _, err = buildMatrix(content, model.ErrorCorrectionH)
		assert.ErrorIs(t, err, driven.ErrCapacityExceeded)
	})

	t.Run("identical inputs produce identical matrices", func(t *testing.T) {
		first, v1, err := buildMatrix(testContent, model.ErrorCorrectionQ)
		require.NoError(t, err)
		second, v2, err := buildMatrix(testContent, model.ErrorCorrectionQ)
		require.NoError(t, err)

		assert.Equal(t, v1, v2)
		assert.Equal(t, first, second)
	})
}

func TestPNGRenderer(t *testing.T) {
	r := NewPNGRenderer()
	require.Equal(t, model.FormatPNG, r.Format())

	sym, err := r.Render(testSpec())
	require.NoError(t, err)

	t.Run("dimensions match module count and scale", func(t *testing.T) {
		img, err := png.Decode(bytes.NewReader(sym.Data))
		require.NoError(t, err)

		side := sym.ModuleCount * 8
		assert.Equal(t, side, img.Bounds().Dx())
		assert.Equal(t, side, img.Bounds().Dy())
		assert.Equal(t, 17+4*sym.QRVersion+2*4, sym.ModuleCount)
	})

	t.Run("quiet zone is white", func(t *testing.T) {
		img, err := png.Decode(bytes.NewReader(sym.Data))
		require.NoError(t, err)

		// Sample the border corners and mid-edges.
		side := img.Bounds().Dx()
		for _, p := range [][2]int{{0, 0}, {side - 1, 0}, {0, side - 1}, {side - 1, side - 1}, {side / 2, 1}} {
			r16, g16, b16, _ := img.At(p[0], p[1]).RGBA()
			assert.Equal(t, uint32(0xffff), r16, "pixel %v", p)
			assert.Equal(t, uint32(0xffff), g16, "pixel %v", p)
			assert.Equal(t, uint32(0xffff), b16, "pixel %v", p)
		}
	})

	t.Run("byte-stable across renders", func(t *testing.T) {
		again, err := r.Render(testSpec())
		require.NoError(t, err)
		assert.Equal(t, sym.Data, again.Data)
	})

	t.Run("capacity error propagates", func(t *testing.T) {
		spec := testSpec()
		spec.Content = strings.Repeat("x", 3000)
		_, err := r.Render(spec)
		assert.ErrorIs(t, err, driven.ErrCapacityExceeded)
	})
}

func TestSVGRenderer(t *testing.T) {
	r := NewSVGRenderer()
	require.Equal(t, model.FormatSVG, r.Format())

	sym, err := r.Render(testSpec())
	require.NoError(t, err)
	out := string(sym.Data)

	t.Run("well-formed vector document in mm units", func(t *testing.T) {
		assert.Contains(t, out, "<?xml")
		assert.Contains(t, out, "<svg")
		assert.Contains(t, out, "mm\"")
		assert.Contains(t, out, "fill:black")
		assert.Contains(t, out, "</svg>")
	})

	t.Run("physical size follows module count and scale", func(t *testing.T) {
		side := sym.ModuleCount * 8
		assert.Contains(t, out, `width="`+strconv.Itoa(side)+`mm"`)
	})

	t.Run("byte-stable across renders", func(t *testing.T) {
		again, err := r.Render(testSpec())
		require.NoError(t, err)
		assert.Equal(t, sym.Data, again.Data)
	})
}

func TestEPSRenderer(t *testing.T) {
	r := NewEPSRenderer()
	require.Equal(t, model.FormatEPS, r.Format())

	sym, err := r.Render(testSpec())
	require.NoError(t, err)
	out := string(sym.Data)

	t.Run("well-formed postscript document", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n"))
		side := sym.ModuleCount * 8
		assert.Contains(t, out, "%%BoundingBox: 0 0 "+strconv.Itoa(side)+" "+strconv.Itoa(side))
		assert.Contains(t, out, "rectfill")
		assert.Contains(t, out, "showpage")
		assert.True(t, strings.HasSuffix(out, "%%EOF\n"))
	})

	t.Run("byte-stable across renders", func(t *testing.T) {
		again, err := r.Render(testSpec())
		require.NoError(t, err)
		assert.Equal(t, sym.Data, again.Data)
	})
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	require.Equal(t, model.FormatPDF, r.Format())

	t.Run("produces a pdf document", func(t *testing.T) {
		sym, err := r.Render(testSpec())
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(sym.Data, []byte("%PDF-")))
		assert.Greater(t, len(sym.Data), 1000)
		assert.Equal(t, 17+4*sym.QRVersion+2*4, sym.ModuleCount)
	})

	t.Run("temp raster is removed after rendering", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("TMPDIR", tmpDir)

		_, err := r.Render(testSpec())
		require.NoError(t, err)

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, entries, "temporary raster must not outlive the render")
	})

	t.Run("capacity error leaves no temp file behind", func(t *testing.T) {
		tmpDir := t.TempDir()
		t.Setenv("TMPDIR", tmpDir)

		spec := testSpec()
		spec.Content = strings.Repeat("x", 3000)
		_, err := r.Render(spec)
		require.ErrorIs(t, err, driven.ErrCapacityExceeded)

		entries, err := os.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestRenderersAgreeOnSymbolGeometry(t *testing.T) {
	// All formats encode the same matrix, so version and module count
	// must be identical across them.
	renderers := []driven.SymbolRenderer{
		NewPNGRenderer(), NewSVGRenderer(), NewEPSRenderer(), NewPDFRenderer(),
	}

	var version, modules int
	for i, r := range renderers {
		sym, err := r.Render(testSpec())
		require.NoError(t, err, "renderer %s", r.Format())

		if i == 0 {
			version, modules = sym.QRVersion, sym.ModuleCount
			continue
		}
		assert.Equal(t, version, sym.QRVersion, "renderer %s", r.Format())
		assert.Equal(t, modules, sym.ModuleCount, "renderer %s", r.Format())
	}
}

