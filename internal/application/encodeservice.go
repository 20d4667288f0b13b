package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// EncodeService turns raw asset records into saved symbol artifacts. It
// builds the signed payload, renders it in the requested format, writes the
// file into the output directory, and records the result in the journal.
type EncodeService struct {
	renderers   map[model.SymbolFormat]driven.SymbolRenderer
	journal     driven.SymbolJournal
	outputDir   string
	defaultTier model.ErrorCorrection
	scale       int
	quietZone   int
}

// NewEncodeService creates a new EncodeService. A nil journal disables
// journaling; an empty outputDir keeps artifacts in memory only. A non-empty
// outputDir is resolved to an absolute path and created up front.
func NewEncodeService(
	renderers []driven.SymbolRenderer,
	journal driven.SymbolJournal,
	outputDir string,
	defaultTier model.ErrorCorrection,
	scale int,
	quietZone int,
) *EncodeService {
	byFormat := make(map[model.SymbolFormat]driven.SymbolRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}

	if outputDir != "" {
		if abs, err := filepath.Abs(outputDir); err == nil {
			outputDir = abs
		}
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			slog.Warn("output directory not ready", "dir", outputDir, "error", err)
		}
	}

	return &EncodeService{
		renderers:   byFormat,
		journal:     journal,
		outputDir:   outputDir,
		defaultTier: defaultTier,
		scale:       scale,
		quietZone:   quietZone,
	}
}

// Encode builds and renders the identity symbol for one asset record.
// An empty format defaults to PNG, an empty tier to the configured default.
// Rendering never mutates the payload string; a payload too large for the
// tier fails with driven.ErrCapacityExceeded instead of degrading it.
func (s *EncodeService) Encode(
	ctx context.Context,
	record map[string]string,
	format model.SymbolFormat,
	tier model.ErrorCorrection,
) (*model.SymbolArtifact, error) {
	if format == "" {
		format = model.FormatPNG
	}
	if tier == "" {
		tier = s.defaultTier
	}

	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("no renderer registered for format %s", format)
	}

	payload, err := BuildPayload(record)
	if err != nil {
		return nil, err
	}
	content := SerializePayload(payload)

	generatedAt := time.Now()
	rendered, err := renderer.Render(model.RenderSpec{
		Content:         content,
		ErrorCorrection: tier,
		Scale:           s.scale,
		QuietZone:       s.quietZone,
		Payload:         payload,
		Status:          record["status"],
		GeneratedAt:     generatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("render %s symbol for asset %s: %w", format, payload.AssetID, err)
	}

	artifact := &model.SymbolArtifact{
		AssetID:         payload.AssetID,
		Format:          format,
		ErrorCorrection: tier,
		Content:         rendered.Data,
		PayloadJSON:     content,
		FileName:        artifactFileName(payload.AssetID, format, generatedAt),
		ByteSize:        len(rendered.Data),
		QRVersion:       rendered.QRVersion,
		ModuleCount:     rendered.ModuleCount,
		GeneratedAt:     generatedAt,
	}

	if s.outputDir != "" {
		path, err := s.save(artifact)
		if err != nil {
			return nil, err
		}
		artifact.FilePath = path
	}

	s.journalArtifact(ctx, artifact, payload.Signature)

	slog.Info("symbol generated",
		"asset", payload.AssetID,
		"format", string(format),
		"tier", string(tier),
		"qr_version", artifact.QRVersion,
		"bytes", artifact.ByteSize,
		"file", artifact.FilePath,
	)

	return artifact, nil
}

// save writes the artifact bytes into the output directory and returns the
// full path. The directory is recreated if it vanished since startup.
func (s *EncodeService) save(artifact *model.SymbolArtifact) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %s: %w", s.outputDir, err)
	}

	path := filepath.Join(s.outputDir, artifact.FileName)
	if err := os.WriteFile(path, artifact.Content, 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}

	return path, nil
}

// journalArtifact records the artifact best-effort. A journal failure is
// logged and swallowed; the artifact itself was already produced.
func (s *EncodeService) journalArtifact(ctx context.Context, artifact *model.SymbolArtifact, signature string) {
	if s.journal == nil {
		return
	}

	entry := model.JournalEntry{
		AssetID:         artifact.AssetID,
		Signature:       signature,
		Format:          artifact.Format,
		ErrorCorrection: artifact.ErrorCorrection,
		QRVersion:       artifact.QRVersion,
		ModuleCount:     artifact.ModuleCount,
		ByteSize:        artifact.ByteSize,
		FileName:        artifact.FileName,
		FilePath:        artifact.FilePath,
		CreatedAt:       artifact.GeneratedAt,
	}

	if err := s.journal.Record(ctx, entry); err != nil {
		slog.Error("journal record failed", "asset", artifact.AssetID, "error", err)
	}
}

// artifactFileName builds the on-disk name qr_<asset>_<timestamp>.<ext>.
func artifactFileName(assetID string, format model.SymbolFormat, at time.Time) string {
	return fmt.Sprintf("qr_%s_%s%s", sanitizeName(assetID), at.Format("20060102_150405"), format.Ext())
}

// sanitizeName replaces every non-alphanumeric rune with an underscore so
// asset ids are safe as filename components.
func sanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}
