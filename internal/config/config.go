// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
)

// knownDetectors holds the recognized detector backend names.
var knownDetectors = map[string]bool{
	"quirc": true,
	"zxing": true,
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	OutputDir       string
	JournalDBPath   string
	ErrorCorrection model.ErrorCorrection
	SymbolScale     int
	SymbolBorder    int
	Detectors       []string
}

// JournalEnabled returns true when a journal database path is configured.
// An explicitly empty QRAIL_JOURNAL_DB_PATH turns journaling off.
func (c *Config) JournalEnabled() bool {
	return c.JournalDBPath != ""
}

// DetectionEnabled returns true when at least one detector backend is
// configured. An explicitly empty QRAIL_DETECTORS disables scanning.
func (c *Config) DetectionEnabled() bool {
	return len(c.Detectors) > 0
}

// Load reads configuration from environment variables and returns a validated Config.
// Optional variables with defaults: QRAIL_OUTPUT_DIR (qr_codes; empty keeps
// artifacts in memory), QRAIL_JOURNAL_DB_PATH (qrail-symbols.db; empty disables
// the journal), QRAIL_ERROR_CORRECTION (H), QRAIL_SYMBOL_SCALE (8),
// QRAIL_SYMBOL_BORDER (4), QRAIL_DETECTORS (quirc,zxing; ordered, empty
// disables detection).
func Load() (*Config, error) {
	outputDir := "qr_codes"
	if v, ok := os.LookupEnv("QRAIL_OUTPUT_DIR"); ok {
		outputDir = v
	}

	journalDBPath := "qrail-symbols.db"
	if v, ok := os.LookupEnv("QRAIL_JOURNAL_DB_PATH"); ok {
		journalDBPath = v
	}

	errorCorrection := model.ErrorCorrectionH
	if v, ok := os.LookupEnv("QRAIL_ERROR_CORRECTION"); ok {
		parsed, err := model.ParseErrorCorrection(v)
		if err != nil {
			return nil, fmt.Errorf("QRAIL_ERROR_CORRECTION has invalid tier %q: %w", v, err)
		}
		errorCorrection = parsed
	}

	symbolScale := 8
	if v, ok := os.LookupEnv("QRAIL_SYMBOL_SCALE"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("QRAIL_SYMBOL_SCALE has invalid integer %q: %w", v, err)
		}
		if parsed < 1 {
			return nil, fmt.Errorf("QRAIL_SYMBOL_SCALE must be positive, got %d", parsed)
		}
		symbolScale = parsed
	}

	symbolBorder := 4
	if v, ok := os.LookupEnv("QRAIL_SYMBOL_BORDER"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("QRAIL_SYMBOL_BORDER has invalid integer %q: %w", v, err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("QRAIL_SYMBOL_BORDER must not be negative, got %d", parsed)
		}
		symbolBorder = parsed
	}

	detectors := []string{"quirc", "zxing"}
	if v, ok := os.LookupEnv("QRAIL_DETECTORS"); ok {
		detectors = nil
		for _, name := range strings.Split(v, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if !knownDetectors[name] {
				return nil, fmt.Errorf("QRAIL_DETECTORS contains unknown backend %q", name)
			}
			detectors = append(detectors, name)
		}
	}

	return &Config{
		OutputDir:       outputDir,
		JournalDBPath:   journalDBPath,
		ErrorCorrection: errorCorrection,
		SymbolScale:     symbolScale,
		SymbolBorder:    symbolBorder,
		Detectors:       detectors,
	}, nil
}
