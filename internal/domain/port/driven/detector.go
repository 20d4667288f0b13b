// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"errors"
	"image"
)

// Sentinel errors returned by the detection pipeline.
var (
	// ErrUnreadableImage indicates the input bytes could not be decoded
	// into pixels. Fatal for the whole scan; the attempt ladder never runs.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrNoDetectorAvailable indicates no detector backend was initialized.
	// The condition is permanent for the process lifetime.
	ErrNoDetectorAvailable = errors.New("no detector backend available")
)

// DetectorBackend locates and decodes a QR symbol in a single image.
// Implementations are initialized once at startup and must be safe for
// concurrent use. Detect returns the decoded text, or an error when no
// symbol could be read from this particular image; per-image errors are
// expected and never escalated by callers.
type DetectorBackend interface {
	Name() string
	Detect(img image.Image) (string, error)
}
