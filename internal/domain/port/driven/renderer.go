package driven

import (
	"errors"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
)

// Sentinel errors returned by SymbolRenderer implementations.
var (
	// ErrCapacityExceeded indicates the payload string does not fit the
	// symbol at the requested error correction tier. Callers must not
	// silently downgrade the tier or split the payload.
	ErrCapacityExceeded = errors.New("payload exceeds symbol capacity")
)

// SymbolRenderer renders a payload string into one output format.
// Render must be deterministic: identical specs yield identical matrix
// layouts. Implementations are stateless and safe for concurrent use.
type SymbolRenderer interface {
	Format() model.SymbolFormat
	Render(spec model.RenderSpec) (*model.RenderedSymbol, error)
}
