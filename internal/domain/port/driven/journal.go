package driven

import (
	"context"
	"errors"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
)

// Sentinel errors returned by SymbolJournal implementations.
var (
	// ErrEntryNotFound indicates the requested journal entry does not exist.
	ErrEntryNotFound = errors.New("journal entry not found")
)

// SymbolJournal defines the driven port for the generated-symbol index.
// It records what this system produced (format, tier, file location);
// it is not an asset database.
// GetByID returns ErrEntryNotFound if no entry has the given id.
type SymbolJournal interface {
	Record(ctx context.Context, entry model.JournalEntry) error
	GetByID(ctx context.Context, id string) (*model.JournalEntry, error)
	ListByAsset(ctx context.Context, assetID string) ([]model.JournalEntry, error)
	ListRecent(ctx context.Context, limit int) ([]model.JournalEntry, error)
}
