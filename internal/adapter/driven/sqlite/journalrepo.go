package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
	"github.com/DhruvGohel46/QRail-3/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SymbolJournal = (*JournalRepo)(nil)

// JournalRepo is the SQLite implementation of the SymbolJournal port interface.
type JournalRepo struct {
	db *DB
}

// NewJournalRepo creates a new JournalRepo backed by the given DB.
func NewJournalRepo(db *DB) *JournalRepo {
	return &JournalRepo{db: db}
}

// Record inserts a journal entry. An empty ID is assigned a fresh UUID and a
// zero CreatedAt defaults to the current time.
func (r *JournalRepo) Record(ctx context.Context, entry model.JournalEntry) error {
	const query = `
		INSERT INTO symbol_journal (
			id, asset_id, signature, format, error_correction,
			qr_version, module_count, byte_size, file_name, file_path, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		id, entry.AssetID, entry.Signature, string(entry.Format), string(entry.ErrorCorrection),
		entry.QRVersion, entry.ModuleCount, entry.ByteSize, entry.FileName, entry.FilePath,
		createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("record journal entry for asset %s: %w", entry.AssetID, err)
	}

	return nil
}

// GetByID retrieves a journal entry by its UUID.
// Returns driven.ErrEntryNotFound if no entry has the given id.
func (r *JournalRepo) GetByID(ctx context.Context, id string) (*model.JournalEntry, error) {
	const query = `
		SELECT id, asset_id, signature, format, error_correction,
		       qr_version, module_count, byte_size, file_name, file_path, created_at
		FROM symbol_journal
		WHERE id = ?
	`

	entry, err := scanJournalEntry(r.db.Reader.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get journal entry %s: %w", id, driven.ErrEntryNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get journal entry %s: %w", id, err)
	}

	return entry, nil
}

// ListByAsset returns all journal entries for the given asset id, newest first.
func (r *JournalRepo) ListByAsset(ctx context.Context, assetID string) ([]model.JournalEntry, error) {
	const query = `
		SELECT id, asset_id, signature, format, error_correction,
		       qr_version, module_count, byte_size, file_name, file_path, created_at
		FROM symbol_journal
		WHERE asset_id = ?
		ORDER BY created_at DESC, id
	`

	return r.queryEntries(ctx, query, assetID)
}

// ListRecent returns the most recent journal entries across all assets,
// newest first, capped at limit. A non-positive limit returns an empty result.
func (r *JournalRepo) ListRecent(ctx context.Context, limit int) ([]model.JournalEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	const query = `
		SELECT id, asset_id, signature, format, error_correction,
		       qr_version, module_count, byte_size, file_name, file_path, created_at
		FROM symbol_journal
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	return r.queryEntries(ctx, query, limit)
}

func (r *JournalRepo) queryEntries(ctx context.Context, query string, args ...any) ([]model.JournalEntry, error) {
	rows, err := r.db.Reader.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []model.JournalEntry
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}

	return entries, nil
}

func scanJournalEntry(s scanner) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	var format, errorCorrection, createdAt string

	err := s.Scan(
		&entry.ID, &entry.AssetID, &entry.Signature, &format, &errorCorrection,
		&entry.QRVersion, &entry.ModuleCount, &entry.ByteSize,
		&entry.FileName, &entry.FilePath, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Format = model.SymbolFormat(format)
	entry.ErrorCorrection = model.ErrorCorrection(errorCorrection)

	entry.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}

	return entry, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseTime tries multiple SQLite datetime formats.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.000",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
