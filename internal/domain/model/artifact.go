package model

import "time"

// RenderSpec carries everything a renderer needs to produce one symbol.
// Content is the exact payload string to encode; format choice never
// alters it. Scale is pixels per module for raster output and millimeters
// per module for vector output. Payload, Status, and GeneratedAt feed the
// document formats only.
type RenderSpec struct {
	Content         string
	ErrorCorrection ErrorCorrection
	Scale           int
	QuietZone       int // border width in modules
	Payload         AssetPayload
	Status          string
	GeneratedAt     time.Time
}

// RenderedSymbol is the raw output of a single renderer invocation.
type RenderedSymbol struct {
	Data        []byte
	QRVersion   int // symbol version 1..40
	ModuleCount int // matrix width in modules, including the quiet zone
}

// SymbolArtifact describes one generated symbol, including where it was
// saved. FilePath is empty when the artifact was not written to disk.
type SymbolArtifact struct {
	AssetID         string
	Format          SymbolFormat
	ErrorCorrection ErrorCorrection
	Content         []byte
	PayloadJSON     string
	FileName        string
	FilePath        string
	ByteSize        int
	QRVersion       int
	ModuleCount     int
	GeneratedAt     time.Time
}

// JournalEntry is the persisted record of one generated artifact.
type JournalEntry struct {
	ID              string // uuid
	AssetID         string
	Signature       string
	Format          SymbolFormat
	ErrorCorrection ErrorCorrection
	QRVersion       int
	ModuleCount     int
	ByteSize        int
	FileName        string
	FilePath        string
	CreatedAt       time.Time
}
