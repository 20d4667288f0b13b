package model

// DecodedFrame is the outcome of running the detection ladder over one
// image. Found=false means the image decoded fine but no symbol was
// located; it is a normal outcome, not an error.
type DecodedFrame struct {
	Found   bool
	RawText string
}

// ParsedPayload is the typed result of parsing scanned text. Structured
// payloads carry a mapping; opaque payloads carry only the raw string.
type ParsedPayload struct {
	Kind    PayloadKind
	Mapping map[string]any
	Raw     string
}

// ScanOutcome is the full read-path product handed to callers: whether a
// symbol was found, the raw decoded text, the normalized mapping for
// structured payloads, the integrity verdict, and whether the content
// matches the asset identity schema at all. Recognized=false with
// Found=true means unrelated QR content; the raw text is still returned.
type ScanOutcome struct {
	Found      bool
	RawText    string
	Payload    map[string]any
	Verify     VerifyStatus
	Recognized bool
}

// DetectionInfo reports which detector backends are initialized, in
// attempt order. Enabled is false when the backend list is empty and the
// decoder is permanently disabled.
type DetectionInfo struct {
	Backends []string
	Enabled  bool
}
