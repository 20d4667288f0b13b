// Package application contains use-case orchestration services.
package application

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
)

// TagLength is the fixed length of the integrity tag in characters.
const TagLength = 16

// GenerateTag computes the 16-character keyless integrity tag over the
// canonical identity fields. The fields are serialized as a compact JSON
// object with lexicographically sorted keys, hashed with SHA-256, and the
// first 16 hex characters of the digest are base64-encoded and truncated
// to 16 characters. The tag detects accidental corruption and casual
// tampering; it is not cryptographically unforgeable.
//
// The tag depends only on key/value pairs, never on map iteration order.
// Absent fields must be carried as empty strings so value-identical
// inputs always canonicalize to the same bytes.
func GenerateTag(fields map[string]string) string {
	canonical, _ := json.Marshal(fields) // cannot fail for map[string]string

	digest := sha256.Sum256(canonical)
	hexDigest := hex.EncodeToString(digest[:])

	return base64.StdEncoding.EncodeToString([]byte(hexDigest[:TagLength]))[:TagLength]
}

// VerifyTag reports whether tag matches the tag recomputed from fields.
func VerifyTag(fields map[string]string, tag string) bool {
	return GenerateTag(fields) == tag
}
