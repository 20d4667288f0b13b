package model

// PayloadVersion is the current wire format version embedded in every payload.
const PayloadVersion = 1

// Canonical payload keys as they appear on the wire.
const (
	KeyVersion           = "v"
	KeyAssetID           = "aid"
	KeyAssetType         = "tp"
	KeyManufacturerID    = "mfg"
	KeyManufacturingDate = "mfd"
	KeyInstallationDate  = "inst"
	KeySignature         = "sig"
)

// AssetPayload is the identity record embedded in a printed asset symbol.
// Struct field order fixes the key order of the serialized wire format.
// The signature covers exactly the four canonical fields (aid, tp, mfg, mfd);
// version and installation date are never signed. A payload is immutable
// once signed.
type AssetPayload struct {
	Version           int    `json:"v"`
	AssetID           string `json:"aid"`
	AssetType         string `json:"tp"`
	ManufacturerID    string `json:"mfg"`
	ManufacturingDate string `json:"mfd"`
	InstallationDate  string `json:"inst,omitempty"`
	Signature         string `json:"sig"`
}

// SignedFields returns the four canonical fields covered by the integrity
// tag. Absent values are carried as empty strings so the canonical form
// stays stable.
func (p AssetPayload) SignedFields() map[string]string {
	return map[string]string{
		KeyAssetID:           p.AssetID,
		KeyAssetType:         p.AssetType,
		KeyManufacturerID:    p.ManufacturerID,
		KeyManufacturingDate: p.ManufacturingDate,
	}
}
