package application

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
)

// Scanned-payload alias families. Payloads printed by older firmware and
// hand-built test symbols use long or camelCase key names; each family
// lists the canonical key first, then the accepted alternates.
var aliasFamilies = map[string][]string{
	model.KeyAssetID:           {model.KeyAssetID, "assetId", "asset_id"},
	model.KeyAssetType:         {model.KeyAssetType, "type", "asset_type"},
	model.KeyManufacturerID:    {model.KeyManufacturerID, "manufacturer", "manufacturer_id"},
	model.KeyManufacturingDate: {model.KeyManufacturingDate, "mfgDate", "manufacturing_date"},
	model.KeyInstallationDate:  {model.KeyInstallationDate, "installation_date", "installationDate"},
}

// ParsePayload classifies scanned text as a structured JSON payload or
// opaque content. Opaque is a normal outcome for non-JSON symbols (URLs,
// plain text); the raw string is preserved either way.
func ParsePayload(rawText string) model.ParsedPayload {
	raw := strings.TrimSpace(rawText)

	var mapping map[string]any
	if err := json.Unmarshal([]byte(raw), &mapping); err != nil || mapping == nil {
		return model.ParsedPayload{Kind: model.PayloadOpaque, Raw: raw}
	}

	return model.ParsedPayload{Kind: model.PayloadStructured, Mapping: mapping, Raw: raw}
}

// NormalizePayload rewrites legacy and alternate key names into the
// canonical key set. The canonical key wins when a mapping carries both a
// canonical key and an alternate. Version and signature are carried over
// unchanged; unrecognized keys are dropped.
func NormalizePayload(mapping map[string]any) map[string]any {
	normalized := make(map[string]any, len(mapping))

	if v, ok := mapping[model.KeyVersion]; ok {
		normalized[model.KeyVersion] = v
	}
	if sig, ok := mapping[model.KeySignature]; ok {
		normalized[model.KeySignature] = sig
	}

	for canonical, family := range aliasFamilies {
		for _, key := range family {
			if v, ok := mapping[key]; ok {
				normalized[canonical] = v
				break
			}
		}
	}

	return normalized
}

// VerifyPayload checks the integrity tag of a scanned mapping. Alias keys
// are resolved first, so a payload using legacy names verifies the same
// as its canonical form. Absent canonical fields are treated as empty
// strings, which makes a payload missing a signed field come back as
// VerifySignatureMismatch rather than a parse failure.
func VerifyPayload(mapping map[string]any) model.VerifyStatus {
	normalized := NormalizePayload(mapping)

	sig := stringField(normalized, model.KeySignature)
	if sig == "" {
		return model.VerifyMissingSignature
	}

	fields := map[string]string{
		model.KeyAssetID:           stringField(normalized, model.KeyAssetID),
		model.KeyAssetType:         stringField(normalized, model.KeyAssetType),
		model.KeyManufacturerID:    stringField(normalized, model.KeyManufacturerID),
		model.KeyManufacturingDate: stringField(normalized, model.KeyManufacturingDate),
	}

	if !VerifyTag(fields, sig) {
		return model.VerifySignatureMismatch
	}

	return model.VerifyValid
}

// IsRecognizedSchema reports whether a scanned mapping looks like an asset
// identity payload at all: it must carry an asset-identifier key plus at
// least one key from the type, manufacturer, or manufacturing-date
// families. False means unrelated QR content; callers skip the asset
// lookup and return the raw text as-is.
func IsRecognizedSchema(mapping map[string]any) bool {
	if !hasAnyKey(mapping, aliasFamilies[model.KeyAssetID]) {
		return false
	}

	return hasAnyKey(mapping, aliasFamilies[model.KeyAssetType]) ||
		hasAnyKey(mapping, aliasFamilies[model.KeyManufacturerID]) ||
		hasAnyKey(mapping, aliasFamilies[model.KeyManufacturingDate])
}

// hasAnyKey reports whether any of the keys is present in the mapping.
func hasAnyKey(mapping map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, ok := mapping[key]; ok {
			return true
		}
	}
	return false
}

// stringField renders a mapping value as the string form used in tag
// computation. JSON numbers print without a trailing exponent or zeros;
// null and absent fields are empty strings.
func stringField(mapping map[string]any, key string) string {
	switch v := mapping[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		data, _ := json.Marshal(v)
		return string(data)
	}
}
