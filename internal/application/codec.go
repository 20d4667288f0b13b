package application

import (
	"encoding/json"
	"errors"

	"github.com/DhruvGohel46/QRail-3/internal/domain/model"
)

// ErrMissingAssetID indicates the source record carries no asset identifier
// under any recognized key.
var ErrMissingAssetID = errors.New("asset record has no asset id")

// Source-record alias priorities. External asset records use inconsistent
// field names; for each payload field the aliases are tried in order and
// the first non-empty value wins.
var (
	assetIDAliases           = []string{"asset_id", "assetId"}
	assetTypeAliases         = []string{"type", "asset_type"}
	manufacturerIDAliases    = []string{"manufacturer", "manufacturer_id"}
	manufacturingDateAliases = []string{"mfgDate", "manufacturing_date"}
	installationDateAliases  = []string{"installation_date", "installationDate"}
)

// BuildPayload reconciles an external asset record into a version-1 signed
// payload. The installation date is attached only when known and is never
// covered by the signature. Returns ErrMissingAssetID when no asset
// identifier can be resolved.
func BuildPayload(record map[string]string) (model.AssetPayload, error) {
	assetID := firstNonEmpty(record, assetIDAliases)
	if assetID == "" {
		return model.AssetPayload{}, ErrMissingAssetID
	}

	payload := model.AssetPayload{
		Version:           model.PayloadVersion,
		AssetID:           assetID,
		AssetType:         firstNonEmpty(record, assetTypeAliases),
		ManufacturerID:    firstNonEmpty(record, manufacturerIDAliases),
		ManufacturingDate: firstNonEmpty(record, manufacturingDateAliases),
		InstallationDate:  firstNonEmpty(record, installationDateAliases),
	}
	payload.Signature = GenerateTag(payload.SignedFields())

	return payload, nil
}

// SerializePayload produces the exact wire form of a payload: compact
// single-line JSON in fixed key order v, aid, tp, mfg, mfd, inst, sig,
// with inst omitted when empty. This string is what gets encoded into
// the symbol, byte for byte.
func SerializePayload(p model.AssetPayload) string {
	data, _ := json.Marshal(p) // cannot fail for a struct of strings
	return string(data)
}

// firstNonEmpty returns the first non-empty record value among aliases.
func firstNonEmpty(record map[string]string, aliases []string) string {
	for _, key := range aliases {
		if v := record[key]; v != "" {
			return v
		}
	}
	return ""
}
