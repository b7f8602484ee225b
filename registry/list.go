package registry

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/ton-community/wallets-list/internal/fileio"
	"github.com/ton-community/wallets-list/internal/model"
)

// LoadList reads the wallets list at path as raw entries, preserving
// the exact bytes of every entry for later re-emission. Elements are
// not required to be objects here; each operation decides how strictly
// to treat a malformed entry.
func LoadList(path string) ([]json.RawMessage, error) {
	data, err := fileio.ReadFile(path)
	if err != nil {
		return nil, model.NewDataError("failed to read wallets list", err)
	}

	// A bare null would otherwise unmarshal into a nil slice without an error.
	if !gjson.ParseBytes(data).IsArray() {
		return nil, model.NewDataError(fmt.Sprintf("%s is not a JSON array", path), nil)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, model.NewDataError(fmt.Sprintf("%s is not a JSON array", path), err)
	}

	return entries, nil
}

// DecodeWallets decodes raw entries into typed wallets, stopping at the
// first entry that does not match the registry format.
func DecodeWallets(entries []json.RawMessage) ([]model.Wallet, error) {
	wallets := make([]model.Wallet, 0, len(entries))
	for i, entry := range entries {
		var w model.Wallet
		if err := json.Unmarshal(entry, &w); err != nil {
			return nil, model.NewDataError(fmt.Sprintf("entry %d (%s) does not match the registry format", i, entryLabel(entry)), err)
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// LoadWallets reads and decodes the wallets list at path.
func LoadWallets(path string) ([]model.Wallet, error) {
	entries, err := LoadList(path)
	if err != nil {
		return nil, err
	}
	return DecodeWallets(entries)
}

// entryLabel names an entry for diagnostics: its app_name when one is
// present, "unnamed" otherwise.
func entryLabel(entry json.RawMessage) string {
	if name := gjson.GetBytes(entry, "app_name"); name.Type == gjson.String && name.Str != "" {
		return name.Str
	}
	return "unnamed"
}
