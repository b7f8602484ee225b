package fileio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ton-community/wallets-list/internal/model"
)

// ReadFile reads the whole file at path, rejecting missing and empty
// files with descriptive errors and skipping a UTF-8 BOM if present.
func ReadFile(path string) ([]byte, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	// Skip UTF-8 BOM if present
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	return data, nil
}

// ReadJSON reads the file at path and unmarshals it into v.
func ReadJSON(path string, v any) error {
	data, err := ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

// MarshalJSON encodes v with two-space indentation, HTML escaping off
// and a trailing newline. Escaping is off so raw entries pass through
// byte-for-byte.
func MarshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON marshals v and writes it to path atomically.
func WriteJSON(path string, v any) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, data, 0644)
}

// WriteFileAtomic writes data to path through a temp file in the same
// directory followed by a rename, so a failed run never leaves a
// partially written file behind. An unwritable path is a ConfigError.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return model.NewConfigError("failed to create temp file", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return model.NewConfigError("failed to write temp file", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return model.NewConfigError("failed to sync temp file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return model.NewConfigError("failed to close temp file", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return model.NewConfigError("failed to rename temp file", err)
	}

	return nil
}
