// Package jsoniter encodes and decodes persisted snapshots using
// github.com/json-iterator/go in standard-library compatible mode.
package jsoniter

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return b, nil
}

// Unmarshal parses the JSON-encoded data into v.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return nil
}
