package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Load decodes one embedded catalog file into T.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("catalog %s: %w", filename, err)
	}
	return decode[T](filename, content)
}

// decode parses catalog JSON strictly. A misspelled key in a room or tile
// entry is an error rather than a silently zero field.
func decode[T any](filename string, content []byte) (T, error) {
	var result T
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("catalog %s: %w", filename, err)
	}
	return result, nil
}
