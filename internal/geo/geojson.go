// Package geo handles GeoJSON data structures.
package geo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

var (
	// ErrNotFound is returned when the GeoJSON file does not exist.
	ErrNotFound = errors.New("geojson not found")
	// ErrMalformed is returned when the file is not a JSON object of the expected shape.
	ErrMalformed = errors.New("malformed geojson")
)

// FeatureCollection represents a collection of geographic features.
// Missing or null "features" decode as an empty sequence. The "type" member
// is not read, so its value is never validated.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

// Feature represents a single geographic feature. Geometry is kept raw since
// nothing here draws shapes; the browser does.
type Feature struct {
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// StringProperty returns the property value under key when it is a non-empty string.
func (f Feature) StringProperty(key string) (string, bool) {
	v, ok := f.Properties[key]
	if !ok {
		return "", false
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}

// Load reads and decodes the feature collection at path.
func Load(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}

	fc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return fc, nil
}

// Decode parses a feature collection from raw JSON.
func Decode(data []byte) (*FeatureCollection, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrMalformed)
	}
	if !utf8.Valid(trimmed) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrMalformed)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(trimmed, &fc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return &fc, nil
}
