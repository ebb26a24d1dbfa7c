// Package names extracts display names from a GeoJSON feature collection and
// writes them out as a plain text list and as a Go source literal.
package names

import (
	"errors"
	"strings"

	"github.com/andrewsheerin/cartox.io/internal/geo"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultProperty is the feature property holding the English display name.
	DefaultProperty = "name_en"
	// UnknownContinent groups names whose feature has no continent.
	UnknownContinent = "Unknown"
)

var (
	// ErrNotFound is returned when the input GeoJSON does not exist.
	ErrNotFound = geo.ErrNotFound
	// ErrMalformedInput is returned when the input is not a usable feature collection.
	ErrMalformedInput = geo.ErrMalformed
	// ErrUnencodable is returned when a list cannot be serialized without loss.
	ErrUnencodable = errors.New("name list cannot be encoded")
)

// List is an ordered sequence of unique names.
type List []string

// Extract loads the feature collection at path and returns its unique names
// under the property key, in first-seen order. An empty key means DefaultProperty.
func Extract(path, key string) (List, error) {
	fc, err := geo.Load(path)
	if err != nil {
		return nil, err
	}

	return FromCollection(fc, key), nil
}

// FromCollection pulls the name under key from every feature. Features whose
// value is absent, null, not a string or empty are skipped. Duplicates keep
// their first position.
func FromCollection(fc *geo.FeatureCollection, key string) List {
	if key == "" {
		key = DefaultProperty
	}

	out := List{}
	if fc == nil {
		return out
	}

	seen := make(map[string]struct{}, len(fc.Features))
	for i, feat := range fc.Features {
		name, ok := feat.StringProperty(key)
		if !ok {
			log.Trace().
				Int("feature", i).
				Str("property", key).
				Msg("Feature skipped: no name")
			continue
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	return out
}

// Aliases collects comma separated alternative names stored under aliasKey,
// keyed by the feature's name under key. Features without a name are ignored.
func Aliases(fc *geo.FeatureCollection, key, aliasKey string) map[string][]string {
	out := make(map[string][]string)
	if fc == nil || aliasKey == "" {
		return out
	}
	if key == "" {
		key = DefaultProperty
	}

	for _, feat := range fc.Features {
		name, ok := feat.StringProperty(key)
		if !ok {
			continue
		}
		raw, ok := feat.StringProperty(aliasKey)
		if !ok {
			continue
		}

		for _, alias := range strings.Split(raw, ",") {
			if alias = strings.TrimSpace(alias); alias != "" {
				out[name] = append(out[name], alias)
			}
		}
	}

	return out
}

// Continents counts unique names per continent value stored under
// continentKey. A name counts once, under the continent of its first
// feature. Missing or empty values fall under UnknownContinent.
func Continents(fc *geo.FeatureCollection, key, continentKey string) map[string]int {
	out := make(map[string]int)
	if fc == nil {
		return out
	}
	if key == "" {
		key = DefaultProperty
	}

	seen := make(map[string]struct{}, len(fc.Features))
	for _, feat := range fc.Features {
		name, ok := feat.StringProperty(key)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		continent, ok := feat.StringProperty(continentKey)
		if !ok || continentKey == "" {
			continent = UnknownContinent
		}
		out[continent]++
	}

	return out
}
