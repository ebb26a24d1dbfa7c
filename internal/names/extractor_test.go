package names_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrewsheerin/cartox.io/internal/names"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBase lays out a base directory with static/countries.geo.json holding geojson.
func newBase(t *testing.T, geojson string) string {
	t.Helper()

	base := t.TempDir()
	if geojson != "" {
		require.NoError(t, os.MkdirAll(filepath.Join(base, "static"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(base, "static", "countries.geo.json"), []byte(geojson), 0o644))
	}
	return base
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExtractorRun(t *testing.T) {
	t.Parallel()

	t.Run("writes both files and prints a summary", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, scenario)
		var out bytes.Buffer

		res, err := names.NewExtractor(base).Run(&out)

		require.NoError(t, err)
		assert.Equal(t, names.List{"Peru", "Chad"}, res.Names)

		txt := filepath.Join(base, "names_en.txt")
		lit := filepath.Join(base, "names_en.go")
		assert.Equal(t, txt, res.TextPath)
		assert.Equal(t, lit, res.LiteralPath)
		assert.Equal(t, "Peru\nChad\n", readFile(t, txt))

		parsed, err := names.ParseLiteral([]byte(readFile(t, lit)))
		require.NoError(t, err)
		assert.Equal(t, names.List{"Peru", "Chad"}, parsed)

		assert.Equal(t,
			"Extracted 2 unique name_en values\nWrote: "+txt+"\nWrote: "+lit+"\n",
			out.String())
	})

	t.Run("empty collection still writes both files", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, `{"type": "FeatureCollection"}`)

		res, err := names.NewExtractor(base).Run(&bytes.Buffer{})

		require.NoError(t, err)
		assert.Empty(t, res.Names)
		assert.Empty(t, readFile(t, res.TextPath))
		assert.Contains(t, readFile(t, res.LiteralPath), "var Names = []string{}")
	})

	t.Run("overwrites existing outputs", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, scenario)
		txt := filepath.Join(base, "names_en.txt")
		require.NoError(t, os.WriteFile(txt, []byte("stale\nlist\nwith\nmore\nlines\n"), 0o644))

		_, err := names.NewExtractor(base).Run(&bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "Peru\nChad\n", readFile(t, txt))

		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), ".tmp", "temp file left behind")
		}
	})

	t.Run("missing input writes nothing and reports the path", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, "")
		txt := filepath.Join(base, "names_en.txt")
		require.NoError(t, os.WriteFile(txt, []byte("keep\n"), 0o644))
		var out bytes.Buffer

		res, err := names.NewExtractor(base).Run(&out)

		require.ErrorIs(t, err, names.ErrNotFound)
		assert.Nil(t, res)
		assert.Equal(t,
			"GeoJSON not found at: "+filepath.Join(base, "static", "countries.geo.json")+"\n",
			out.String())
		assert.Equal(t, "keep\n", readFile(t, txt))
		assert.NoFileExists(t, filepath.Join(base, "names_en.go"))
	})

	t.Run("malformed input writes nothing", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, `{"features": {"oops": true}}`)
		var out bytes.Buffer

		_, err := names.NewExtractor(base).Run(&out)

		require.ErrorIs(t, err, names.ErrMalformedInput)
		assert.Empty(t, out.String())
		assert.NoFileExists(t, filepath.Join(base, "names_en.txt"))
		assert.NoFileExists(t, filepath.Join(base, "names_en.go"))
	})

	t.Run("invalid utf-8 is malformed and writes nothing", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, "{\"features\": [{\"properties\": {\"name_en\": \"Per\xffu\"}}]}")

		_, err := names.NewExtractor(base).Run(&bytes.Buffer{})

		require.ErrorIs(t, err, names.ErrMalformedInput)
		assert.NoFileExists(t, filepath.Join(base, "names_en.txt"))
		assert.NoFileExists(t, filepath.Join(base, "names_en.go"))
	})

	t.Run("unencodable name aborts before writing", func(t *testing.T) {
		t.Parallel()

		base := newBase(t, `{"features": [{"properties": {"name_en": "Peru"}}, {"properties": {"name_en": "Bad\nName"}}]}`)

		_, err := names.NewExtractor(base).Run(&bytes.Buffer{})

		require.ErrorIs(t, err, names.ErrUnencodable)
		assert.NoFileExists(t, filepath.Join(base, "names_en.txt"))
		assert.NoFileExists(t, filepath.Join(base, "names_en.go"))
	})

	t.Run("custom layout and property", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		input := filepath.Join(t.TempDir(), "world.json")
		require.NoError(t, os.WriteFile(input, []byte(`{"features": [
			{"properties": {"name": "Mali", "name_en": "Ignored"}},
			{"properties": {"name": "Chad"}}
		]}`), 0o644))

		e := names.NewExtractor(base)
		e.Input = input
		e.OutDir = "gen"
		e.Property = "name"
		e.LiteralFile = "countries.go"
		e.Literal = names.LiteralOptions{Package: "gen", Identifier: "Countries"}
		var out bytes.Buffer

		res, err := e.Run(&out)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(base, "gen", "names_en.txt"), res.TextPath)
		assert.Equal(t, filepath.Join(base, "gen", "countries.go"), res.LiteralPath)
		assert.Equal(t, "Mali\nChad\n", readFile(t, res.TextPath))
		lit := readFile(t, res.LiteralPath)
		assert.Contains(t, lit, "package gen\n")
		assert.Contains(t, lit, "// Countries lists the unique name values in first-seen order.")
		assert.Contains(t, out.String(), "Extracted 2 unique name values\n")
	})
}
