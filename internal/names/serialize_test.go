package names_test

import (
	"testing"

	"github.com/andrewsheerin/cartox.io/internal/names"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTripLists = map[string]names.List{
	"empty":       {},
	"single":      {"Peru"},
	"scenario":    {"Peru", "Chad"},
	"unicode":     {"Côte d'Ivoire", "São Tomé and Príncipe", "日本", "Ελλάδα"},
	"quotes":      {`Say "hi"`, `back\slash`, "tab\there", "it's"},
	"blank entry": {"", "Mali", ""},
	"whitespace":  {" Chad ", "  "},
}

func TestSerializeText(t *testing.T) {
	t.Parallel()

	t.Run("one name per line, newline terminated", func(t *testing.T) {
		t.Parallel()

		out, err := names.SerializeText(names.List{"Peru", "Chad"})

		require.NoError(t, err)
		assert.Equal(t, "Peru\nChad\n", string(out))
	})

	t.Run("empty list is empty output", func(t *testing.T) {
		t.Parallel()

		out, err := names.SerializeText(names.List{})

		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("round trips through ParseLines", func(t *testing.T) {
		t.Parallel()

		for label, list := range roundTripLists {
			out, err := names.SerializeText(list)
			require.NoError(t, err, label)
			assert.Equal(t, list, names.ParseLines(out), label)
		}
	})

	t.Run("rejects line breaks inside a name", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"Congo\nBrazzaville", "Congo\r"} {
			_, err := names.SerializeText(names.List{"Peru", bad})
			assert.ErrorIs(t, err, names.ErrUnencodable)
		}
	})
}

func TestSerializeLiteral(t *testing.T) {
	t.Parallel()

	t.Run("scenario output", func(t *testing.T) {
		t.Parallel()

		out, err := names.SerializeLiteral(names.List{"Peru", "Chad"}, names.LiteralOptions{})

		require.NoError(t, err)
		assert.Equal(t, `// Code generated by cartox extract. DO NOT EDIT.

package names

// Names lists the unique name_en values in first-seen order.
var Names = []string{
	"Peru",
	"Chad",
}
`, string(out))
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		out, err := names.SerializeLiteral(names.List{}, names.LiteralOptions{})

		require.NoError(t, err)
		assert.Contains(t, string(out), "var Names = []string{}\n")
	})

	t.Run("custom package and identifier", func(t *testing.T) {
		t.Parallel()

		out, err := names.SerializeLiteral(names.List{"Mali"}, names.LiteralOptions{
			Package:    "countries",
			Identifier: "All",
			Property:   "name",
		})

		require.NoError(t, err)
		assert.Contains(t, string(out), "package countries\n")
		assert.Contains(t, string(out), "// All lists the unique name values in first-seen order.\n")
		assert.Contains(t, string(out), "var All = []string{\n\t\"Mali\",\n}\n")
	})

	t.Run("round trips through ParseLiteral", func(t *testing.T) {
		t.Parallel()

		lists := map[string]names.List{"line breaks": {"a\nb", "c\r\nd"}}
		for label, list := range roundTripLists {
			lists[label] = list
		}

		for label, list := range lists {
			out, err := names.SerializeLiteral(list, names.LiteralOptions{})
			require.NoError(t, err, label)

			got, err := names.ParseLiteral(out)
			require.NoError(t, err, label)
			assert.Equal(t, list, got, label)
		}
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		t.Parallel()

		for _, opts := range []names.LiteralOptions{
			{Package: "my-names"},
			{Identifier: "var"},
			{Identifier: "1st"},
		} {
			_, err := names.SerializeLiteral(names.List{"Peru"}, opts)
			assert.ErrorIs(t, err, names.ErrUnencodable)
		}
	})
}

func TestParseLiteral(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-string elements", func(t *testing.T) {
		t.Parallel()

		_, err := names.ParseLiteral([]byte("package x\n\nvar X = []any{1, \"a\"}\n"))
		assert.Error(t, err)
	})

	t.Run("rejects files without a list", func(t *testing.T) {
		t.Parallel()

		_, err := names.ParseLiteral([]byte("package x\n\nconst X = 1\n"))
		assert.Error(t, err)
	})

	t.Run("rejects invalid source", func(t *testing.T) {
		t.Parallel()

		_, err := names.ParseLiteral([]byte("NAMES = ['Peru']"))
		assert.Error(t, err)
	})
}
