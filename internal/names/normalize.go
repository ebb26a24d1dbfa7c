package names

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces a name or guess to its comparison key: diacritics folded,
// lower case, ASCII letters and single spaces only.
func Normalize(s string) string {
	// Chains carry state, so build one per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}

	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Index answers guesses with the canonical name they refer to.
type Index struct {
	keys  map[string]string
	names int
}

// NewIndex indexes every name and its aliases by normalized key. The first
// name to claim a key keeps it. Aliases of names not in l are ignored.
func NewIndex(l List, aliases map[string][]string) *Index {
	idx := &Index{keys: make(map[string]string, len(l)), names: len(l)}

	known := make(map[string]struct{}, len(l))
	for _, name := range l {
		known[name] = struct{}{}
		idx.add(name, name)
	}

	canonical := make([]string, 0, len(aliases))
	for name := range aliases {
		canonical = append(canonical, name)
	}
	sort.Strings(canonical)

	for _, name := range canonical {
		if _, ok := known[name]; !ok {
			continue
		}
		for _, alias := range aliases[name] {
			idx.add(alias, name)
		}
	}

	return idx
}

func (i *Index) add(key, name string) {
	k := Normalize(key)
	if k == "" {
		return
	}
	if _, taken := i.keys[k]; !taken {
		i.keys[k] = name
	}
}

// Match returns the canonical name for guess.
func (i *Index) Match(guess string) (string, bool) {
	k := Normalize(guess)
	if k == "" {
		return "", false
	}
	name, ok := i.keys[k]
	return name, ok
}

// Len is the number of canonical names indexed.
func (i *Index) Len() int {
	return i.names
}
