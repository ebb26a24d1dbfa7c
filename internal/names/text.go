package names

import (
	"bytes"
	"fmt"
	"strings"
)

// SerializeText renders one name per line, each terminated by a newline.
// Names containing a line break cannot be read back and are rejected.
func SerializeText(l List) ([]byte, error) {
	var buf bytes.Buffer
	for i, name := range l {
		if strings.ContainsAny(name, "\r\n") {
			return nil, fmt.Errorf("%w: entry %d (%q) contains a line break", ErrUnencodable, i, name)
		}
		buf.WriteString(name)
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// ParseLines is the inverse of SerializeText.
func ParseLines(data []byte) List {
	if len(data) == 0 {
		return List{}
	}

	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
