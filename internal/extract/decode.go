package extract

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewDecodingReader wraps r so that a leading byte order mark is dropped and
// invalid UTF-8 is replaced with U+FFFD. A UTF-16 BOM switches decoding to
// UTF-16, which some spreadsheet exports produce.
func NewDecodingReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// surrounding whitespace, an Excel formula wrapper (="...") or leading '=',
// and surrounding double quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3:
		s = s[2 : len(s)-1]
	case strings.HasPrefix(s, "="):
		s = s[1:]
	}

	return strings.TrimSpace(strings.Trim(s, `"`))
}

// cleanHeader normalizes a header cell for case-insensitive matching.
func cleanHeader(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(CleanCell(s)), " "))
}
