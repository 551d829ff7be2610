package etl

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the words of a slug.
const Separator = '-'

// Normalize reduces free text to a slug: accents are folded away, letters are
// lowercased, and every run of anything other than an ASCII letter or digit
// becomes a single Separator. The result never starts or ends with Separator
// and may be empty.
//
//	Normalize("Cycle Inspection / Initial Inspection") == "cycle-inspection-initial-inspection"
//	Normalize("Café") == "cafe"
//	Normalize("--") == ""
func Normalize(text string) string {
	folded, _, err := transform.String(accentFolder(), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))

	gap := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
		default:
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteRune(Separator)
		}
		gap = false
		b.WriteRune(r)
	}

	return b.String()
}

// accentFolder decomposes characters and drops the combining marks. A
// transform.Transformer carries state, so each call gets its own chain.
func accentFolder() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
