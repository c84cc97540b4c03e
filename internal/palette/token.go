package palette

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug lowercases name, strips accents and joins runs of letters and digits
// with single dashes: "Café Sales (EU)" becomes "cafe-sales-eu".
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Token derives the design-token name for a colour from the prefix and name.
func Token(prefix, name string) string {
	p, n := Slug(prefix), Slug(name)
	switch {
	case p == "":
		return n
	case n == "":
		return p
	default:
		return p + "-" + n
	}
}
