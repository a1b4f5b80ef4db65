// Package slug derives URL-safe identifier fragments from display values.
package slug

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes their combining marks,
// so that e.g. "é" becomes "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make derives a lowercase, URL-safe slug from the basis string.
//
// It is pure and deterministic: runs of whitespace and punctuation are
// collapsed into single dashes, diacritics are stripped and everything
// else that is not a letter or digit is dropped.
func Make(basis string) string {
	normalized, _, err := transform.String(stripMarks, basis)
	if err != nil {
		normalized = basis
	}
	normalized = strings.ToLower(normalized)

	var b strings.Builder
	b.Grow(len(normalized))

	pendingDash := false
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
			continue
		}
		pendingDash = true
	}

	return b.String()
}

// MakeWithDate derives a slug suffixed with the date in YYYYMMDD format.
// This is the slug format for budgets.
func MakeWithDate(basis string, date time.Time) string {
	return Make(basis) + "-" + date.UTC().Format("20060102")
}
