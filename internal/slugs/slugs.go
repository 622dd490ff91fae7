// Package slugs turns free text into URL-friendly slugs.
//
// Two strategies are provided:
//   - Field slugs: used by the slugify column transform, built on gosimple/slug
//     (transliterates to ASCII).
//   - Heading slugs: used to normalize heading rows. These keep non-ASCII
//     letters and only collapse separators.
package slugs

import (
	"strings"
	"unicode"

	goslug "github.com/gosimple/slug"
)

// Field converts a field value to a lowercase ASCII slug.
func Field(s string) string {
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(s), "-"))
	}
	return slugged
}

// Heading converts a column heading to a slug, keeping letters and digits
// from any script and joining words with sep.
func Heading(text string, sep rune) string {
	var result strings.Builder
	prevSep := false

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			prevSep = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == ':' || r == '.' || r == '/':
			if !prevSep && result.Len() > 0 {
				result.WriteRune(sep)
				prevSep = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), string(sep))
}
