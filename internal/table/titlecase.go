package table

import (
	"regexp"
	"strings"
	"unicode"
)

// apostropheCap matches the letter after an apostrophe that Title wrongly
// capitalizes, as in "O'Brien'S".
var apostropheCap = regexp.MustCompile(`[a-z]'[A-Z]`)

// Title upper-cases the first letter of every run of letters and lower-cases
// the rest. Any non-letter, including an apostrophe, starts a new run.
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				r = unicode.ToLower(r)
			}
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				r = unicode.ToTitle(r)
			}
			prevCased = true
		default:
			prevCased = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ApostropheSafeTitle is Title with possessives and contractions repaired:
// "o'brien's" becomes "O'Brien's", not "O'Brien'S".
func ApostropheSafeTitle(s string) string {
	return apostropheCap.ReplaceAllStringFunc(Title(s), strings.ToLower)
}
