// Package dates converts date/time text between strftime-style patterns.
//
// Patterns use the C strftime directives (%Y, %m, %d, %H, %M, %S, %b, ...)
// so users can write the same format strings they would pass to date(1).
package dates

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
)

// ValidatePattern reports whether pattern can be used to parse dates. Output
// patterns are more permissive (%U, %w and literal digits render fine but
// cannot be parsed), so only source patterns need checking.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty date pattern")
	}
	if _, err := strftime.Layout(pattern); err != nil {
		return fmt.Errorf("invalid date pattern %q: %w", pattern, err)
	}
	return nil
}

// Parse reads value according to the strftime pattern.
func Parse(pattern, value string) (time.Time, error) {
	return strftime.Parse(pattern, value)
}

// Format renders t with the strftime pattern.
func Format(pattern string, t time.Time) string {
	return strftime.Format(pattern, t)
}

// Convert parses value with from and renders it with to.
func Convert(value, from, to string) (string, error) {
	t, err := Parse(from, value)
	if err != nil {
		return "", err
	}
	return Format(to, t), nil
}

// Converter returns a function that converts values from one pattern to
// another, validating the patterns once up front.
func Converter(from, to string) (func(string) (string, error), error) {
	if err := ValidatePattern(from); err != nil {
		return nil, err
	}
	if to == "" {
		return nil, fmt.Errorf("empty date pattern")
	}
	return func(value string) (string, error) {
		return Convert(value, from, to)
	}, nil
}
