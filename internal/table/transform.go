package table

import (
	"github.com/aidanlsb/csvplait/internal/dates"
	"github.com/aidanlsb/csvplait/internal/slugs"
)

// TransformFunc maps one field value to its replacement.
type TransformFunc func(value string) (string, error)

// TransformColumn applies fn to the field at col in every data row. Headings
// are never transformed. New values are computed for all rows before any row
// is updated, so an error from fn leaves the table unchanged.
func (t *Table) TransformColumn(col int, fn TransformFunc) error {
	if err := t.checkColumns(col); err != nil {
		return err
	}

	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		v, err := fn(row[col])
		if err != nil {
			return err
		}
		values[i] = v
	}
	for i, row := range t.rows {
		row[col] = values[i]
	}
	return nil
}

func pure(fn func(string) string) TransformFunc {
	return func(value string) (string, error) {
		return fn(value), nil
	}
}

// SubstituteString replaces fields exactly equal to match with replacement.
func (t *Table) SubstituteString(col int, match, replacement string) error {
	return t.TransformColumn(col, pure(func(value string) string {
		if value == match {
			return replacement
		}
		return value
	}))
}

// Titleize title-cases every field in col.
func (t *Table) Titleize(col int) error {
	return t.TransformColumn(col, pure(ApostropheSafeTitle))
}

// Slugify replaces every non-empty field in col with its URL slug.
func (t *Table) Slugify(col int) error {
	return t.TransformColumn(col, pure(func(value string) string {
		if value == "" {
			return value
		}
		return slugs.Field(value)
	}))
}

// DateFormat re-renders every non-empty field in col from the strftime pattern
// from to the pattern to. Empty fields are left alone.
func (t *Table) DateFormat(col int, from, to string) error {
	convert, err := dates.Converter(from, to)
	if err != nil {
		return &MalformedInputError{Reason: "bad date pattern", Err: err}
	}
	return t.TransformColumn(col, func(value string) (string, error) {
		if value == "" {
			return value, nil
		}
		out, err := convert(value)
		if err != nil {
			return "", &DateFormatError{Column: col, Value: value, Pattern: from, Err: err}
		}
		return out, nil
	})
}

// SlugifyHeadings rewrites every heading as a lowercase slug joined by
// underscores, e.g. "Unit Price" becomes "unit_price".
func (t *Table) SlugifyHeadings() error {
	if t.headings == nil {
		return ErrNoHeadings
	}
	out := make([]string, len(t.headings))
	for i, h := range t.headings {
		out[i] = slugs.Heading(h, '_')
	}
	t.headings = out
	return nil
}
