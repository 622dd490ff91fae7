package commands

import (
	"strconv"
	"strings"

	"github.com/aidanlsb/csvplait/internal/table"
)

// maxRangeSize limits a single "a-b" range to catch typos like "1-10000000".
const maxRangeSize = 10000

// ParseColumns parses column arguments into zero-based indices. Supports:
//   - Separate arguments: "1" "3" "5"
//   - Comma-separated: "1,3,5"
//   - Range: "1-5"
//   - Mixed: "0,2-4" "7"
//
// Order and duplicates are kept as given. Indices are not checked against a
// table here.
func ParseColumns(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, table.Malformed("no columns given")
	}

	var result []int
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			cols, err := parseColumnPart(part)
			if err != nil {
				return nil, err
			}
			result = append(result, cols...)
		}
	}

	if len(result) == 0 {
		return nil, table.Malformed("no columns given")
	}
	return result, nil
}

func parseColumnPart(part string) ([]int, error) {
	if strings.HasPrefix(part, "-") {
		return nil, table.Malformed("column %q must not be negative", part)
	}
	if !strings.Contains(part, "-") {
		n, err := ParseColumn(part)
		if err != nil {
			return nil, err
		}
		return []int{n}, nil
	}

	bounds := strings.SplitN(part, "-", 2)
	start, err := ParseColumn(bounds[0])
	if err != nil {
		return nil, table.Malformed("invalid range %q", part)
	}
	end, err := ParseColumn(bounds[1])
	if err != nil {
		return nil, table.Malformed("invalid range %q", part)
	}
	if end < start {
		return nil, table.Malformed("range end %d must be >= start %d", end, start)
	}
	if end-start+1 > maxRangeSize {
		return nil, table.Malformed("range %d-%d is too large (max %d columns)", start, end, maxRangeSize)
	}

	cols := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		cols = append(cols, i)
	}
	return cols, nil
}

// ParseColumn parses a single non-negative column index.
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, table.Malformed("%q is not a column number", s)
	}
	if n < 0 {
		return 0, table.Malformed("column %d must not be negative", n)
	}
	return n, nil
}

// checkArity rejects argument lists that do not fit meta.Args.
func checkArity(meta Meta, args []string) error {
	min, max := argBounds(meta)
	if len(args) < min || (max >= 0 && len(args) > max) {
		switch {
		case max < 0:
			return table.Malformed("%s expects at least %d argument(s), got %d (usage: %s)", meta.Name, min, len(args), Usage(meta))
		case min == max:
			return table.Malformed("%s expects %d argument(s), got %d (usage: %s)", meta.Name, min, len(args), Usage(meta))
		default:
			return table.Malformed("%s expects %d to %d arguments, got %d (usage: %s)", meta.Name, min, max, len(args), Usage(meta))
		}
	}
	return nil
}
