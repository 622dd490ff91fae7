// Package template expands $NAME references in command lines.
//
// This is a plain string pass, not shell expansion: quoting is not
// interpreted, and a reference inside quotes is still expanded.
package template

import (
	"strings"
)

// Apply replaces $NAME and ${NAME} with vars[NAME]. NAME starts with a letter
// or underscore followed by letters, digits or underscores. Unknown names are
// left as written and "$$" produces a literal "$".
func Apply(line string, vars map[string]string) string {
	if !strings.Contains(line, "$") {
		return line
	}

	var sb strings.Builder
	sb.Grow(len(line))
	for i := 0; i < len(line); {
		c := line[i]
		if c != '$' || i+1 >= len(line) {
			sb.WriteByte(c)
			i++
			continue
		}

		next := line[i+1]
		switch {
		case next == '$':
			sb.WriteByte('$')
			i += 2

		case next == '{':
			end := strings.IndexByte(line[i+2:], '}')
			name := ""
			if end >= 0 {
				name = line[i+2 : i+2+end]
			}
			if end < 0 || !validName(name) {
				sb.WriteByte(c)
				i++
				continue
			}
			ref := line[i : i+3+end]
			sb.WriteString(lookup(vars, name, ref))
			i += len(ref)

		case isNameStart(next):
			j := i + 2
			for j < len(line) && isNameChar(line[j]) {
				j++
			}
			name := line[i+1 : j]
			sb.WriteString(lookup(vars, name, line[i:j]))
			i = j

		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// Variables builds the substitution map from environ ("KEY=value" entries, as
// returned by os.Environ) with extra layered on top.
func Variables(environ []string, extra map[string]string) map[string]string {
	vars := make(map[string]string, len(environ)+len(extra))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	for key, value := range extra {
		vars[key] = value
	}
	return vars
}

func lookup(vars map[string]string, name, ref string) string {
	if value, ok := vars[name]; ok {
		return value
	}
	return ref
}

func validName(name string) bool {
	if name == "" || !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return false
		}
	}
	return true
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || ('0' <= c && c <= '9')
}
