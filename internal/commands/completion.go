package commands

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// Complete implements tab completion for an interactive line editor. It has
// the signature of golang.org/x/term Terminal.AutoCompleteCallback.
func Complete(line string, pos int, key rune) (newLine string, newPos int, ok bool) {
	if key != '\t' || pos != len(line) {
		return "", 0, false
	}

	fields := strings.Fields(line)
	completingNew := line == "" || strings.HasSuffix(line, " ")
	toComplete := ""
	if !completingNew && len(fields) > 0 {
		toComplete = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}

	var candidates []string
	if len(fields) == 0 {
		candidates = commandCandidates()
	} else {
		meta, found := Lookup(fields[0])
		if !found {
			return "", 0, false
		}
		candidates = argCandidates(meta, len(fields)-1, toComplete)
	}

	matches := filterPrefix(candidates, toComplete)
	if len(matches) == 0 {
		return "", 0, false
	}

	completion := commonPrefix(matches)
	if len(matches) == 1 && !strings.HasSuffix(completion, string(filepath.Separator)) {
		completion += " "
	}
	if completion == toComplete {
		return "", 0, false
	}

	newLine = line[:len(line)-len(toComplete)] + completion
	return newLine, len(newLine), true
}

func commandCandidates() []string {
	names := AllCommandNames()
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// argCandidates returns completions for the argument at index i.
func argCandidates(meta Meta, i int, toComplete string) []string {
	if len(meta.Args) == 0 {
		return nil
	}
	if i >= len(meta.Args) {
		last := meta.Args[len(meta.Args)-1]
		if !last.Variadic {
			return nil
		}
		i = len(meta.Args) - 1
	}

	arg := meta.Args[i]
	if len(arg.Completions) > 0 {
		return arg.Completions
	}
	switch arg.DynamicComp {
	case "commands":
		return AllCommandNames()
	case "files":
		return fileCandidates(toComplete)
	}
	return nil
}

// fileCandidates lists entries in the directory part of prefix, keeping the
// prefix exactly as typed.
func fileCandidates(prefix string) []string {
	dir, base := filepath.Split(prefix)
	root := dir
	if root == "" {
		root = "."
	}

	names, err := doublestar.Glob(os.DirFS(root), base+"*")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		candidate := dir + name
		if info, err := os.Stat(filepath.Join(root, name)); err == nil && info.IsDir() {
			candidate += string(filepath.Separator)
		}
		out = append(out, candidate)
	}
	return out
}

func filterPrefix(candidates []string, prefix string) []string {
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

func commonPrefix(values []string) string {
	prefix := values[0]
	for _, v := range values[1:] {
		for !strings.HasPrefix(v, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}
	return prefix
}
