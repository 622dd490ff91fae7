package commands

// mutatingCommands lists registry commands that change the loaded table.
// A session uses this to warn before discarding unsaved edits.
var mutatingCommands = map[string]struct{}{
	"set-headings":     {},
	"drop-headings":    {},
	"slugify-headings": {},
	"slice":            {},
	"drop":             {},
	"reorder":          {},
	"date-format":      {},
	"titleize":         {},
	"substitute":       {},
	"slugify":          {},
	"pad":              {},
}

func init() {
	for name := range mutatingCommands {
		meta, ok := Registry[name]
		if !ok {
			continue
		}
		meta.MutatesTable = true
		Registry[name] = meta
	}
}
