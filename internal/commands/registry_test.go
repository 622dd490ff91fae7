package commands

import (
	"testing"
)

// TestRegistryHasRequiredCommands verifies that essential commands exist.
func TestRegistryHasRequiredCommands(t *testing.T) {
	requiredCommands := []string{
		"read", "write", "print", "set-headings", "drop-headings",
		"slice", "drop", "reorder", "date-format", "titleize",
		"substitute", "history", "quit",
	}

	for _, cmd := range requiredCommands {
		if _, ok := Registry[cmd]; !ok {
			t.Errorf("Registry missing required command %q", cmd)
		}
	}
}

// TestRegistryMetadataComplete verifies all commands have required metadata.
func TestRegistryMetadataComplete(t *testing.T) {
	for name, meta := range Registry {
		t.Run(name, func(t *testing.T) {
			if meta.Name != name {
				t.Errorf("Name = %q, want %q", meta.Name, name)
			}
			if meta.Description == "" {
				t.Error("Command has empty Description")
			}
			if len(meta.Examples) == 0 {
				t.Error("Command has no Examples")
			}

			for i, arg := range meta.Args {
				if arg.Name == "" {
					t.Errorf("Arg %d has empty Name", i)
				}
				if arg.Description == "" {
					t.Errorf("Arg %q has empty Description", arg.Name)
				}
				if arg.Variadic && i != len(meta.Args)-1 {
					t.Errorf("Arg %q is variadic but not last", arg.Name)
				}
			}
		})
	}
}

// TestRegistryHandlerParity verifies every command has a handler and every
// handler a command.
func TestRegistryHandlerParity(t *testing.T) {
	for name := range Registry {
		if _, ok := handlers[name]; !ok {
			t.Errorf("command %q has no handler", name)
		}
	}
	for name := range handlers {
		if _, ok := Registry[name]; !ok {
			t.Errorf("handler %q has no registry entry", name)
		}
	}
}

func TestAliasesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for name, meta := range Registry {
		for _, alias := range meta.Aliases {
			if _, clash := Registry[alias]; clash {
				t.Errorf("alias %q of %q shadows a command", alias, name)
			}
			if other, dup := seen[alias]; dup {
				t.Errorf("alias %q used by %q and %q", alias, other, name)
			}
			seen[alias] = name
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"drop", "drop", true},
		{"load", "read", true},
		{"show", "print", true},
		{"sub", "substitute", true},
		{"dateformat", "date-format", true},
		{"?", "help", true},
		{"exit", "quit", true},
		{" print ", "print", true},
		{"frobnicate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			meta, ok := Lookup(tt.input)
			if ok != tt.ok {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if meta.Name != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.input, meta.Name, tt.want)
			}
		})
	}
}

func TestMutatingCommands(t *testing.T) {
	for name := range mutatingCommands {
		if _, ok := Registry[name]; !ok {
			t.Errorf("mutating command %q is not registered", name)
		}
	}

	if meta, _ := Lookup("titleize"); !meta.MutatesTable {
		t.Error("titleize should be marked as mutating")
	}
	if meta, _ := Lookup("print"); meta.MutatesTable {
		t.Error("print should not be marked as mutating")
	}
}

func TestUsage(t *testing.T) {
	tests := map[string]string{
		"print":        "print",
		"write":        "write [path]",
		"slice":        "slice <start> <end>",
		"drop":         "drop <col>...",
		"set-headings": "set-headings [heading]...",
		"substitute":   "substitute <old> <new> <col>...",
	}

	for name, want := range tests {
		if got := Usage(Registry[name]); got != want {
			t.Errorf("Usage(%s) = %q, want %q", name, got, want)
		}
	}
}
