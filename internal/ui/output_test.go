package ui

import "testing"

func TestStatusMessages(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "success", got: Successf("Loaded %s", "a.csv"), want: "✓ Loaded a.csv"},
		{name: "error", got: Errorf("column %d out of range", 7), want: "✗ column 7 out of range"},
		{name: "info", got: Info("no headings"), want: "ℹ no headings"},
		{name: "count singular", got: Count(1, "row", "rows"), want: "1 row"},
		{name: "count plural", got: Count(3, "row", "rows"), want: "3 rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, tt.got)
			}
		})
	}
}

func TestAvailableWidth(t *testing.T) {
	d := NewDisplayContextWithWidth(80, true)
	if got := d.AvailableWidth(2); got != 78 {
		t.Fatalf("expected 78, got %d", got)
	}
	d = NewDisplayContextWithWidth(1, false)
	if got := d.AvailableWidth(2); got != DefaultTermWidth {
		t.Fatalf("expected fallback width, got %d", got)
	}
}
