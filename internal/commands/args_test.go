package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/csvplait/internal/table"
)

func TestParseColumns(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []int
		wantErr bool
	}{
		{name: "single", args: []string{"0"}, want: []int{0}},
		{name: "separate args", args: []string{"1", "3", "5"}, want: []int{1, 3, 5}},
		{name: "comma separated", args: []string{"1,3,5"}, want: []int{1, 3, 5}},
		{name: "range", args: []string{"1-3"}, want: []int{1, 2, 3}},
		{name: "mixed", args: []string{"0,2-4", "7"}, want: []int{0, 2, 3, 4, 7}},
		{name: "order kept", args: []string{"3", "1"}, want: []int{3, 1}},
		{name: "duplicates kept", args: []string{"0", "0", "1"}, want: []int{0, 0, 1}},
		{name: "stray commas", args: []string{",1,,2,"}, want: []int{1, 2}},
		{name: "single element range", args: []string{"2-2"}, want: []int{2}},
		{name: "none", args: nil, wantErr: true},
		{name: "only commas", args: []string{",,"}, wantErr: true},
		{name: "negative", args: []string{"-1"}, wantErr: true},
		{name: "not a number", args: []string{"a"}, wantErr: true},
		{name: "backwards range", args: []string{"3-1"}, wantErr: true},
		{name: "open range", args: []string{"3-"}, wantErr: true},
		{name: "huge range", args: []string{"0-100000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumns(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				var malformed *table.MalformedInputError
				assert.True(t, errors.As(err, &malformed), "want MalformedInputError, got %T", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColumn(t *testing.T) {
	n, err := ParseColumn(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = ParseColumn("-2")
	assert.Error(t, err)

	_, err = ParseColumn("two")
	assert.Error(t, err)
}

func TestCheckArity(t *testing.T) {
	tests := []struct {
		command string
		args    []string
		wantErr bool
	}{
		{"print", nil, false},
		{"print", []string{"x"}, true},
		{"write", nil, false},
		{"write", []string{"a.csv"}, false},
		{"write", []string{"a.csv", "b.csv"}, true},
		{"slice", []string{"1"}, true},
		{"slice", []string{"1", "2"}, false},
		{"drop", nil, true},
		{"drop", []string{"1", "2", "3"}, false},
		{"substitute", []string{"a", "b"}, true},
		{"substitute", []string{"a", "b", "1", "2"}, false},
		{"date-format", []string{"%Y", "%y", "0"}, false},
		{"set-headings", nil, false},
		{"set-headings", []string{"a", "b", "c"}, false},
	}

	for _, tt := range tests {
		err := checkArity(Registry[tt.command], tt.args)
		if tt.wantErr {
			assert.Error(t, err, "%s %v", tt.command, tt.args)
		} else {
			assert.NoError(t, err, "%s %v", tt.command, tt.args)
		}
	}
}

func TestCheckArityMessageIncludesUsage(t *testing.T) {
	err := checkArity(Registry["slice"], []string{"1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slice <start> <end>")
}
