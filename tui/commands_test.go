package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEditCommand(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantIndex   int
		wantContent string
		wantOK      bool
	}{
		{name: "valid", input: "/edit 1 new content", wantIndex: 1, wantContent: "new content", wantOK: true},
		{name: "multi word", input: "/edit 3 fix the second question", wantIndex: 3, wantContent: "fix the second question", wantOK: true},
		{name: "not a command", input: "just a message", wantOK: false},
		{name: "missing content", input: "/edit 2", wantOK: false},
		{name: "zero index", input: "/edit 0 text", wantOK: false},
		{name: "non numeric index", input: "/edit abc text", wantOK: false},
		{name: "blank content", input: "/edit 1    ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, content, ok := parseEditCommand(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				require.Equal(t, tt.wantIndex, index)
				require.Equal(t, tt.wantContent, content)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "exactly ten", truncate("exactly ten", 11))
	require.Equal(t, "0123456...", truncate("0123456789abc", 10))
}
