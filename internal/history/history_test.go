package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	return &History{
		entries: make([]string, 0),
		index:   -1,
		path:    filepath.Join(t.TempDir(), historyFileName),
	}
}

func TestNavigation(t *testing.T) {
	h := newTestHistory(t)
	h.Add("first")
	h.Add("second")

	entry, ok := h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "second", entry)

	entry, ok = h.Previous("draft")
	require.True(t, ok)
	require.Equal(t, "first", entry)

	// Hitting the oldest entry stays there.
	entry, ok = h.Previous("draft")
	require.False(t, ok)
	require.Equal(t, "first", entry)

	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "second", entry)

	// Walking past the newest entry restores the draft.
	entry, ok = h.Next()
	require.True(t, ok)
	require.Equal(t, "draft", entry)
}

func TestAddSkipsDuplicatesAndBlanks(t *testing.T) {
	h := newTestHistory(t)
	h.Add("hello")
	h.Add("hello")
	h.Add("   ")
	require.Len(t, h.entries, 1)
}

func TestPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), historyFileName)
	h := &History{entries: make([]string, 0), index: -1, path: path}
	h.Add("multi\nline entry")
	h.Add("plain entry")
	h.Add(`literal backslash-n \n stays literal`)

	reloaded := &History{entries: make([]string, 0), index: -1, path: path}
	reloaded.load()
	require.Equal(t, []string{
		"multi\nline entry",
		"plain entry",
		`literal backslash-n \n stays literal`,
	}, reloaded.entries)
}
