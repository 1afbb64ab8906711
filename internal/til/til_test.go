package til

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeNotes(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("note"), 0o644))
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	dir := t.TempDir()
	writeNotes(t, dir,
		"20240101-first-note.md",
		"20240301-third-note.md",
		"20240201-second-note.md",
		"20240401-fourth-note.md",
	)

	entries, err := List(dir, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "Fourth note", entries[0].Title)
	require.Equal(t, "Third note", entries[1].Title)
	require.Equal(t, "Second note", entries[2].Title)
}

func TestListIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeNotes(t, dir, "01-real.md", "notes.txt", ".gitignore")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts.md"), 0o755))

	entries, err := List(dir, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Real", entries[0].Title)
}

func TestListMissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "absent"), 5)
	require.Error(t, err)
}

func TestRenderList(t *testing.T) {
	entries := []Entry{
		{Title: "Smart truncation", Path: "til/20240722-smart-truncation.md"},
		{Title: "Word wrap", Path: "til/20240723-word-wrap.md"},
	}

	got := RenderList(entries)
	want := "* [Smart truncation](til/20240722-smart-truncation.md)\n" +
		"* [Word wrap](til/20240723-word-wrap.md)"
	require.Equal(t, want, got)
}

func TestRenderListEmptyPlaceholder(t *testing.T) {
	got := RenderList(nil)
	require.NotEmpty(t, got)
	require.NotContains(t, got, "* [")
}

func TestDisplayTitle(t *testing.T) {
	cases := map[string]string{
		"20240722-smart-truncation.md": "Smart truncation",
		"01-go-interfaces.md":          "Go interfaces",
		"plain-note.md":                "Plain note",
		"12345.md":                     "12345",
	}
	for name, want := range cases {
		require.Equal(t, want, displayTitle(name), "file %q", name)
	}
}
