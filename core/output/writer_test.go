package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Release Notes", "release_notes"},
		{"Go 1.25 — Release Notes!", "go_1_25_release_notes"},
		{"  spaced  out  ", "spaced_out"},
		{"___", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.title), "title %q", tt.title)
	}
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("My Document", []byte("<h1>My Document</h1>"), ".html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my_document.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<h1>My Document</h1>", string(data))
}

func TestWriteUntitledFallsBack(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("", []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "document.json"), path)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
