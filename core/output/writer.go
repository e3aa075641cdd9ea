// Package output handles file naming and writing for rendered documents.
// Filenames are slugged from the document's title — the first non-empty
// heading — so "Release Notes" becomes release_notes.md. Untitled
// documents fall back to "document".
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const fallbackName = "document"

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write writes rendered output, named after the document title.
func (w *Writer) Write(title string, data []byte, ext string) (string, error) {
	name := Slug(title)
	if name == "" {
		name = fallbackName
	}
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// Slug converts a title into a flat filename: lowercased, non-alphanumeric
// runs collapsed to single underscores.
// Example: "Go 1.25 — Release Notes!" → go_1_25_release_notes
func Slug(title string) string {
	var b strings.Builder
	lastUnderscore := true // swallow leading separators
	for _, ch := range strings.ToLower(title) {
		if unicode.IsLetter(ch) || unicode.IsDigit(ch) {
			b.WriteRune(ch)
			lastUnderscore = false
		} else if !lastUnderscore {
			b.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}
