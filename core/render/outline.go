// Package render — outline renderer.
// Produces the structural JSON view of a saved document: every heading with
// its resolved level and alignment, plus per-level counts. Records are
// normalized on the way out, so malformed saved data never leaks into the
// outline.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/normalize"
	"github.com/gaurav-prasanna/blockhead/core/registry"
)

// OutlineRenderer produces structured JSON output for a saved document.
type OutlineRenderer struct {
	norm *normalize.Normalizer
}

// NewOutlineRenderer creates an OutlineRenderer with the given tool
// configuration.
func NewOutlineRenderer(cfg core.ToolConfig) *OutlineRenderer {
	return &OutlineRenderer{norm: normalize.New(cfg)}
}

// Render builds the outline: the title is the first non-empty heading.
func (r *OutlineRenderer) Render(doc core.Document) ([]byte, error) {
	outline := core.Outline{
		Title:  Title(doc),
		Counts: make(map[string]int),
	}

	for _, block := range doc.Blocks {
		if block.Type != BlockTypeHeader {
			continue
		}
		d := r.norm.Record(block.Data)
		text := plainText(d.Text)

		entry := registry.LookupLevel(r.norm.Levels(), d.Level)
		outline.Counts[entry.Tag]++
		outline.Headings = append(outline.Headings, core.OutlineEntry{
			Text:  text,
			Level: d.Level,
			Align: d.Align,
		})
	}

	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling outline: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for outline output.
func (r *OutlineRenderer) Extension() string {
	return ".json"
}

// Title returns the document's title: the trimmed plain text of the first
// non-empty header block, or "" for an untitled document.
func Title(doc core.Document) string {
	for _, block := range doc.Blocks {
		if block.Type != BlockTypeHeader {
			continue
		}
		if text := strings.TrimSpace(plainText(block.Data.Text)); text != "" {
			return text
		}
	}
	return ""
}

// plainText strips inline markup from a heading's stored text.
func plainText(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
