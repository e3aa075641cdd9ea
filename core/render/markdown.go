// Package render — Markdown renderer.
// Renders the document to HTML first, then converts with html-to-markdown,
// so heading levels survive as # markers.
package render

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/gaurav-prasanna/blockhead/core"
)

// MarkdownRenderer renders a saved document as Markdown.
type MarkdownRenderer struct {
	html *HTMLRenderer
}

// NewMarkdownRenderer creates a MarkdownRenderer with the given tool
// configuration.
func NewMarkdownRenderer(cfg core.ToolConfig) *MarkdownRenderer {
	return &MarkdownRenderer{html: NewHTMLRenderer(cfg)}
}

// Render converts the document's HTML rendition into Markdown.
func (r *MarkdownRenderer) Render(doc core.Document) ([]byte, error) {
	fragment, err := r.html.Render(doc)
	if err != nil {
		return nil, err
	}
	markdown, err := htmltomarkdown.ConvertString(string(fragment))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return []byte(markdown), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
