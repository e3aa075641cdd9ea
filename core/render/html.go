// Package render provides output renderers for saved documents.
// This file implements the HTML renderer: each header block is driven
// through a real tool instance on the HTML surface, so the output carries
// exactly what a hosting editor would display.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/header"
	"github.com/gaurav-prasanna/blockhead/core/surface"
)

// BlockTypeHeader is the block type tag header tools save under.
const BlockTypeHeader = "header"

// outerHTMLer is satisfied by surface elements that can serialize
// themselves including the outer tag.
type outerHTMLer interface {
	OuterHTML() string
}

// HTMLRenderer renders a saved document as an HTML fragment.
type HTMLRenderer struct {
	cfg core.ToolConfig
}

// NewHTMLRenderer creates an HTMLRenderer with the given tool configuration.
func NewHTMLRenderer(cfg core.ToolConfig) *HTMLRenderer {
	return &HTMLRenderer{cfg: cfg}
}

// Render builds one element per header block and serializes them in order.
// Blocks of other kinds are skipped.
func (r *HTMLRenderer) Render(doc core.Document) ([]byte, error) {
	s := surface.New()
	var b strings.Builder
	for _, block := range doc.Blocks {
		if block.Type != BlockTypeHeader {
			continue
		}
		tool := header.NewFromData(s, block.Data, r.cfg, core.API{})
		el, ok := tool.Render().(outerHTMLer)
		if !ok {
			continue
		}
		b.WriteString(el.OuterHTML())
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
