// Package render — PDF renderer.
// Converts a saved document into a styled PDF using gofpdf. The heading
// level picks the font size and the stored alignment maps directly onto
// gofpdf's cell alignment.
package render

import (
	"bytes"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/blockhead/core"
	"github.com/gaurav-prasanna/blockhead/core/normalize"
)

// headingSizes maps level ids to font sizes in points.
var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12}

// cellAlign maps alignment ids to gofpdf alignment strings.
var cellAlign = map[string]string{"left": "L", "center": "C", "right": "R"}

// PDFRenderer renders a saved document as a PDF.
type PDFRenderer struct {
	norm *normalize.Normalizer
}

// NewPDFRenderer creates a PDFRenderer with the given tool configuration.
func NewPDFRenderer(cfg core.ToolConfig) *PDFRenderer {
	return &PDFRenderer{norm: normalize.New(cfg)}
}

// Render converts the document's header blocks into PDF bytes.
func (r *PDFRenderer) Render(doc core.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	for _, block := range doc.Blocks {
		if block.Type != BlockTypeHeader {
			continue
		}
		d := r.norm.Record(block.Data)
		text := plainText(d.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}

		size, ok := headingSizes[d.Level]
		if !ok {
			size = 12
		}
		align, ok := cellAlign[d.Align]
		if !ok {
			align = "L"
		}

		pdf.SetFont("Helvetica", "B", size)
		pdf.MultiCell(0, size*0.6, text, "", align, false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
