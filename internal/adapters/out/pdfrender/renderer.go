// Package pdfrender encodes abstract drawing instructions into PDF documents
// using go-pdf/fpdf. It also implements the text measurement the layout engine
// needs, so wrapping decisions and the rendered output agree on glyph widths.
package pdfrender

import (
	"bytes"
	"sync"

	"courierdocs/internal/core/docgen"

	"github.com/go-pdf/fpdf"
)

// FpdfRenderer implements ports.DocumentRenderer on top of go-pdf/fpdf.
// Instruction coordinates use a bottom-left origin with Y growing upward;
// fpdf uses a top-left origin, so every Y is flipped during encoding.
type FpdfRenderer struct {
	// measurer is a dedicated document used only for string width queries.
	// fpdf instances are not safe for concurrent use, hence the lock.
	mu       sync.Mutex
	measurer *fpdf.Fpdf
}

// NewFpdfRenderer creates a PDF renderer for A4 documents in points.
func NewFpdfRenderer() *FpdfRenderer {
	return &FpdfRenderer{
		measurer: fpdf.New("P", "pt", "A4", ""),
	}
}

// MeasureText returns the rendered width of text in the given font, in points.
func (r *FpdfRenderer) MeasureText(text string, font docgen.Font) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.measurer.SetFont(font.Family, font.Style, font.Size)
	return r.measurer.GetStringWidth(text)
}

// Render draws the pages in order and returns the encoded PDF bytes.
func (r *FpdfRenderer) Render(pages []docgen.Page) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	_, pageHeight := pdf.GetPageSize()

	for _, page := range pages {
		pdf.AddPage()
		for _, instruction := range page.Instructions {
			encodeInstruction(pdf, pageHeight, instruction)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeInstruction(pdf *fpdf.Fpdf, pageHeight float64, instruction docgen.Instruction) {
	switch instr := instruction.(type) {
	case docgen.TextInstruction:
		pdf.SetFont(instr.Font.Family, instr.Font.Style, instr.Font.Size)

		x := instr.X
		switch instr.Align {
		case docgen.AlignCenter:
			x -= pdf.GetStringWidth(instr.Text) / 2
		case docgen.AlignRight:
			x -= pdf.GetStringWidth(instr.Text)
		case docgen.AlignLeft:
		}

		// The instruction Y is the text baseline.
		pdf.Text(x, pageHeight-instr.Y, instr.Text)

	case docgen.RectInstruction:
		pdf.Rect(instr.X, pageHeight-instr.Y, instr.W, instr.H, "D")

	case docgen.LineInstruction:
		pdf.Line(instr.X1, pageHeight-instr.Y1, instr.X2, pageHeight-instr.Y2)

	case docgen.ImageInstruction:
		pdf.ImageOptions(
			instr.Source,
			instr.X, pageHeight-instr.Y, instr.W, instr.H,
			false,
			fpdf.ImageOptions{ReadDpi: true},
			0, "")
	}
}
