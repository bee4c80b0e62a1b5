package ports

import (
	"courierdocs/internal/core/docgen"
)

// DocumentRenderer turns finished layout pages into a binary document. It also
// provides the text measurement the layout engine needs, so wrapping decisions
// and rendering agree on glyph widths.
type DocumentRenderer interface {
	docgen.TextMeasurer

	// Render draws the pages in order and returns the encoded document bytes.
	Render(pages []docgen.Page) ([]byte, error)
}
