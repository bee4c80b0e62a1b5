package docgen

import "fmt"

// A4 page dimensions in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// Vertical offsets (from the page bottom edge) of the finalization footer.
const (
	pageNumberOffset = 28.0
	disclaimerOffset = 40.0
)

// Signature block geometry used by Finish on the last page.
const (
	signatureBoxHeight = 54.0
	signatureBoxGap    = 16.0
	signatureOffset    = 56.0
)

var footerFont = Font{Family: "Helvetica", Size: 8}

// Margins defines page margins in points.
type Margins struct {
	Top, Bottom, Left, Right float64
}

// Option configures a Layout.
type Option func(*Layout)

// WithPageSize sets the page dimensions in points.
func WithPageSize(width, height float64) Option {
	return func(l *Layout) {
		l.pageWidth = width
		l.pageHeight = height
	}
}

// WithMargins sets the page margins.
func WithMargins(margins Margins) Option {
	return func(l *Layout) {
		l.margins = margins
	}
}

// SignatureConfig describes the two labeled boxes Finish draws on the last page.
type SignatureConfig struct {
	LeftLabel  string
	RightLabel string
}

// FooterConfig controls the finalization pass. The page number line is always
// stamped; the disclaimer only when non-empty; the signature block only when
// Signature is non-nil, and then on the last page only.
type FooterConfig struct {
	Disclaimer string
	Signature  *SignatureConfig
}

// Layout is a stateful cursor-based placement engine, one instance per document.
//
// The cursor starts at pageHeight minus the top margin and decreases as content
// is placed. PlaceBlock decides page breaks; the Draw methods only append
// instructions and never move the cursor, so callers advance it explicitly per
// line or block. Finish closes the last page and runs the finalization pass
// over all pages.
type Layout struct {
	pageWidth  float64
	pageHeight float64
	margins    Margins

	cursorY float64
	current *Page
	pages   []*Page

	// placedOnPage guards against breaking to a fresh page when nothing has
	// been placed yet: an oversized first block overflows instead.
	placedOnPage bool
	finished     bool
}

// NewLayout creates a layout engine with an open first page. Defaults are A4
// with 40pt side/top margins and a 70pt bottom margin reserved for the footer.
func NewLayout(opts ...Option) *Layout {
	l := &Layout{
		pageWidth:  A4Width,
		pageHeight: A4Height,
		margins:    Margins{Top: 40, Bottom: 70, Left: 40, Right: 40},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.current = &Page{}
	l.cursorY = l.pageHeight - l.margins.Top
	return l
}

// PageWidth returns the page width in points.
func (l *Layout) PageWidth() float64 {
	return l.pageWidth
}

// PageHeight returns the page height in points.
func (l *Layout) PageHeight() float64 {
	return l.pageHeight
}

// LeftX returns the X coordinate of the left margin.
func (l *Layout) LeftX() float64 {
	return l.margins.Left
}

// RightX returns the X coordinate of the right margin.
func (l *Layout) RightX() float64 {
	return l.pageWidth - l.margins.Right
}

// CenterX returns the horizontal center of the page.
func (l *Layout) CenterX() float64 {
	return l.pageWidth / 2
}

// UsableWidth returns the width between the side margins.
func (l *Layout) UsableWidth() float64 {
	return l.pageWidth - l.margins.Left - l.margins.Right
}

// UsableHeight returns the height between the top and bottom margins.
func (l *Layout) UsableHeight() float64 {
	return l.pageHeight - l.margins.Top - l.margins.Bottom
}

// CursorY returns the current vertical cursor position.
func (l *Layout) CursorY() float64 {
	return l.cursorY
}

// AdvanceCursor moves the cursor down by dy points.
func (l *Layout) AdvanceCursor(dy float64) {
	l.cursorY -= dy
}

// PageCount returns the number of pages opened so far, including the current one.
func (l *Layout) PageCount() int {
	return len(l.pages) + 1
}

// PlaceBlock reserves vertical room for an indivisible block of the given height
// and returns the Y coordinate of the block's top edge. When the block would
// cross the bottom margin, the current page is finalized and a new page opened
// before placement. A block is never split across two pages.
//
// A block taller than the full usable page height is placed anyway and overflows
// past the bottom margin. This is a documented limitation, not an error.
func (l *Layout) PlaceBlock(height float64) float64 {
	if l.placedOnPage && l.cursorY-height < l.margins.Bottom {
		l.breakPage()
	}
	l.placedOnPage = true
	return l.cursorY
}

// DrawText appends a text instruction at the given position. The cursor does
// not move.
func (l *Layout) DrawText(x, y float64, text string, font Font, align Align) {
	l.current.append(TextInstruction{X: x, Y: y, Text: text, Font: font, Align: align})
}

// DrawRect appends a rectangle outline with top-left corner at x, y.
func (l *Layout) DrawRect(x, y, w, h float64) {
	l.current.append(RectInstruction{X: x, Y: y, W: w, H: h})
}

// DrawLine appends a straight line between two points.
func (l *Layout) DrawLine(x1, y1, x2, y2 float64) {
	l.current.append(LineInstruction{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// DrawImage appends an image instruction with top-left corner at x, y.
func (l *Layout) DrawImage(source string, x, y, w, h float64) {
	l.current.append(ImageInstruction{Source: source, X: x, Y: y, W: w, H: h})
}

// Finish closes out the last page and runs the finalization pass over all
// pages: each page receives the disclaimer (when configured) and a centered
// "Page i of N" line at fixed offsets from the bottom edge, and the last page
// receives the signature block (when configured). Finish returns the finished
// pages in order; the layout must not be used afterwards.
func (l *Layout) Finish(footer FooterConfig) []Page {
	if l.finished {
		return l.snapshot()
	}
	l.finished = true
	l.pages = append(l.pages, l.current)
	l.current = nil

	total := len(l.pages)
	for i, page := range l.pages {
		page.Index = i + 1
		l.stampFooter(page, total, footer)
	}
	if footer.Signature != nil {
		l.stampSignature(l.pages[total-1], *footer.Signature)
	}

	return l.snapshot()
}

func (l *Layout) breakPage() {
	l.pages = append(l.pages, l.current)
	l.current = &Page{}
	l.cursorY = l.pageHeight - l.margins.Top
	l.placedOnPage = false
}

func (l *Layout) stampFooter(page *Page, total int, footer FooterConfig) {
	if footer.Disclaimer != "" {
		page.append(TextInstruction{
			X:     l.CenterX(),
			Y:     disclaimerOffset,
			Text:  footer.Disclaimer,
			Font:  footerFont,
			Align: AlignCenter,
		})
	}
	page.append(TextInstruction{
		X:     l.CenterX(),
		Y:     pageNumberOffset,
		Text:  pageNumberText(page.Index, total),
		Font:  footerFont,
		Align: AlignCenter,
	})
}

func (l *Layout) stampSignature(page *Page, signature SignatureConfig) {
	boxWidth := (l.UsableWidth() - signatureBoxGap) / 2
	top := l.margins.Bottom + signatureOffset
	labelFont := Font{Family: "Helvetica", Size: 9}

	page.append(RectInstruction{X: l.margins.Left, Y: top, W: boxWidth, H: signatureBoxHeight})
	page.append(TextInstruction{
		X:    l.margins.Left + 6,
		Y:    top - signatureBoxHeight + 10,
		Text: signature.LeftLabel,
		Font: labelFont,
	})

	rightX := l.margins.Left + boxWidth + signatureBoxGap
	page.append(RectInstruction{X: rightX, Y: top, W: boxWidth, H: signatureBoxHeight})
	page.append(TextInstruction{
		X:    rightX + 6,
		Y:    top - signatureBoxHeight + 10,
		Text: signature.RightLabel,
		Font: labelFont,
	})
}

func (l *Layout) snapshot() []Page {
	pages := make([]Page, len(l.pages))
	for i, p := range l.pages {
		pages[i] = *p
	}
	return pages
}

func pageNumberText(index, total int) string {
	return fmt.Sprintf("Page %d of %d", index, total)
}
