package docgen

import (
	"math"

	"courierdocs/internal/core/domain/model/deliverynote"
)

// Delivery note layout constants, in points.
const (
	noteLineHeight   = 12.0
	noteMinRowHeight = 18.0
	noteRowPad       = 6.0
	noteQtyColumn    = 50.0
	notePriceColumn  = 80.0
	noteTotalColumn  = 80.0
	noteSignatureBox = 60.0
)

// DeliveryNoteAssembler drives the layout engine with delivery-note data to
// produce the printable note: masthead, deliver-to block, ruled item table,
// totals, and a fixed signature box.
//
// Unlike the waybill's source behavior, item rows here are offered to
// PlaceBlock individually so long notes break cleanly across pages.
type DeliveryNoteAssembler struct {
	measurer TextMeasurer
}

// NewDeliveryNoteAssembler creates a delivery-note assembler using the given
// text measurer for wrapping decisions.
func NewDeliveryNoteAssembler(measurer TextMeasurer) DeliveryNoteAssembler {
	return DeliveryNoteAssembler{measurer: measurer}
}

// Assemble lays out the delivery note and returns the finished pages. The
// persisted subtotal, VAT, and total are rendered as stored; nothing is
// recomputed here.
func (a DeliveryNoteAssembler) Assemble(
	n *deliverynote.DeliveryNote,
	settings map[string]string,
) ([]Page, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	l := NewLayout()
	a.drawMasthead(l, n, settings)
	a.drawDeliverTo(l, n)
	a.drawJobReference(l, n)
	a.drawItemTable(l, n.Items())
	a.drawTotals(l, n)
	a.drawSignatureBox(l)

	return l.Finish(FooterConfig{Disclaimer: settings[SettingDisclaimer]}), nil
}

func (a DeliveryNoteAssembler) measure(font Font) MeasureFunc {
	return func(text string) float64 {
		return a.measurer.MeasureText(text, font)
	}
}

// drawMasthead places the logo top-left and a right-aligned title, note number,
// and date block.
func (a DeliveryNoteAssembler) drawMasthead(
	l *Layout, n *deliverynote.DeliveryNote, settings map[string]string,
) {
	top := l.CursorY()

	if logo := settings[SettingLogo]; logo != "" {
		l.DrawImage(logo, l.LeftX(), top, logoWidth, logoHeight)
	}
	l.DrawText(l.RightX(), top-titleFont.Size, "DELIVERY NOTE", titleFont, AlignRight)
	l.DrawText(l.RightX(), top-titleFont.Size-noteLineHeight*1.5, n.NoteNumber(), labelFont, AlignRight)
	l.DrawText(l.RightX(), top-titleFont.Size-noteLineHeight*2.5,
		n.Date().Format("2006/01/02"), bodyFont, AlignRight)

	headerHeight := titleFont.Size + noteLineHeight*2.5
	if settings[SettingLogo] != "" {
		headerHeight = math.Max(headerHeight, logoHeight)
	}
	l.AdvanceCursor(headerHeight + waybillBlockGap)
}

func (a DeliveryNoteAssembler) drawDeliverTo(l *Layout, n *deliverynote.DeliveryNote) {
	addressLines := WrapText(n.Address(), a.measure(bodyFont), l.UsableWidth()/2)

	height := noteLineHeight * float64(3+len(addressLines))
	top := l.PlaceBlock(height)

	l.DrawText(l.LeftX(), top-12, "DELIVER TO", headingFont, AlignLeft)
	l.DrawText(l.LeftX(), top-12-noteLineHeight*1.5, n.ClientName(), bodyFont, AlignLeft)

	y := top - 12 - noteLineHeight*2.5
	for _, line := range addressLines {
		l.DrawText(l.LeftX(), y, line, bodyFont, AlignLeft)
		y -= noteLineHeight
	}
	if p := n.ContactPerson(); p != nil {
		contact := *p
		if num := n.ContactNumber(); num != nil {
			contact += "  " + *num
		}
		l.DrawText(l.LeftX(), y, contact, bodyFont, AlignLeft)
		y -= noteLineHeight
	}
	l.AdvanceCursor(height + waybillBlockGap)
}

// drawJobReference draws the right-aligned job/CE block, omitted entirely when
// neither reference is present.
func (a DeliveryNoteAssembler) drawJobReference(l *Layout, n *deliverynote.DeliveryNote) {
	if n.JobNumber() == nil && n.CENumber() == nil {
		return
	}

	lines := make([]string, 0, 2)
	if j := n.JobNumber(); j != nil {
		lines = append(lines, "Job number: "+*j)
	}
	if ce := n.CENumber(); ce != nil {
		lines = append(lines, "CE number: "+*ce)
	}

	height := float64(len(lines)) * noteLineHeight
	top := l.PlaceBlock(height)
	for i, line := range lines {
		l.DrawText(l.RightX(), top-float64(i+1)*noteLineHeight, line, bodyFont, AlignRight)
	}
	l.AdvanceCursor(height + waybillBlockGap)
}

// drawItemTable draws the ruled QTY / DESCRIPTION / UNIT PRICE / TOTAL table,
// one row per item with a rule underneath each.
func (a DeliveryNoteAssembler) drawItemTable(l *Layout, items []deliverynote.Item) {
	descriptionX := l.LeftX() + noteQtyColumn
	priceX := l.RightX() - noteTotalColumn - 8
	totalX := l.RightX() - 4
	descriptionWidth := l.UsableWidth() - noteQtyColumn - notePriceColumn - noteTotalColumn

	headerTop := l.PlaceBlock(noteMinRowHeight)
	l.DrawLine(l.LeftX(), headerTop, l.RightX(), headerTop)
	l.DrawText(l.LeftX()+4, headerTop-12, "QTY", labelFont, AlignLeft)
	l.DrawText(descriptionX, headerTop-12, "DESCRIPTION", labelFont, AlignLeft)
	l.DrawText(priceX, headerTop-12, "UNIT PRICE", labelFont, AlignRight)
	l.DrawText(totalX, headerTop-12, "TOTAL", labelFont, AlignRight)
	l.DrawLine(l.LeftX(), headerTop-noteMinRowHeight, l.RightX(), headerTop-noteMinRowHeight)
	l.AdvanceCursor(noteMinRowHeight + 2)

	for _, item := range items {
		lines := WrapText(item.Description(), a.measure(bodyFont), descriptionWidth)
		rowHeight := math.Max(
			noteMinRowHeight,
			float64(len(lines))*noteLineHeight+noteRowPad)

		top := l.PlaceBlock(rowHeight)
		l.DrawText(l.LeftX()+4, top-noteLineHeight, item.Quantity().String(), bodyFont, AlignLeft)

		y := top - noteLineHeight
		for _, line := range lines {
			l.DrawText(descriptionX, y, line, bodyFont, AlignLeft)
			y -= noteLineHeight
		}
		l.DrawText(priceX, top-noteLineHeight, item.Price().Format(), bodyFont, AlignRight)
		l.DrawText(totalX, top-noteLineHeight, item.Total().Format(), bodyFont, AlignRight)
		l.DrawLine(l.LeftX(), top-rowHeight, l.RightX(), top-rowHeight)
		l.AdvanceCursor(rowHeight)
	}
	l.AdvanceCursor(waybillBlockGap)
}

// drawTotals draws the right-aligned subtotal, VAT, and emphasized total.
func (a DeliveryNoteAssembler) drawTotals(l *Layout, n *deliverynote.DeliveryNote) {
	labelX := l.RightX() - noteTotalColumn - notePriceColumn
	valueX := l.RightX() - 4

	height := noteLineHeight*3 + 8
	top := l.PlaceBlock(height)

	l.DrawText(labelX, top-noteLineHeight, "Subtotal", bodyFont, AlignLeft)
	l.DrawText(valueX, top-noteLineHeight, n.Subtotal().Format(), bodyFont, AlignRight)
	l.DrawText(labelX, top-noteLineHeight*2, "VAT (15%)", bodyFont, AlignLeft)
	l.DrawText(valueX, top-noteLineHeight*2, n.VAT().Format(), bodyFont, AlignRight)
	l.DrawText(labelX, top-noteLineHeight*3, "Total", labelFont, AlignLeft)
	l.DrawText(valueX, top-noteLineHeight*3, n.Total().Format(), labelFont, AlignRight)

	l.AdvanceCursor(height + waybillBlockGap)
}

// drawSignatureBox draws the fixed received-by box at the end of the content flow.
func (a DeliveryNoteAssembler) drawSignatureBox(l *Layout) {
	top := l.PlaceBlock(noteSignatureBox)
	boxWidth := l.UsableWidth() / 2

	l.DrawRect(l.LeftX(), top, boxWidth, noteSignatureBox)
	l.DrawText(l.LeftX()+6, top-14, "Received by:", bodyFont, AlignLeft)
	l.DrawText(l.LeftX()+6, top-noteSignatureBox+12, "Date:", bodyFont, AlignLeft)

	l.AdvanceCursor(noteSignatureBox)
}
