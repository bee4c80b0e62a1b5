package docgen

import (
	"math"

	"courierdocs/internal/core/domain/model/job"
	"courierdocs/internal/core/domain/model/shipment"
)

// Waybill layout constants, in points.
const (
	waybillLineHeight    = 12.0
	waybillHeaderLine    = 16.0
	waybillHeaderPad     = 14.0
	waybillPartiesHeight = 120.0
	waybillJobBoxBase    = 46.0
	waybillMinRowHeight  = 20.0
	waybillRowPad        = 6.0
	waybillQtyColumn     = 70.0
	waybillPackedColumn  = 50.0
	waybillBlockGap      = 14.0
	logoWidth            = 110.0
	logoHeight           = 42.0
)

var (
	titleFont   = Font{Family: "Helvetica", Style: "B", Size: 16}
	headingFont = Font{Family: "Helvetica", Style: "B", Size: 11}
	labelFont   = Font{Family: "Helvetica", Style: "B", Size: 10}
	bodyFont    = Font{Family: "Helvetica", Size: 10}
	smallFont   = Font{Family: "Helvetica", Size: 8}
)

// companyAddress is the fixed three-line company block drawn top-right on every
// generated document.
var companyAddress = [3]string{
	"Courier Services (Pty) Ltd",
	"14 Industria Road, Johannesburg",
	"Tel 011 555 0100",
}

// Settings keys consumed by the assemblers.
const (
	SettingDisclaimer = "disclaimer"
	SettingLogo       = "logo"
)

// WaybillAssembler drives the layout engine with shipment data to produce the
// printable waybill: masthead, header box, sender/recipient columns, optional
// job details, and the packed-elements list with per-row page breaks.
type WaybillAssembler struct {
	measurer TextMeasurer
}

// NewWaybillAssembler creates a waybill assembler using the given text measurer
// for wrapping decisions.
func NewWaybillAssembler(measurer TextMeasurer) WaybillAssembler {
	return WaybillAssembler{measurer: measurer}
}

// Assemble lays out the waybill for a shipment and returns the finished pages.
// The optional jobRecord enriches the document with a job-details box; settings
// supply the disclaimer and logo. Assemble fails fast on an invalid shipment;
// no partial document is produced.
func (a WaybillAssembler) Assemble(
	s *shipment.Shipment,
	jobRecord *job.Job,
	settings map[string]string,
) ([]Page, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if jobRecord != nil {
		if err := jobRecord.Validate(); err != nil {
			return nil, err
		}
	}

	l := NewLayout()
	a.drawMasthead(l, settings, s.CreatedAt().Format("2 January 2006"))
	a.drawTitle(l, "WAYBILL")
	a.drawHeaderBox(l, s)
	a.drawParties(l, s)
	if jobRecord != nil {
		a.drawJobDetails(l, jobRecord)
	}
	a.drawElements(l, s.Elements())

	return l.Finish(FooterConfig{
		Disclaimer: settings[SettingDisclaimer],
		Signature: &SignatureConfig{
			LeftLabel:  "Sender signature",
			RightLabel: "Recipient signature",
		},
	}), nil
}

func (a WaybillAssembler) measure(font Font) MeasureFunc {
	return func(text string) float64 {
		return a.measurer.MeasureText(text, font)
	}
}

// drawMasthead places the logo top-left and the fixed company address top-right,
// then starts the cursor below whichever is taller.
func (a WaybillAssembler) drawMasthead(l *Layout, settings map[string]string, date string) {
	top := l.CursorY()
	addressHeight := float64(len(companyAddress)+1) * waybillLineHeight

	if logo := settings[SettingLogo]; logo != "" {
		l.DrawImage(logo, l.LeftX(), top, logoWidth, logoHeight)
	}
	for i, line := range companyAddress {
		l.DrawText(l.RightX(), top-float64(i+1)*waybillLineHeight, line, bodyFont, AlignRight)
	}
	l.DrawText(l.RightX(), top-addressHeight, date, bodyFont, AlignRight)

	blockHeight := addressHeight + waybillLineHeight
	if settings[SettingLogo] != "" {
		blockHeight = math.Max(blockHeight, logoHeight)
	}
	l.AdvanceCursor(blockHeight + waybillBlockGap)
}

func (a WaybillAssembler) drawTitle(l *Layout, title string) {
	top := l.PlaceBlock(titleFont.Size + 8)
	l.DrawText(l.CenterX(), top-titleFont.Size, title, titleFont, AlignCenter)
	l.AdvanceCursor(titleFont.Size + 8 + waybillBlockGap)
}

// drawHeaderBox draws the bordered identity box. The tracking number line is
// always present; job number, CE number, and courier charge each shift the box
// height by one fixed increment when present.
func (a WaybillAssembler) drawHeaderBox(l *Layout, s *shipment.Shipment) {
	lines := []string{"Tracking number: " + s.TrackingNumber()}
	if n := s.JobNumber(); n != nil {
		lines = append(lines, "Job number: "+*n)
	}
	if n := s.CENumber(); n != nil {
		lines = append(lines, "CE number: "+*n)
	}
	if c := s.CourierCharge(); c != nil {
		lines = append(lines, "Courier charge: "+c.Format())
	}

	height := waybillHeaderPad + float64(len(lines))*waybillHeaderLine
	top := l.PlaceBlock(height)
	l.DrawRect(l.LeftX(), top, l.UsableWidth(), height)

	for i, line := range lines {
		font := bodyFont
		if i == 0 {
			font = labelFont
		}
		l.DrawText(l.LeftX()+8, top-waybillHeaderPad-float64(i)*waybillHeaderLine, line, font, AlignLeft)
	}
	l.AdvanceCursor(height + waybillBlockGap)
}

// drawParties draws the fixed-height two-column sender/recipient box divided by
// a vertical rule. Addresses wrap to the column width.
func (a WaybillAssembler) drawParties(l *Layout, s *shipment.Shipment) {
	top := l.PlaceBlock(waybillPartiesHeight)
	l.DrawRect(l.LeftX(), top, l.UsableWidth(), waybillPartiesHeight)
	l.DrawLine(l.CenterX(), top, l.CenterX(), top-waybillPartiesHeight)

	a.drawParty(l, l.LeftX()+8, top, "SENDER", s.Sender())
	a.drawParty(l, l.CenterX()+8, top, "RECIPIENT", s.Recipient())

	l.AdvanceCursor(waybillPartiesHeight + waybillBlockGap)
}

func (a WaybillAssembler) drawParty(l *Layout, x, top float64, heading string, p shipment.Party) {
	columnWidth := l.UsableWidth()/2 - 16

	l.DrawText(x, top-16, heading, headingFont, AlignLeft)
	l.DrawText(x, top-16-waybillLineHeight*1.5, p.Name(), bodyFont, AlignLeft)
	l.DrawText(x, top-16-waybillLineHeight*2.5, p.Contact(), bodyFont, AlignLeft)

	y := top - 16 - waybillLineHeight*3.5
	for _, line := range WrapText(p.Address(), a.measure(bodyFont), columnWidth) {
		l.DrawText(x, y, line, bodyFont, AlignLeft)
		y -= waybillLineHeight
	}
}

// drawJobDetails draws the bordered job box whose height grows with the wrapped
// description line count.
func (a WaybillAssembler) drawJobDetails(l *Layout, j *job.Job) {
	width := l.UsableWidth() - 16
	descriptionLines := WrapText(j.Description(), a.measure(bodyFont), width)

	height := waybillJobBoxBase + float64(len(descriptionLines))*waybillLineHeight
	top := l.PlaceBlock(height)
	l.DrawRect(l.LeftX(), top, l.UsableWidth(), height)

	l.DrawText(l.LeftX()+8, top-16, "JOB DETAILS", headingFont, AlignLeft)
	l.DrawText(l.LeftX()+8, top-16-waybillLineHeight*1.5,
		"Client: "+j.CustomerName(), bodyFont, AlignLeft)
	l.DrawText(l.LeftX()+8, top-16-waybillLineHeight*2.5,
		"Product: "+j.ProductName(), bodyFont, AlignLeft)

	y := top - 16 - waybillLineHeight*3.5
	for _, line := range descriptionLines {
		l.DrawText(l.LeftX()+8, y, line, bodyFont, AlignLeft)
		y -= waybillLineHeight
	}
	l.AdvanceCursor(height + waybillBlockGap)
}

// drawElements draws the packed-elements section. Each row is offered to
// PlaceBlock individually, so the list may break across pages between rows but
// a single row is never split.
func (a WaybillAssembler) drawElements(l *Layout, elements []shipment.Element) {
	headingTop := l.PlaceBlock(20)
	l.DrawText(l.LeftX(), headingTop-14, "PACKED ELEMENTS", headingFont, AlignLeft)
	l.AdvanceCursor(22)

	labelsTop := l.PlaceBlock(16)
	qtyX := l.RightX() - waybillPackedColumn - 8
	l.DrawText(l.LeftX()+4, labelsTop-12, "DESCRIPTION", smallFont, AlignLeft)
	l.DrawText(qtyX, labelsTop-12, "QTY", smallFont, AlignRight)
	l.DrawText(l.RightX()-4, labelsTop-12, "PACKED", smallFont, AlignRight)
	l.DrawLine(l.LeftX(), labelsTop-16, l.RightX(), labelsTop-16)
	l.AdvanceCursor(18)

	descriptionWidth := l.UsableWidth() - waybillQtyColumn - waybillPackedColumn - 16
	for _, element := range elements {
		lines := WrapText(element.Description(), a.measure(bodyFont), descriptionWidth)
		rowHeight := math.Max(
			waybillMinRowHeight,
			float64(len(lines))*waybillLineHeight+waybillRowPad)

		top := l.PlaceBlock(rowHeight)
		y := top - waybillLineHeight
		for _, line := range lines {
			l.DrawText(l.LeftX()+4, y, line, bodyFont, AlignLeft)
			y -= waybillLineHeight
		}
		l.DrawText(qtyX, top-waybillLineHeight, element.Quantity(), bodyFont, AlignRight)
		l.DrawRect(l.RightX()-18, top-6, 9, 9)
		l.DrawLine(l.LeftX(), top-rowHeight, l.RightX(), top-rowHeight)
		l.AdvanceCursor(rowHeight)
	}
}
