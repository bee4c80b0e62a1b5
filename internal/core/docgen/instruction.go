package docgen

// Font describes the face used to draw or measure a string.
type Font struct {
	// Family is the font family name, e.g. "Helvetica".
	Family string
	// Style is "" for regular, "B" for bold, "I" for italic.
	Style string
	// Size is the point size.
	Size float64
}

// Align controls horizontal placement of drawn text relative to its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextMeasurer is the external capability that returns the rendered width of a
// string in a given font. The layout engine and assemblers consume it; the
// rendering adapter implements it.
type TextMeasurer interface {
	MeasureText(text string, font Font) float64
}

// Instruction is one abstract drawing operation on a page. Coordinates follow the
// page coordinate system used throughout the engine: the origin is the bottom-left
// corner and Y grows upward.
type Instruction interface {
	isInstruction()
}

// TextInstruction draws a single line of text.
type TextInstruction struct {
	X, Y  float64
	Text  string
	Font  Font
	Align Align
}

// RectInstruction draws an unfilled rectangle outline. X, Y is the top-left corner.
type RectInstruction struct {
	X, Y, W, H float64
}

// LineInstruction draws a straight line between two points.
type LineInstruction struct {
	X1, Y1, X2, Y2 float64
}

// ImageInstruction draws an image from a named source scaled into the given box.
// X, Y is the top-left corner.
type ImageInstruction struct {
	Source     string
	X, Y, W, H float64
}

func (TextInstruction) isInstruction()  {}
func (RectInstruction) isInstruction()  {}
func (LineInstruction) isInstruction()  {}
func (ImageInstruction) isInstruction() {}

// Page is an ordered sequence of drawing instructions. Index is 1-based and is
// filled in during finalization, once the total page count is known.
type Page struct {
	Index        int
	Instructions []Instruction
}

func (p *Page) append(instruction Instruction) {
	p.Instructions = append(p.Instructions, instruction)
}
