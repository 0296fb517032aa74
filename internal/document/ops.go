// Package document lays out an invoice into pages of absolutely
// positioned draw operations. It is pure: no I/O, no PDF library,
// deterministic for a given input and Measurer.
package document

// Align positions text relative to its X coordinate.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Font styles map onto the PDF core fonts.
const (
	StyleNormal = ""
	StyleBold   = "B"
	StyleItalic = "I"
)

// Font identifies a core font face at a given size in points.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B int
}

// Op is a single draw instruction. Coordinates are millimeters from the
// top-left page corner; text Y is the baseline.
type Op interface {
	isOp()
}

// TextOp draws a single line of text.
type TextOp struct {
	X, Y  float64
	Text  string
	Font  Font
	Color RGB
	Align Align
}

// LineOp draws a straight line.
type LineOp struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Color  RGB
}

// RectOp draws a filled rectangle.
type RectOp struct {
	X, Y float64
	W, H float64
	Fill RGB
}

func (TextOp) isOp() {}
func (LineOp) isOp() {}
func (RectOp) isOp() {}

// Page is an ordered op list; later ops draw on top of earlier ones.
type Page struct {
	Ops []Op
}

// Document is the fully laid out, renderer-agnostic invoice.
type Document struct {
	Pages []Page
}

// Measurer reports the rendered width of a text run in millimeters.
// The PDF backend measures with real font metrics; tests substitute a
// fixed-width implementation.
type Measurer interface {
	TextWidth(text string, font Font) float64
}
