package pad

import "fredulator/calcos/proto"

// Button is one cell of the pad grid.
type Button struct {
	Label   string
	Key     proto.PadKey
	Rune    rune // digit keys only
	Class   proto.StyleClass
	Col     int
	Row     int
	ColSpan int // 0 means 1
}

// buttons lists the 4x5 front panel top row first. The zero button
// spans two columns.
var buttons = []Button{
	{Label: "AC", Key: proto.PadClear, Class: proto.StyleClearButton, Col: 0, Row: 0},
	{Label: "+/-", Key: proto.PadSign, Class: proto.StyleOpButton, Col: 1, Row: 0},
	{Label: "%", Key: proto.PadPercent, Class: proto.StyleOpButton, Col: 2, Row: 0},
	{Label: "/", Key: proto.PadDivide, Class: proto.StyleOpButton, Col: 3, Row: 0},

	{Label: "7", Key: proto.PadDigit, Rune: '7', Class: proto.StyleDigitButton, Col: 0, Row: 1},
	{Label: "8", Key: proto.PadDigit, Rune: '8', Class: proto.StyleDigitButton, Col: 1, Row: 1},
	{Label: "9", Key: proto.PadDigit, Rune: '9', Class: proto.StyleDigitButton, Col: 2, Row: 1},
	{Label: "x", Key: proto.PadMultiply, Class: proto.StyleOpButton, Col: 3, Row: 1},

	{Label: "4", Key: proto.PadDigit, Rune: '4', Class: proto.StyleDigitButton, Col: 0, Row: 2},
	{Label: "5", Key: proto.PadDigit, Rune: '5', Class: proto.StyleDigitButton, Col: 1, Row: 2},
	{Label: "6", Key: proto.PadDigit, Rune: '6', Class: proto.StyleDigitButton, Col: 2, Row: 2},
	{Label: "-", Key: proto.PadSubtract, Class: proto.StyleOpButton, Col: 3, Row: 2},

	{Label: "1", Key: proto.PadDigit, Rune: '1', Class: proto.StyleDigitButton, Col: 0, Row: 3},
	{Label: "2", Key: proto.PadDigit, Rune: '2', Class: proto.StyleDigitButton, Col: 1, Row: 3},
	{Label: "3", Key: proto.PadDigit, Rune: '3', Class: proto.StyleDigitButton, Col: 2, Row: 3},
	{Label: "+", Key: proto.PadAdd, Class: proto.StyleOpButton, Col: 3, Row: 3},

	{Label: "0", Key: proto.PadDigit, Rune: '0', Class: proto.StyleDigitButton, Col: 0, Row: 4, ColSpan: 2},
	{Label: ".", Key: proto.PadDigit, Rune: '.', Class: proto.StyleDigitButton, Col: 2, Row: 4},
	{Label: "=", Key: proto.PadEquals, Class: proto.StyleEqualsButton, Col: 3, Row: 4},
}

const (
	gridCols = 4
	gridRows = 5

	// spacing is the row/column gutter in pixels.
	spacing = 5
)

// Rect is a pixel rectangle in framebuffer coordinates.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout holds the pixel geometry of the display strip and every button,
// cells parallel to Buttons().
type Layout struct {
	W, H    int
	Display Rect
	Cells   []Rect
}

// Buttons returns the pad's buttons in draw order.
func Buttons() []Button { return buttons }

// NewLayout splits a w x h framebuffer into the display entry on top and a
// homogeneous button grid below, separated by the stylesheet gutters.
func NewLayout(w, h int) Layout {
	l := Layout{W: w, H: h}

	displayH := h / 6
	l.Display = Rect{X: spacing, Y: spacing, W: w - 2*spacing, H: displayH}

	gridY := l.Display.Y + l.Display.H + spacing
	gridH := h - gridY - spacing

	cellW := (w - spacing*(gridCols+1)) / gridCols
	cellH := (gridH - spacing*(gridRows-1)) / gridRows

	l.Cells = make([]Rect, len(buttons))
	for i, b := range buttons {
		span := b.ColSpan
		if span <= 0 {
			span = 1
		}
		l.Cells[i] = Rect{
			X: spacing + b.Col*(cellW+spacing),
			Y: gridY + b.Row*(cellH+spacing),
			W: cellW*span + spacing*(span-1),
			H: cellH,
		}
	}
	return l
}

// Hit returns the index of the button at (x, y), or -1 when the point is in
// a gutter, the display, or outside the framebuffer.
func (l Layout) Hit(x, y int) int {
	for i, c := range l.Cells {
		if c.contains(x, y) {
			return i
		}
	}
	return -1
}

// buttonIndex finds the button a key event corresponds to, so keyboard
// input flashes the same cell a click would. Returns -1 for unmapped keys.
func buttonIndex(k proto.PadKey, r rune) int {
	for i, b := range buttons {
		if b.Key != k {
			continue
		}
		if k == proto.PadDigit && b.Rune != r {
			continue
		}
		return i
	}
	return -1
}
