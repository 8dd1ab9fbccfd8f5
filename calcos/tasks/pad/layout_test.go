package pad

import (
	"testing"

	"fredulator/calcos/proto"
)

func TestNewLayoutCellsStayInBounds(t *testing.T) {
	l := NewLayout(240, 320)
	if len(l.Cells) != len(Buttons()) {
		t.Fatalf("cells = %d, want %d", len(l.Cells), len(Buttons()))
	}
	for i, c := range l.Cells {
		if c.W <= 0 || c.H <= 0 {
			t.Fatalf("cell %d has empty area: %+v", i, c)
		}
		if c.X < 0 || c.Y < 0 || c.X+c.W > l.W || c.Y+c.H > l.H {
			t.Fatalf("cell %d out of bounds: %+v", i, c)
		}
		if c.Y < l.Display.Y+l.Display.H {
			t.Fatalf("cell %d overlaps the display: %+v", i, c)
		}
	}
}

func TestNewLayoutCellsDoNotOverlap(t *testing.T) {
	l := NewLayout(240, 320)
	for i := 0; i < len(l.Cells); i++ {
		for j := i + 1; j < len(l.Cells); j++ {
			a, b := l.Cells[i], l.Cells[j]
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				t.Fatalf("cells %d and %d overlap: %+v %+v", i, j, a, b)
			}
		}
	}
}

func TestHitFindsEveryButtonCenter(t *testing.T) {
	l := NewLayout(240, 320)
	for i, c := range l.Cells {
		got := l.Hit(c.X+c.W/2, c.Y+c.H/2)
		if got != i {
			t.Fatalf("Hit(center of %d) = %d", i, got)
		}
	}
}

func TestHitMissesGuttersAndDisplay(t *testing.T) {
	l := NewLayout(240, 320)

	// Top-left corner is a gutter.
	if got := l.Hit(0, 0); got != -1 {
		t.Fatalf("Hit(0,0) = %d, want -1", got)
	}
	// Inside the display entry.
	if got := l.Hit(l.Display.X+1, l.Display.Y+1); got != -1 {
		t.Fatalf("Hit(display) = %d, want -1", got)
	}
	// The gutter between the first two cells of row 0.
	c := l.Cells[0]
	if got := l.Hit(c.X+c.W+spacing/2, c.Y+c.H/2); got != -1 {
		t.Fatalf("Hit(gutter) = %d, want -1", got)
	}
	// Outside the framebuffer.
	if got := l.Hit(-1, 10); got != -1 {
		t.Fatalf("Hit(-1,10) = %d, want -1", got)
	}
	if got := l.Hit(l.W+5, l.H+5); got != -1 {
		t.Fatalf("Hit(outside) = %d, want -1", got)
	}
}

func TestZeroButtonSpansTwoColumns(t *testing.T) {
	l := NewLayout(240, 320)

	var zero, dot Rect
	for i, b := range Buttons() {
		switch {
		case b.Key == proto.PadDigit && b.Rune == '0':
			zero = l.Cells[i]
		case b.Key == proto.PadDigit && b.Rune == '.':
			dot = l.Cells[i]
		}
	}
	if zero.W <= dot.W {
		t.Fatalf("zero button (%+v) not wider than dot button (%+v)", zero, dot)
	}
	if zero.W != dot.W*2+spacing {
		t.Fatalf("zero width = %d, want two cells plus a gutter (%d)", zero.W, dot.W*2+spacing)
	}
}

func TestButtonIndex(t *testing.T) {
	if i := buttonIndex(proto.PadDigit, '7'); i < 0 || buttons[i].Label != "7" {
		t.Fatalf("buttonIndex(digit '7') = %d", i)
	}
	if i := buttonIndex(proto.PadEquals, 0); i < 0 || buttons[i].Label != "=" {
		t.Fatalf("buttonIndex(equals) = %d", i)
	}
	if i := buttonIndex(proto.PadNone, 0); i != -1 {
		t.Fatalf("buttonIndex(none) = %d, want -1", i)
	}
}
