package pad

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"fredulator/calcos/proto"
	"fredulator/calcos/theme"
	"fredulator/hal"
)

func (t *Task) render() {
	if t.fb == nil || t.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := t.fb.Buffer()
	if buf == nil {
		return
	}

	clearRGB565(buf, rgb565FromTheme(t.palette[proto.StyleWindow].BG))

	t.renderDisplay(buf)

	for i, b := range buttons {
		st := t.palette[b.Class]
		if i == t.pressed {
			// Flash by swapping the color pair.
			st.FG, st.BG = st.BG, st.FG
		}
		cell := t.layout.Cells[i]
		fillRectRGB565(buf, t.fb, cell, rgb565FromTheme(st.BG))
		t.drawCentered(cell, t.labelFont, b.Label, st.FG)
	}

	_ = t.fb.Present()
}

func (t *Task) renderDisplay(buf []byte) {
	st := t.palette[proto.StyleDisplay]
	r := t.layout.Display
	fillRectRGB565(buf, t.fb, r, rgb565FromTheme(st.BG))

	const pad = 6
	text := t.text
	if text == "" {
		text = "0"
	}

	// Right-align; when the text is wider than the entry, keep the tail
	// (most recently typed characters).
	maxW := r.W - 2*pad
	for len(text) > 1 {
		_, w := tinyfont.LineWidth(t.entryFont, text)
		if int(w) <= maxW {
			break
		}
		text = text[1:]
	}

	_, w := tinyfont.LineWidth(t.entryFont, text)
	x := r.X + r.W - pad - int(w)
	if x < r.X+pad {
		x = r.X + pad
	}
	y := r.Y + (r.H+ascent(t.entryFont))/2
	t.drawText(x, y, t.entryFont, text, st.FG)
}

func (t *Task) drawCentered(r Rect, font tinyfont.Fonter, s string, c theme.RGB) {
	_, w := tinyfont.LineWidth(font, s)
	x := r.X + (r.W-int(w))/2
	if x < r.X {
		x = r.X
	}
	y := r.Y + (r.H+ascent(font))/2
	t.drawText(x, y, font, s, c)
}

func (t *Task) drawText(x, y int, font tinyfont.Fonter, s string, c theme.RGB) {
	d := &fbDisplayer{fb: t.fb}
	tinyfont.WriteLine(d, font, int16(x), int16(y), s, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
}

// ascent approximates the baseline-to-cap-top height used for vertical
// centering.
func ascent(font tinyfont.Fonter) int {
	return int(font.GetYAdvance()) * 3 / 4
}

func clearRGB565(buf []byte, pixel uint16) {
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

func fillRectRGB565(buf []byte, fb hal.Framebuffer, r Rect, pixel uint16) {
	w := fb.Width()
	h := fb.Height()
	x0 := clampInt(r.X, 0, w)
	y0 := clampInt(r.Y, 0, h)
	x1 := clampInt(r.X+r.W, 0, w)
	y1 := clampInt(r.Y+r.H, 0, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

func rgb565FromTheme(c theme.RGB) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplayer) Display() error { return nil }
