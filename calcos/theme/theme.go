package theme

import (
	"os"

	"fredulator/calcos/proto"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Style is the color pair for one element class.
type Style struct {
	FG RGB
	BG RGB
}

// Palette holds the resolved style for every element class, indexed by
// proto.StyleClass.
type Palette [proto.NumStyleClasses]Style

// Default returns the built-in palette used when no stylesheet is present.
func Default() Palette {
	var p Palette
	p[proto.StyleWindow] = Style{FG: RGB{0xEE, 0xEE, 0xEE}, BG: RGB{0x20, 0x20, 0x20}}
	p[proto.StyleDisplay] = Style{FG: RGB{0xFF, 0xFF, 0xFF}, BG: RGB{0x10, 0x10, 0x10}}
	p[proto.StyleGrid] = Style{FG: RGB{0xEE, 0xEE, 0xEE}, BG: RGB{0x20, 0x20, 0x20}}
	p[proto.StyleDigitButton] = Style{FG: RGB{0xFF, 0xFF, 0xFF}, BG: RGB{0x50, 0x50, 0x50}}
	p[proto.StyleOpButton] = Style{FG: RGB{0xFF, 0xFF, 0xFF}, BG: RGB{0xFF, 0x9F, 0x0A}}
	p[proto.StyleClearButton] = Style{FG: RGB{0x00, 0x00, 0x00}, BG: RGB{0xA5, 0xA5, 0xA5}}
	p[proto.StyleEqualsButton] = Style{FG: RGB{0xFF, 0xFF, 0xFF}, BG: RGB{0xFF, 0x9F, 0x0A}}
	return p
}

// Entries flattens the palette for the wire codec.
func (p Palette) Entries() []proto.ThemeEntry {
	entries := make([]proto.ThemeEntry, proto.NumStyleClasses)
	for i := range p {
		entries[i] = proto.ThemeEntry{
			Class: proto.StyleClass(i),
			FG:    [3]uint8{p[i].FG.R, p[i].FG.G, p[i].FG.B},
			BG:    [3]uint8{p[i].BG.R, p[i].BG.G, p[i].BG.B},
		}
	}
	return entries
}

// FromEntries applies decoded wire entries onto a base palette.
func FromEntries(base Palette, entries []proto.ThemeEntry) Palette {
	for _, e := range entries {
		if int(e.Class) >= len(base) {
			continue
		}
		base[e.Class] = Style{
			FG: RGB{e.FG[0], e.FG[1], e.FG[2]},
			BG: RGB{e.BG[0], e.BG[1], e.BG[2]},
		}
	}
	return base
}

// Load reads and parses the stylesheet at path. A missing file yields the
// default palette without an error; a present but malformed file reports
// the parse error alongside the default palette.
func Load(path string) (Palette, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	return Parse(src, Default())
}

// DefaultStylesheet is the stylesheet equivalent of Default, written by the
// mkstyle generator as a starting point for customization.
const DefaultStylesheet = `/* Fredulator stylesheet.
 * Only color and background-color are honored; colors are #rgb or #rrggbb.
 */

.main-window {
	color: #eee;
	background-color: #202020;
}

.display-entry {
	color: #fff;
	background-color: #101010;
}

.calc-grid {
	color: #eee;
	background-color: #202020;
}

.digit-button {
	color: #fff;
	background-color: #505050;
}

.op-button {
	color: #fff;
	background-color: #ff9f0a;
}

.clear-button {
	color: #000;
	background-color: #a5a5a5;
}

.equals-button {
	color: #fff;
	background-color: #ff9f0a;
}
`
