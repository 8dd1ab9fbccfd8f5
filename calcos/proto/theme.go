package proto

// StyleClass identifies one themable element class. The values mirror the
// style classes of the desktop build's stylesheet.
type StyleClass uint8

const (
	StyleWindow StyleClass = iota
	StyleDisplay
	StyleGrid
	StyleDigitButton
	StyleOpButton
	StyleClearButton
	StyleEqualsButton

	// NumStyleClasses is the number of themable classes.
	NumStyleClasses = iota
)

func (c StyleClass) String() string {
	switch c {
	case StyleWindow:
		return "main-window"
	case StyleDisplay:
		return "display-entry"
	case StyleGrid:
		return "calc-grid"
	case StyleDigitButton:
		return "digit-button"
	case StyleOpButton:
		return "op-button"
	case StyleClearButton:
		return "clear-button"
	case StyleEqualsButton:
		return "equals-button"
	default:
		return "unknown"
	}
}

// ThemeEntry pairs a style class with its foreground and background colors.
type ThemeEntry struct {
	Class StyleClass
	FG    [3]uint8
	BG    [3]uint8
}

const themeEntryBytes = 7

// ThemeUpdatePayload encodes a MsgThemeUpdate payload.
//
// Layout: 7 bytes per entry:
//   - u8   : class
//   - u8*3 : foreground RGB
//   - u8*3 : background RGB
func ThemeUpdatePayload(entries []ThemeEntry) []byte {
	b := make([]byte, 0, len(entries)*themeEntryBytes)
	for _, e := range entries {
		b = append(b, byte(e.Class), e.FG[0], e.FG[1], e.FG[2], e.BG[0], e.BG[1], e.BG[2])
	}
	return b
}

// DecodeThemeUpdatePayload decodes a ThemeUpdatePayload. Entries with an
// out-of-range class are dropped.
func DecodeThemeUpdatePayload(b []byte) ([]ThemeEntry, bool) {
	if len(b) == 0 || len(b)%themeEntryBytes != 0 {
		return nil, false
	}
	entries := make([]ThemeEntry, 0, len(b)/themeEntryBytes)
	for i := 0; i+themeEntryBytes <= len(b); i += themeEntryBytes {
		c := StyleClass(b[i])
		if c >= NumStyleClasses {
			continue
		}
		entries = append(entries, ThemeEntry{
			Class: c,
			FG:    [3]uint8{b[i+1], b[i+2], b[i+3]},
			BG:    [3]uint8{b[i+4], b[i+5], b[i+6]},
		})
	}
	return entries, true
}
