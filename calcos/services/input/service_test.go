package input

import (
	"testing"

	"fredulator/calcos/proto"
	"fredulator/hal"
)

func TestMapKey(t *testing.T) {
	cases := []struct {
		name   string
		ev     hal.KeyEvent
		key    proto.PadKey
		r      rune
		mapped bool
	}{
		{"digit", hal.KeyEvent{Press: true, Rune: '7'}, proto.PadDigit, '7', true},
		{"zero", hal.KeyEvent{Press: true, Rune: '0'}, proto.PadDigit, '0', true},
		{"decimal", hal.KeyEvent{Press: true, Rune: '.'}, proto.PadDigit, '.', true},
		{"plus", hal.KeyEvent{Press: true, Rune: '+'}, proto.PadAdd, 0, true},
		{"minus", hal.KeyEvent{Press: true, Rune: '-'}, proto.PadSubtract, 0, true},
		{"star", hal.KeyEvent{Press: true, Rune: '*'}, proto.PadMultiply, 0, true},
		{"x", hal.KeyEvent{Press: true, Rune: 'x'}, proto.PadMultiply, 0, true},
		{"slash", hal.KeyEvent{Press: true, Rune: '/'}, proto.PadDivide, 0, true},
		{"percent", hal.KeyEvent{Press: true, Rune: '%'}, proto.PadPercent, 0, true},
		{"equals_rune", hal.KeyEvent{Press: true, Rune: '='}, proto.PadEquals, 0, true},
		{"enter", hal.KeyEvent{Press: true, Code: hal.KeyEnter}, proto.PadEquals, 0, true},
		{"escape", hal.KeyEvent{Press: true, Code: hal.KeyEscape}, proto.PadClear, 0, true},
		{"delete", hal.KeyEvent{Press: true, Code: hal.KeyDelete}, proto.PadClear, 0, true},
		{"clear_rune", hal.KeyEvent{Press: true, Rune: 'c'}, proto.PadClear, 0, true},
		{"sign", hal.KeyEvent{Press: true, Rune: 'n'}, proto.PadSign, 0, true},
		{"release_drops", hal.KeyEvent{Press: false, Rune: '7'}, proto.PadNone, 0, false},
		{"letter_drops", hal.KeyEvent{Press: true, Rune: 'q'}, proto.PadNone, 0, false},
		{"backspace_drops", hal.KeyEvent{Press: true, Code: hal.KeyBackspace}, proto.PadNone, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, r, mapped := MapKey(tc.ev)
			if k != tc.key || r != tc.r || mapped != tc.mapped {
				t.Fatalf("MapKey(%+v) = (%v, %q, %v), want (%v, %q, %v)",
					tc.ev, k, r, mapped, tc.key, tc.r, tc.mapped)
			}
		})
	}
}
