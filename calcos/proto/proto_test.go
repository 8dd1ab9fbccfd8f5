package proto

import "testing"

func TestPadKeyPayload(t *testing.T) {
	b := PadKeyPayload(PadDigit, '7')
	k, r, ok := DecodePadKeyPayload(b)
	if !ok || k != PadDigit || r != '7' {
		t.Fatalf("decode = (%v, %q, %v), want (digit, '7', true)", k, r, ok)
	}

	b = PadKeyPayload(PadEquals, 0)
	k, r, ok = DecodePadKeyPayload(b)
	if !ok || k != PadEquals || r != 0 {
		t.Fatalf("decode = (%v, %q, %v), want (equals, 0, true)", k, r, ok)
	}

	if _, _, ok := DecodePadKeyPayload(nil); ok {
		t.Fatal("expected empty payload to fail")
	}
	if _, _, ok := DecodePadKeyPayload([]byte{byte(PadDigit), 0xFF}); ok {
		t.Fatal("expected invalid UTF-8 to fail")
	}
}

func TestPadPointerPayload(t *testing.T) {
	b := PadPointerPayload(120, 301, true)
	x, y, pressed, ok := DecodePadPointerPayload(b)
	if !ok || x != 120 || y != 301 || !pressed {
		t.Fatalf("decode = (%d, %d, %v, %v), want (120, 301, true, true)", x, y, pressed, ok)
	}

	// Negative coordinates survive the round trip (cursor left of window).
	b = PadPointerPayload(-3, -1, false)
	x, y, pressed, ok = DecodePadPointerPayload(b)
	if !ok || x != -3 || y != -1 || pressed {
		t.Fatalf("decode = (%d, %d, %v, %v), want (-3, -1, false, true)", x, y, pressed, ok)
	}

	if _, _, _, ok := DecodePadPointerPayload([]byte{1, 2, 3}); ok {
		t.Fatal("expected short payload to fail")
	}
}

func TestThemeUpdatePayload(t *testing.T) {
	entries := []ThemeEntry{
		{Class: StyleDisplay, FG: [3]uint8{0xFF, 0xFF, 0xFF}, BG: [3]uint8{0x10, 0x10, 0x10}},
		{Class: StyleOpButton, FG: [3]uint8{0xFF, 0xFF, 0xFF}, BG: [3]uint8{0xFF, 0x9F, 0x0A}},
	}
	got, ok := DecodeThemeUpdatePayload(ThemeUpdatePayload(entries))
	if !ok || len(got) != 2 {
		t.Fatalf("decode failed: ok=%v entries=%v", ok, got)
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}

	// Out-of-range classes drop without failing the whole payload.
	raw := ThemeUpdatePayload([]ThemeEntry{{Class: StyleClass(200)}, {Class: StyleGrid}})
	got, ok = DecodeThemeUpdatePayload(raw)
	if !ok || len(got) != 1 || got[0].Class != StyleGrid {
		t.Fatalf("decode = (%v, %v), want single calc-grid entry", got, ok)
	}

	if _, ok := DecodeThemeUpdatePayload([]byte{1, 2, 3}); ok {
		t.Fatal("expected misaligned payload to fail")
	}
	if _, ok := DecodeThemeUpdatePayload(nil); ok {
		t.Fatal("expected empty payload to fail")
	}
}

func TestErrorPayload(t *testing.T) {
	b := ErrorPayload(ErrBadMessage, MsgThemeUpdate, []byte("line 3"))
	code, ref, detail, ok := DecodeErrorPayload(b)
	if !ok || code != ErrBadMessage || ref != MsgThemeUpdate || string(detail) != "line 3" {
		t.Fatalf("decode = (%v, %v, %q, %v)", code, ref, detail, ok)
	}

	if _, _, _, ok := DecodeErrorPayload([]byte{1}); ok {
		t.Fatal("expected short payload to fail")
	}
}
