package proto

import "encoding/binary"

// PadPointerPayload encodes a MsgPadPointer payload.
//
// Layout (little-endian):
//   - i16: x (framebuffer coordinates)
//   - i16: y
//   - u8 : 1 pressed, 0 released
func PadPointerPayload(x, y int, pressed bool) []byte {
	b := make([]byte, 5)
	binary.LittleEndian.PutUint16(b[0:2], uint16(int16(x)))
	binary.LittleEndian.PutUint16(b[2:4], uint16(int16(y)))
	if pressed {
		b[4] = 1
	}
	return b
}

// DecodePadPointerPayload decodes a PadPointerPayload.
func DecodePadPointerPayload(b []byte) (x, y int, pressed bool, ok bool) {
	if len(b) != 5 {
		return 0, 0, false, false
	}
	x = int(int16(binary.LittleEndian.Uint16(b[0:2])))
	y = int(int16(binary.LittleEndian.Uint16(b[2:4])))
	return x, y, b[4] != 0, true
}
