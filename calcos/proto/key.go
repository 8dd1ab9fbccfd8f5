package proto

import "unicode/utf8"

// PadKey identifies one calculator button.
type PadKey uint8

const (
	PadNone PadKey = iota
	PadDigit
	PadAdd
	PadSubtract
	PadMultiply
	PadDivide
	PadClear
	PadSign
	PadPercent
	PadEquals
)

func (k PadKey) String() string {
	switch k {
	case PadNone:
		return "none"
	case PadDigit:
		return "digit"
	case PadAdd:
		return "add"
	case PadSubtract:
		return "subtract"
	case PadMultiply:
		return "multiply"
	case PadDivide:
		return "divide"
	case PadClear:
		return "clear"
	case PadSign:
		return "sign"
	case PadPercent:
		return "percent"
	case PadEquals:
		return "equals"
	default:
		return "unknown"
	}
}

// PadKeyPayload encodes a MsgPadKey payload.
//
// Payload format:
//
//	b[0]  : PadKey
//	b[1:] : optional UTF-8 character (digit keys carry '0'..'9' or '.')
func PadKeyPayload(k PadKey, r rune) []byte {
	b := make([]byte, 1, 1+utf8.UTFMax)
	b[0] = byte(k)
	if r != 0 {
		b = utf8.AppendRune(b, r)
	}
	return b
}

// DecodePadKeyPayload decodes a PadKeyPayload.
func DecodePadKeyPayload(b []byte) (k PadKey, r rune, ok bool) {
	if len(b) < 1 {
		return PadNone, 0, false
	}
	k = PadKey(b[0])
	if len(b) > 1 {
		r, _ = utf8.DecodeRune(b[1:])
		if r == utf8.RuneError {
			return PadNone, 0, false
		}
	}
	return k, r, true
}
