package input

import (
	"fredulator/calcos/kernel"
	"fredulator/calcos/proto"
	"fredulator/hal"
)

// Service forwards HAL input events to the pad endpoint as IPC messages:
// keyboard events arrive pre-mapped to pad keys, pointer events arrive raw
// so the pad can hit-test them against its own layout.
type Service struct {
	in  hal.Input
	pad kernel.Capability
}

func New(in hal.Input, pad kernel.Capability) *Service {
	return &Service{in: in, pad: pad}
}

func (s *Service) Run(ctx *kernel.Context) {
	if s.in == nil {
		return
	}

	var keys <-chan hal.KeyEvent
	var ptr <-chan hal.PointerEvent
	if kbd := s.in.Keyboard(); kbd != nil {
		keys = kbd.Events()
	}
	if p := s.in.Pointer(); p != nil {
		ptr = p.Events()
	}
	if keys == nil && ptr == nil {
		return
	}

	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				keys = nil
				if ptr == nil {
					return
				}
				continue
			}
			k, r, mapped := MapKey(ev)
			if !mapped || kernel.InPanicMode() {
				continue
			}
			ctx.SendToCap(s.pad, uint16(proto.MsgPadKey), proto.PadKeyPayload(k, r), kernel.Capability{})

		case ev, ok := <-ptr:
			if !ok {
				ptr = nil
				if keys == nil {
					return
				}
				continue
			}
			if kernel.InPanicMode() {
				continue
			}
			ctx.SendToCap(s.pad, uint16(proto.MsgPadPointer), proto.PadPointerPayload(ev.X, ev.Y, ev.Press), kernel.Capability{})
		}
	}
}

// MapKey translates a keyboard event to a calculator key. Only presses
// map; keys the pad has no button for are dropped.
func MapKey(ev hal.KeyEvent) (proto.PadKey, rune, bool) {
	if !ev.Press {
		return proto.PadNone, 0, false
	}

	switch ev.Code {
	case hal.KeyEnter:
		return proto.PadEquals, 0, true
	case hal.KeyEscape, hal.KeyDelete:
		return proto.PadClear, 0, true
	}

	switch ev.Rune {
	case '+':
		return proto.PadAdd, 0, true
	case '-':
		return proto.PadSubtract, 0, true
	case '*', 'x':
		return proto.PadMultiply, 0, true
	case '/':
		return proto.PadDivide, 0, true
	case '%':
		return proto.PadPercent, 0, true
	case '=':
		return proto.PadEquals, 0, true
	case 'c', 'C':
		return proto.PadClear, 0, true
	case 'n', 'N':
		return proto.PadSign, 0, true
	}

	if (ev.Rune >= '0' && ev.Rune <= '9') || ev.Rune == '.' {
		return proto.PadDigit, ev.Rune, true
	}
	return proto.PadNone, 0, false
}
