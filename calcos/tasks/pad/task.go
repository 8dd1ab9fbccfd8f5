package pad

import (
	"fmt"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	logclient "fredulator/calcos/client/logger"
	"fredulator/calcos/engine"
	"fredulator/calcos/kernel"
	"fredulator/calcos/proto"
	"fredulator/calcos/theme"
	"fredulator/hal"
)

// pressFlashTicks is how long a pressed button stays highlighted, in kernel
// ticks (about 90ms on the 1ms host timebase).
const pressFlashTicks = 90

// Task drives the calculator front panel: it owns the arithmetic state
// machine, hit-tests pointer events against the button grid, and renders
// the display entry and buttons into the framebuffer.
type Task struct {
	disp hal.Display
	ep   kernel.Capability
	log  kernel.Capability

	fb hal.Framebuffer

	state *engine.State

	layout  Layout
	palette theme.Palette

	text string

	pressed     int
	pressedTick uint64

	entryFont tinyfont.Fonter
	labelFont tinyfont.Fonter
}

func New(disp hal.Display, ep, log kernel.Capability) *Task {
	return &Task{
		disp:    disp,
		ep:      ep,
		log:     log,
		state:   engine.New(),
		palette: theme.Default(),
		pressed: -1,
	}
}

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok || t.disp == nil {
		return
	}
	t.fb = t.disp.Framebuffer()
	if t.fb == nil {
		return
	}

	t.layout = NewLayout(t.fb.Width(), t.fb.Height())
	t.entryFont = &freesans.Bold12pt7b
	t.labelFont = &freesans.Regular9pt7b
	t.text = t.state.Display()

	done := make(chan struct{})
	defer close(done)

	tickCh := make(chan uint64, 16)
	go func() {
		last := ctx.NowTick()
		for {
			select {
			case <-done:
				return
			default:
			}
			last = ctx.WaitTick(last)
			select {
			case tickCh <- last:
			default:
			}
		}
	}()

	t.render()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			switch proto.Kind(msg.Kind) {
			case proto.MsgPadKey:
				k, r, ok := proto.DecodePadKeyPayload(msg.Payload())
				if !ok {
					continue
				}
				t.press(ctx, k, r)

			case proto.MsgPadPointer:
				x, y, pressed, ok := proto.DecodePadPointerPayload(msg.Payload())
				if !ok || !pressed {
					continue
				}
				i := t.layout.Hit(x, y)
				if i < 0 {
					continue
				}
				t.press(ctx, buttons[i].Key, buttons[i].Rune)

			case proto.MsgThemeUpdate:
				entries, ok := proto.DecodeThemeUpdatePayload(msg.Payload())
				if !ok {
					continue
				}
				t.palette = theme.FromEntries(t.palette, entries)
				t.render()

			case proto.MsgError:
				code, ref, detail, ok := proto.DecodeErrorPayload(msg.Payload())
				if ok {
					logclient.Log(ctx, t.log,
						fmt.Sprintf("pad: %s (%s): %s", code, proto.Kind(ref), detail))
				}

			case proto.MsgShutdown:
				return
			}

		case now := <-tickCh:
			if t.pressed >= 0 && now-t.pressedTick >= pressFlashTicks {
				t.pressed = -1
				t.render()
			}
		}
	}
}

func (t *Task) press(ctx *kernel.Context, k proto.PadKey, r rune) {
	if k == proto.PadNone {
		return
	}
	text, logLine := t.apply(k, r)
	t.text = text
	if logLine != "" {
		// Result lines are worth a short wait when the mailbox is full.
		logclient.LogRetry(ctx, t.log, logLine, 4)
	}
	t.pressed = buttonIndex(k, r)
	t.pressedTick = ctx.NowTick()
	t.render()
}
