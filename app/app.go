package app

import (
	"fredulator/calcos/kernel"
	"fredulator/calcos/services/input"
	"fredulator/calcos/services/logger"
	themesvc "fredulator/calcos/services/theme"
	"fredulator/calcos/tasks/pad"
	"fredulator/hal"
)

type system struct {
	k *kernel.Kernel
}

type Config struct {
	// StylePath is the stylesheet watched for theme updates.
	// Empty disables the theme service.
	StylePath string
}

// New initializes and starts the calculator with default config.
func New(h hal.HAL) func() error {
	_ = newSystem(h, Config{})
	return func() error { return nil }
}

// Run starts the calculator and blocks forever.
func Run(h hal.HAL) {
	_ = New(h)
	select {}
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	_ = newSystem(h, cfg)
	return func() error { return nil }
}

func RunWithConfig(h hal.HAL, cfg Config) {
	_ = NewWithConfig(h, cfg)
	select {}
}

func newSystem(h hal.HAL, cfg Config) *system {
	k := kernel.New()
	installPanicHandler(h)

	logEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	padEP := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)

	k.AddTask(logger.New(h.Logger(), logEP.Restrict(kernel.RightRecv)))
	k.AddTask(pad.New(h.Display(), padEP.Restrict(kernel.RightRecv), logEP.Restrict(kernel.RightSend)))
	k.AddTask(input.New(h.Input(), padEP.Restrict(kernel.RightSend)))
	if cfg.StylePath != "" {
		k.AddTask(themesvc.New(cfg.StylePath, padEP.Restrict(kernel.RightSend), logEP.Restrict(kernel.RightSend)))
	}

	if ht := h.Time(); ht != nil {
		if ch := ht.Ticks(); ch != nil {
			go func() {
				for seq := range ch {
					k.TickTo(seq)
				}
			}()
		}
	}

	return &system{k: k}
}
