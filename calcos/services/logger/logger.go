package logger

import (
	"fredulator/calcos/kernel"
	"fredulator/calcos/proto"
	"fredulator/hal"
)

// Service drains MsgLogLine messages to the HAL logger.
type Service struct {
	log hal.Logger
	ep  kernel.Capability
}

func New(log hal.Logger, ep kernel.Capability) *Service {
	return &Service{log: log, ep: ep}
}

func (s *Service) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(s.ep)
	if !ok || s.log == nil {
		return
	}
	for msg := range ch {
		if proto.Kind(msg.Kind) != proto.MsgLogLine {
			continue
		}
		s.log.WriteLineBytes(msg.Payload())
	}
}
