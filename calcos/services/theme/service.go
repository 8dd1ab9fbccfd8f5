package theme

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	logclient "fredulator/calcos/client/logger"
	"fredulator/calcos/kernel"
	"fredulator/calcos/proto"
	"fredulator/calcos/theme"
)

// debounceDelay coalesces the event bursts editors produce on save.
const debounceDelay = 300 * time.Millisecond

// Service loads the stylesheet, watches it for changes, and pushes palette
// updates to the pad endpoint.
type Service struct {
	path string
	pad  kernel.Capability
	log  kernel.Capability
}

func New(path string, pad, log kernel.Capability) *Service {
	return &Service{path: path, pad: pad, log: log}
}

func (s *Service) Run(ctx *kernel.Context) {
	s.push(ctx, s.load(ctx))

	if s.path == "" {
		return
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logclient.Log(ctx, s.log, "style: watch: "+err.Error())
		return
	}
	defer w.Close()

	// Watch the directory, not the file: editors replace files on save and
	// the inode-level watch would go stale.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		logclient.Log(ctx, s.log, "style: watch: "+err.Error())
		return
	}

	reload := make(chan struct{}, 1)
	var debounce *time.Timer

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logclient.Log(ctx, s.log, "style: watch: "+err.Error())

		case <-reload:
			s.push(ctx, s.load(ctx))
		}
	}
}

func (s *Service) load(ctx *kernel.Context) theme.Palette {
	if s.path == "" {
		return theme.Default()
	}

	src, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logclient.Log(ctx, s.log, "style: "+err.Error())
		}
		return theme.Default()
	}

	pal, err := theme.Parse(src, theme.Default())
	if err != nil {
		logclient.Log(ctx, s.log, "style: "+err.Error())
		detail := []byte(err.Error())
		if len(detail) > 96 {
			detail = detail[:96]
		}
		ctx.SendToCap(s.pad, uint16(proto.MsgError),
			proto.ErrorPayload(proto.ErrBadMessage, proto.MsgThemeUpdate, detail), kernel.Capability{})
		return theme.Default()
	}
	return pal
}

func (s *Service) push(ctx *kernel.Context, pal theme.Palette) {
	ctx.SendToCapRetry(s.pad, uint16(proto.MsgThemeUpdate),
		proto.ThemeUpdatePayload(pal.Entries()), kernel.Capability{}, 4)
}
