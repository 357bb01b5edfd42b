package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/code-review-checklists/checklint/pkg/constants"
	"github.com/code-review-checklists/checklint/pkg/errors"
)

// watcher watches the checklist source file and invokes onChange after
// a debounce window. Editors write files in bursts (truncate, write,
// rename), so events are coalesced before triggering a re-render.
type watcher struct {
	path     string
	fswatch  *fsnotify.Watcher
	onChange func()
	logger   *zerolog.Logger
}

// newWatcher watches the directory containing path. Watching the
// directory rather than the file survives atomic-save renames.
func newWatcher(path string, onChange func(), logger *zerolog.Logger) (*watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapIO("resolve", path, err)
	}

	fswatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapIO("watch", path, err)
	}
	if err := fswatch.Add(filepath.Dir(abs)); err != nil {
		_ = fswatch.Close()
		return nil, errors.WrapIO("watch", filepath.Dir(abs), err)
	}

	return &watcher{
		path:     abs,
		fswatch:  fswatch,
		onChange: onChange,
		logger:   logger,
	}, nil
}

// run processes events until the context is done.
func (w *watcher) run(ctx context.Context) {
	defer func() { _ = w.fswatch.Close() }()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fswatch.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			w.logger.Debug().
				Str("path", w.path).
				Str("op", event.Op.String()).
				Msg("Source file changed")

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(constants.WatchDebounce, w.onChange)

		case err, ok := <-w.fswatch.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}
