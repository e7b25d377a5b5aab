package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Norgate-AV/deskcycle/internal/logger"
	"github.com/Norgate-AV/deskcycle/internal/timeouts"
)

// Watcher reloads the settings file when it changes on disk and hands the
// new settings to a callback. The callback runs on a timer goroutine.
type Watcher struct {
	path     string
	log      logger.LoggerInterface
	onChange func(Settings)
	debounce time.Duration

	watcher   *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher starts watching path. The directory is watched rather than the
// file so that atomic saves (rename over the old file) keep being observed.
func NewWatcher(path string, log logger.LoggerInterface, onChange func(Settings)) (*Watcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create settings directory: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch settings directory %s: %w", dir, err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		log:      log,
		onChange: onChange,
		debounce: timeouts.ConfigReloadDebounce,
		watcher:  fw,
		done:     make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit. It is safe
// to call more than once, from any goroutine.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.watcher.Close()
		w.wg.Wait()

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})

	return w.closeErr
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.Trace("Settings file event", slog.String("op", event.Op.String()))
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			w.log.Warn("Settings watcher error", slog.Any("error", err))
		}
	}
}

// schedule (re)starts the debounce timer
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	if _, err := os.Stat(w.path); err != nil {
		// Rename-style saves briefly leave no file behind
		time.Sleep(timeouts.ConfigRecreateDelay)
	}

	s, err := Load(w.path)
	if err != nil {
		w.log.Error("Settings reload failed", slog.Any("error", err))
		return
	}

	w.log.Info("Settings reloaded", slog.String("path", w.path), slog.Int("wallpapers", len(s.Wallpapers)))
	w.onChange(s)
}
