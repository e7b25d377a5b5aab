// Package tray shows the notification area icon with the current desktop
// number and the Settings and Exit menu.
package tray

import (
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Norgate-AV/deskcycle/internal/logger"
	"github.com/Norgate-AV/deskcycle/internal/timeouts"
)

// maxTooltip is the longest tooltip the shell displays (szTip minus the terminator)
const maxTooltip = 127

// surface is the native icon the tray drives
type surface interface {
	SetIcon(ico []byte)
	SetTooltip(text string)
}

// Options configures the tray. Callbacks run on the tray's menu goroutine.
type Options struct {
	Tooltip    string
	OnReady    func()
	OnSettings func()
	OnQuit     func()
}

// Tray implements interfaces.IconSink and interfaces.Notifier. Icons and
// tooltips set before the native icon exists are applied once it does.
type Tray struct {
	log       logger.LoggerInterface
	opts      Options
	ui        surface
	notifyFor time.Duration
	done      chan struct{}

	mu      sync.Mutex
	ready   bool
	closed  bool
	icon    []byte
	tooltip string
	restore *time.Timer
}

func newTray(log logger.LoggerInterface, opts Options, ui surface) *Tray {
	return &Tray{
		log:       log,
		opts:      opts,
		ui:        ui,
		notifyFor: timeouts.NotificationDuration,
		done:      make(chan struct{}),
		tooltip:   opts.Tooltip,
	}
}

// SetIcon replaces the tray icon. ico is copied.
func (t *Tray) SetIcon(ico []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.icon = append(t.icon[:0], ico...)
	if t.ready && !t.closed {
		t.ui.SetIcon(t.icon)
	}
}

// Notify shows title and text in place of the tooltip for a short while.
// Later notifications replace earlier ones.
func (t *Tray) Notify(title, text string) {
	t.log.Warn(title, slog.String("detail", text))

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.ready || t.closed {
		return
	}

	t.ui.SetTooltip(truncate(title + ": " + text))

	if t.restore != nil {
		t.restore.Stop()
	}

	t.restore = time.AfterFunc(t.notifyFor, t.restoreTooltip)
}

func (t *Tray) restoreTooltip() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.closed {
		t.ui.SetTooltip(truncate(t.tooltip))
	}
}

// markReady pushes the pending icon and tooltip to the native surface
func (t *Tray) markReady() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ready = true
	if len(t.icon) > 0 {
		t.ui.SetIcon(t.icon)
	}

	t.ui.SetTooltip(truncate(t.tooltip))
}

// shutdown stops pending notifications; the surface is not touched afterwards
func (t *Tray) shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	t.closed = true
	if t.restore != nil {
		t.restore.Stop()
	}

	close(t.done)
}

func (t *Tray) handleMenu(settings, quit <-chan struct{}) {
	for {
		select {
		case <-t.done:
			return
		case <-settings:
			if t.opts.OnSettings != nil {
				t.opts.OnSettings()
			}
		case <-quit:
			if t.opts.OnQuit != nil {
				t.opts.OnQuit()
			}
		}
	}
}

func truncate(s string) string {
	if utf8.RuneCountInString(s) <= maxTooltip {
		return s
	}

	r := []rune(s)
	return string(r[:maxTooltip-1]) + "…"
}
