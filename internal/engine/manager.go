// Package engine runs the single-threaded event loop that keeps wallpaper,
// window focus and the tray badge in step with the active virtual desktop.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/Norgate-AV/deskcycle/internal/badge"
	"github.com/Norgate-AV/deskcycle/internal/config"
	"github.com/Norgate-AV/deskcycle/internal/desktop"
	"github.com/Norgate-AV/deskcycle/internal/hotkey"
	"github.com/Norgate-AV/deskcycle/internal/interfaces"
	"github.com/Norgate-AV/deskcycle/internal/logger"
	"github.com/Norgate-AV/deskcycle/internal/timeouts"
)

const (
	titleRegisterFailed   = "Error registering hotkeys"
	textRegisterFailed    = "Could not register hotkeys. Open settings and try changing the alternate modifier option."
	titleUnregisterFailed = "Error unregistering hotkeys"
	textUnregisterFailed  = "Could not unregister hotkeys. The earlier registration probably failed as well."
	titleSettingsFailed   = "Could not open settings"
)

// Dependencies holds all OS collaborators; tests substitute mocks
type Dependencies struct {
	Desktops  interfaces.VirtualDesktops
	Windows   interfaces.WindowManager
	Wallpaper interfaces.WallpaperSetter
	Icon      interfaces.IconSink
	Notifier  interfaces.Notifier
	Shell     interfaces.ShellOpener
	Registrar hotkey.Registrar
}

// Options configures a Manager
type Options struct {
	Settings   config.Settings
	ConfigPath string
	QueueSize  int // 0 = timeouts.EventQueueSize
}

// Manager owns the tracker, the hotkey set and the badge renderer. All of
// them are only touched by the goroutine executing Run; other goroutines
// talk to it through Post.
type Manager struct {
	log      logger.LoggerInterface
	deps     Dependencies
	settings config.Settings
	cfgPath  string

	events chan Event
	ready  chan struct{}
	done   chan struct{}

	tracker *desktop.Tracker
	hotkeys *hotkey.Set
	badge   *badge.Renderer

	startupWallpaper string
	lastBadge        int
}

// NewManager creates a Manager. Nothing touches the OS until Run.
func NewManager(log logger.LoggerInterface, deps Dependencies, opts Options) (*Manager, error) {
	renderer, err := badge.NewRenderer()
	if err != nil {
		return nil, err
	}

	size := opts.QueueSize
	if size <= 0 {
		size = timeouts.EventQueueSize
	}

	m := &Manager{
		log:      log.With(slog.String("component", "engine")),
		deps:     deps,
		settings: opts.Settings.Clone(),
		cfgPath:  opts.ConfigPath,
		events:   make(chan Event, size),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
		tracker:  desktop.NewTracker(deps.Desktops, log),
		badge:    renderer,
	}

	m.hotkeys = hotkey.NewSet(deps.Registrar, log, func(a hotkey.Action) {
		m.Post(HotkeyPressed(a))
	})

	return m, nil
}

// Post enqueues ev without blocking. It reports false when the queue is
// full or the loop has stopped; the event is dropped in both cases.
func (m *Manager) Post(ev Event) bool {
	select {
	case <-m.done:
		return false
	default:
	}

	select {
	case m.events <- ev:
		return true
	default:
		m.log.Warn("Event queue full, event dropped", slog.String("event", ev.Kind.String()))
		return false
	}
}

// Ready is closed once startup has finished and events are being handled
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

// Done is closed after teardown
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Run performs startup, handles events until Quit or ctx is cancelled, then
// tears down. Failing to enumerate desktops is fatal and returned.
func (m *Manager) Run(ctx context.Context) error {
	defer close(m.done)

	if err := m.startup(); err != nil {
		return err
	}

	close(m.ready)
	defer m.teardown()

	for {
		select {
		case <-ctx.Done():
			m.log.Debug("Context cancelled, stopping")
			return nil

		case ev := <-m.events:
			if ev.Kind == EventQuit {
				m.log.Info("Quit requested")
				return nil
			}

			if err := m.dispatch(ev); err != nil {
				return err
			}
		}
	}
}

func (m *Manager) startup() error {
	if err := m.tracker.Refresh(); err != nil {
		return err
	}

	if m.settings.RestoreWallpaperOnExit {
		if path, err := m.deps.Wallpaper.CurrentWallpaper(); err != nil {
			m.log.Warn("Could not read the current wallpaper", slog.Any("error", err))
		} else {
			m.startupWallpaper = path
		}
	}

	m.applyHotkeys()

	idx, err := m.tracker.CurrentIndex()
	if err != nil {
		m.log.Warn("Could not resolve the current desktop at startup", slog.Any("error", err))
		return nil
	}

	m.saveFocus(idx)
	m.applyWallpaper(idx)
	m.refreshBadge(idx)

	m.log.Info("Started",
		slog.Int("desktops", m.tracker.Count()),
		slog.Int("current", idx+1),
		slog.Int("wallpapers", len(m.settings.Wallpapers)),
	)

	return nil
}

func (m *Manager) teardown() {
	if err := m.hotkeys.Close(); err != nil {
		m.log.Error("Failed to unregister hotkeys", slog.Any("error", err))
	}

	if m.settings.RestoreWallpaperOnExit && m.startupWallpaper != "" {
		if err := m.deps.Wallpaper.SetWallpaper(m.startupWallpaper); err != nil {
			m.log.Warn("Could not restore the original wallpaper", slog.Any("error", err))
		}
	}

	m.log.Debug("Teardown complete")
}

// dispatch handles one event. Panics are logged and swallowed so a bad event
// does not take the tray down; only fatal errors are returned.
func (m *Manager) dispatch(ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("PANIC RECOVERED",
				slog.String("event", ev.Kind.String()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	m.log.Trace("Event", slog.String("event", ev.Kind.String()))

	switch ev.Kind {
	case EventDesktopChanged:
		m.onDesktopChanged()
	case EventDesktopCreated, EventDesktopDestroyed:
		return m.onDesktopCountChanged()
	case EventHotkey:
		m.onHotkey(ev.Action)
	case EventSettingsChanged:
		m.onSettingsChanged(ev.Settings)
	case EventOpenSettings:
		m.onOpenSettings()
	default:
		m.log.Warn("Unknown event", slog.Int("kind", int(ev.Kind)))
	}

	return nil
}

func (m *Manager) onDesktopCountChanged() error {
	if err := m.tracker.Refresh(); err != nil {
		return fmt.Errorf("desktop list rebuild failed: %w", err)
	}

	// Removing an earlier desktop shifts the current one's number
	if idx, err := m.tracker.CurrentIndex(); err == nil && idx+1 != m.lastBadge {
		m.refreshBadge(idx)
	}

	return nil
}

// applyHotkeys unregisters the current batch and registers the one the
// settings ask for, reporting failures through the notifier
func (m *Manager) applyHotkeys() {
	if err := m.hotkeys.Close(); err != nil {
		m.log.Error("Failed to unregister hotkeys", slog.Any("error", err))
		m.deps.Notifier.Notify(titleUnregisterFailed, textUnregisterFailed)
	}

	if err := m.hotkeys.Apply(m.settings.EnableHotkeys, m.settings.AltModifier); err != nil {
		m.log.Error("Failed to register hotkeys", slog.Any("error", err))
		m.deps.Notifier.Notify(titleRegisterFailed, textRegisterFailed)
	}
}

func (m *Manager) onSettingsChanged(s config.Settings) {
	old := m.settings
	m.settings = s

	if old.EnableHotkeys != s.EnableHotkeys || old.AltModifier != s.AltModifier {
		m.applyHotkeys()
	}

	if !equalStrings(old.Wallpapers, s.Wallpapers) {
		idx, err := m.tracker.CurrentIndex()
		if err != nil {
			m.logIndexError(err)
			return
		}

		m.applyWallpaper(idx)
	}
}

func (m *Manager) onOpenSettings() {
	if m.cfgPath == "" {
		return
	}

	if err := m.deps.Shell.Open(m.cfgPath); err != nil {
		m.log.Error("Failed to open settings", slog.String("path", m.cfgPath), slog.Any("error", err))
		m.deps.Notifier.Notify(titleSettingsFailed, err.Error())
	}
}

func (m *Manager) logIndexError(err error) {
	if errors.Is(err, desktop.ErrNotTracked) {
		m.log.Warn("Skipping event for untracked desktop", slog.Any("error", err))
		return
	}

	m.log.Error("Could not resolve the current desktop", slog.Any("error", err))
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
