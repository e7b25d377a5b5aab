package engine

import (
	"log/slog"

	"github.com/Norgate-AV/deskcycle/internal/desktop"
	"github.com/Norgate-AV/deskcycle/internal/hotkey"
)

// onHotkey turns a press into a desktop switch. The switch itself only asks
// the OS; wallpaper and focus follow when the OS reports the change.
func (m *Manager) onHotkey(a hotkey.Action) {
	// Task View adds and closes desktops without a switch, so the OS may
	// never have told us
	if changed, err := m.tracker.Sync(); err != nil {
		m.log.Warn("Could not check the desktop list", slog.Any("error", err))
	} else if changed {
		m.log.Debug("Desktop list changed since the last event", slog.Int("desktops", m.tracker.Count()))
	}

	idx, err := m.tracker.CurrentIndex()
	if err != nil {
		m.logIndexError(err)
		return
	}

	if idx+1 != m.lastBadge {
		m.refreshBadge(idx)
	}

	var target int

	switch a.Kind {
	case hotkey.ActionPrevious:
		target = m.tracker.Neighbour(idx, desktop.Previous)
	case hotkey.ActionNext:
		target = m.tracker.Neighbour(idx, desktop.Next)
	case hotkey.ActionJump:
		target = a.Desktop - 1
		if target < 0 || target > m.tracker.Count()-1 {
			m.log.Debug("Jump target does not exist", slog.Int("desktop", a.Desktop))
			return
		}
	default:
		m.log.Warn("Unknown hotkey action", slog.Int("kind", int(a.Kind)))
		return
	}

	if target == idx {
		return
	}

	m.saveFocus(idx)

	if err := m.tracker.SwitchTo(target); err != nil {
		m.log.Warn("Desktop switch failed", slog.String("action", a.String()), slog.Any("error", err))
		return
	}

	m.log.Debug("Switching desktop",
		slog.String("action", a.String()),
		slog.Int("from", idx+1),
		slog.Int("to", target+1),
	)
}
