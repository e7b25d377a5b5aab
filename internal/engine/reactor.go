package engine

import (
	"log/slog"

	"github.com/Norgate-AV/deskcycle/internal/wallpaper"
)

// onDesktopChanged re-synchronises everything with the new current desktop.
// The steps are independent; one failing does not stop the others.
func (m *Manager) onDesktopChanged() {
	idx, err := m.tracker.CurrentIndex()
	if err != nil {
		m.logIndexError(err)
		return
	}

	m.log.Debug("Desktop changed", slog.Int("desktop", idx+1))

	m.applyWallpaper(idx)
	m.restoreFocus(idx)
	m.refreshBadge(idx)
}

func (m *Manager) applyWallpaper(idx int) {
	path, ok := wallpaper.Pick(m.settings.Wallpapers, idx)
	if !ok {
		return
	}

	if err := m.deps.Wallpaper.SetWallpaper(path); err != nil {
		m.log.Warn("Failed to set wallpaper", slog.String("path", path), slog.Any("error", err))
		return
	}

	m.log.Debug("Wallpaper applied", slog.Int("desktop", idx+1), slog.String("path", path))
}

func (m *Manager) restoreFocus(idx int) {
	hwnd, ok := m.tracker.Focus(idx)
	if !ok {
		return
	}

	if !m.deps.Windows.IsWindow(hwnd) {
		m.log.Debug("Saved window no longer exists", slog.Uint64("hwnd", uint64(hwnd)))
		m.tracker.SaveFocus(idx, 0)
		return
	}

	if !m.deps.Windows.SetForeground(hwnd) {
		m.log.Debug("Could not restore focus", slog.Uint64("hwnd", uint64(hwnd)))
	}
}

func (m *Manager) saveFocus(idx int) {
	m.tracker.SaveFocus(idx, m.deps.Windows.ForegroundWindow())
}

func (m *Manager) refreshBadge(idx int) {
	if err := m.badge.Refresh(m.deps.Icon, idx+1); err != nil {
		m.log.Warn("Failed to update tray icon", slog.Any("error", err))
		return
	}

	m.lastBadge = idx + 1
}
