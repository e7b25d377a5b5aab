//go:build windows

package tray

import (
	"github.com/getlantern/systray"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

type systraySurface struct{}

func (systraySurface) SetIcon(ico []byte)     { systray.SetIcon(ico) }
func (systraySurface) SetTooltip(text string) { systray.SetTooltip(text) }

// New creates the tray. Nothing is shown until Run.
func New(log logger.LoggerInterface, opts Options) *Tray {
	return newTray(log, opts, systraySurface{})
}

// Run shows the icon and blocks until Quit. It must be called from the main
// goroutine, which systray locks to the OS thread owning the icon window.
func (t *Tray) Run() error {
	systray.Run(t.onReady, t.shutdown)
	return nil
}

// Quit removes the icon and makes Run return
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTitle(t.opts.Tooltip)

	settings := systray.AddMenuItem("Settings", "Open the settings file")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Exit", "Exit")

	t.markReady()

	go t.handleMenu(settings.ClickedCh, quit.ClickedCh)

	if t.opts.OnReady != nil {
		t.opts.OnReady()
	}
}
