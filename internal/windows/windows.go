// Package windows binds the Win32 and virtual desktop APIs the engine needs.
// Everything OS-specific lives behind the windows build tag; other platforms
// get a client that reports ErrUnsupported.
package windows

import (
	"errors"

	"github.com/Norgate-AV/deskcycle/internal/interfaces"
)

// ErrUnsupported is returned on platforms without virtual desktop support
var ErrUnsupported = errors.New("virtual desktops are only supported on Windows")

// DesktopEvents receives notifications from the OS listener. Callbacks run
// on the listener thread and must not block.
type DesktopEvents struct {
	Changed   func()
	Created   func()
	Destroyed func()
}

// Client groups the OS implementations of the engine's collaborators
type Client struct {
	Desktops  interfaces.VirtualDesktops
	Window    interfaces.WindowManager
	Wallpaper interfaces.WallpaperSetter
	Shell     interfaces.ShellOpener

	closers []func() error
}

// Close stops the desktop listener
func (c *Client) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}

	c.closers = nil
	return errors.Join(errs...)
}
