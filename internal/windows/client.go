//go:build windows

package windows

import (
	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// NewClient loads the virtual desktop accessor and starts listening for
// desktop switches. Close the client to stop the listener.
func NewClient(log logger.LoggerInterface, events DesktopEvents) (*Client, error) {
	desktops, err := newAccessorDesktops(log)
	if err != nil {
		return nil, err
	}

	l, err := startListener(log, events)
	if err != nil {
		return nil, err
	}

	return &Client{
		Desktops:  desktops,
		Window:    newWindowManager(log),
		Wallpaper: newWallpaperSetter(log),
		Shell:     &shellOpener{log: log},
		closers:   []func() error{l.Close},
	}, nil
}
