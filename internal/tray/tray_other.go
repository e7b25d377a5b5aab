//go:build !windows

package tray

import (
	"errors"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// ErrUnsupported is returned by Run on platforms without a tray implementation
var ErrUnsupported = errors.New("tray icon is only supported on Windows")

type nopSurface struct{}

func (nopSurface) SetIcon([]byte)    {}
func (nopSurface) SetTooltip(string) {}

func New(log logger.LoggerInterface, opts Options) *Tray {
	return newTray(log, opts, nopSurface{})
}

func (t *Tray) Run() error {
	t.shutdown()
	return ErrUnsupported
}

func (t *Tray) Quit() {}
