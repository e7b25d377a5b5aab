//go:build !windows

package windows

import (
	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// ConsoleCtrlHandler is a callback function for console control events
type ConsoleCtrlHandler func(ctrlType uint32) uintptr

func NewClient(_ logger.LoggerInterface, _ DesktopEvents) (*Client, error) {
	return nil, ErrUnsupported
}

func SetConsoleCtrlHandler(ConsoleCtrlHandler) error { return nil }

func IsElevated() bool { return false }
