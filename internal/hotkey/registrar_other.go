//go:build !windows

package hotkey

import (
	"errors"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// ErrUnsupported is returned by the registrar on platforms without global hotkeys
var ErrUnsupported = errors.New("global hotkeys are only supported on Windows")

type unsupportedRegistrar struct{}

// NewRegistrar returns a registrar that rejects every binding
func NewRegistrar(_ logger.LoggerInterface) Registrar {
	return unsupportedRegistrar{}
}

func (unsupportedRegistrar) Register(Binding, func()) (Handle, error) {
	return nil, ErrUnsupported
}
