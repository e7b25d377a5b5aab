//go:build windows && !(amd64 || 386)

package windows

import (
	"fmt"
	"runtime"
)

func desktopID(n int32) (string, error) {
	return "", fmt.Errorf("%w: desktop ids on %s", ErrUnsupported, runtime.GOARCH)
}
