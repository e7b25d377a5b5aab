//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows/registry"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// wallpaperSetter implements interfaces.WallpaperSetter. The wallpaper is
// global: Windows does not keep one per virtual desktop.
type wallpaperSetter struct {
	log logger.LoggerInterface
}

func newWallpaperSetter(log logger.LoggerInterface) *wallpaperSetter {
	return &wallpaperSetter{log: log}
}

// SetWallpaper applies the image at path and persists it in the user profile
func (w *wallpaperSetter) SetWallpaper(path string) error {
	p, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	ret, _, callErr := procSystemParametersInfoW.Call(
		SPI_SETDESKWALLPAPER,
		0,
		uintptr(unsafe.Pointer(p)),
		SPIF_UPDATEINIFILE|SPIF_SENDWININICHANGE,
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfo failed for %s: %w", path, callErr)
	}

	w.log.Trace("SPI_SETDESKWALLPAPER", slog.String("path", path))
	return nil
}

// CurrentWallpaper reads the wallpaper path stored in the user profile
func (w *wallpaperSetter) CurrentWallpaper() (string, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, `Control Panel\Desktop`, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("failed to open desktop settings key: %w", err)
	}
	defer k.Close()

	path, _, err := k.GetStringValue("Wallpaper")
	if err != nil {
		return "", fmt.Errorf("failed to read wallpaper value: %w", err)
	}

	return path, nil
}
