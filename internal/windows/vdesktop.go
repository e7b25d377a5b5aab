//go:build windows

package windows

import (
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// accessorDesktops implements interfaces.VirtualDesktops on top of
// VirtualDesktopAccessor.dll. Desktops are identified by their GUID string.
type accessorDesktops struct {
	log logger.LoggerInterface
}

func newAccessorDesktops(log logger.LoggerInterface) (*accessorDesktops, error) {
	if err := accessor.Load(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", accessor.Name, err)
	}

	return &accessorDesktops{log: log}, nil
}

// Desktops returns the id of every desktop in OS order
func (a *accessorDesktops) Desktops() ([]string, error) {
	count, err := desktopCount()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, count)
	for i := int32(0); i < count; i++ {
		id, err := desktopID(i)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// Current returns the id of the active desktop
func (a *accessorDesktops) Current() (string, error) {
	ret, _, _ := procGetCurrentDesktopNumber.Call()
	n := int32(ret)
	if n < 0 {
		return "", fmt.Errorf("GetCurrentDesktopNumber failed (%d)", n)
	}

	return desktopID(n)
}

// SwitchTo activates the desktop with the given id
func (a *accessorDesktops) SwitchTo(id string) error {
	ids, err := a.Desktops()
	if err != nil {
		return err
	}

	for i, d := range ids {
		if d != id {
			continue
		}

		ret, _, _ := procGoToDesktopNumber.Call(uintptr(i))
		if int32(ret) < 0 {
			return fmt.Errorf("GoToDesktopNumber(%d) failed", i)
		}

		a.log.Trace("GoToDesktopNumber", slog.Int("number", i), slog.String("id", id))
		return nil
	}

	return fmt.Errorf("desktop %s no longer exists", id)
}

func desktopCount() (int32, error) {
	ret, _, _ := procGetDesktopCount.Call()
	n := int32(ret)
	if n <= 0 {
		return 0, fmt.Errorf("GetDesktopCount failed (%d)", n)
	}

	return n, nil
}
