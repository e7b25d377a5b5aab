//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"syscall"
	"unsafe"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// ShellExecute executes a file using the Windows shell
func ShellExecute(hwnd uintptr, verb, file, args, cwd string, showCmd int) error {
	var verbPtr, filePtr, argsPtr, cwdPtr *uint16
	var err error

	if verb != "" {
		verbPtr, err = syscall.UTF16PtrFromString(verb)
		if err != nil {
			return err
		}
	}

	filePtr, err = syscall.UTF16PtrFromString(file)
	if err != nil {
		return err
	}

	if args != "" {
		argsPtr, err = syscall.UTF16PtrFromString(args)
		if err != nil {
			return err
		}
	}

	if cwd != "" {
		cwdPtr, err = syscall.UTF16PtrFromString(cwd)
		if err != nil {
			return err
		}
	}

	ret, _, _ := procShellExecute.Call(
		hwnd,
		uintptr(unsafe.Pointer(verbPtr)),
		uintptr(unsafe.Pointer(filePtr)),
		uintptr(unsafe.Pointer(argsPtr)),
		uintptr(unsafe.Pointer(cwdPtr)),
		uintptr(showCmd),
	)

	// ShellExecute returns a value > 32 on success
	if ret <= 32 {
		return fmt.Errorf("shell execute failed with error code: %d", ret)
	}

	return nil
}

// shellOpener opens files with their associated application
type shellOpener struct {
	log logger.LoggerInterface
}

func (s *shellOpener) Open(path string) error {
	s.log.Debug("Opening with associated application", slog.String("path", path))
	return ShellExecute(0, "open", path, "", "", SW_SHOWNORMAL)
}
