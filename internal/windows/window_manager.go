//go:build windows

package windows

import (
	"log/slog"
	"unsafe"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// windowManager implements interfaces.WindowManager
type windowManager struct {
	log logger.LoggerInterface
}

// newWindowManager creates a new window manager
func newWindowManager(log logger.LoggerInterface) *windowManager {
	return &windowManager{log: log}
}

// ForegroundWindow returns the current foreground window, or 0
func (w *windowManager) ForegroundWindow() uintptr {
	hwnd, _, _ := procGetForegroundWindow.Call()
	return hwnd
}

// IsWindow checks if a window handle still refers to a valid window
func (w *windowManager) IsWindow(hwnd uintptr) bool {
	if hwnd == 0 {
		return false
	}

	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// SetForeground brings a window to the foreground using AttachThreadInput technique
func (w *windowManager) SetForeground(hwnd uintptr) bool {
	// Restore window if minimized; SW_RESTORE would un-maximize the others
	if iconic, _, _ := procIsIconic.Call(hwnd); iconic != 0 {
		procShowWindow.Call(hwnd, uintptr(SW_RESTORE))
	}

	// Try standard SetForegroundWindow first
	ret, _, _ := procSetForegroundWindow.Call(hwnd)
	if ret != 0 {
		w.log.Trace("SetForegroundWindow succeeded (standard)", slog.Uint64("hwnd", uint64(hwnd)))
		return true
	}

	w.log.Debug("Standard SetForegroundWindow failed, trying AttachThreadInput technique")

	// Get current foreground window; nothing to do if it is already ours
	fgHwnd, _, _ := procGetForegroundWindow.Call()
	if fgHwnd == 0 || fgHwnd == hwnd {
		return fgHwnd == hwnd
	}

	// Get thread IDs
	fgThreadID, _, _ := procGetWindowThreadProcessId.Call(fgHwnd, 0)
	targetThreadID, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)

	if fgThreadID == 0 || targetThreadID == 0 {
		w.log.Warn("Could not get thread IDs",
			slog.Uint64("fgThreadID", uint64(fgThreadID)),
			slog.Uint64("targetThreadID", uint64(targetThreadID)))
		return false
	}

	// Attach the target's input to the foreground window's thread
	ret, _, _ = procAttachThreadInput.Call(targetThreadID, fgThreadID, 1)
	if ret == 0 {
		w.log.Warn("AttachThreadInput failed")
		return false
	}

	// Now SetForegroundWindow should work
	ret, _, _ = procSetForegroundWindow.Call(hwnd)
	success := ret != 0

	// Detach threads
	if ret, _, _ := procAttachThreadInput.Call(targetThreadID, fgThreadID, 0); ret == 0 {
		w.log.Warn("Failed to detach threads")
	}

	if !success {
		w.log.Warn("SetForegroundWindow still failed after AttachThreadInput", slog.Uint64("hwnd", uint64(hwnd)))
	}

	return success
}

// IsElevated returns whether the current process is running with administrator privileges.
// A non-elevated process cannot bring elevated windows to the foreground.
func IsElevated() bool {
	var token uintptr

	// Open our own process token for query
	currentProcess, _, _ := procGetCurrentProcess.Call()
	ret, _, _ := procOpenProcessToken.Call(
		currentProcess,
		uintptr(TOKEN_QUERY),
		uintptr(unsafe.Pointer(&token)),
	)

	if ret == 0 {
		return false
	}

	// Close the token once the query is done
	defer procCloseHandle.Call(token)

	// Ask the token whether it is elevated
	var elevation TOKEN_ELEVATION
	var returnLength uint32

	ret, _, _ = procGetTokenInformation.Call(
		token,
		uintptr(TokenElevation),
		uintptr(unsafe.Pointer(&elevation)),
		uintptr(unsafe.Sizeof(elevation)),
		uintptr(unsafe.Pointer(&returnLength)),
	)

	if ret == 0 {
		return false
	}

	return elevation.TokenIsElevated != 0
}
