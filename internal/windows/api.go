//go:build windows

package windows

import (
	"syscall"

	winsys "golang.org/x/sys/windows"
)

var (
	shell32          = syscall.NewLazyDLL("shell32.dll")
	procShellExecute = shell32.NewProc("ShellExecuteW")

	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentProcess     = kernel32.NewProc("GetCurrentProcess")
	procOpenProcessToken      = kernel32.NewProc("OpenProcessToken")
	procCloseHandle           = kernel32.NewProc("CloseHandle")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")

	advapi32                = syscall.NewLazyDLL("advapi32.dll")
	procGetTokenInformation = advapi32.NewProc("GetTokenInformation")

	user32                       = syscall.NewLazyDLL("user32.dll")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsIconic                 = user32.NewProc("IsIconic")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSystemParametersInfoW    = user32.NewProc("SystemParametersInfoW")
	procRegisterClassExW         = user32.NewProc("RegisterClassExW")
	procUnregisterClassW         = user32.NewProc("UnregisterClassW")
	procCreateWindowExW          = user32.NewProc("CreateWindowExW")
	procDestroyWindow            = user32.NewProc("DestroyWindow")
	procDefWindowProcW           = user32.NewProc("DefWindowProcW")
	procGetMessageW              = user32.NewProc("GetMessageW")
	procTranslateMessage         = user32.NewProc("TranslateMessage")
	procDispatchMessageW         = user32.NewProc("DispatchMessageW")
	procPostMessageW             = user32.NewProc("PostMessageW")
	procPostQuitMessage          = user32.NewProc("PostQuitMessage")
	procSetTimer                 = user32.NewProc("SetTimer")
	procKillTimer                = user32.NewProc("KillTimer")

	// Shipped next to the executable; see https://github.com/Ciantic/VirtualDesktopAccessor
	accessor                      = winsys.NewLazyDLL("VirtualDesktopAccessor.dll")
	procGetDesktopCount           = accessor.NewProc("GetDesktopCount")
	procGetCurrentDesktopNumber   = accessor.NewProc("GetCurrentDesktopNumber")
	procGetDesktopIdByNumber      = accessor.NewProc("GetDesktopIdByNumber")
	procGoToDesktopNumber         = accessor.NewProc("GoToDesktopNumber")
	procRegisterPostMessageHook   = accessor.NewProc("RegisterPostMessageHook")
	procUnregisterPostMessageHook = accessor.NewProc("UnregisterPostMessageHook")
)

const (
	WM_CLOSE   = 0x0010
	WM_DESTROY = 0x0002
	WM_TIMER   = 0x0113
	WM_APP     = 0x8000

	// Message the accessor posts on every desktop switch
	WM_DESKTOP_CHANGED = WM_APP + 0x10

	HWND_MESSAGE = ^uintptr(2) // (HWND)-3

	SW_RESTORE    = 9
	SW_SHOWNORMAL = 1

	SPI_SETDESKWALLPAPER  = 0x0014
	SPIF_UPDATEINIFILE    = 0x01
	SPIF_SENDWININICHANGE = 0x02

	TOKEN_QUERY    = 0x0008
	TokenElevation = 20

	// Timer id for the desktop count poll
	countTimerID = 1
)
