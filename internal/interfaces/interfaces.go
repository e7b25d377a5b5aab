// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

// VirtualDesktops exposes the OS virtual-desktop subsystem.
// Desktop identifiers are opaque and stable for the lifetime of a desktop.
type VirtualDesktops interface {
	Desktops() ([]string, error)
	Current() (string, error)
	SwitchTo(id string) error
}

// WindowManager handles foreground window operations
type WindowManager interface {
	ForegroundWindow() uintptr
	SetForeground(hwnd uintptr) bool
	IsWindow(hwnd uintptr) bool
}

// WallpaperSetter changes the system-wide desktop background
type WallpaperSetter interface {
	SetWallpaper(path string) error
	CurrentWallpaper() (string, error)
}

// IconSink receives rendered tray icons (ICO bytes)
type IconSink interface {
	SetIcon(ico []byte)
}

// Notifier shows short-lived messages to the user
type Notifier interface {
	Notify(title, text string)
}

// ShellOpener opens a file with its default handler
type ShellOpener interface {
	Open(path string) error
}
