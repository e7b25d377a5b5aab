package testutil

import (
	"errors"
	"fmt"
)

// MockVirtualDesktops simulates the OS desktop list and current pointer.
// SwitchTo moves the current pointer like the OS would.
type MockVirtualDesktops struct {
	IDs         []string
	CurrentID   string
	DesktopsErr error
	CurrentErr  error
	SwitchErr   error
	SwitchCalls []string
	EnumCalls   int

	// OnSwitch runs after a successful switch, e.g. to post the change event
	OnSwitch func(id string)
}

func NewMockVirtualDesktops(ids ...string) *MockVirtualDesktops {
	m := &MockVirtualDesktops{
		IDs:         append([]string(nil), ids...),
		SwitchCalls: []string{},
	}

	if len(ids) > 0 {
		m.CurrentID = ids[0]
	}

	return m
}

func (m *MockVirtualDesktops) Desktops() ([]string, error) {
	m.EnumCalls++
	if m.DesktopsErr != nil {
		return nil, m.DesktopsErr
	}

	return append([]string(nil), m.IDs...), nil
}

func (m *MockVirtualDesktops) Current() (string, error) {
	if m.CurrentErr != nil {
		return "", m.CurrentErr
	}

	return m.CurrentID, nil
}

func (m *MockVirtualDesktops) SwitchTo(id string) error {
	m.SwitchCalls = append(m.SwitchCalls, id)
	if m.SwitchErr != nil {
		return m.SwitchErr
	}

	for _, d := range m.IDs {
		if d == id {
			m.CurrentID = id
			if m.OnSwitch != nil {
				m.OnSwitch(id)
			}
			return nil
		}
	}

	return fmt.Errorf("no such desktop %q", id)
}

// Helper methods for fluent configuration
func (m *MockVirtualDesktops) WithCurrent(id string) *MockVirtualDesktops {
	m.CurrentID = id
	return m
}

func (m *MockVirtualDesktops) WithDesktopsError(err error) *MockVirtualDesktops {
	m.DesktopsErr = err
	return m
}

func (m *MockVirtualDesktops) WithSwitchError(err error) *MockVirtualDesktops {
	m.SwitchErr = err
	return m
}

// AddDesktop appends a desktop without notifying anyone, like a raced creation
func (m *MockVirtualDesktops) AddDesktop(id string) *MockVirtualDesktops {
	m.IDs = append(m.IDs, id)
	return m
}

// RemoveDesktop drops id from the list
func (m *MockVirtualDesktops) RemoveDesktop(id string) *MockVirtualDesktops {
	out := m.IDs[:0]
	for _, d := range m.IDs {
		if d != id {
			out = append(out, d)
		}
	}

	m.IDs = out
	return m
}

// MockWindowManager records focus calls for verification
type MockWindowManager struct {
	Foreground          uintptr
	SetForegroundCalls  []uintptr
	SetForegroundResult bool
	InvalidWindows      map[uintptr]bool
}

func NewMockWindowManager() *MockWindowManager {
	return &MockWindowManager{
		SetForegroundCalls:  []uintptr{},
		SetForegroundResult: true,
		InvalidWindows:      make(map[uintptr]bool),
	}
}

func (m *MockWindowManager) ForegroundWindow() uintptr {
	return m.Foreground
}

func (m *MockWindowManager) SetForeground(hwnd uintptr) bool {
	m.SetForegroundCalls = append(m.SetForegroundCalls, hwnd)
	if m.SetForegroundResult {
		m.Foreground = hwnd
	}

	return m.SetForegroundResult
}

func (m *MockWindowManager) IsWindow(hwnd uintptr) bool {
	return hwnd != 0 && !m.InvalidWindows[hwnd]
}

func (m *MockWindowManager) WithForeground(hwnd uintptr) *MockWindowManager {
	m.Foreground = hwnd
	return m
}

func (m *MockWindowManager) WithInvalidWindow(hwnd uintptr) *MockWindowManager {
	m.InvalidWindows[hwnd] = true
	return m
}

func (m *MockWindowManager) WithSetForegroundResult(result bool) *MockWindowManager {
	m.SetForegroundResult = result
	return m
}

// MockWallpaperSetter records every wallpaper applied
type MockWallpaperSetter struct {
	SetCalls   []string
	Current    string
	SetErr     error
	CurrentErr error
}

func NewMockWallpaperSetter() *MockWallpaperSetter {
	return &MockWallpaperSetter{SetCalls: []string{}}
}

func (m *MockWallpaperSetter) SetWallpaper(path string) error {
	m.SetCalls = append(m.SetCalls, path)
	if m.SetErr != nil {
		return m.SetErr
	}

	m.Current = path
	return nil
}

func (m *MockWallpaperSetter) CurrentWallpaper() (string, error) {
	if m.CurrentErr != nil {
		return "", m.CurrentErr
	}

	return m.Current, nil
}

func (m *MockWallpaperSetter) WithCurrent(path string) *MockWallpaperSetter {
	m.Current = path
	return m
}

func (m *MockWallpaperSetter) WithSetError(err error) *MockWallpaperSetter {
	m.SetErr = err
	return m
}

// MockIconSink keeps every icon assigned to the tray
type MockIconSink struct {
	Icons [][]byte
}

func NewMockIconSink() *MockIconSink {
	return &MockIconSink{Icons: [][]byte{}}
}

func (m *MockIconSink) SetIcon(ico []byte) {
	m.Icons = append(m.Icons, append([]byte(nil), ico...))
}

// Notification is one call to Notify
type Notification struct {
	Title string
	Text  string
}

// MockNotifier records notifications
type MockNotifier struct {
	Notifications []Notification
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{Notifications: []Notification{}}
}

func (m *MockNotifier) Notify(title, text string) {
	m.Notifications = append(m.Notifications, Notification{Title: title, Text: text})
}

// MockShellOpener records opened paths
type MockShellOpener struct {
	OpenCalls []string
	OpenErr   error
}

func NewMockShellOpener() *MockShellOpener {
	return &MockShellOpener{OpenCalls: []string{}}
}

func (m *MockShellOpener) Open(path string) error {
	m.OpenCalls = append(m.OpenCalls, path)
	return m.OpenErr
}

func (m *MockShellOpener) WithOpenError(err error) *MockShellOpener {
	m.OpenErr = err
	return m
}

// ErrMock is a generic failure for mocks
var ErrMock = errors.New("mock failure")
