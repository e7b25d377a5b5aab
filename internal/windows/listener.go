//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/Norgate-AV/deskcycle/internal/logger"
	"github.com/Norgate-AV/deskcycle/internal/timeouts"
)

const listenerClass = "DeskCycleListener"

var (
	wndProcCallback = syscall.NewCallback(wndProc)

	activeMu sync.Mutex
	active   *listener
)

// listener owns a message-only window that the accessor posts desktop
// switches to. The window and its message loop live on one locked OS thread.
type listener struct {
	log    logger.LoggerInterface
	events DesktopEvents

	hwnd      uintptr
	lastCount int32

	ready chan error
	done  chan struct{}
	once  sync.Once
}

func startListener(log logger.LoggerInterface, events DesktopEvents) (*listener, error) {
	l := &listener{
		log:    log,
		events: events,
		ready:  make(chan error, 1),
		done:   make(chan struct{}),
	}

	go l.run()

	if err := <-l.ready; err != nil {
		return nil, err
	}

	return l, nil
}

// Close destroys the window and waits for the message loop to exit
func (l *listener) Close() error {
	l.once.Do(func() {
		procPostMessageW.Call(l.hwnd, WM_CLOSE, 0, 0)
		<-l.done
	})

	return nil
}

func (l *listener) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(l.done)

	className, _ := syscall.UTF16PtrFromString(listenerClass)

	wc := WNDCLASSEXW{
		LpfnWndProc:   wndProcCallback,
		LpszClassName: className,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))

	if ret, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); ret == 0 {
		l.ready <- fmt.Errorf("RegisterClassEx failed: %w", err)
		return
	}
	defer procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), 0)

	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(className)),
		0, 0,
		0, 0, 0, 0,
		HWND_MESSAGE,
		0, 0, 0,
	)
	if hwnd == 0 {
		l.ready <- fmt.Errorf("CreateWindowEx failed: %w", err)
		return
	}

	l.hwnd = hwnd
	l.lastCount, _ = desktopCount()

	setActive(l)
	defer setActive(nil)

	if ret, _, _ := procRegisterPostMessageHook.Call(hwnd, WM_DESKTOP_CHANGED); int32(ret) < 0 {
		procDestroyWindow.Call(hwnd)
		l.ready <- fmt.Errorf("RegisterPostMessageHook failed (%d)", int32(ret))
		return
	}

	// Creations and removals away from the current desktop post nothing
	if ret, _, err := procSetTimer.Call(hwnd, countTimerID, uintptr(timeouts.DesktopPollInterval.Milliseconds()), 0); ret == 0 {
		l.log.Warn("Desktop count poll unavailable", slog.Any("error", err))
	}

	l.log.Debug("Desktop listener started", slog.Uint64("hwnd", uint64(hwnd)), slog.Int("desktops", int(l.lastCount)))
	l.ready <- nil

	var msg MSG
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		if int32(ret) <= 0 {
			break
		}

		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}

	l.log.Debug("Desktop listener stopped")
}

// onSwitch reports count changes before the switch itself, so the tracker
// is rebuilt before the current desktop is resolved
func (l *listener) onSwitch(from, to uintptr) {
	l.log.Trace("Desktop switch message", slog.Int("from", int(int32(from))), slog.Int("to", int(int32(to))))

	l.checkCount()

	if l.events.Changed != nil {
		l.events.Changed()
	}
}

// checkCount fires Created or Destroyed when the desktop count moved since
// the last look. Only called on the listener thread.
func (l *listener) checkCount() {
	count, err := desktopCount()
	if err != nil || count == l.lastCount {
		return
	}

	prev := l.lastCount
	l.lastCount = count

	l.log.Debug("Desktop count changed", slog.Int("from", int(prev)), slog.Int("to", int(count)))

	if count > prev && l.events.Created != nil {
		l.events.Created()
	}

	if count < prev && l.events.Destroyed != nil {
		l.events.Destroyed()
	}
}

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	switch uint32(msg) {
	case WM_DESKTOP_CHANGED:
		if l := activeListener(); l != nil {
			l.onSwitch(wParam, lParam)
		}
		return 0

	case WM_TIMER:
		if wParam == countTimerID {
			if l := activeListener(); l != nil {
				l.checkCount()
			}
			return 0
		}

	case WM_DESTROY:
		procKillTimer.Call(hwnd, countTimerID)
		procUnregisterPostMessageHook.Call(hwnd)
		procPostQuitMessage.Call(0)
		return 0
	}

	ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
	return ret
}

func setActive(l *listener) {
	activeMu.Lock()
	active = l
	activeMu.Unlock()
}

func activeListener() *listener {
	activeMu.Lock()
	defer activeMu.Unlock()

	return active
}
