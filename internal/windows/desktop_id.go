//go:build windows && (amd64 || 386)

package windows

import (
	"fmt"
	"unsafe"

	winsys "golang.org/x/sys/windows"
)

// desktopID reads the GUID of desktop n. The GUID is returned by value, which
// the x86 and x64 ABIs turn into a hidden result pointer passed first.
// arm64 passes that pointer in x8 instead, which a syscall cannot set.
func desktopID(n int32) (string, error) {
	var guid winsys.GUID

	procGetDesktopIdByNumber.Call(uintptr(unsafe.Pointer(&guid)), uintptr(n))

	if guid == (winsys.GUID{}) {
		return "", fmt.Errorf("no id for desktop %d", n+1)
	}

	return guid.String(), nil
}
