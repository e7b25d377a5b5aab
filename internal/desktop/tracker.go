// Package desktop tracks the ordered list of virtual desktops and the
// foreground window last seen on each of them.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/deskcycle/internal/interfaces"
	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// ErrNotTracked is returned when the OS reports a current desktop that is
// not in the tracked list, even after a resync.
var ErrNotTracked = errors.New("current desktop is not tracked")

// Direction selects a neighbour in the tracked list
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}

	return "next"
}

// Tracker holds the desktop list and the focus memory. Both are rebuilt
// together; the tracker is not safe for concurrent use.
type Tracker struct {
	src      interfaces.VirtualDesktops
	log      logger.LoggerInterface
	desktops []string
	focus    []uintptr
}

// NewTracker creates a tracker. Call Refresh before use.
func NewTracker(src interfaces.VirtualDesktops, log logger.LoggerInterface) *Tracker {
	return &Tracker{src: src, log: log}
}

// Refresh re-reads the desktop set and empties every focus slot
func (t *Tracker) Refresh() error {
	ids, err := t.src.Desktops()
	if err != nil {
		return fmt.Errorf("failed to enumerate desktops: %w", err)
	}

	t.desktops = append(t.desktops[:0:0], ids...)
	t.focus = make([]uintptr, len(ids))

	t.log.Debug("Desktop list rebuilt", slog.Int("count", len(ids)))
	return nil
}

// Sync re-reads the desktop set and rebuilds only when it differs from the
// tracked list. It reports whether a rebuild happened.
func (t *Tracker) Sync() (bool, error) {
	ids, err := t.src.Desktops()
	if err != nil {
		return false, fmt.Errorf("failed to enumerate desktops: %w", err)
	}

	if equalIDs(ids, t.desktops) {
		return false, nil
	}

	t.desktops = append(t.desktops[:0:0], ids...)
	t.focus = make([]uintptr, len(ids))

	t.log.Debug("Desktop list out of date, rebuilt", slog.Int("count", len(ids)))
	return true, nil
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Count returns the number of tracked desktops
func (t *Tracker) Count() int {
	return len(t.desktops)
}

// At returns the identifier at index i
func (t *Tracker) At(i int) (string, bool) {
	if i < 0 || i >= len(t.desktops) {
		return "", false
	}

	return t.desktops[i], true
}

// Desktops returns a copy of the tracked list
func (t *Tracker) Desktops() []string {
	return append([]string(nil), t.desktops...)
}

// IndexOf returns the position of id, or -1
func (t *Tracker) IndexOf(id string) int {
	for i, d := range t.desktops {
		if d == id {
			return i
		}
	}

	return -1
}

// CurrentIndex returns the position of the OS current desktop. A miss
// triggers one Refresh before giving up with ErrNotTracked.
func (t *Tracker) CurrentIndex() (int, error) {
	id, err := t.src.Current()
	if err != nil {
		return 0, fmt.Errorf("failed to query current desktop: %w", err)
	}

	if i := t.IndexOf(id); i >= 0 {
		return i, nil
	}

	t.log.Warn("Current desktop not in tracked list, resyncing", slog.String("desktop", id))

	if err := t.Refresh(); err != nil {
		return 0, err
	}

	// The OS may have switched again while we re-enumerated
	if id, err = t.src.Current(); err != nil {
		return 0, fmt.Errorf("failed to query current desktop: %w", err)
	}

	if i := t.IndexOf(id); i >= 0 {
		return i, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrNotTracked, id)
}

// Neighbour returns the index next to i in direction d, wrapping at both
// ends. It returns -1 when nothing is tracked.
func (t *Tracker) Neighbour(i int, d Direction) int {
	n := len(t.desktops)
	if n == 0 {
		return -1
	}

	return ((i+int(d))%n + n) % n
}

// SwitchTo asks the OS to activate the desktop at index i
func (t *Tracker) SwitchTo(i int) error {
	id, ok := t.At(i)
	if !ok {
		return fmt.Errorf("desktop index %d out of range [0, %d)", i, len(t.desktops))
	}

	if err := t.src.SwitchTo(id); err != nil {
		return fmt.Errorf("failed to switch to desktop %d: %w", i+1, err)
	}

	return nil
}

// SaveFocus records hwnd as the foreground window of desktop i.
// Indices outside the tracked range are ignored.
func (t *Tracker) SaveFocus(i int, hwnd uintptr) {
	if i < 0 || i >= len(t.focus) {
		return
	}

	t.focus[i] = hwnd
}

// Focus returns the saved window for desktop i, if any
func (t *Tracker) Focus(i int) (uintptr, bool) {
	if i < 0 || i >= len(t.focus) || t.focus[i] == 0 {
		return 0, false
	}

	return t.focus[i], true
}
