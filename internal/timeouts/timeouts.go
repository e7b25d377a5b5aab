// Package timeouts defines timeout, delay and sizing constants for the tray instance.
package timeouts

import "time"

const (
	// Tray

	// NotificationDuration is how long a transient tray notification stays
	// visible before the regular tooltip is restored. Matches the two second
	// balloon tip the shell shows by default.
	NotificationDuration = 2 * time.Second

	// Configuration

	// ConfigReloadDebounce collapses the burst of write events editors emit
	// when saving the settings file into a single reload.
	ConfigReloadDebounce = 500 * time.Millisecond

	// ConfigRecreateDelay gives editors that save by rename time to put the
	// new file in place before the watcher re-adds it.
	ConfigRecreateDelay = 100 * time.Millisecond

	// Desktops

	// DesktopPollInterval is how often the desktop count is checked between
	// switches. The accessor only posts on a switch, so desktops added or
	// closed from Task View would otherwise go unnoticed.
	DesktopPollInterval = 2 * time.Second

	// Event loop

	// EventQueueSize bounds the number of pending events. OS notifications
	// arrive one at a time; the buffer only absorbs bursts such as a user
	// holding down a hotkey.
	EventQueueSize = 64

	// ShutdownTimeout is the maximum time to wait for the event loop to run
	// its teardown after a quit request.
	ShutdownTimeout = 5 * time.Second
)
