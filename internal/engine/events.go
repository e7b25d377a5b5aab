package engine

import (
	"github.com/Norgate-AV/deskcycle/internal/config"
	"github.com/Norgate-AV/deskcycle/internal/hotkey"
)

// EventKind identifies an inbound notification
type EventKind int

const (
	EventDesktopChanged EventKind = iota + 1
	EventDesktopCreated
	EventDesktopDestroyed
	EventHotkey
	EventSettingsChanged
	EventOpenSettings
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventDesktopChanged:
		return "desktop-changed"
	case EventDesktopCreated:
		return "desktop-created"
	case EventDesktopDestroyed:
		return "desktop-destroyed"
	case EventHotkey:
		return "hotkey"
	case EventSettingsChanged:
		return "settings-changed"
	case EventOpenSettings:
		return "open-settings"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is everything the outside world can tell the manager. Action is set
// for EventHotkey, Settings for EventSettingsChanged.
type Event struct {
	Kind     EventKind
	Action   hotkey.Action
	Settings config.Settings
}

func DesktopChanged() Event   { return Event{Kind: EventDesktopChanged} }
func DesktopCreated() Event   { return Event{Kind: EventDesktopCreated} }
func DesktopDestroyed() Event { return Event{Kind: EventDesktopDestroyed} }
func OpenSettings() Event     { return Event{Kind: EventOpenSettings} }
func Quit() Event             { return Event{Kind: EventQuit} }

func HotkeyPressed(a hotkey.Action) Event {
	return Event{Kind: EventHotkey, Action: a}
}

func SettingsChanged(s config.Settings) Event {
	return Event{Kind: EventSettingsChanged, Settings: s.Clone()}
}
