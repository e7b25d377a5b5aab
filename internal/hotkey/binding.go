// Package hotkey defines the desktop-switching hotkeys and registers them
// with the OS as one batch.
package hotkey

import (
	"fmt"
	"strings"
)

// Modifier is a bit set of modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModWin
)

func (m Modifier) String() string {
	var parts []string
	if m&ModCtrl != 0 {
		parts = append(parts, "Ctrl")
	}
	if m&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if m&ModWin != 0 {
		parts = append(parts, "Win")
	}

	return strings.Join(parts, "+")
}

// Key is a platform-neutral key code
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

// DigitKey returns the key for digit n (1..9)
func DigitKey(n int) (Key, bool) {
	if n < 1 || n > 9 {
		return 0, false
	}

	return Key1 + Key(n-1), true
}

func (k Key) String() string {
	switch {
	case k == KeyLeft:
		return "Left"
	case k == KeyRight:
		return "Right"
	case k >= Key1 && k <= Key9:
		return fmt.Sprintf("%d", int(k-Key1)+1)
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// ActionKind identifies what a hotkey does
type ActionKind int

const (
	ActionPrevious ActionKind = iota + 1
	ActionNext
	ActionJump
)

// Action is the command a hotkey press produces. Desktop is the 1-based
// target for ActionJump and zero otherwise.
type Action struct {
	Kind    ActionKind
	Desktop int
}

var (
	Previous = Action{Kind: ActionPrevious}
	Next     = Action{Kind: ActionNext}
)

// JumpTo returns the action for "switch to desktop n" (1-based)
func JumpTo(n int) Action {
	return Action{Kind: ActionJump, Desktop: n}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionJump:
		return fmt.Sprintf("jump-to-%d", a.Desktop)
	default:
		return "unknown"
	}
}

// Binding ties an action to a key chord
type Binding struct {
	Action Action
	Key    Key
	Mods   Modifier
}

func (b Binding) String() string {
	return b.Mods.String() + "+" + b.Key.String()
}

// BaseModifier returns the modifier preset. Alt is always held; the second
// modifier is Ctrl, or Shift when the alternate preset is selected.
func BaseModifier(alt bool) Modifier {
	if alt {
		return ModShift | ModAlt
	}

	return ModCtrl | ModAlt
}

// Bindings returns the full batch for one preset: Left, Right and 1..9
func Bindings(alt bool) []Binding {
	mods := BaseModifier(alt)

	out := make([]Binding, 0, 11)
	out = append(out,
		Binding{Action: Previous, Key: KeyLeft, Mods: mods},
		Binding{Action: Next, Key: KeyRight, Mods: mods},
	)

	for n := 1; n <= 9; n++ {
		k, _ := DigitKey(n)
		out = append(out, Binding{Action: JumpTo(n), Key: k, Mods: mods})
	}

	return out
}
