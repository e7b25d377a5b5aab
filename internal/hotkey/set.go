package hotkey

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

// Handle is one registered hotkey
type Handle interface {
	Unregister() error
}

// Registrar registers a single global hotkey with the OS. fn runs on an
// OS-owned goroutine every time the chord is pressed.
type Registrar interface {
	Register(b Binding, fn func()) (Handle, error)
}

type registered struct {
	binding Binding
	handle  Handle
}

// Set owns the currently registered batch. It is not safe for concurrent use.
type Set struct {
	reg     Registrar
	log     logger.LoggerInterface
	onPress func(Action)
	active  []registered
}

// NewSet creates an empty set. onPress receives the action of every press.
func NewSet(reg Registrar, log logger.LoggerInterface, onPress func(Action)) *Set {
	return &Set{reg: reg, log: log, onPress: onPress}
}

// Apply replaces the registered batch. The old batch is always unregistered
// first, so two presets are never registered at the same time. When enabled,
// the new batch is registered; if any binding fails, everything registered
// by this call is unregistered again and the joined error is returned.
func (s *Set) Apply(enabled, alt bool) error {
	if err := s.Close(); err != nil {
		// Registration is still attempted; a stale chord only blocks the same chord.
		s.log.Warn("Some hotkeys could not be unregistered", slog.Any("error", err))
	}

	if !enabled {
		s.log.Debug("Hotkeys disabled")
		return nil
	}

	batch := Bindings(alt)
	done := make([]registered, 0, len(batch))

	var errs []error
	for _, b := range batch {
		action := b.Action
		h, err := s.reg.Register(b, func() { s.onPress(action) })
		if err != nil {
			errs = append(errs, fmt.Errorf("register %s: %w", b, err))
			continue
		}

		done = append(done, registered{binding: b, handle: h})
	}

	if len(errs) > 0 {
		if rbErr := unregisterAll(done); rbErr != nil {
			errs = append(errs, fmt.Errorf("rollback: %w", rbErr))
		}

		return errors.Join(errs...)
	}

	s.active = done
	s.log.Info("Hotkeys registered",
		slog.String("modifiers", BaseModifier(alt).String()),
		slog.Int("count", len(done)),
	)

	return nil
}

// Close unregisters the whole batch. Every binding is attempted; the set is
// empty afterwards even when some unregistrations fail.
func (s *Set) Close() error {
	if len(s.active) == 0 {
		return nil
	}

	err := unregisterAll(s.active)
	s.active = nil

	return err
}

// Registered returns the bindings currently held
func (s *Set) Registered() []Binding {
	out := make([]Binding, len(s.active))
	for i, r := range s.active {
		out[i] = r.binding
	}

	return out
}

func unregisterAll(rs []registered) error {
	var errs []error
	for _, r := range rs {
		if err := r.handle.Unregister(); err != nil {
			errs = append(errs, fmt.Errorf("unregister %s: %w", r.binding, err))
		}
	}

	return errors.Join(errs...)
}
