package testutil

import (
	"sync"

	"github.com/Norgate-AV/deskcycle/internal/hotkey"
)

// MockRegistrar keeps the set of registered chords and lets tests press them.
// It records whether two different modifier presets were ever registered at
// the same time.
type MockRegistrar struct {
	mu             sync.Mutex
	active         map[hotkey.Binding]func()
	fail           map[hotkey.Binding]error
	failUnregister map[hotkey.Binding]error
	Log            []string
	RegisterCalls  int
	MixedPresets   bool
}

func NewMockRegistrar() *MockRegistrar {
	return &MockRegistrar{
		active:         make(map[hotkey.Binding]func()),
		fail:           make(map[hotkey.Binding]error),
		failUnregister: make(map[hotkey.Binding]error),
		Log:            []string{},
	}
}

// WithFailure makes registering b fail with err
func (m *MockRegistrar) WithFailure(b hotkey.Binding, err error) *MockRegistrar {
	m.fail[b] = err
	return m
}

// WithUnregisterFailure makes unregistering b fail with err (b is still removed)
func (m *MockRegistrar) WithUnregisterFailure(b hotkey.Binding, err error) *MockRegistrar {
	m.failUnregister[b] = err
	return m
}

func (m *MockRegistrar) Register(b hotkey.Binding, fn func()) (hotkey.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RegisterCalls++

	if err, ok := m.fail[b]; ok {
		m.Log = append(m.Log, "!"+b.String())
		return nil, err
	}

	m.active[b] = fn
	m.Log = append(m.Log, "+"+b.String())

	for other := range m.active {
		if other.Mods != b.Mods {
			m.MixedPresets = true
		}
	}

	return &mockHandle{reg: m, binding: b}, nil
}

// Active returns the number of registered chords
func (m *MockRegistrar) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.active)
}

// IsRegistered reports whether b is currently registered
func (m *MockRegistrar) IsRegistered(b hotkey.Binding) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.active[b]
	return ok
}

// Press fires the callback of b. It returns false when b is not registered.
func (m *MockRegistrar) Press(b hotkey.Binding) bool {
	m.mu.Lock()
	fn, ok := m.active[b]
	m.mu.Unlock()

	if !ok {
		return false
	}

	fn()
	return true
}

type mockHandle struct {
	reg     *MockRegistrar
	binding hotkey.Binding
}

func (h *mockHandle) Unregister() error {
	h.reg.mu.Lock()
	defer h.reg.mu.Unlock()

	delete(h.reg.active, h.binding)
	h.reg.Log = append(h.reg.Log, "-"+h.binding.String())

	return h.reg.failUnregister[h.binding]
}
