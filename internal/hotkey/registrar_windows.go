//go:build windows

package hotkey

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/hotkey"

	"github.com/Norgate-AV/deskcycle/internal/logger"
)

var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.ModAlt,
	ModWin:   hotkey.ModWin,
}

var keyMap = map[Key]hotkey.Key{
	KeyLeft:  hotkey.KeyLeft,
	KeyRight: hotkey.KeyRight,
	Key1:     hotkey.Key1,
	Key2:     hotkey.Key2,
	Key3:     hotkey.Key3,
	Key4:     hotkey.Key4,
	Key5:     hotkey.Key5,
	Key6:     hotkey.Key6,
	Key7:     hotkey.Key7,
	Key8:     hotkey.Key8,
	Key9:     hotkey.Key9,
}

type osRegistrar struct {
	log logger.LoggerInterface
}

// NewRegistrar returns the RegisterHotKey-backed registrar
func NewRegistrar(log logger.LoggerInterface) Registrar {
	return &osRegistrar{log: log}
}

func (r *osRegistrar) Register(b Binding, fn func()) (Handle, error) {
	key, ok := keyMap[b.Key]
	if !ok {
		return nil, fmt.Errorf("unsupported key %s", b.Key)
	}

	var mods []hotkey.Modifier
	for bit, m := range modifierMap {
		if b.Mods&bit != 0 {
			mods = append(mods, m)
		}
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	h := &osHandle{hk: hk, done: make(chan struct{})}

	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-hk.Keydown():
				r.log.Trace("Hotkey pressed", slog.String("chord", b.String()))
				fn()
			}
		}
	}()

	return h, nil
}

type osHandle struct {
	hk   *hotkey.Hotkey
	done chan struct{}
	once sync.Once
}

func (h *osHandle) Unregister() error {
	var err error
	h.once.Do(func() {
		close(h.done)
		err = h.hk.Unregister()
	})

	return err
}
