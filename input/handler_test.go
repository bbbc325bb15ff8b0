package input

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/core"
)

func TestHandler_DefaultBindings(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		dir  core.Direction
		cmd  Command
	}{
		{"arrow up", tcell.KeyUp, 0, core.DirUp, CommandNone},
		{"w", tcell.KeyRune, 'w', core.DirUp, CommandNone},
		{"shift S", tcell.KeyRune, 'S', core.DirDown, CommandNone},
		{"pause", tcell.KeyRune, 'p', core.DirNone, CommandPause},
		{"mute", tcell.KeyRune, 'm', core.DirNone, CommandMute},
		{"quit", tcell.KeyRune, 'q', core.DirNone, CommandQuit},
		{"escape", tcell.KeyEscape, 0, core.DirNone, CommandQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, core.DirNone, CommandQuit},
		{"unbound", tcell.KeyRune, 'z', core.DirNone, CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(nil)
			if cmd := h.HandleKey(tt.key, tt.r); cmd != tt.cmd {
				t.Errorf("Expected command %d, got %d", tt.cmd, cmd)
			}
			if got := h.Intent().Direction; got != tt.dir {
				t.Errorf("Expected direction %v, got %v", tt.dir, got)
			}
		})
	}
}

func TestHandler_LatchesFireAndStart(t *testing.T) {
	h := NewHandler(nil)
	h.HandleKey(tcell.KeyRune, 'j')
	h.HandleKey(tcell.KeyRune, ' ')

	in := h.Intent()
	if !in.Fire || !in.Restart {
		t.Errorf("Expected fire and restart latched, got %+v", in)
	}
	in = h.Intent()
	if in.Fire || in.Restart {
		t.Errorf("Expected latches cleared, got %+v", in)
	}
}

func TestHandler_SyncResets(t *testing.T) {
	h := NewHandler(nil)
	h.Sync(core.DirDown, false)
	h.HandleKey(tcell.KeyLeft, 0)

	h.Sync(core.DirNone, true)
	if h.Steering().Committed() != core.DirRight || h.Intent().Direction != core.DirNone {
		t.Error("Expected steering reset on restart")
	}
}

func TestWithOverrides(t *testing.T) {
	base := DefaultKeymap()
	km, err := WithOverrides(base, map[string]string{
		"k":     "up",
		"w":     "none",
		"Space": "fire",
		"F1":    "pause",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := km.Lookup(tcell.KeyRune, 'k'); got != ActionUp {
		t.Errorf("Expected k bound to up, got %v", got)
	}
	if got := km.Lookup(tcell.KeyRune, 'w'); got != ActionNone {
		t.Errorf("Expected w unbound, got %v", got)
	}
	if got := km.Lookup(tcell.KeyRune, ' '); got != ActionFire {
		t.Errorf("Expected space bound to fire, got %v", got)
	}
	if got := km.Lookup(tcell.KeyF1, 0); got != ActionPause {
		t.Errorf("Expected F1 bound to pause, got %v", got)
	}
	if got := base.Lookup(tcell.KeyRune, 'w'); got != ActionUp {
		t.Error("Expected base keymap untouched")
	}
}

func TestWithOverrides_Errors(t *testing.T) {
	if _, err := WithOverrides(DefaultKeymap(), map[string]string{"x": "jump"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Expected ErrUnknownAction, got %v", err)
	}
	if _, err := WithOverrides(DefaultKeymap(), map[string]string{"hyperkey": "up"}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}
