package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/engine"
)

// Command is a frontend action that never reaches the engine
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandPause
	CommandMute
	CommandResize
)

// Handler turns key events into per-tick engine intents
// Fire and start are latched until the next Intent call
// The game loop drains Intent every frame, paused or not, so a fire latched
// during a pause is dropped rather than replayed on resume
type Handler struct {
	keymap   *Keymap
	steering *Steering
	fire     bool
	start    bool
}

// NewHandler creates a handler; nil keymap means the defaults
func NewHandler(km *Keymap) *Handler {
	if km == nil {
		km = DefaultKeymap()
	}
	return &Handler{keymap: km, steering: NewSteering()}
}

// SetKeymap swaps bindings, used on config reload
func (h *Handler) SetKeymap(km *Keymap) {
	if km != nil {
		h.keymap = km
	}
}

// Steering exposes the steering buffer
func (h *Handler) Steering() *Steering {
	return h.steering
}

// HandleEvent processes one tcell event
func (h *Handler) HandleEvent(ev tcell.Event) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return CommandResize
	}
	return CommandNone
}

// HandleKey processes one key press
// Ctrl-C always quits regardless of bindings
func (h *Handler) HandleKey(key tcell.Key, r rune) Command {
	if key == tcell.KeyCtrlC {
		return CommandQuit
	}

	action := h.keymap.Lookup(key, r)
	if dir, ok := action.Direction(); ok {
		h.steering.Request(dir)
		return CommandNone
	}

	switch action {
	case ActionFire:
		h.fire = true
	case ActionStart:
		h.start = true
	case ActionPause:
		return CommandPause
	case ActionMute:
		return CommandMute
	case ActionQuit:
		return CommandQuit
	}
	return CommandNone
}

// Intent drains latched input into one tick's intent
func (h *Handler) Intent() engine.Intent {
	in := engine.Intent{
		Direction: h.steering.Next(),
		Fire:      h.fire,
		Restart:   h.start,
	}
	h.fire = false
	h.start = false
	return in
}

// Sync feeds the heading the player last moved with back into steering
// A restarted round drops any buffered turn and faces right again
func (h *Handler) Sync(heading core.Direction, restarted bool) {
	if restarted {
		h.steering.Reset()
		return
	}
	h.steering.Commit(heading)
}
