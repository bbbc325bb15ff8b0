// Package input maps terminal key events onto steering, fire and start
// intents for the engine plus a few frontend commands.
package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/shooter-snake/core"
)

// Action is what a bound key does
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionFire
	ActionStart
	ActionPause
	ActionMute
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:  "none",
	ActionUp:    "up",
	ActionDown:  "down",
	ActionLeft:  "left",
	ActionRight: "right",
	ActionFire:  "fire",
	ActionStart: "start",
	ActionPause: "pause",
	ActionMute:  "mute",
	ActionQuit:  "quit",
}

// Sentinel errors
var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

func (a Action) String() string {
	if a >= actionCount {
		return fmt.Sprintf("action(%d)", uint8(a))
	}
	return actionNames[a]
}

// ParseAction resolves an action name, case-insensitive
// "none" is valid and unbinds a key
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Direction returns the steering direction for movement actions
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.DirUp, true
	case ActionDown:
		return core.DirDown, true
	case ActionLeft:
		return core.DirLeft, true
	case ActionRight:
		return core.DirRight, true
	}
	return core.DirNone, false
}
