package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// keysByName indexes tcell's own key names, lowercased ("up", "esc", "ctrl-c")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Keymap resolves key events to actions
// Special keys and runes are kept apart the way tcell reports them
type Keymap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// DefaultKeymap binds arrows and WASD to steering, J to fire, Space to start,
// P to pause, M to mute and Q or Esc to quit
func DefaultKeymap() *Keymap {
	return &Keymap{
		keys: map[tcell.Key]Action{
			tcell.KeyUp:     ActionUp,
			tcell.KeyDown:   ActionDown,
			tcell.KeyLeft:   ActionLeft,
			tcell.KeyRight:  ActionRight,
			tcell.KeyEnter:  ActionStart,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
		runes: map[rune]Action{
			'w': ActionUp,
			's': ActionDown,
			'a': ActionLeft,
			'd': ActionRight,
			'j': ActionFire,
			' ': ActionStart,
			'p': ActionPause,
			'm': ActionMute,
			'q': ActionQuit,
		},
	}
}

// Clone returns an independent copy
func (km *Keymap) Clone() *Keymap {
	return &Keymap{keys: maps.Clone(km.keys), runes: maps.Clone(km.runes)}
}

// Lookup returns the action for a key; runes match case-insensitively
func (km *Keymap) Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		if a, ok := km.runes[r]; ok {
			return a
		}
		return km.runes[lowerRune(r)]
	}
	return km.keys[key]
}

// Bind assigns an action to a named key; ActionNone removes the binding
func (km *Keymap) Bind(name string, action Action) error {
	key, r, err := resolveKey(name)
	if err != nil {
		return err
	}
	if key == tcell.KeyRune {
		if action == ActionNone {
			delete(km.runes, r)
		} else {
			km.runes[r] = action
		}
		return nil
	}
	if action == ActionNone {
		delete(km.keys, key)
	} else {
		km.keys[key] = action
	}
	return nil
}

// WithOverrides returns a copy of base with the name → action bindings applied
// Errors name the offending entry; base is never modified
func WithOverrides(base *Keymap, bindings map[string]string) (*Keymap, error) {
	km := base.Clone()
	for name, actionName := range bindings {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		if err := km.Bind(name, action); err != nil {
			return nil, err
		}
	}
	return km, nil
}

// resolveKey converts a config key name to a tcell key or rune
// Accepts tcell key names, aliases and single characters
func resolveKey(name string) (tcell.Key, rune, error) {
	lower := strings.ToLower(strings.TrimSpace(name))

	if r, ok := runeAliases[lower]; ok {
		return tcell.KeyRune, r, nil
	}
	if utf8.RuneCountInString(lower) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return tcell.KeyRune, r, nil
	}
	if k, ok := keysByName[lower]; ok && k != tcell.KeyRune {
		return k, 0, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
