package input

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode"
)

// Action is a non-movement command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionReset
	ActionMute
)

var actionNames = map[string]Action{
	"quit":  ActionQuit,
	"pause": ActionPause,
	"reset": ActionReset,
	"mute":  ActionMute,
}

func (a Action) String() string {
	for name, bound := range actionNames {
		if bound == a {
			return name
		}
	}
	return "none"
}

var keyNames = map[string]Key{
	"up":    KeyW,
	"left":  KeyA,
	"down":  KeyS,
	"right": KeyD,
}

// KeyTable maps runes to movement keys and actions
// Lookups are case-insensitive
type KeyTable struct {
	Movement map[rune]Key
	Actions  map[rune]Action
}

// DefaultKeyTable returns the W/A/S/D layout with p/r/m/q actions
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Movement: map[rune]Key{
			'w': KeyW,
			'a': KeyA,
			's': KeyS,
			'd': KeyD,
		},
		Actions: map[rune]Action{
			'q': ActionQuit,
			'p': ActionPause,
			'r': ActionReset,
			'm': ActionMute,
		},
	}
}

// MovementKey returns the movement key bound to r
func (t *KeyTable) MovementKey(r rune) (Key, bool) {
	k, ok := t.Movement[unicode.ToLower(r)]
	return k, ok
}

// Action returns the action bound to r
func (t *KeyTable) Action(r rune) Action {
	return t.Actions[unicode.ToLower(r)]
}

// ErrKeyConflict is returned when a keymap binds one character to two names
var ErrKeyConflict = errors.New("keymap: key already bound")

// Apply overrides bindings from a name -> key string map
// Names are movement directions (up, left, down, right) or actions
// (quit, pause, reset, mute); values are single characters
// Overridden names first lose their old key, then every new key must be free in both tables,
// so swaps work and the result does not depend on map order
// On error the table is left unchanged
func (t *KeyTable) Apply(bindings map[string]string) error {
	names := slices.Sorted(maps.Keys(bindings))

	movement := maps.Clone(t.Movement)
	actions := maps.Clone(t.Actions)
	runes := make(map[string]rune, len(names))

	for _, name := range names {
		value := []rune(bindings[name])
		if len(value) != 1 {
			return fmt.Errorf("keymap %q: binding must be a single character, got %q", name, bindings[name])
		}
		runes[name] = unicode.ToLower(value[0])

		if k, ok := keyNames[name]; ok {
			maps.DeleteFunc(movement, func(_ rune, bound Key) bool { return bound == k })
			continue
		}
		if a, ok := actionNames[name]; ok {
			maps.DeleteFunc(actions, func(_ rune, bound Action) bool { return bound == a })
			continue
		}
		return fmt.Errorf("keymap: unknown binding name %q", name)
	}

	for _, name := range names {
		r := runes[name]
		if k, ok := movement[r]; ok {
			return fmt.Errorf("%w: %q for %q is bound to movement %v", ErrKeyConflict, string(r), name, k)
		}
		if a, ok := actions[r]; ok {
			return fmt.Errorf("%w: %q for %q is bound to action %v", ErrKeyConflict, string(r), name, a)
		}
		if k, ok := keyNames[name]; ok {
			movement[r] = k
		} else {
			actions[r] = actionNames[name]
		}
	}

	t.Movement = movement
	t.Actions = actions
	return nil
}
