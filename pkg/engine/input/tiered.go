package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Meta
	ActionRoll
	ActionSnapshot
	ActionQuit
)

// Intent is the high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "KeyUp", "arrow_up", "right").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the representation after debouncing/deduplication.
// Both backends already deliver one discrete event per key press, but the
// distinct type keeps the layering explicit and extensible.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions. Multiple codes may point to the
// same Action. The "up"/"down"/"left"/"right" codes are the named
// direction signals delivered by the event source; arrows and Vim keys
// are terminal conveniences.
var bindings = map[string]Action{
	// Movement (named signals, arrows, Vim)
	"up":          ActionMoveNorth,
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"down":        ActionMoveSouth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"left":        ActionMoveWest,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"right":       ActionMoveEast,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	// Dice roll
	"r":    ActionRoll,
	"roll": ActionRoll,

	// Snapshot dump
	"p":        ActionSnapshot,
	"snapshot": ActionSnapshot,

	// Quit
	"q":    ActionQuit,
	"quit": ActionQuit,
}

// reservedCodes are bindings that can never be remapped away: the named
// direction signals and the arrow keys always work.
var reservedCodes = buildReservedCodes()

func buildReservedCodes() mapset.Set[string] {
	s := mapset.New[string]()
	for _, code := range []string{
		"up", "down", "left", "right",
		"arrow_up", "arrow_down", "arrow_left", "arrow_right",
	} {
		s.Put(code)
	}
	return s
}

// MapToIntent applies the current bindings to a debounced input and
// returns a high-level Intent. Unbound codes map to ActionNone.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionRoll:
		return "Roll Dice"
	case ActionSnapshot:
		return "Snapshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved bindings for the given
// action with a single code. Reserved codes keep their bindings.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes.Has(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes.Has(code) {
		bindings[code] = action
	}
}
