package gameplay

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"boardwalk/pkg/engine/geom"
	engineinput "boardwalk/pkg/engine/input"
	"boardwalk/pkg/game/devtools"
	"boardwalk/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system and reports whether the scene needs a redraw. Unrecognized
// input (ActionNone) is a silent no-op: no movement, no redraw.
// Handling is synchronous and runs to completion before the next intent.
func ProcessIntent(sc *state.Scene, intent engineinput.Intent) bool {
	switch intent.Action {
	case engineinput.ActionNone:
		return false

	case engineinput.ActionQuit:
		sc.Quitting = true
		return false

	case engineinput.ActionMoveNorth:
		MoveDirection(sc, geom.North)
		return true

	case engineinput.ActionMoveSouth:
		MoveDirection(sc, geom.South)
		return true

	case engineinput.ActionMoveWest:
		MoveDirection(sc, geom.West)
		return true

	case engineinput.ActionMoveEast:
		MoveDirection(sc, geom.East)
		return true

	case engineinput.ActionRoll:
		roll := rand.Intn(6) + 1
		Move(sc, roll, 0)
		sc.AddMessage(gotext.Get("Rolled a %d", roll))
		log.WithField("roll", roll).Debug("Dice roll")
		return true

	case engineinput.ActionSnapshot:
		path, err := devtools.SaveSnapshotHTML(sc)
		if err != nil {
			sc.AddMessage(gotext.Get("Snapshot failed: %v", err))
		} else {
			sc.AddMessage(gotext.Get("Snapshot saved to %s", path))
		}
		return true
	}

	return false
}
