// Package gameplay provides the core logic for player movement and intent
// handling.
package gameplay

import (
	"boardwalk/pkg/engine/geom"
	"boardwalk/pkg/game/state"
)

// Move applies a delta to the player's position and clamps each axis
// independently to the surface bounds, so the player always stays fully
// on the surface. Any delta is accepted; positions that would land far
// outside are pulled back to the nearest edge. Out-of-range movement is
// policy, not an error.
func Move(sc *state.Scene, dx, dy int) {
	sc.Player.X = geom.Clamp(sc.Player.X+dx, 0, sc.Width-sc.Player.W)
	sc.Player.Y = geom.Clamp(sc.Player.Y+dy, 0, sc.Height-sc.Player.H)
}

// MoveDirection moves the player one step in the given direction.
func MoveDirection(sc *state.Scene, d geom.Direction) {
	dx, dy := d.Delta()
	Move(sc, dx*sc.Step, dy*sc.Step)
}
