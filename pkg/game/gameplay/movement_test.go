// Package gameplay provides the core logic for player movement and intent
// handling.
package gameplay

import (
	"testing"

	"boardwalk/pkg/engine/geom"
	"boardwalk/pkg/game/config"
	"boardwalk/pkg/game/state"
)

// makeScene builds a 400x400 scene with a 20x20 player at the origin.
func makeScene(t *testing.T) *state.Scene {
	t.Helper()
	sc := state.New(400, 400, 20)
	sc.Player = geom.NewRect(0, 0, 20, 20, config.PlayerColor)
	return sc
}

func TestMove_SimpleStep(t *testing.T) {
	sc := makeScene(t)
	Move(sc, 20, 0)
	if sc.Player.X != 20 || sc.Player.Y != 0 {
		t.Errorf("after Move(20, 0): position = (%d, %d), want (20, 0)", sc.Player.X, sc.Player.Y)
	}
}

func TestMove_ClampsAtOrigin(t *testing.T) {
	sc := makeScene(t)
	Move(sc, -20, 0)
	Move(sc, 0, -20)
	if sc.Player.X != 0 || sc.Player.Y != 0 {
		t.Errorf("after left+up at origin: position = (%d, %d), want (0, 0)", sc.Player.X, sc.Player.Y)
	}
}

func TestMove_ClampsAtFarEdge(t *testing.T) {
	sc := makeScene(t)
	sc.Player.X, sc.Player.Y = 390, 0
	Move(sc, 20, 0)
	if sc.Player.X != 380 || sc.Player.Y != 0 {
		t.Errorf("after right from (390, 0): position = (%d, %d), want (380, 0)", sc.Player.X, sc.Player.Y)
	}
}

func TestMove_SequenceRightRightDown(t *testing.T) {
	sc := makeScene(t)
	MoveDirection(sc, geom.East)
	MoveDirection(sc, geom.East)
	MoveDirection(sc, geom.South)
	if sc.Player.X != 40 || sc.Player.Y != 20 {
		t.Errorf("after [right, right, down]: position = (%d, %d), want (40, 20)", sc.Player.X, sc.Player.Y)
	}
}

func TestMove_TotalForAnyDelta(t *testing.T) {
	deltas := []struct{ dx, dy int }{
		{0, 0},
		{1000000, 1000000},
		{-1000000, -1000000},
		{400, -400},
		{-1, 1},
		{381, 0},
	}
	starts := []struct{ x, y int }{
		{0, 0}, {380, 380}, {100, 300}, {380, 0},
	}
	for _, start := range starts {
		for _, d := range deltas {
			sc := makeScene(t)
			sc.Player.X, sc.Player.Y = start.x, start.y
			Move(sc, d.dx, d.dy)
			if sc.Player.X < 0 || sc.Player.X > 380 {
				t.Errorf("Move(%d, %d) from (%d, %d): X = %d, want within [0, 380]",
					d.dx, d.dy, start.x, start.y, sc.Player.X)
			}
			if sc.Player.Y < 0 || sc.Player.Y > 380 {
				t.Errorf("Move(%d, %d) from (%d, %d): Y = %d, want within [0, 380]",
					d.dx, d.dy, start.x, start.y, sc.Player.Y)
			}
		}
	}
}

func TestMove_AxesClampIndependently(t *testing.T) {
	sc := makeScene(t)
	sc.Player.X, sc.Player.Y = 380, 100
	Move(sc, 20, 20)
	if sc.Player.X != 380 || sc.Player.Y != 120 {
		t.Errorf("position = (%d, %d), want (380, 120): X clamps, Y moves", sc.Player.X, sc.Player.Y)
	}
}

func TestMove_LeavesMarkersUntouched(t *testing.T) {
	cfg := config.Config{Width: 400, Height: 400, Step: 20}
	sc := BuildScene(cfg, 1)
	snakes := make([]geom.Rect, len(sc.Snakes))
	copy(snakes, sc.Snakes)

	Move(sc, 100, 100)

	for i, s := range sc.Snakes {
		if s != snakes[i] {
			t.Errorf("snake %d changed after Move: %+v, want %+v", i, s, snakes[i])
		}
	}
}
