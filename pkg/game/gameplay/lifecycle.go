package gameplay

import (
	"math/rand"

	"boardwalk/pkg/engine/geom"
	"boardwalk/pkg/game/config"
	"boardwalk/pkg/game/state"
)

// BuildScene creates the scene with its literal defaults: the player at
// the top-left corner and the two fixed marker lists. The seed feeds the
// dice roll; pass 0 for a time-based seed (handled by the caller).
func BuildScene(cfg config.Config, seed int64) *state.Scene {
	rand.Seed(seed)

	sc := state.New(cfg.Width, cfg.Height, cfg.Step)
	sc.Player = geom.NewRect(0, 0, config.EntitySize, config.EntitySize, config.PlayerColor)

	for _, pos := range config.SnakeSpawns {
		sc.Snakes = append(sc.Snakes,
			geom.NewRect(pos[0], pos[1], config.EntitySize, config.EntitySize, config.SnakeColor))
	}
	for _, pos := range config.LadderSpawns {
		sc.Ladders = append(sc.Ladders,
			geom.NewRect(pos[0], pos[1], config.EntitySize, config.EntitySize, config.LadderColor))
	}

	return sc
}
