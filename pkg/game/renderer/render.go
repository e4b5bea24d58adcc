package renderer

import (
	"boardwalk/pkg/game/state"
	"boardwalk/pkg/game/surface"
)

// Render paints the scene onto the surface: clear everything, markers in
// list order, player last so it always draws on top. Rendering with an
// unchanged scene is idempotent.
func Render(s surface.Surface, sc *state.Scene) {
	w, h := s.Size()
	s.Clear(0, 0, w, h)

	for _, m := range sc.Markers() {
		s.FillRect(m.X, m.Y, m.W, m.H, m.Color)
	}

	p := sc.Player
	s.FillRect(p.X, p.Y, p.W, p.H, p.Color)
}
