// Package ebiten is the graphical rendering backend, built on the Ebiten
// 2D game library: https://ebiten.org/
//
// Ebiten owns the event loop, so this backend does not implement the
// blocking Renderer interface; Run hands the scene to ebiten.RunGame and
// handles one intent per key press edge inside Update.
package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	engineinput "boardwalk/pkg/engine/input"
	"boardwalk/pkg/game/config"
	"boardwalk/pkg/game/gameplay"
	"boardwalk/pkg/game/renderer"
	"boardwalk/pkg/game/state"
	"boardwalk/pkg/game/surface"
)

// keyCodes maps Ebiten keys to the raw input codes understood by the
// bindings layer.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyK:          "k",
	ebiten.KeyJ:          "j",
	ebiten.KeyH:          "h",
	ebiten.KeyL:          "l",
	ebiten.KeyR:          "r",
	ebiten.KeyP:          "p",
	ebiten.KeyQ:          "q",
}

// imageSurface adapts an *ebiten.Image to the Surface interface.
type imageSurface struct {
	img *ebiten.Image
}

func (s *imageSurface) Size() (w, h int) {
	bounds := s.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (s *imageSurface) Clear(x, y, w, h int) {
	vector.DrawFilledRect(s.img, float32(x), float32(y),
		float32(w), float32(h), config.BackgroundColor, false)
}

func (s *imageSurface) FillRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(s.img, float32(x), float32(y),
		float32(w), float32(h), c, false)
}

// Game drives the scene through Ebiten's update/draw loop.
type Game struct {
	sc *state.Scene
}

// Update handles key press edges; each recognized press is one discrete
// direction signal, processed to completion before the next.
func (g *Game) Update() error {
	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			raw := engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      code,
				Timestamp: time.Now(),
			}
			intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
			gameplay.ProcessIntent(g.sc, intent)
		}
	}

	if g.sc.Quitting {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the scene onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	renderer.Render(&imageSurface{img: screen}, g.sc)
}

// Layout returns the logical screen size: one pixel per board pixel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sc.Width, g.sc.Height
}

// Run opens the window and runs the game loop until the player quits.
func Run(sc *state.Scene) error {
	ebiten.SetWindowSize(sc.Width, sc.Height)
	ebiten.SetWindowTitle(gotext.Get("Boardwalk"))
	return ebiten.RunGame(&Game{sc: sc})
}

var _ surface.Surface = (*imageSurface)(nil)
