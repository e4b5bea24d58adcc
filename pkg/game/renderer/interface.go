package renderer

import (
	"boardwalk/pkg/engine/input"
	"boardwalk/pkg/game/state"
)

// Renderer defines the interface for rendering backends.
// Implementations include the TUI (terminal) and Ebiten backends.
type Renderer interface {
	// Init initializes the renderer (colors, terminal state, window, etc.)
	Init()

	// RenderFrame renders a complete frame of the scene
	RenderFrame(sc *state.Scene)

	// GetInput blocks until the next key press and returns its Intent
	GetInput() input.Intent

	// Close releases any resources held by the renderer
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// RenderFrame renders a complete frame using the current renderer
func RenderFrame(sc *state.Scene) {
	if Current != nil {
		Current.RenderFrame(sc)
	}
}

// GetInput gets user input from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionNone}
}

// Close closes the current renderer
func Close() {
	if Current != nil {
		Current.Close()
	}
}
