package state

import (
	"boardwalk/pkg/engine/geom"
)

// Scene is the complete board state: one mutable player rectangle and two
// fixed lists of decorative markers. The player is owned exclusively by
// the scene and mutated only through gameplay.Move; the marker slices are
// set once at construction and never change.
type Scene struct {
	Player geom.Rect

	Snakes  []geom.Rect
	Ladders []geom.Rect

	// Surface dimensions in pixels.
	Width  int
	Height int

	// Step is the distance one direction signal moves the player.
	Step int

	Messages []string

	// Quitting is set when the player asks to leave; the run loop
	// checks it after every handled intent.
	Quitting bool
}

// New creates a scene with the given surface dimensions and step size.
// Entities are added by the caller (see gameplay.BuildScene).
func New(width, height, step int) *Scene {
	return &Scene{
		Width:    width,
		Height:   height,
		Step:     step,
		Messages: make([]string, 0),
	}
}

// AddMessage adds a message to the scene's message log
func (sc *Scene) AddMessage(msg string) {
	const maxMessages = 5
	sc.Messages = append(sc.Messages, msg)

	// Keep only the last maxMessages
	if len(sc.Messages) > maxMessages {
		sc.Messages = sc.Messages[len(sc.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (sc *Scene) ClearMessages() {
	sc.Messages = make([]string, 0)
}

// Markers returns all decorative rectangles in draw order: snakes first,
// then ladders. The player is not included; it always draws last.
func (sc *Scene) Markers() []geom.Rect {
	markers := make([]geom.Rect, 0, len(sc.Snakes)+len(sc.Ladders))
	markers = append(markers, sc.Snakes...)
	markers = append(markers, sc.Ladders...)
	return markers
}
