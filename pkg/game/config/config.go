// Package config holds the board dimensions, entity sizes and colors, with
// optional overrides from the environment.
package config

import (
	"image/color"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Surface and entity defaults, in pixels.
const (
	DefaultWidth  = 400
	DefaultHeight = 400
	EntitySize    = 20
	StepSize      = 20
)

// Predefined Colors
var (
	BackgroundColor = color.RGBA{R: 15, G: 15, B: 26, A: 255}
	PlayerColor     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	SnakeColor      = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LadderColor     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// SnakeSpawns and LadderSpawns are the fixed marker positions (top-left
// pixel coordinates).
var (
	SnakeSpawns  = [][2]int{{100, 100}, {200, 200}}
	LadderSpawns = [][2]int{{150, 150}, {250, 250}}
)

// Config carries the tunable settings for one run.
type Config struct {
	Width  int // Surface width in pixels
	Height int // Surface height in pixels
	Step   int // Pixels moved per direction signal
}

// Load reads settings from a .env file (if present) and the environment,
// falling back to the defaults above.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded settings from .env")
	}

	return Config{
		Width:  envInt("BOARDWALK_WIDTH", DefaultWidth),
		Height: envInt("BOARDWALK_HEIGHT", DefaultHeight),
		Step:   envInt("BOARDWALK_STEP", StepSize),
	}
}

// envInt reads a positive integer from the environment, returning fallback
// for missing or malformed values.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Warnf("Ignoring %s=%q: want a positive integer", key, v)
		return fallback
	}
	return n
}
