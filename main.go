package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"boardwalk/pkg/game/config"
	"boardwalk/pkg/game/gameplay"
	"boardwalk/pkg/game/renderer"
	ebitenrenderer "boardwalk/pkg/game/renderer/ebiten"
	"boardwalk/pkg/game/renderer/tui"
	"boardwalk/pkg/game/state"
)

func initGotext() {
	gotext.Configure("mo", "en_GB", "default")
}

func main() {
	rendererName := flag.String("renderer", "tui", "Rendering backend: tui or ebiten")
	seed := flag.Int64("seed", 0, "Dice seed (0 = time-based)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	initGotext()

	cfg := config.Load()
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	sc := gameplay.BuildScene(cfg, *seed)
	sc.AddMessage(gotext.Get("Welcome to Boardwalk!"))

	log.WithFields(log.Fields{
		"renderer": *rendererName,
		"width":    cfg.Width,
		"height":   cfg.Height,
	}).Debug("Starting")

	switch *rendererName {
	case "ebiten":
		if err := ebitenrenderer.Run(sc); err != nil {
			log.Fatalf("Renderer failed: %v", err)
		}
	case "tui":
		runTUI(sc)
	default:
		log.Fatalf("Unknown renderer: %s", *rendererName)
	}

	fmt.Println(gotext.Get("Goodbye!"))
}

// runTUI drives the synchronous terminal loop: one key press at a time,
// handled to completion before the next is read.
func runTUI(sc *state.Scene) {
	renderer.SetRenderer(tui.New())
	renderer.Init()

	// Initial render happens once at startup, outside any event.
	renderer.RenderFrame(sc)

	for !sc.Quitting {
		intent := renderer.GetInput()
		if gameplay.ProcessIntent(sc, intent) {
			renderer.RenderFrame(sc)
		}
	}

	renderer.Close()
}
