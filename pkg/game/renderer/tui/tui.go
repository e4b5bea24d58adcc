// Package tui is the terminal rendering backend. The pixel scene is
// rendered into an in-memory buffer and scaled down to character cells,
// one cell per movement step, painted with background colors.
package tui

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	engineinput "boardwalk/pkg/engine/input"
	"boardwalk/pkg/game/config"
	"boardwalk/pkg/game/renderer"
	"boardwalk/pkg/game/state"
	"boardwalk/pkg/game/surface"
)

// Fallback terminal dimensions when the size cannot be determined.
const (
	DefaultTermWidth  = 80
	DefaultTermHeight = 24
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorHeader color.Style
	colorSubtle color.Style

	buf *surface.Buffer

	// cellWidth is the number of characters per board cell; wide
	// terminals get 2 so cells look square.
	cellWidth int
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, cell width)
func (t *TUIRenderer) Init() {
	t.colorHeader = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.cellWidth = 2
}

// RenderFrame renders a complete frame: the board grid scaled to
// character cells, then the message log and key help.
func (t *TUIRenderer) RenderFrame(sc *state.Scene) {
	if t.buf == nil {
		t.buf = surface.NewBuffer(sc.Width, sc.Height, config.BackgroundColor)
	}
	renderer.Render(t.buf, sc)

	t.clear()
	t.colorHeader.Println(gotext.Get("Boardwalk"))
	fmt.Println()

	scale := sc.Step
	if scale <= 0 {
		scale = config.StepSize
	}
	cols := sc.Width / scale
	rows := sc.Height / scale

	cellWidth := t.cellWidth
	if termWidth, _ := termSize(); cols*t.cellWidth > termWidth {
		cellWidth = 1
	}

	// Sample the pixel buffer at each cell center.
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := t.buf.At(col*scale+scale/2, row*scale+scale/2)
			bg := color.RGB(c.R, c.G, c.B, true)
			fmt.Print(bg.Sprint(spaces(cellWidth)))
		}
		fmt.Println()
	}

	fmt.Println()
	for _, msg := range sc.Messages {
		fmt.Println(msg)
	}
	t.colorSubtle.Println(gotext.Get("arrows/hjkl move, r rolls, p snapshot, q quits"))
}

// GetInput gets one key press from the terminal and returns its Intent.
func (t *TUIRenderer) GetInput() engineinput.Intent {
	raw := engineinput.RawInput{
		Device: engineinput.DeviceTerminal,
		Code:   engineinput.GetKey(),
		// Timestamp left zero; terminal input is inherently low frequency.
	}
	debounced := engineinput.NewDebouncedInput(raw)
	return engineinput.MapToIntent(debounced)
}

// Close clears the screen on exit
func (t *TUIRenderer) Close() {
	t.clear()
}

// clear clears the terminal screen
func (t *TUIRenderer) clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// termSize returns the terminal dimensions, falling back to defaults if
// they cannot be determined.
func termSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultTermWidth, DefaultTermHeight
	}
	return width, height
}

func spaces(n int) string {
	if n <= 1 {
		return " "
	}
	return "  "
}
