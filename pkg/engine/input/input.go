package input

import (
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readArrowKey reads the tail of an arrow key escape sequence.
// Returns the arrow direction code, or empty string for anything else.
func readArrowKey() string {
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	b2, err := readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return ""
	}

	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// GetKey reads one key press from stdin and returns its raw code.
// Arrow keys return immediately as "arrow_*" codes; printable keys
// return their lowercase character. Ctrl+C exits the program.
func GetKey() string {
	// Put terminal into raw mode to detect arrow keys
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		log.Fatalf("Cannot read stdin: %v", err)
		return ""
	}

	switch {
	case b == 0x1b:
		return readArrowKey()
	case b == 3: // Ctrl+C
		term.Restore(int(os.Stdin.Fd()), oldState)
		os.Exit(0)
	case b >= 'A' && b <= 'Z':
		return string(b + 32)
	case b >= 32 && b < 127:
		return string(b)
	}

	return ""
}
