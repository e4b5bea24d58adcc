// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"boardwalk/pkg/engine/geom"
	"boardwalk/pkg/game/state"
)

// SaveSnapshotHTML saves the current scene as a standalone HTML file in
// the working directory and returns its path.
func SaveSnapshotHTML(sc *state.Scene) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("snapshot-%s.html", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteSnapshotHTML(f, sc); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteSnapshotHTML writes the scene as an HTML page of absolutely
// positioned colored boxes, one per rectangle, markers before the player
// so stacking matches the render order.
func WriteSnapshotHTML(w io.Writer, sc *state.Scene) error {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Boardwalk - Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .board {
            position: relative;
            background-color: #0f0f1a;
            border-radius: 8px;
        }
        .box {
            position: absolute;
        }
    </style>
</head>
<body>
`)

	html.WriteString(fmt.Sprintf("    <div class=\"header\">Boardwalk %dx%d</div>\n", sc.Width, sc.Height))
	html.WriteString(fmt.Sprintf("    <div class=\"board\" style=\"width:%dpx;height:%dpx\">\n", sc.Width, sc.Height))

	for _, m := range sc.Markers() {
		html.WriteString(boxDiv(m))
	}
	html.WriteString(boxDiv(sc.Player))

	html.WriteString(`    </div>
</body>
</html>
`)

	_, err := io.WriteString(w, html.String())
	return err
}

func boxDiv(r geom.Rect) string {
	return fmt.Sprintf(
		"        <div class=\"box\" style=\"left:%dpx;top:%dpx;width:%dpx;height:%dpx;background-color:#%02x%02x%02x\"></div>\n",
		r.X, r.Y, r.W, r.H, r.Color.R, r.Color.G, r.Color.B)
}
