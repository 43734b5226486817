package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// WriteHTML writes the full map as a standalone HTML page
func WriteHTML(w io.Writer, d *generator.Dungeon) error {
	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon - Screenshot</title>
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
        .subtle {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.0;
            font-size: 12px;
        }
`)
	for _, t := range renderer.AllTiles() {
		html.WriteString(fmt.Sprintf("        .%s { color: %s; }\n", t.Name(), t.Hex()))
	}
	html.WriteString(`    </style>
</head>
<body>
`)

	// Header
	html.WriteString(fmt.Sprintf(`    <div class="header">Seed %d</div>`+"\n", d.Seed))
	html.WriteString(fmt.Sprintf(`    <div class="subtle">%dx%d, %d rooms, %d corridors</div>`+"\n",
		d.Grid.Width(), d.Grid.Height(), len(d.Rooms), len(d.Edges)))

	// Map container
	html.WriteString(`    <div class="map-container">` + "\n")
	renderer.ForEachRow(d, func(_ int, tiles []renderer.Tile) {
		html.WriteString(`        <div class="map-row">`)
		for _, t := range tiles {
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, t.Name(), t.Icon()))
		}
		html.WriteString("</div>\n")
	})
	html.WriteString(`    </div>` + "\n")

	html.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, html.String())
	return err
}

// SaveScreenshotHTML saves the map as a timestamped HTML file in dir and returns its path
func SaveScreenshotHTML(d *generator.Dungeon, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%d-%s.html", d.Seed, timestamp))

	var buf strings.Builder
	if err := WriteHTML(&buf, d); err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(buf.String()), 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return filename, nil
}
