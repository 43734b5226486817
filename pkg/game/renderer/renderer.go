// Package renderer turns a generated dungeon into tiles, text and pixels.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
)

// Icon constants
const (
	IconWall  = "#"
	IconFloor = "."
	IconSpawn = "S"
	IconExit  = "E"
)

// Tile is what a single cell shows
type Tile int

const (
	TileWall Tile = iota
	TileFloor
	TileSpawn
	TileExit
)

// AllTiles lists tiles in legend order
func AllTiles() []Tile {
	return []Tile{TileWall, TileFloor, TileSpawn, TileExit}
}

// Icon returns the text symbol for a tile
func (t Tile) Icon() string {
	switch t {
	case TileFloor:
		return IconFloor
	case TileSpawn:
		return IconSpawn
	case TileExit:
		return IconExit
	default:
		return IconWall
	}
}

// Style returns the text style a tile is drawn with
func (t Tile) Style() TextStyle {
	switch t {
	case TileFloor:
		return StyleFloor
	case TileSpawn:
		return StyleSpawn
	case TileExit:
		return StyleExit
	default:
		return StyleWall
	}
}

// Name returns the lowercase name of the tile
func (t Tile) Name() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileSpawn:
		return "spawn"
	case TileExit:
		return "exit"
	default:
		return "wall"
	}
}

// Palette maps tiles to raster colours
var Palette = map[Tile]color.RGBA{
	TileWall:  {R: 0x0f, G: 0x0f, B: 0x1a, A: 0xff},
	TileFloor: {R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff},
	TileSpawn: {R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	TileExit:  {R: 0xff, G: 0x44, B: 0x44, A: 0xff},
}

// Hex returns the palette colour of a tile as #rrggbb
func (t Tile) Hex() string {
	c := Palette[t]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// TileAt returns the tile at a position. The spawn and exit overlay the grid.
func TileAt(d *generator.Dungeon, x, y int) Tile {
	p := world.Point{X: x, Y: y}
	switch {
	case p == d.SpawnCell():
		return TileSpawn
	case p == d.ExitCell():
		return TileExit
	case d.Passable(p):
		return TileFloor
	default:
		return TileWall
	}
}

// ForEachRow calls fn once per row, north first, with the tiles of that row west to east
func ForEachRow(d *generator.Dungeon, fn func(y int, tiles []Tile)) {
	w, h := d.Grid.Width(), d.Grid.Height()
	row := make([]Tile, w)
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			row[x] = TileAt(d, x, y)
		}
		fn(y, row)
	}
}

// Text returns the dungeon as rows of icons, north first
func Text(d *generator.Dungeon) string {
	var sb strings.Builder
	ForEachRow(d, func(_ int, tiles []Tile) {
		for _, t := range tiles {
			sb.WriteString(t.Icon())
		}
		sb.WriteByte('\n')
	})
	return sb.String()
}

// PlainRenderer writes uncoloured icons
type PlainRenderer struct{}

// Name returns the name of this renderer
func (PlainRenderer) Name() string {
	return "plain"
}

// Render writes the dungeon as text
func (PlainRenderer) Render(w io.Writer, d *generator.Dungeon) error {
	_, err := io.WriteString(w, Text(d))
	return err
}

// Image rasterizes the dungeon with every cell drawn as a scale x scale block, north up
func Image(d *generator.Dungeon, scale int) *image.RGBA {
	scale = max(scale, 1)
	w, h := d.Grid.Width(), d.Grid.Height()
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))

	ForEachRow(d, func(y int, tiles []Tile) {
		py := (h - 1 - y) * scale
		for x, t := range tiles {
			c := Palette[t]
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, py+dy, c)
				}
			}
		}
	})
	return img
}

// WritePNG encodes the raster of d to w
func WritePNG(w io.Writer, d *generator.Dungeon, scale int) error {
	if err := png.Encode(w, Image(d, scale)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
