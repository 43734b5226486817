package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/room"
)

func tiny() *generator.Dungeon {
	grid := world.NewGrid[bool](6, 3)
	grid.Fill(world.NewRect(1, 1, 4, 1), true)
	return &generator.Dungeon{
		Seed: 7,
		Rooms: []*room.Room{
			room.New(world.NewRect(0, 0, 3, 3)),
			room.New(world.NewRect(3, 0, 3, 3)),
		},
		Grid:  grid,
		Spawn: 0,
		Exit:  1,
	}
}

func TestCatalog(t *testing.T) {
	assert.Equal(t, "Legend", dynamicGet("LEGEND"))
	assert.Equal(t, "(showing 3 of 9 columns)", dynamicGet("CROPPED", 3, 9))
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{})
	require.NoError(t, r.Render(&buf, tiny()))

	want := "Dungeon 6x3  seed 7  rooms 2  corridors 0\n" +
		"######\n" +
		"#S..E#\n" +
		"######\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_Cropped(t *testing.T) {
	var buf bytes.Buffer
	r := New(Options{Width: 3})
	require.NoError(t, r.Render(&buf, tiny()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "(showing 3 of 6 columns)", lines[1])
	assert.Equal(t, "#S.", lines[3])
}

func TestRender_WidthLargerThanGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Width: 500}).Render(&buf, tiny()))
	assert.NotContains(t, buf.String(), "showing")
}

func TestRender_Legend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(Options{Legend: true}).Render(&buf, tiny()))
	assert.Contains(t, buf.String(), "Legend: # wall  . floor  S spawn  E exit")
}

func TestRender_ColorStripsToPlain(t *testing.T) {
	var plain, colored bytes.Buffer
	require.NoError(t, New(Options{Legend: true}).Render(&plain, tiny()))
	require.NoError(t, New(Options{Color: true, Legend: true}).Render(&colored, tiny()))

	assert.Equal(t, plain.String(), color.ClearCode(colored.String()))
}

func TestFormatText(t *testing.T) {
	r := New(Options{})
	assert.Equal(t, "tile: spawn", r.FormatText("tile: GT{%s}", "spawn"))
	assert.Equal(t, "quiet", r.FormatText("SUBTLE{quiet}"))
	assert.Contains(t, r.FormatText("NOPE{x}"), "function not found")
}

func TestStyleText_NoColor(t *testing.T) {
	r := New(Options{})
	for _, style := range []renderer.TextStyle{renderer.StyleWall, renderer.StyleExit, renderer.StyleHeading} {
		assert.Equal(t, "x", r.StyleText("x", style))
	}
	assert.Equal(t, "tui", r.Name())
}
