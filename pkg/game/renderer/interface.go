package renderer

import (
	"io"

	"dungeongen/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleSpawn
	StyleExit
	StyleHeading
	StyleSubtle
)

// Renderer defines the interface for dungeon output backends
// Implementations can include plain text, TUI (terminal colours), etc.
type Renderer interface {
	// Name returns a short identifier for the backend
	Name() string

	// Render writes the whole dungeon to w
	Render(w io.Writer, d *generator.Dungeon) error
}
