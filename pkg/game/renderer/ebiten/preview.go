// Package ebiten provides an Ebiten window that previews generated dungeons.
package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
)

// Preview shows one dungeon at a time. R regenerates with the next seed, Esc quits.
type Preview struct {
	gen   generator.DungeonGenerator
	opts  generator.Options
	scale int

	dungeon *generator.Dungeon
	frame   *ebiten.Image

	// OnGenerate is called after every successful generation
	OnGenerate func(d *generator.Dungeon)
}

// New creates a preview for gen. scale is the pixel size of one cell.
func New(gen generator.DungeonGenerator, opts generator.Options, scale int) *Preview {
	return &Preview{gen: gen, opts: opts, scale: max(scale, 1)}
}

// Run generates the first dungeon and blocks until the window is closed
func (p *Preview) Run() error {
	if err := p.regenerate(); err != nil {
		return err
	}

	ebiten.SetWindowSize(p.opts.Width*p.scale, p.opts.Height*p.scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Dungeon - %s", p.gen.Name()))
	return ebiten.RunGame(p)
}

func (p *Preview) regenerate() error {
	d, err := p.gen.Generate(p.opts)
	if err != nil {
		return fmt.Errorf("generate seed %d: %w", p.opts.Seed, err)
	}
	p.dungeon = d
	p.frame = ebiten.NewImageFromImage(renderer.Image(d, p.scale))
	if p.OnGenerate != nil {
		p.OnGenerate(d)
	}
	return nil
}

// Update handles input (Ebiten interface)
func (p *Preview) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.opts.Seed++
		return p.regenerate()
	}
	return nil
}

// Draw paints the current dungeon (Ebiten interface)
func (p *Preview) Draw(screen *ebiten.Image) {
	screen.DrawImage(p.frame, nil)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("seed %d  rooms %d  [R] next  [Esc] quit", p.dungeon.Seed, len(p.dungeon.Rooms)))
}

// Layout returns the logical screen size (Ebiten interface)
func (p *Preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.opts.Width * p.scale, p.opts.Height * p.scale
}
