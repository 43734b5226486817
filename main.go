// Package main provides a CLI that generates organic dungeons and prints, dumps or
// previews them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"dungeongen/pkg/engine/random"
	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/ebiten"
	"dungeongen/pkg/game/renderer/tui"
	"dungeongen/pkg/platform/config"
)

// cliFlags holds the flags that are not generator options
type cliFlags struct {
	dump    string
	png     string
	html    string
	scale   int
	window  bool
	color   bool
	legend  bool
	quiet   bool
	verbose bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	// Environment first, flags override
	opts := generator.DefaultOptions()
	if err := config.ParseEnvPrefix(&opts, config.EnvPrefix); err != nil {
		return err
	}

	var cli cliFlags
	fs := flag.NewFlagSet("dungeongen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed for reproducibility (0 = random)")
	fs.IntVar(&opts.Width, "width", opts.Width, "grid width")
	fs.IntVar(&opts.Height, "height", opts.Height, "grid height")
	fs.IntVar(&opts.Splits, "splits", opts.Splits, "partition depth (2^splits rooms)")
	fs.Float64Var(&opts.Shrink.Min, "shrink-min", opts.Shrink.Min, "minimum per-side room shrink fraction")
	fs.Float64Var(&opts.Shrink.Max, "shrink-max", opts.Shrink.Max, "maximum per-side room shrink fraction")
	fs.IntVar(&opts.Steps, "steps", opts.Steps, "automaton steps")
	fs.IntVar(&opts.DeathLimit, "death", opts.DeathLimit, "alive cells with fewer neighbours die")
	fs.IntVar(&opts.BirthLimit, "birth", opts.BirthLimit, "dead cells with more neighbours are born")
	fs.Float64Var(&opts.InitialChance, "chance", opts.InitialChance, "chance a seeded cell starts as wall")
	fs.IntVar(&opts.RoomBoundaryDistance, "room-boundary", opts.RoomBoundaryDistance, "seeded band around rooms")
	fs.IntVar(&opts.PathBoundaryDistance, "path-boundary", opts.PathBoundaryDistance, "seeded band around corridors")
	fs.Float64Var(&opts.FinishPercentile, "finish", opts.FinishPercentile, "distance rank fraction the exit is drawn above")

	fs.StringVar(&cli.dump, "dump", "", "write a debug dump to this path")
	fs.StringVar(&cli.png, "png", "", "write a PNG raster to this path")
	fs.StringVar(&cli.html, "html", "", "write an HTML screenshot into this directory")
	fs.IntVar(&cli.scale, "scale", 4, "pixels per cell for -png and -window")
	fs.BoolVar(&cli.window, "window", false, "open an interactive preview window")
	fs.BoolVar(&cli.color, "color", terminal.IsTerminal(stdout), "colour terminal output")
	fs.BoolVar(&cli.legend, "legend", false, "print a symbol legend")
	fs.BoolVar(&cli.quiet, "q", false, "do not print the map")
	fs.BoolVar(&cli.verbose, "v", false, "verbose output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	seed, err := random.Resolve(opts.Seed)
	if err != nil {
		return err
	}
	opts.Seed = seed
	logger.Debug("options", "seed", opts.Seed, "width", opts.Width, "height", opts.Height, "splits", opts.Splits, "steps", opts.Steps)

	if cli.window {
		preview := ebiten.New(generator.DefaultGenerator, opts, cli.scale)
		preview.OnGenerate = func(d *generator.Dungeon) {
			logger.Info("generated", "seed", d.Seed, "rooms", len(d.Rooms))
		}
		return preview.Run()
	}

	d, err := generator.Generate(opts)
	if err != nil {
		return err
	}
	logger.Debug("generated", "generator", generator.DefaultGenerator.Name(), "seed", d.Seed, "rooms", len(d.Rooms), "edges", len(d.Edges))

	if err := generator.Validate(d); err != nil {
		logger.Warn("dungeon failed validation", "seed", d.Seed, "err", err)
	}

	if !cli.quiet {
		r := tui.New(tui.Options{Color: cli.color, Legend: cli.legend})
		if err := r.Render(stdout, d); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	return writeArtifacts(logger, d, cli)
}

// writeArtifacts writes the files requested by flags
func writeArtifacts(logger *slog.Logger, d *generator.Dungeon, cli cliFlags) error {
	if cli.dump != "" {
		path, err := devtools.DumpToFile(d, cli.dump)
		if err != nil {
			return fmt.Errorf("dump: %w", err)
		}
		logger.Info("wrote dump", "path", path)
	}

	if cli.png != "" {
		f, err := os.Create(cli.png)
		if err != nil {
			return fmt.Errorf("png: %w", err)
		}
		defer f.Close()
		if err := renderer.WritePNG(f, d, cli.scale); err != nil {
			return err
		}
		logger.Info("wrote png", "path", cli.png)
	}

	if cli.html != "" {
		path, err := devtools.SaveScreenshotHTML(d, cli.html)
		if err != nil {
			return err
		}
		logger.Info("wrote html", "path", path)
	}
	return nil
}
