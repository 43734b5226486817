package automaton

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is wrapped by every validation failure
var ErrInvalidOptions = errors.New("invalid options")

// Options configures a rasterizer run
type Options struct {
	Seed   int64 `env:"SEED"`
	Width  int   `env:"WIDTH" envDefault:"100"`
	Height int   `env:"HEIGHT" envDefault:"60"`

	// An alive cell with fewer live neighbours than DeathLimit dies
	DeathLimit int `env:"DEATH_LIMIT" envDefault:"3"`
	// A dead cell with more live neighbours than BirthLimit is born
	BirthLimit int `env:"BIRTH_LIMIT" envDefault:"4"`

	// InitialChance is the chance that a seeded cell starts dead
	InitialChance float64 `env:"INITIAL_CHANCE" envDefault:"0.45"`

	RoomBoundaryDistance int `env:"ROOM_BOUNDARY" envDefault:"2"`
	PathBoundaryDistance int `env:"PATH_BOUNDARY" envDefault:"2"`
	Steps                int `env:"STEPS" envDefault:"4"`
}

// Validate returns every problem with the options joined together, or nil
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalidOptions, o.Width, o.Height))
	}
	if o.InitialChance < 0 || o.InitialChance > 1 {
		errs = append(errs, fmt.Errorf("%w: initial chance %v outside [0,1]", ErrInvalidOptions, o.InitialChance))
	}
	if o.DeathLimit < 0 || o.DeathLimit > 8 {
		errs = append(errs, fmt.Errorf("%w: death limit %d outside [0,8]", ErrInvalidOptions, o.DeathLimit))
	}
	if o.BirthLimit < 0 || o.BirthLimit > 8 {
		errs = append(errs, fmt.Errorf("%w: birth limit %d outside [0,8]", ErrInvalidOptions, o.BirthLimit))
	}
	if o.RoomBoundaryDistance < 0 {
		errs = append(errs, fmt.Errorf("%w: room boundary distance %d is negative", ErrInvalidOptions, o.RoomBoundaryDistance))
	}
	if o.PathBoundaryDistance < 0 {
		errs = append(errs, fmt.Errorf("%w: path boundary distance %d is negative", ErrInvalidOptions, o.PathBoundaryDistance))
	}
	if o.Steps < 0 {
		errs = append(errs, fmt.Errorf("%w: step count %d is negative", ErrInvalidOptions, o.Steps))
	}
	return errors.Join(errs...)
}
