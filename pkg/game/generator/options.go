// Package generator wires the partition, shrink, edge and automaton stages into a single
// seeded pipeline and places the spawn and exit rooms.
package generator

import (
	"errors"
	"fmt"

	"dungeongen/pkg/game/automaton"
	"dungeongen/pkg/game/shrink"
)

// ErrInvalidOptions is wrapped by every option validation failure
var ErrInvalidOptions = automaton.ErrInvalidOptions

// MaxSplits bounds the partition depth (2^MaxSplits rooms)
const MaxSplits = 16

// Options configures a full generation run. Fields parse from DUNGEON_* variables.
type Options struct {
	automaton.Options

	Splits int          `env:"SPLITS" envDefault:"4"`
	Shrink shrink.Range `envPrefix:"SHRINK_"`

	// FinishPercentile is the distance rank, as a fraction of the other rooms, below which
	// rooms cannot be the exit
	FinishPercentile float64 `env:"FINISH_PERCENTILE" envDefault:"0.7"`
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Options: automaton.Options{
			Width:                100,
			Height:               60,
			DeathLimit:           3,
			BirthLimit:           4,
			InitialChance:        0.45,
			RoomBoundaryDistance: 2,
			PathBoundaryDistance: 2,
			Steps:                4,
		},
		Splits:           4,
		Shrink:           shrink.Range{Min: 0.1, Max: 0.25},
		FinishPercentile: 0.7,
	}
}

// Validate returns every problem with the options joined together, or nil
func (o Options) Validate() error {
	var errs []error
	if err := o.Options.Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.Splits < 0 || o.Splits > MaxSplits {
		errs = append(errs, fmt.Errorf("%w: splits %d outside [0,%d]", ErrInvalidOptions, o.Splits, MaxSplits))
	}
	if err := o.Shrink.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidOptions, err))
	}
	if o.FinishPercentile < 0 || o.FinishPercentile > 1 {
		errs = append(errs, fmt.Errorf("%w: finish percentile %v outside [0,1]", ErrInvalidOptions, o.FinishPercentile))
	}
	return errors.Join(errs...)
}
