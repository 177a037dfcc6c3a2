// Package maze provides tunable options and error definitions for
// carving corridor terrain onto a grid.Grid.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze carving.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("maze: grid is nil")

	// ErrBraidingRange is returned when the braiding factor lies outside
	// [0,1].
	ErrBraidingRange = errors.New("maze: braiding factor out of range")
)

// Option configures carving behavior via functional arguments.
// If an Option is invalid (e.g. braiding outside [0,1]), it is recorded
// internally and surfaced when Carve is invoked.
type Option func(*Options)

// Options holds parameters that customize a carve.
type Options struct {
	// Braiding is the probability in [0,1] of opening an extra wall at
	// each dead-end room: 0 keeps the perfect maze, 1 removes every dead
	// end that has an adjacent room to connect to.
	Braiding float64

	// Seed drives the carve's RNG; 0 seeds from the clock, any other
	// value reproduces the identical maze.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no braiding and a
// clock-based seed.
func DefaultOptions() Options {
	return Options{
		Braiding: 0,
		Seed:     0,
		err:      nil,
	}
}

// WithBraiding sets the dead-end removal probability.
//
//	0 ≤ p ≤ 1: braid with probability p
//	otherwise: invalid option → ErrBraidingRange
func WithBraiding(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: %v", ErrBraidingRange, p)
			return
		}
		o.Braiding = p
	}
}

// WithSeed fixes the RNG seed for reproducible terrain. Zero restores the
// default clock seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}
