package beam

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

// Sentinel errors for beam operations.
var (
	// ErrFieldNil is returned if a nil field pointer is passed.
	ErrFieldNil = errors.New("beam: field is nil")

	// ErrUnknownTile is returned when the input holds a symbol outside the tile alphabet.
	ErrUnknownTile = errors.New("beam: unknown tile symbol")

	// ErrInvalidDirection is returned when a walk is seeded with an undefined Direction.
	ErrInvalidDirection = errors.New("beam: invalid direction")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("beam: invalid option supplied")
)

// State is one in-flight beam segment: the cell it is about to enter
// and the heading it travels in.
type State struct {
	Pos grid.Vector
	Dir Direction
}

func (s State) String() string {
	return fmt.Sprintf("%v %v", s.Pos, s.Dir)
}

// Outcome pairs an entry configuration with the number of cells it energizes.
type Outcome struct {
	Start     State
	Energized int
}

// Option configures a configuration search via functional arguments.
// If an Option is invalid (e.g. negative workers), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize MaxEnergized and Best.
type SearchOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Workers bounds the number of concurrent walks.
	// 0 selects runtime.GOMAXPROCS(0).
	Workers int

	// OnResult is called once per configuration as soon as its walk finishes.
	// It runs on worker goroutines and must be safe for concurrent use.
	OnResult func(start State, energized int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a SearchOptions with sane defaults:
//   - Context.Background()
//   - Workers == 0 (GOMAXPROCS)
//   - no-op OnResult hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:      context.Background(),
		Workers:  0,
		OnResult: func(State, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the number of walks running at once.
//
//	n > 0: at most n concurrent walks
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SearchOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnResult registers a callback invoked for every finished configuration.
func WithOnResult(fn func(start State, energized int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnResult = fn
		}
	}
}
