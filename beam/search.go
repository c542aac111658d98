package beam

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/beamgrid/grid"
)

// Configurations lists every boundary entry of f paired with its inward
// heading: for each column the top cell heading Down and the bottom cell
// heading Up, then for each row the left cell heading Right and the right
// cell heading Left. Corner cells appear once per side, so the result always
// holds exactly 2×(W+H) entries.
func Configurations(f *Field) []State {
	w, h := f.Width(), f.Height()
	out := make([]State, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		out = append(out,
			State{Pos: grid.Vec(x, 0), Dir: Down},
			State{Pos: grid.Vec(x, h-1), Dir: Up},
		)
	}
	for y := 0; y < h; y++ {
		out = append(out,
			State{Pos: grid.Vec(0, y), Dir: Right},
			State{Pos: grid.Vec(w-1, y), Dir: Left},
		)
	}
	return out
}

// MaxEnergized returns the largest Energize result over all Configurations of f.
func MaxEnergized(f *Field, opts ...Option) (int, error) {
	best, err := Best(f, opts...)
	if err != nil {
		return 0, err
	}
	return best.Energized, nil
}

// Best simulates every configuration of f independently and returns the one
// energizing the most cells. Ties go to the configuration listed first by
// Configurations, so the outcome is independent of scheduling.
// Returns ErrFieldNil, ErrOptionViolation, or the context error if the
// search is cancelled before every walk finished.
func Best(f *Field, opts ...Option) (Outcome, error) {
	if f == nil {
		return Outcome{}, ErrFieldNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Outcome{}, o.err
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	configs := Configurations(f)
	counts := make([]int, len(configs))

	// fan out: every walk writes only its own slot
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(workers)
	for i, c := range configs {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := Energize(f, c.Pos, c.Dir)
			if err != nil {
				return err
			}
			counts[i] = n
			o.OnResult(c, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	// fan in
	best := 0
	for i := range counts {
		if counts[i] > counts[best] {
			best = i
		}
	}
	return Outcome{Start: configs[best], Energized: counts[best]}, nil
}
