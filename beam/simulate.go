package beam

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/beamgrid/grid"
)

// walker encapsulates the mutable state of one beam walk.
// It is created per call and never shared.
type walker struct {
	field     *Field
	queue     []State
	visited   []uint8 // per-cell Direction bitmask, row-major
	energized []bool  // row-major
	count     int
	steps     int
}

// Result is the outcome of a single walk.
type Result struct {
	// Steps is the number of distinct (position, direction) states processed.
	// It never exceeds 4×W×H.
	Steps int

	field     *Field
	energized []bool
	count     int
}

// Energize fires a beam into f at pos heading dir and returns the number of
// distinct cells it energizes. A start outside f energizes nothing.
// Returns ErrFieldNil for a nil field, ErrInvalidDirection for an undefined dir.
func Energize(f *Field, pos grid.Vector, dir Direction) (int, error) {
	res, err := Trace(f, pos, dir)
	if err != nil {
		return 0, err
	}
	return res.Count(), nil
}

// Trace runs the same walk as Energize and keeps the energized cells.
func Trace(f *Field, pos grid.Vector, dir Direction) (*Result, error) {
	if f == nil {
		return nil, ErrFieldNil
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(dir))
	}

	n := f.Size()
	w := &walker{
		field:     f,
		queue:     make([]State, 0, 16),
		visited:   make([]uint8, n),
		energized: make([]bool, n),
	}
	w.queue = append(w.queue, State{Pos: pos, Dir: dir})
	w.loop()

	return &Result{Steps: w.steps, field: f, energized: w.energized, count: w.count}, nil
}

// loop drains the FIFO worklist.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		s := w.queue[head]
		// beam left the field
		if !w.field.InBounds(s.Pos) {
			continue
		}
		i := w.field.Index(s.Pos)
		if w.visited[i]&s.Dir.bit() != 0 {
			continue
		}
		w.visited[i] |= s.Dir.bit()
		w.steps++
		if !w.energized[i] {
			w.energized[i] = true
			w.count++
		}
		for _, d := range w.field.At(s.Pos).Step(s.Dir) {
			w.queue = append(w.queue, State{Pos: s.Pos.Add(d.Delta()), Dir: d})
		}
	}
}

// Count returns the number of distinct energized cells.
func (r *Result) Count() int {
	return r.count
}

// Energized reports whether v was touched by any beam. Out-of-range v is false.
func (r *Result) Energized(v grid.Vector) bool {
	return r.field.InBounds(v) && r.energized[r.field.Index(v)]
}

// Cells returns the energized positions in row-major order.
func (r *Result) Cells() []grid.Vector {
	cells := make([]grid.Vector, 0, r.count)
	for i, on := range r.energized {
		if on {
			cells = append(cells, r.field.Coordinate(i))
		}
	}
	return cells
}

// Render draws the field with energized cells as '#' and the rest as '.'.
func (r *Result) Render() string {
	var sb strings.Builder
	sb.Grow(r.field.Height() * (r.field.Width() + 1))
	for i, on := range r.energized {
		if i > 0 && i%r.field.Width() == 0 {
			sb.WriteByte('\n')
		}
		if on {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
