package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]T, w)
		copy(cells[y], rows[y])
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Parse builds a Grid from text lines, decoding every rune with decode.
// A trailing "\r" on each line is ignored. The first decode failure aborts
// construction and is returned wrapped with the offending position.
func Parse[T any](lines []string, decode func(r rune) (T, error)) (*Grid[T], error) {
	rows := make([][]T, 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]T, 0, len(line))
		x := 0
		for _, r := range line {
			cell, err := decode(r)
			if err != nil {
				return nil, fmt.Errorf("grid: cell %v: %w", Vec(x, y), err)
			}
			row = append(row, cell)
			x++
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns Width×Height.
func (g *Grid[T]) Size() int { return g.width * g.height }

// InBounds reports whether v lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(v Vector) bool {
	return v.X >= 0 && v.X < g.width && v.Y >= 0 && v.Y < g.height
}

// Get returns the cell at v, or ErrOutOfRange if v is outside the grid.
func (g *Grid[T]) Get(v Vector) (T, error) {
	if !g.InBounds(v) {
		var zero T
		return zero, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, v, g.width, g.height)
	}
	return g.cells[v.Y][v.X], nil
}

// At returns the cell at v without reporting errors.
// Callers must check InBounds first; an out-of-range v panics.
func (g *Grid[T]) At(v Vector) T {
	return g.cells[v.Y][v.X]
}

// Index maps v to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) Index(v Vector) int {
	return v.Y*g.width + v.X
}

// Coordinate converts a row‑major index back to a Vector.
// Complexity: O(1).
func (g *Grid[T]) Coordinate(idx int) Vector {
	return Vector{X: idx % g.width, Y: idx / g.width}
}

// Neighbors returns the in-bounds neighbors of v under conn,
// clockwise from north.
// Complexity: O(d), d = 4 or 8.
func (g *Grid[T]) Neighbors(v Vector, conn Connectivity) []Vector {
	offsets := conn.Offsets()
	out := make([]Vector, 0, len(offsets))
	for _, d := range offsets {
		n := v.Add(d)
		if !g.InBounds(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Row returns a copy of row y. It panics if y is out of range.
func (g *Grid[T]) Row(y int) []T {
	row := make([]T, g.width)
	copy(row, g.cells[y])
	return row
}

// Column returns a copy of column x. It panics if x is out of range.
func (g *Grid[T]) Column(x int) []T {
	col := make([]T, g.height)
	for y := range col {
		col[y] = g.cells[y][x]
	}
	return col
}

// Format renders the grid one row per line using glyph for every cell.
// Lines are joined with "\n" and there is no trailing newline.
func (g *Grid[T]) Format(glyph func(T) rune) string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(glyph(c))
		}
	}
	return sb.String()
}
