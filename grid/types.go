package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfRange indicates a vector outside the grid bounds.
	ErrOutOfRange = errors.New("grid: position out of range")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Vector{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Vector{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor displacement vectors for c, clockwise from north.
// The returned slice is shared and must not be modified.
func (c Connectivity) Offsets() []Vector {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Vector is an integer point or displacement on the lattice.
// x grows to the right, y grows downwards.
type Vector struct {
	X, Y int
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// String formats v as "(x,y)".
func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Grid is a rectangular lattice of cells. It is immutable once built.
// cells[y][x] holds the value at Vector{x, y}.
type Grid[T any] struct {
	width, height int
	cells         [][]T
}
