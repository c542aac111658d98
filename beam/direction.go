package beam

import (
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

// Direction is one of the four cardinal headings a beam can travel in.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up

	numDirections = 4
)

// Directions lists every heading in declaration order.
var Directions = [numDirections]Direction{Right, Down, Left, Up}

var deltas = [numDirections]grid.Vector{
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: -1},
}

// Valid reports whether d is one of the four defined headings.
func (d Direction) Valid() bool {
	return d < numDirections
}

// Delta returns the unit displacement of one step in direction d.
func (d Direction) Delta() grid.Vector {
	return deltas[d]
}

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// Arrow returns the glyph used when drawing a beam heading in d.
func (d Direction) Arrow() rune {
	if !d.Valid() {
		return '?'
	}
	return [numDirections]rune{'>', 'v', '<', '^'}[d]
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// bit is d's flag in a per-cell visited mask.
func (d Direction) bit() uint8 {
	return 1 << d
}
