package beam

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/beamgrid/grid"
)

// Field is a parsed, immutable contraption layout.
type Field = grid.Grid[Tile]

// ParseField builds a Field from text lines, one row per line.
// Fails on the first unknown symbol (ErrUnknownTile) or on ragged rows
// (grid.ErrNonRectangular); no partial Field is returned.
func ParseField(lines []string) (*Field, error) {
	return grid.Parse(lines, ParseTile)
}

// ReadField reads a Field from r. Trailing blank lines are ignored.
func ReadField(r io.Reader) (*Field, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("beam: read field: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return ParseField(lines)
}
