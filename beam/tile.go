package beam

import "fmt"

// Tile is the closed set of cell kinds a Field may contain.
type Tile uint8

const (
	Empty           Tile = iota // '.'
	MirrorSlash                 // '/'
	MirrorBackslash             // '\'
	SplitVertical               // '|'
	SplitHorizontal             // '-'

	numTiles = 5
)

var tileRunes = [numTiles]rune{
	Empty:           '.',
	MirrorSlash:     '/',
	MirrorBackslash: '\\',
	SplitVertical:   '|',
	SplitHorizontal: '-',
}

// ParseTile decodes a single field symbol.
// Returns ErrUnknownTile for anything outside the alphabet.
func ParseTile(r rune) (Tile, error) {
	for t, tr := range tileRunes {
		if tr == r {
			return Tile(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, r)
}

// Rune returns the symbol t was parsed from.
func (t Tile) Rune() rune {
	return tileRunes[t]
}

func (t Tile) String() string {
	return string(t.Rune())
}

// transitions[t][d] lists the headings that leave a t cell entered heading d.
var transitions = buildTransitions()

func buildTransitions() (tab [numTiles][numDirections][]Direction) {
	for _, d := range Directions {
		tab[Empty][d] = []Direction{d}

		tab[MirrorBackslash][d] = []Direction{[numDirections]Direction{
			Right: Down, Down: Right, Left: Up, Up: Left,
		}[d]}
		tab[MirrorSlash][d] = []Direction{[numDirections]Direction{
			Right: Up, Up: Right, Left: Down, Down: Left,
		}[d]}

		if d.Horizontal() {
			tab[SplitVertical][d] = []Direction{Up, Down}
			tab[SplitHorizontal][d] = []Direction{d}
		} else {
			tab[SplitVertical][d] = []Direction{d}
			tab[SplitHorizontal][d] = []Direction{Left, Right}
		}
	}
	return tab
}

// Step returns the outgoing headings of a beam that entered t heading d:
// one for pass-through and mirrors, two when a splitter is hit side-on.
// The returned slice is shared and must not be modified.
func (t Tile) Step(d Direction) []Direction {
	return transitions[t][d]
}
