package grid_test

import (
	"fmt"

	"github.com/katalvlaran/beamgrid/grid"
)

// ExampleParse builds a character grid and walks the 8-neighbourhood
// of its centre cell.
func ExampleParse() {
	g, err := grid.Parse([]string{
		"abc",
		"def",
		"ghi",
	}, func(r rune) (rune, error) { return r, nil })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	centre := grid.Vec(1, 1)
	fmt.Printf("%dx%d centre=%c\n", g.Width(), g.Height(), g.At(centre))
	for _, n := range g.Neighbors(centre, grid.Conn8) {
		fmt.Printf("%c", g.At(n))
	}
	fmt.Println()

	// Output:
	// 3x3 centre=e
	// bcfihgda
}
