package beam_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
)

// reference is the standard 10×10 contraption layout.
var reference = []string{
	`.|...\....`,
	`|.-.\.....`,
	`.....|-...`,
	`........|.`,
	`..........`,
	`.........\`,
	`..../.\\..`,
	`.-.-/..|..`,
	`.|....-|.\`,
	`..//.|....`,
}

// mustField parses lines or fails the test immediately.
func mustField(t testing.TB, lines ...string) *beam.Field {
	t.Helper()
	f, err := beam.ParseField(lines)
	require.NoError(t, err)
	return f
}

// referenceText is the reference layout as newline-terminated input.
func referenceText() string {
	return strings.Join(reference, "\n") + "\n"
}
