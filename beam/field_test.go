package beam_test

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beamgrid/beam"
	"github.com/katalvlaran/beamgrid/grid"
)

func TestParseField_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, grid.ErrEmptyGrid},
		{"BlankLine", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "..."}, grid.ErrNonRectangular},
		{"UnknownTile", []string{"..", ".#"}, beam.ErrUnknownTile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := beam.ParseField(tc.lines)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestReadField(t *testing.T) {
	f, err := beam.ReadField(strings.NewReader(referenceText() + "\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, f.Width())
	assert.Equal(t, 10, f.Height())
	assert.Equal(t, beam.SplitVertical, f.At(grid.Vec(1, 0)))
	assert.Equal(t, beam.MirrorBackslash, f.At(grid.Vec(5, 0)))

	crlf := strings.ReplaceAll(referenceText(), "\n", "\r\n")
	g, err := beam.ReadField(strings.NewReader(crlf))
	require.NoError(t, err)
	assert.Equal(t, 10, g.Width())
}

func TestReadField_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	_, err := beam.ReadField(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}
