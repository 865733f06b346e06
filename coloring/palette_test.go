// SPDX-License-Identifier: MIT
package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourcolor/builder"
	"github.com/katalvlaran/fourcolor/coloring"
)

func TestPalette(t *testing.T) {
	p := coloring.DefaultPalette()
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, coloring.Yellow, p.At(3))
	assert.Equal(t, 2, p.Index(coloring.Blue))
	assert.Equal(t, -1, p.Index("purple"))
	assert.Equal(t, "[red green blue yellow]", p.String())

	cs := p.Colors()
	cs[0] = "black"
	assert.Equal(t, coloring.Red, p.At(0), "Colors returns a copy")

	two, err := p.Prefix(2)
	require.NoError(t, err)
	assert.Equal(t, []coloring.Color{coloring.Red, coloring.Green}, two.Colors())
	_, err = p.Prefix(5)
	assert.ErrorIs(t, err, coloring.ErrPrefixRange)
	_, err = p.Prefix(-1)
	assert.ErrorIs(t, err, coloring.ErrPrefixRange)

	_, err = coloring.NewPalette("a", "")
	assert.ErrorIs(t, err, coloring.ErrEmptyColor)
	_, err = coloring.NewPalette("a", "b", "a")
	assert.ErrorIs(t, err, coloring.ErrDuplicateColor)

	none, err := coloring.NewPalette()
	require.NoError(t, err)
	assert.Equal(t, 0, none.Len())
}

func TestPalette_OrderSelectsAssignment(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(3))
	require.NoError(t, err)
	p, err := coloring.NewPalette("blue", "red")
	require.NoError(t, err)

	res, err := coloring.Solve(g, p)
	require.NoError(t, err)
	assert.Equal(t, []coloring.Color{"blue", "red", "blue"}, res.Colors)
}

func TestVerify(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(3))
	require.NoError(t, err)

	assert.NoError(t, coloring.Verify(g, []coloring.Color{"r", "g", "b"}))
	assert.ErrorIs(t, coloring.Verify(g, []coloring.Color{"r", "g", "r"}), coloring.ErrConflict)
	assert.ErrorIs(t, coloring.Verify(g, []coloring.Color{"r", "", "b"}), coloring.ErrUnassigned)
	assert.ErrorIs(t, coloring.Verify(g, []coloring.Color{"r"}), coloring.ErrLengthMismatch)
	assert.ErrorIs(t, coloring.Verify(nil, nil), coloring.ErrGraphNil)
}
