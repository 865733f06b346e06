// SPDX-License-Identifier: MIT
// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, labels and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourcolor/builder"
	"github.com/katalvlaran/fourcolor/matrix"
)

// degrees returns the degree sequence in index order.
func degrees(t *testing.T, a *matrix.Adjacency) []int {
	t.Helper()
	out := make([]int, a.Size())
	for v := range out {
		d, err := a.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}

	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, a *matrix.Adjacency)
	}{
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				assert.Equal(t, []int{4, 4, 4, 4, 4}, degrees(t, a))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				ok, err := a.IsAdjacent(4, 0)
				require.NoError(t, err)
				assert.True(t, ok, "closing edge")
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				assert.Equal(t, []int{1, 2, 2, 1}, degrees(t, a))
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				assert.Equal(t, []int{4, 1, 1, 1, 1}, degrees(t, a))
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				assert.Equal(t, []int{3, 3, 3, 3, 3, 5}, degrees(t, a))
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {2, 5}, {3, 4}, {4, 5}}, a.Edges())
			},
		},
		{
			name: "CompleteBipartite(3,3)", ctor: builder.CompleteBipartite(3, 3), wantV: 6, wantE: 9,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				ok, err := a.IsAdjacent(0, 1)
				require.NoError(t, err)
				assert.False(t, ok, "same side")
			},
		},
		{name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron, false), wantV: 4, wantE: 6},
		{name: "Cube", ctor: builder.PlatonicSolid(builder.Cube, false), wantV: 8, wantE: 12},
		{name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron, false), wantV: 6, wantE: 12},
		{name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron, false), wantV: 20, wantE: 30},
		{
			name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron, false), wantV: 12, wantE: 30,
			sampleCheck: func(t *testing.T, a *matrix.Adjacency) {
				for v, d := range degrees(t, a) {
					assert.Equal(t, 5, d, "vertex %d", v)
				}
			},
		},
		{name: "Cube+Center", ctor: builder.PlatonicSolid(builder.Cube, true), wantV: 9, wantE: 20},
		{name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10},
		{name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0},
		{name: "Isolated(3)", ctor: builder.Isolated(3), wantV: 3, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a, err := builder.Build(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, a.Size())
			assert.Equal(t, tc.wantE, a.EdgeCount())
			assert.True(t, a.IsSymmetric())
			assert.False(t, a.HasLoops())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, a)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Platonic(99)", builder.PlatonicSolid(builder.PlatonicName(99), false), builder.ErrOptionViolation},
		{"RandomSparse(p=1.5)", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"Isolated(0)", builder.Isolated(0), builder.ErrTooFewVertices},
		{"Connect(missing)", builder.Connect([2]int{0, 1}), builder.ErrVertexRange},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Build(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_CompositionOffsets(t *testing.T) {
	// C3 on 0..2, K4 on 3..6, bridge 2-3.
	a, err := builder.Build(nil, builder.Cycle(3), builder.Complete(4), builder.Connect([2]int{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, 7, a.Size())
	assert.Equal(t, 3+6+1, a.EdgeCount())

	nb, err := a.Neighbors(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 5, 6}, nb)

	// Self-loop glue is rejected.
	_, err = builder.Build(nil, builder.Path(2), builder.Connect([2]int{1, 1}))
	assert.ErrorIs(t, err, builder.ErrVertexRange)
}

func TestBuildLabeled(t *testing.T) {
	_, labels, err := builder.BuildLabeled(nil, builder.Wheel(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "Center"}, labels)

	_, labels, err = builder.BuildLabeled([]builder.BuilderOption{builder.WithExcelColumnIDs()},
		builder.Path(2), builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, labels)

	_, labels, err = builder.BuildLabeled([]builder.BuilderOption{builder.WithPartitionPrefix("x", "")},
		builder.CompleteBipartite(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []string{"x0", "R0", "R1"}, labels)

	_, labels, err = builder.BuildLabeled([]builder.BuilderOption{builder.WithSymbNumb("v")}, builder.Isolated(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, labels)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, err := builder.Build(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.Build(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must give the same graph")
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
}
