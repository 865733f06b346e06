// SPDX-License-Identifier: MIT
package mtxio_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fourcolor/builder"
	"github.com/katalvlaran/fourcolor/matrix"
	"github.com/katalvlaran/fourcolor/mtxio"
)

const c4Text = "0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"

func TestReadMatrix(t *testing.T) {
	a, err := mtxio.ReadMatrix(strings.NewReader("\n" + strings.ReplaceAll(c4Text, "\n", " \r\n\n")))
	require.NoError(t, err)
	assert.Equal(t, 4, a.Size())
	assert.Equal(t, 4, a.EdgeCount())

	tabs, err := mtxio.ReadMatrix(strings.NewReader("0\t1\n1\t0"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {1, 0}}, tabs.Ints())
}

func TestReadMatrix_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []mtxio.Option
		want error
		msg  string
	}{
		{name: "empty", in: "", want: mtxio.ErrEmptyInput},
		{name: "blank only", in: "\n  \n\t\n", want: mtxio.ErrEmptyInput},
		{name: "bad token", in: "0 1\n1 x\n", want: mtxio.ErrBadToken, msg: "line 2, column 3"},
		{name: "comma separated", in: "0,1\n1,0\n", want: mtxio.ErrBadToken, msg: "column 1"},
		{name: "multi digit", in: "01 1\n1 0\n", want: mtxio.ErrBadToken},
		{name: "short row", in: "0 1 0\n1 0\n0 0 0\n", want: mtxio.ErrRowLength, msg: "line 2"},
		{name: "too few rows", in: "0 1 0\n1 0 1\n", want: mtxio.ErrRowCount},
		{name: "too many rows", in: "0 1\n1 0\n0 0\n", want: mtxio.ErrRowCount, msg: "line 3"},
		{
			name: "limit", in: c4Text, opts: []mtxio.Option{mtxio.WithMaxVertices(3)},
			want: mtxio.ErrTooManyVertices,
		},
		{
			name: "asymmetric", in: "0 1\n0 0\n", opts: []mtxio.Option{mtxio.WithRequireSymmetric()},
			want: matrix.ErrAsymmetry,
		},
		{
			name: "loop", in: "1 0\n0 0\n", opts: []mtxio.Option{mtxio.WithRequireZeroDiagonal()},
			want: matrix.ErrNonZeroDiagonal,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mtxio.ReadMatrix(strings.NewReader(tc.in), tc.opts...)
			require.ErrorIs(t, err, tc.want)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestParseRow(t *testing.T) {
	cells, err := mtxio.ParseRow("  1 0   1 ", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, cells)

	_, err = mtxio.ParseRow("1 0 1", 2)
	assert.ErrorIs(t, err, mtxio.ErrRowLength)

	_, err = mtxio.ParseRow("1 2", 0)
	require.ErrorIs(t, err, mtxio.ErrBadToken)
	assert.Contains(t, err.Error(), "column 3")
}

func TestReadInteractive(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("\n0 1 1\n1 0 1\n1 1 0\nleftover\n"))
	var out bytes.Buffer

	a, err := mtxio.ReadInteractive(in, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, a.EdgeCount())
	assert.Equal(t, mtxio.DefaultPrompt+"\n", out.String())

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "leftover\n", rest, "reader stops after n rows")
}

func TestReadInteractive_Errors(t *testing.T) {
	var out bytes.Buffer
	_, err := mtxio.ReadInteractive(strings.NewReader(""), &out, mtxio.WithPrompt(""))
	assert.ErrorIs(t, err, mtxio.ErrEmptyInput)
	assert.Empty(t, out.String())

	_, err = mtxio.ReadInteractive(strings.NewReader("0 1\n"), &out)
	assert.ErrorIs(t, err, mtxio.ErrRowCount)

	_, err = mtxio.ReadInteractive(strings.NewReader("0 1\n1 0 0\n"), &out)
	assert.ErrorIs(t, err, mtxio.ErrRowLength)

	// A final row without a trailing newline still counts.
	a, err := mtxio.ReadInteractive(strings.NewReader("0 1\n1 0"), &out, mtxio.WithPrompt("rows:"))
	require.NoError(t, err)
	assert.Equal(t, 1, a.EdgeCount())
}

func TestWriteRoundTrip(t *testing.T) {
	g, err := builder.Build(nil, builder.PlatonicSolid(builder.Cube, true))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, mtxio.Write(&buf, g))
	back, err := mtxio.ReadMatrix(&buf)
	require.NoError(t, err)
	assert.True(t, g.Equal(back))

	empty, err := matrix.New(nil)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, mtxio.Write(&buf, empty))
	assert.Empty(t, buf.String())

	assert.ErrorIs(t, mtxio.Write(&buf, nil), matrix.ErrNilMatrix)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.txt")
	require.NoError(t, os.WriteFile(path, []byte(c4Text), 0o600))

	a, err := mtxio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Size())

	_, err = mtxio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithMaxVertices_Panics(t *testing.T) {
	assert.Panics(t, func() { mtxio.WithMaxVertices(0) })
}
