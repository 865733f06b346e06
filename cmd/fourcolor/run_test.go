// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	c4Matrix = "0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"
	k5Matrix = "0 1 1 1 1\n1 0 1 1 1\n1 1 0 1 1\n1 1 1 0 1\n1 1 1 1 0\n"
)

func noEnv(string) (string, bool) { return "", false }

type result struct {
	code           int
	stdout, stderr string
}

func runCLI(t *testing.T, stdin string, lookup func(string) (string, bool), args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut, lookup)

	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_FromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "c4.txt", c4Matrix)

	res := runCLI(t, "", noEnv, "-input", path)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "vertex 0: red\nvertex 1: green\nvertex 2: red\nvertex 3: green\n", res.stdout)
	assert.Contains(t, res.stderr, "coloring run finished")
}

func TestRun_Infeasible(t *testing.T) {
	path := writeFile(t, t.TempDir(), "k5.txt", k5Matrix)

	gated := runCLI(t, "", noEnv, "-input", path)
	require.Equal(t, exitOK, gated.code, gated.stderr)
	assert.Equal(t, "It is not possible to color the graph in 4 colors\n", gated.stdout)
	assert.Contains(t, gated.stderr, "graph rejected by planarity gate")

	searched := runCLI(t, "", noEnv, "-input", path, "-no-planarity", "-strategy", "iterative", "-cross-check")
	require.Equal(t, exitOK, searched.code, searched.stderr)
	assert.Equal(t, "It is not possible to color the graph in 4 colors\n", searched.stdout)
	assert.NotContains(t, searched.stderr, "planarity gate")

	five := runCLI(t, "", noEnv, "-input", path, "-palette", "a,b,c,d,e")
	require.Equal(t, exitOK, five.code, five.stderr)
	assert.Contains(t, five.stdout, "vertex 4: e\n")
}

func TestRun_Interactive(t *testing.T) {
	res := runCLI(t, "0 1 1\n1 0 1\n1 1 0\n", noEnv, "-interactive", "-log-level", "error")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "Enter the adjacency matrix row by row"))
	assert.True(t, strings.HasSuffix(res.stdout, "vertex 0: red\nvertex 1: green\nvertex 2: blue\n"))
	assert.Empty(t, res.stderr)
}

func TestRun_Menu(t *testing.T) {
	res := runCLI(t, "2\n\n0\n0 1\n1 0\n", noEnv, "-log-level", "error")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, 3, strings.Count(res.stdout, menuPrompt))
	assert.True(t, strings.HasSuffix(res.stdout, "vertex 0: red\nvertex 1: green\n"))

	eof := runCLI(t, "maybe", noEnv)
	assert.Equal(t, exitError, eof.code)
	assert.Contains(t, eof.stderr, errNoChoice.Error())
}

func TestRun_MenuReadsMatrixFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "matrix.txt", c4Matrix)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	res := runCLI(t, "1\n", noEnv, "-log-level", "warn")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, menuPrompt+"vertex 0: red\nvertex 1: green\nvertex 2: red\nvertex 3: green\n", res.stdout)
}

func TestRun_Artifacts(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c4.txt", c4Matrix)
	dot := filepath.Join(dir, "out.dot")
	svg := filepath.Join(dir, "out.svg")
	prom := filepath.Join(dir, "out.prom")

	res := runCLI(t, "", noEnv, "-input", path, "-dot", dot, "-svg", svg, "-metrics-out", prom)
	require.Equal(t, exitOK, res.code, res.stderr)

	data, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(data), `1 [label="1", fillcolor="green"];`)

	data, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg ")

	data, err = os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fourcolor_searches_total{outcome="feasible",strategy="recursive"} 1`)
}

func TestRun_ConfigAndEnv(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "edge.txt", "0 1\n1 0\n")
	cfgPath := writeFile(t, dir, "fourcolor.yaml", "input:\n  path: "+input+"\nlog:\n  level: error\n")
	env := func(key string) (string, bool) {
		if key == "FOURCOLOR_PALETTE" {
			return "black,white", true
		}
		return "", false
	}

	res := runCLI(t, "", env, "-config", cfgPath)
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "vertex 0: black\nvertex 1: white\n", res.stdout)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	asym := writeFile(t, dir, "asym.txt", "0 1\n0 0\n")

	cases := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"unknown flag", []string{"-colours", "3"}, exitUsage, "flag provided but not defined"},
		{"extra args", []string{"matrix.txt"}, exitUsage, "unexpected arguments"},
		{"strategy", []string{"-strategy", "greedy"}, exitUsage, "Search.Strategy"},
		{"palette", []string{"-palette", "red,red"}, exitUsage, "Palette"},
		{"log level", []string{"-log-level", "loud"}, exitUsage, "Log.Level"},
		{"missing config", []string{"-config", filepath.Join(dir, "none.yaml")}, exitUsage, "none.yaml"},
		{"missing input", []string{"-input", filepath.Join(dir, "none.txt")}, exitError, "none.txt"},
		{"asymmetric", []string{"-input", asym}, exitError, "not symmetric"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := runCLI(t, "", noEnv, tc.args...)
			assert.Equal(t, tc.code, res.code)
			assert.Contains(t, res.stderr, tc.msg)
		})
	}

	help := runCLI(t, "", noEnv, "-h")
	assert.Equal(t, exitOK, help.code)
	assert.Contains(t, help.stderr, "-time-limit")
}
