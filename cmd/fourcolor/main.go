// SPDX-License-Identifier: MIT

// Command fourcolor colors a graph, given as a 0/1 adjacency matrix, with
// at most four colors (or a custom palette) by backtracking search.
//
// Usage:
//
//	fourcolor [flags]
//
// Without -input or -interactive the program asks where to read the matrix
// from: the file matrix.txt (1) or the terminal (0). With -serve it runs
// the HTTP service instead.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}
