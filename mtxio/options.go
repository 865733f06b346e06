// SPDX-License-Identifier: MIT
package mtxio

import "github.com/katalvlaran/fourcolor/matrix"

// DefaultPrompt is printed by ReadInteractive before the first row.
const DefaultPrompt = "Enter the adjacency matrix row by row, separating ones and zeros " +
	"with SPACES (not commas), for example: 1 0 0 1"

// Option configures the readers.
type Option func(*options)

type options struct {
	maxVertices int // 0 = unlimited
	matrixOpts  []matrix.Option
	prompt      string
}

func gatherOptions(opts ...Option) options {
	o := options{prompt: DefaultPrompt}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxVertices rejects matrices with more than n rows (ErrTooManyVertices).
// The check fires on the first row, before the rest is read.
// Panics if n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic("mtxio: WithMaxVertices(n<1)")
	}

	return func(o *options) { o.maxVertices = n }
}

// WithRequireSymmetric forwards matrix.WithRequireSymmetric.
func WithRequireSymmetric() Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, matrix.WithRequireSymmetric()) }
}

// WithRequireZeroDiagonal forwards matrix.WithRequireZeroDiagonal.
func WithRequireZeroDiagonal() Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, matrix.WithRequireZeroDiagonal()) }
}

// WithPrompt replaces DefaultPrompt. An empty prompt prints nothing.
func WithPrompt(text string) Option {
	return func(o *options) { o.prompt = text }
}
