// SPDX-License-Identifier: MIT
package mtxio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/fourcolor/matrix"
)

// Write serializes g in the format ReadMatrix accepts: one row per line,
// cells separated by a single space. The empty graph writes nothing.
func Write(w io.Writer, g *matrix.Adjacency) error {
	if g == nil {
		return fmt.Errorf("Write: %w", matrix.ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	if g.Size() > 0 {
		if _, err := fmt.Fprintln(bw, g.String()); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}
