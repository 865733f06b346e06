// SPDX-License-Identifier: MIT
package mtxio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/fourcolor/matrix"
)

// ReadMatrix reads a whole matrix from r.
//
// Errors: ErrEmptyInput, ErrBadToken, ErrRowLength, ErrRowCount,
// ErrTooManyVertices, matrix construction errors, and I/O errors.
func ReadMatrix(r io.Reader, opts ...Option) (*matrix.Adjacency, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)

	var (
		rows   [][]int
		n      int
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells, err := parseRow(line, lineNo, n)
		if err != nil {
			return nil, fmt.Errorf("ReadMatrix: %w", err)
		}
		if rows == nil {
			n = len(cells)
			if err := o.checkSize(n); err != nil {
				return nil, fmt.Errorf("ReadMatrix: %w", err)
			}
		}
		if len(rows) == n {
			return nil, fmt.Errorf("ReadMatrix: line %d: more than %d rows: %w", lineNo, n, ErrRowCount)
		}
		rows = append(rows, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	if rows == nil {
		return nil, fmt.Errorf("ReadMatrix: %w", ErrEmptyInput)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("ReadMatrix: %d rows, want %d: %w", len(rows), n, ErrRowCount)
	}

	a, err := matrix.NewFromInts(rows, o.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}

	return a, nil
}

// ReadFile opens path and reads it with ReadMatrix.
func ReadFile(path string, opts ...Option) (*matrix.Adjacency, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	a, err := ReadMatrix(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("ReadFile %s: %w", path, err)
	}

	return a, nil
}

// ReadInteractive prints the prompt to w, reads the first row from r to
// fix n, then reads exactly n-1 more rows. Blank lines are skipped; the
// first invalid row aborts. Reading stops after the last row; pass a
// *bufio.Reader when r is shared with other readers so no input is lost
// to buffering.
func ReadInteractive(r io.Reader, w io.Writer, opts ...Option) (*matrix.Adjacency, error) {
	o := gatherOptions(opts...)
	if o.prompt != "" {
		if _, err := fmt.Fprintln(w, o.prompt); err != nil {
			return nil, fmt.Errorf("ReadInteractive: %w", err)
		}
	}

	br := bufio.NewReader(r)
	var (
		rows   [][]int
		n      int
		lineNo int
	)
	for rows == nil || len(rows) < n {
		line, err := readLine(br)
		if err != nil {
			if err == io.EOF {
				if rows == nil {
					return nil, fmt.Errorf("ReadInteractive: %w", ErrEmptyInput)
				}

				return nil, fmt.Errorf("ReadInteractive: %d rows, want %d: %w", len(rows), n, ErrRowCount)
			}

			return nil, fmt.Errorf("ReadInteractive: %w", err)
		}
		lineNo++
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells, err := parseRow(line, lineNo, n)
		if err != nil {
			return nil, fmt.Errorf("ReadInteractive: %w", err)
		}
		if rows == nil {
			n = len(cells)
			if err := o.checkSize(n); err != nil {
				return nil, fmt.Errorf("ReadInteractive: %w", err)
			}
		}
		rows = append(rows, cells)
	}

	a, err := matrix.NewFromInts(rows, o.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("ReadInteractive: %w", err)
	}

	return a, nil
}

// readLine returns one line without its terminator. A final line without
// a newline is returned with a nil error; io.EOF only means no more data.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (o options) checkSize(n int) error {
	if o.maxVertices > 0 && n > o.maxVertices {
		return fmt.Errorf("%d vertices, limit %d: %w", n, o.maxVertices, ErrTooManyVertices)
	}

	return nil
}
