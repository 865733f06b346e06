// SPDX-License-Identifier: MIT
package mtxio

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// rowLexer splits a line into whitespace-separated tokens. Validation of the
// token text happens after parsing so the error can name the column.
var rowLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Token", Pattern: `[^\s]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

type row struct {
	Cells []*rowCell `parser:"@@*"`
}

type rowCell struct {
	Pos   lexer.Position
	Value string `parser:"@Token"`
}

var rowParser = participle.MustBuild[row](
	participle.Lexer(rowLexer),
)

// ParseRow tokenizes one line into 0/1 cells. want > 0 also enforces the
// row length; want == 0 accepts any length. Error positions use column
// numbers starting at 1 and line 1.
//
// Errors: ErrBadToken, ErrRowLength.
func ParseRow(line string, want int) ([]int, error) {
	return parseRow(line, 1, want)
}

func parseRow(line string, lineNo, want int) ([]int, error) {
	ast, err := rowParser.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("line %d: %v: %w", lineNo, err, ErrBadToken)
	}

	out := make([]int, 0, len(ast.Cells))
	for _, c := range ast.Cells {
		switch c.Value {
		case "0":
			out = append(out, 0)
		case "1":
			out = append(out, 1)
		default:
			return nil, fmt.Errorf("line %d, column %d: %q: %w", lineNo, c.Pos.Column, c.Value, ErrBadToken)
		}
	}
	if want > 0 && len(out) != want {
		return nil, fmt.Errorf("line %d: %d cells, want %d: %w", lineNo, len(out), want, ErrRowLength)
	}

	return out, nil
}
