// SPDX-License-Identifier: MIT
package coloring

import "fmt"

// Color is a palette label.
type Color string

// Default labels, in DefaultPalette order.
const (
	Red    Color = "red"
	Green  Color = "green"
	Blue   Color = "blue"
	Yellow Color = "yellow"
)

// Palette is an ordered list of distinct, non-empty labels.
// Order matters: the search tries colors in palette order, so it fixes
// which valid assignment is returned. The zero value is the empty palette.
type Palette struct {
	colors []Color
}

// NewPalette builds a palette from labels in the given order.
// No labels yields the empty palette (K = 0).
//
// Errors: ErrEmptyColor, ErrDuplicateColor.
func NewPalette(labels ...string) (Palette, error) {
	seen := make(map[string]int, len(labels))
	out := make([]Color, 0, len(labels))
	for i, l := range labels {
		if l == "" {
			return Palette{}, fmt.Errorf("NewPalette: label %d: %w", i, ErrEmptyColor)
		}
		if j, dup := seen[l]; dup {
			return Palette{}, fmt.Errorf("NewPalette: %q at %d and %d: %w", l, j, i, ErrDuplicateColor)
		}
		seen[l] = i
		out = append(out, Color(l))
	}

	return Palette{colors: out}, nil
}

// DefaultPalette returns [red, green, blue, yellow].
func DefaultPalette() Palette {
	return Palette{colors: []Color{Red, Green, Blue, Yellow}}
}

// Len returns K, the number of labels.
func (p Palette) Len() int { return len(p.colors) }

// At returns the i-th label. i must be in [0, Len()).
func (p Palette) At(i int) Color { return p.colors[i] }

// Colors returns a copy of the labels.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)

	return out
}

// Index returns the position of c, or -1.
func (p Palette) Index(c Color) int {
	for i, x := range p.colors {
		if x == c {
			return i
		}
	}

	return -1
}

// Prefix returns the palette made of the first k labels.
//
// Errors: ErrPrefixRange.
func (p Palette) Prefix(k int) (Palette, error) {
	if k < 0 || k > len(p.colors) {
		return Palette{}, fmt.Errorf("Prefix: k=%d with K=%d: %w", k, len(p.colors), ErrPrefixRange)
	}
	out := make([]Color, k)
	copy(out, p.colors[:k])

	return Palette{colors: out}, nil
}

// String renders the palette as "[red green ...]".
func (p Palette) String() string {
	return fmt.Sprint(p.colors)
}
