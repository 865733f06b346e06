// SPDX-License-Identifier: MIT
package render

import (
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/matrix"
)

var (
	// ErrColorCount: the color slice does not hold one entry per vertex.
	ErrColorCount = errors.New("render: color count mismatch")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("render: graph is nil")
)

// uncolored is the fill used when no coloring is given.
const uncolored = "#e9ecef"

// Option configures rendering.
type Option func(*options)

type options struct {
	size    int
	title   string
	labeler func(v int) string
}

func gatherOptions(opts ...Option) options {
	o := options{size: 480, labeler: strconv.Itoa}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithSize sets the SVG width and height in pixels. Panics if px < 64.
func WithSize(px int) Option {
	if px < 64 {
		panic("render: WithSize(px<64)")
	}

	return func(o *options) { o.size = px }
}

// WithTitle sets the graph name (DOT) or the <title> element (SVG).
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithLabeler replaces the default decimal vertex labels. Panics on nil.
func WithLabeler(fn func(v int) string) Option {
	if fn == nil {
		panic("render: WithLabeler(nil)")
	}

	return func(o *options) { o.labeler = fn }
}

// fills resolves one fill color per vertex.
func fills(g *matrix.Adjacency, colors []coloring.Color) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Size()
	out := make([]string, n)
	if colors == nil {
		for v := range out {
			out[v] = uncolored
		}

		return out, nil
	}
	if len(colors) != n {
		return nil, fmt.Errorf("%d colors for %d vertices: %w", len(colors), n, ErrColorCount)
	}
	for v, c := range colors {
		out[v] = string(c)
		if c == "" {
			out[v] = uncolored
		}
	}

	return out, nil
}

// WriteDOT writes g as an undirected Graphviz graph.
func WriteDOT(w io.Writer, g *matrix.Adjacency, colors []coloring.Color, opts ...Option) error {
	fill, err := fills(g, colors)
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	o := gatherOptions(opts...)

	var sb strings.Builder
	name := o.title
	if name == "" {
		name = "G"
	}
	fmt.Fprintf(&sb, "graph %q {\n", name)
	sb.WriteString("  node [style=filled, shape=circle];\n")
	for v := range fill {
		fmt.Fprintf(&sb, "  %d [label=%q, fillcolor=%q];\n", v, o.labeler(v), fill[v])
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&sb, "  %d -- %d;\n", e[0], e[1])
	}
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}

// WriteSVG writes g as an SVG image with vertices evenly spaced on a circle,
// vertex 0 at the top, increasing clockwise.
func WriteSVG(w io.Writer, g *matrix.Adjacency, colors []coloring.Color, opts ...Option) error {
	fill, err := fills(g, colors)
	if err != nil {
		return fmt.Errorf("WriteSVG: %w", err)
	}
	o := gatherOptions(opts...)
	n := len(fill)

	const nodeRadius = 14.0
	center := float64(o.size) / 2
	ring := center - 2*nodeRadius
	xs := make([]float64, n)
	ys := make([]float64, n)
	for v := 0; v < n; v++ {
		if n == 1 {
			xs[v], ys[v] = center, center
			continue
		}
		angle := 2*math.Pi*float64(v)/float64(n) - math.Pi/2
		xs[v] = center + ring*math.Cos(angle)
		ys[v] = center + ring*math.Sin(angle)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg version="1.1" viewBox="0 0 %d %d" width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`,
		o.size, o.size, o.size, o.size)
	sb.WriteString("\n")
	if o.title != "" {
		fmt.Fprintf(&sb, "<title>%s</title>\n", html.EscapeString(o.title))
	}
	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		fmt.Fprintf(&sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" />`, xs[u], ys[u], xs[v], ys[v])
		sb.WriteString("\n")
	}
	for v := 0; v < n; v++ {
		fmt.Fprintf(&sb, `<circle cx="%.2f" cy="%.2f" r="%.0f" fill="%s" stroke="black" />`,
			xs[v], ys[v], nodeRadius, html.EscapeString(fill[v]))
		sb.WriteString("\n")
		fmt.Fprintf(&sb, `<text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central">%s</text>`,
			xs[v], ys[v], html.EscapeString(o.labeler(v)))
		sb.WriteString("\n")
	}
	sb.WriteString("</svg>\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("WriteSVG: %w", err)
	}

	return nil
}
