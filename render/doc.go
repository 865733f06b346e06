// Package render draws a (possibly colored) graph as Graphviz DOT or as a
// standalone SVG image with vertices on a circle.
//
// Colors are palette labels used verbatim as fill colors, so the default
// palette (red, green, blue, yellow) renders as named CSS/Graphviz colors.
// A nil color slice renders every vertex light grey.
package render
