// SPDX-License-Identifier: MIT
// Package: fourcolor/builder
//
// variants_platonic.go: canonical data for the five Platonic graphs.
//
// All five are planar, so the Four Color Theorem guarantees a 4-coloring:
// they are the standard positive fixtures for the search. The tetrahedron
// (K4) and the icosahedron need all four colors.
//
// Each shell is assembled from rings (cycles over consecutive local indices),
// fans (a pole joined to a run of vertices) and matchings. Local indices are
// stable and part of the public contract.

package builder

// PlatonicName enumerates the five Platonic solids (canonical graph shells).
type PlatonicName int

// String returns the solid name, e.g. "Cube".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// shell is the local edge list of a solid on vertices 0..n-1.
type shell struct {
	n     int
	edges [][2]int
}

// ring closes first, first+1, ..., first+k-1 into a cycle.
func ring(first, k int) [][2]int {
	out := make([][2]int, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, [2]int{first + i, first + (i+1)%k})
	}

	return out
}

// fan joins pole to first..first+k-1.
func fan(pole, first, k int) [][2]int {
	out := make([][2]int, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, [2]int{pole, first + i})
	}

	return out
}

func join(parts ...[][2]int) [][2]int {
	var out [][2]int
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}

// platonicShell returns the shell of name; ok is false for unknown names.
func platonicShell(name PlatonicName) (shell, bool) {
	switch name {
	case Tetrahedron:
		// K4.
		return shell{n: 4, edges: join(fan(0, 1, 3), fan(1, 2, 2), fan(2, 3, 1))}, true

	case Cube:
		// Bottom face 0..3, top face 4..7, verticals i–i+4.
		var verticals [][2]int
		for i := 0; i < 4; i++ {
			verticals = append(verticals, [2]int{i, i + 4})
		}
		return shell{n: 8, edges: join(ring(0, 4), ring(4, 4), verticals)}, true

	case Octahedron:
		// Poles 0 and 1 over the equator 2–4–3–5.
		equator := [][2]int{{2, 4}, {4, 3}, {3, 5}, {5, 2}}
		return shell{n: 6, edges: join(fan(0, 2, 4), fan(1, 2, 4), equator)}, true

	case Dodecahedron:
		// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19.
		// Top vertex i meets middle 10+2i, bottom vertex 5+i meets 11+2i.
		var spokes [][2]int
		for i := 0; i < 5; i++ {
			spokes = append(spokes, [2]int{i, 10 + 2*i}, [2]int{5 + i, 11 + 2*i})
		}
		return shell{n: 20, edges: join(ring(0, 5), ring(5, 5), ring(10, 10), spokes)}, true

	case Icosahedron:
		// Pole 0 over ring 1..5, pole 11 under ring 6..10; upper vertex i
		// meets lower 5+i and the next lower vertex.
		var cross [][2]int
		for i := 1; i <= 5; i++ {
			cross = append(cross, [2]int{i, 5 + i}, [2]int{i, 6 + i%5})
		}
		return shell{n: 12, edges: join(fan(0, 1, 5), ring(1, 5), cross, ring(6, 5), fan(11, 6, 5))}, true

	default:
		return shell{}, false
	}
}
