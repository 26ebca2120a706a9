// Package lvlgrid is a small toolkit around one data structure: a generic,
// fixed-size, two-dimensional grid.
//
// What is inside?
//
//	grid/       — Grid[T]: clamped and checked element access, copy-based
//	              slicing, row/column concatenation, mapping, aligned printing
//	converters/ — Grid[float64] <-> gonum mat.Dense adapters
//	examples/   — a runnable heightmap preview
//
// Quick ASCII example:
//
//	g.Slice(1, 1, 2, 2) on
//
//	 0  1  2  3
//	 4 [5  6] 7
//	 8 [9 10]11
//	12 13 14 15
//
// yields the independent 2×2 grid [[5 6] [9 10]].
//
//	go get github.com/katalvlaran/lvlgrid
package lvlgrid
