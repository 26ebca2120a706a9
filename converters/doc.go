// Package converters moves grid.Grid values across library boundaries.
//
// The converters package provides:
//
//   - ToMat / FromMat for handing a Grid[float64] to gonum's linear-algebra
//     routines (gonum.org/v1/gonum/mat) and reading results back.
//
// Every conversion copies; neither side ever shares storage with the other.
package converters
