// SPDX-License-Identifier: MIT

// Package grid - Grid storage (row-major), constructors and whole-value copies.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee value semantics: Clone/Assign/FromRows/ToRows never share storage.
//   - Reject zero-sized shapes at construction so clamped access can never underflow.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Rows/Cols/Shape: O(1); Clone/Assign: O(r*c).

package grid

import "fmt"

// Grid is a fixed-size rows×cols container of T values.
//   - r,c hold dimensions (both > 0 for every Grid built through this package).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; construct with New, NewSquare or FromRows.
type Grid[T any] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New creates a rows×cols Grid with every element set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Behavior highlights:
//   - A zero-dimension grid would make the clamp target rows-1/cols-1 negative,
//     so it is refused here instead of failing on first access.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Grid[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewSquare creates a size×size Grid. See New.
func NewSquare[T any](size int) (*Grid[T], error) {
	return New[T](size, size)
}

// MustNew is like New but panics on invalid dimensions.
// Intended for fixed shapes in tests, examples and package-level variables.
func MustNew[T any](rows, cols int) *Grid[T] {
	g, err := New[T](rows, cols)
	if err != nil {
		panic(err)
	}

	return g
}

// FromRows builds a Grid from a rectangular [][]T, deep-copying every row.
// MAIN DESCRIPTION:
//   - Ingest caller-owned nested slices without retaining any of them.
//
// Implementation:
//   - Stage 1: reject empty input (no rows or an empty first row).
//   - Stage 2: reject ragged input.
//   - Stage 3: copy rows into one flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or rows[0] is empty.
//   - ErrNonRectangular when any row length differs from rows[0].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("grid.FromRows: row %d has %d elements, want %d: %w",
				i, len(row), w, ErrNonRectangular)
		}
	}
	g := &Grid[T]{r: h, c: w, data: make([]T, h*w)}
	for i, row := range rows {
		copy(g.data[i*w:(i+1)*w], row)
	}

	return g, nil
}

// Rows returns the row count. No side effects.
func (g *Grid[T]) Rows() int { return g.r }

// Cols returns the column count. No side effects.
func (g *Grid[T]) Cols() int { return g.c }

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.r, g.c }

// Len returns the total number of elements (rows*cols).
func (g *Grid[T]) Len() int { return len(g.data) }

// Clone returns a deep copy with identical shape and element values.
// Mutations of the copy never reach the receiver, and vice versa.
// Complexity: O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	cp := make([]T, len(g.data))
	copy(cp, g.data)

	return &Grid[T]{r: g.r, c: g.c, data: cp}
}

// Assign replaces the receiver's shape and contents with a deep copy of other.
// MAIN DESCRIPTION:
//   - Whole-value assignment: after the call g and other have equal shapes and
//     equal elements but remain independently owned.
//
// Implementation:
//   - Stage 1: reject nil; short-circuit self-assignment.
//   - Stage 2: reuse the receiver's buffer when capacity allows, else reallocate.
//   - Stage 3: copy elements and adopt other's shape.
//
// Errors:
//   - ErrNilGrid when other is nil.
//
// Complexity:
//   - Time O(r*c) of other; Space O(r*c) when the buffer has to grow.
func (g *Grid[T]) Assign(other *Grid[T]) error {
	if other == nil {
		return gridErrorf(ctxAssign, g.r, g.c, ErrNilGrid)
	}
	if other == g {
		return nil
	}
	n := len(other.data)
	if cap(g.data) < n {
		g.data = make([]T, n)
	} else {
		g.data = g.data[:n]
	}
	copy(g.data, other.data)
	g.r, g.c = other.r, other.c

	return nil
}

// Fill sets every element to v.
func (g *Grid[T]) Fill(v T) {
	for k := range g.data {
		g.data[k] = v
	}
}

// ToRows returns an independent [][]T snapshot, one slice per row.
func (g *Grid[T]) ToRows() [][]T {
	out := make([][]T, g.r)
	for i := range out {
		row := make([]T, g.c)
		copy(row, g.data[i*g.c:(i+1)*g.c])
		out[i] = row
	}

	return out
}

// Equal reports whether a and b have the same shape and equal elements.
// Two nil grids are equal; a nil and a non-nil grid are not.
func Equal[T comparable](a, b *Grid[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Grid[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		if !eq(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}
